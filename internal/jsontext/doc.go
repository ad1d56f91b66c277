// Package jsontext converts between [value.Value] and JSON text.
//
// Parsing is grounded on the streaming-token approach demonstrated by
// rsms/go-json's Reader: walk [encoding/json.Decoder.Token] rather than
// unmarshal into interface{}, because [encoding/json.Decoder] (with
// [encoding/json.Decoder.UseNumber]) is the one standard-library path that
// reports object keys in source order and preserves the textual form of a
// number long enough to classify it as an integer or a float before any
// precision is lost. No third-party tokenizer in the reference pack offers
// both properties together, so this package leans on the standard library
// by necessity rather than by default -- see DESIGN.md.
//
// Serialization is hand-rolled rather than routed through
// [encoding/json.Marshal], because canonical JSON here must preserve
// object key order (json.Marshal on a map cannot) and because the
// canonical form is reused as the length metric the encoder compares
// descriptor candidates against -- it must exactly match the bytes this
// package would also emit for the decoded round-trip value.
package jsontext
