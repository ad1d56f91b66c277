// Package schema produces a human-readable JSON Schema description of the
// packer choices a compression pass made, adapted from a YAML
// schema-inference walk: instead of inferring a schema from untyped YAML,
// it reads back the packer shape a
// [go.jacobcolvin.com/jton] descriptor tree already committed to, and
// records that choice in each node's Description field.
package schema
