// Package config exposes the codec's tunable options as a CLI-flag- and
// YAML-loadable [Config], in the same Flags/Config split
// go.jacobcolvin.com/jton/log and go.jacobcolvin.com/jton/profile use:
// a [Flags] struct carrying flag *names* (so embedders can rename them to
// avoid collisions) and a [Config] struct carrying flag *values*.
package config
