// Package commands implements the CLI subcommands.
package commands

import (
	"github.com/rs/zerolog"

	"bounded-integer-generator/options"
	"bounded-integer-generator/spec"
)

// Flags carries the parsed command-line options shared by the subcommands.
type Flags struct {
	// Spec is the path to the YAML declaration file.
	Spec string
	// Out is the directory artifacts are written into.
	Out string
	// Serde is the default capability path for declarations that do not set
	// their own serde_path.
	Serde string
	// NoSerde disables the serialization impls.
	NoSerde bool
	// NoTests disables the embedded test module.
	NoTests bool
}

// Emission resolves the flags into the generator's emission stages.
func (f *Flags) Emission() options.FlagEnum {
	flags := options.FlagAll
	if f.NoSerde {
		flags &^= options.FlagSerde
	}
	if f.NoTests {
		flags &^= options.FlagTests
	}

	return flags
}

// Controller dispatches the subcommands.
type Controller struct {
	Flags *Flags
	Log   zerolog.Logger
}

// load reads the declaration file and applies the flag-level serde default to
// declarations that did not choose their own path.
func (c *Controller) load() ([]spec.Specification, error) {
	specs, err := spec.Load(c.Flags.Spec)
	if err != nil {
		return nil, err
	}

	if c.Flags.Serde != "" {
		for i := range specs {
			if specs[i].SerdePath == "" {
				specs[i].SerdePath = c.Flags.Serde
			}
		}
	}

	return specs, nil
}
