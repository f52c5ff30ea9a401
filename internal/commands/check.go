package commands

import (
	"context"

	"bounded-integer-generator/internal/rustgen"
)

// Check validates the declaration file and dry-runs generation without
// writing anything.
func (c *Controller) Check(ctx context.Context) error {
	specs, err := c.load()
	if err != nil {
		return err
	}

	gen := rustgen.NewGenerator(rustgen.Config{Flags: c.Flags.Emission()})

	if _, err := gen.GenerateAll(specs); err != nil {
		return err
	}

	c.Log.Info().Int("declarations", len(specs)).Msg("declaration file is valid")

	return nil
}
