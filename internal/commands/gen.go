package commands

import (
	"context"

	"bounded-integer-generator/internal/rustgen"
)

// Gen generates one artifact per declaration and writes them to the output
// directory.
func (c *Controller) Gen(ctx context.Context) error {
	specs, err := c.load()
	if err != nil {
		return err
	}

	gen := rustgen.NewGenerator(rustgen.Config{
		Flags:     c.Flags.Emission(),
		OutputDir: c.Flags.Out,
	})

	files, err := gen.GenerateAll(specs)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, file := range files {
		c.Log.Info().Str("file", file.Filename).Int("bytes", len(file.Content)).Msg("generated")
	}

	return nil
}
