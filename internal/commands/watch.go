package commands

import (
	"context"
	"path/filepath"

	"bounded-integer-generator/internal/watch"
)

// Watch regenerates the artifacts whenever the declaration file's directory
// changes. It blocks until the context is cancelled.
func (c *Controller) Watch(ctx context.Context) error {
	// Generate once up front so the output is current before the first edit.
	if err := c.Gen(ctx); err != nil {
		c.Log.Error().Err(err).Msg("initial generation failed")
	}

	onChange := func(paths []string) {
		c.Log.Info().Strs("changed", paths).Msg("declarations changed, regenerating")

		if err := c.Gen(ctx); err != nil {
			// Keep watching; the next save may fix the declaration.
			c.Log.Error().Err(err).Msg("generation failed")
		}
	}

	w, err := watch.New([]string{".yaml", ".yml"}, onChange, c.Log)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.AddDirectory(filepath.Dir(c.Flags.Spec)); err != nil {
		return err
	}

	c.Log.Info().Str("dir", filepath.Dir(c.Flags.Spec)).Msg("watching for declaration changes")

	return w.Run(ctx)
}
