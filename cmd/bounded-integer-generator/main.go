// Package main provides the CLI entrypoint for bounded-integer-generator.
//
// bounded-integer-generator is a declarative codegen tool that:
//   - Reads YAML declarations of bounded integer types (name, primitive,
//     inclusive range, layout)
//   - Validates each declaration against the primitive's domain
//   - Emits one self-contained Rust source artifact per declaration, with
//     checked and saturating arithmetic, operator traits, serialization,
//     and an embedded test module
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"bounded-integer-generator/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	specFlag := &cli.StringFlag{
		Name:        "spec",
		Usage:       "path to the YAML declaration file",
		Value:       "bounded.yaml",
		Destination: &ctrl.Flags.Spec,
	}
	outFlag := &cli.StringFlag{
		Name:        "out",
		Usage:       "directory to write generated artifacts into",
		Value:       "./generated",
		Destination: &ctrl.Flags.Out,
	}
	serdeFlag := &cli.StringFlag{
		Name:        "serde",
		Usage:       "default path to the serde crate for declarations without one",
		Destination: &ctrl.Flags.Serde,
	}
	noSerdeFlag := &cli.BoolFlag{
		Name:        "no-serde",
		Usage:       "skip the serialization impls",
		Destination: &ctrl.Flags.NoSerde,
	}
	noTestsFlag := &cli.BoolFlag{
		Name:        "no-tests",
		Usage:       "skip the embedded test module",
		Destination: &ctrl.Flags.NoTests,
	}

	app := &cli.Command{
		Name:    "bounded-integer-generator",
		Usage:   "Generate Rust bounded integer types from YAML declarations.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Log = log.Logger

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "gen",
				Usage: "Generate artifacts from the declaration file",
				Flags: []cli.Flag{specFlag, outFlag, serdeFlag, noSerdeFlag, noTestsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Gen(ctx)
				},
			},
			{
				Name:  "check",
				Usage: "Validate the declaration file without writing anything",
				Flags: []cli.Flag{specFlag, serdeFlag, noSerdeFlag, noTestsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Check(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate artifacts whenever the declaration file changes",
				Flags: []cli.Flag{specFlag, outFlag, serdeFlag, noSerdeFlag, noTestsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run bounded-integer-generator")
	}
}
