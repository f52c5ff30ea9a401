package rustgen

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/interval"
	"bounded-integer-generator/options"
	"bounded-integer-generator/spec"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// rustIndent is the indentation unit of emitted artifacts.
const rustIndent = "    "

// Config holds configuration for code generation.
type Config struct {
	// Flags selects the optional emission stages.
	Flags options.FlagEnum
	// OutputDir is the directory WriteFiles writes artifacts into.
	OutputDir string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Flags:     options.FlagAll,
		OutputDir: "./generated",
	}
}

// Generator generates Rust code from bounded-integer specifications.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Rust source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "nibble.rs").
	Filename string
	// Content is the Rust source code.
	Content []byte
}

// Generate produces the artifact for one specification. The specification is
// validated first; nothing is emitted on a validation failure.
func (g *Generator) Generate(sp *spec.Specification) (*GeneratedFile, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}

	w := emit.NewWriter(rustIndent)

	emitHeader(w, sp)
	emitItem(w, sp)
	emitImpl(w, sp)
	emitCmpTraits(w, sp)
	emitOpsTraits(w, sp)
	emitIterTraits(w, sp)
	emitFmtTraits(w, sp)
	emitToPrimitiveTraits(w, sp)

	if g.config.Flags.Has(options.FlagSerde) {
		emitSerde(w, sp)
	}

	if g.config.Flags.Has(options.FlagTests) {
		emitTests(w, sp)
	}

	return &GeneratedFile{
		Filename: fileName(sp.Identifier),
		Content:  w.Bytes(),
	}, nil
}

// GenerateAll produces one artifact per specification, in declaration order.
func (g *Generator) GenerateAll(specs []spec.Specification) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(specs))

	for i := range specs {
		file, err := g.Generate(&specs[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", specs[i].Identifier, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// WriteFiles writes all generated files to the configured output directory.
// It creates the directory if it doesn't exist.
func (g *Generator) WriteFiles(files []GeneratedFile) error {
	err := os.MkdirAll(g.config.OutputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(g.config.OutputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func emitHeader(w *emit.Writer, sp *spec.Specification) {
	w.WriteLine("// Code generated by bounded-integer-generator. DO NOT EDIT.")
	w.WriteLine("//")
	w.WriteLinef("// Bounded integer `%s` over `%s` in range [%s, %s].",
		sp.Identifier, sp.Primitive.Name(), sp.Bounds.Min, sp.Bounds.Max)
}

// fileName derives the artifact name, e.g. "NonZeroByte" -> "non_zero_byte.rs".
func fileName(identifier string) string {
	var sb strings.Builder

	for i, r := range identifier {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String() + ".rs"
}

// vis returns the emission prefix of the pass-through visibility.
func vis(sp *spec.Specification) string {
	if sp.Visibility == "" {
		return ""
	}

	return sp.Visibility + " "
}

// lit renders v in the primitive's width. The specification is validated
// before emission starts, so every value reaching here is representable.
func lit(sp *spec.Specification, v *big.Int) string {
	rendered, err := interval.Render(sp.Primitive, v)
	if err != nil {
		panic(err)
	}

	return rendered
}
