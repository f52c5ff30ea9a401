package spec

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"bounded-integer-generator/primitive"
)

// Decl is the YAML form of one bounded-integer declaration.
//
// Example:
//
//	declarations:
//	  - name: Nibble
//	    repr: i8
//	    kind: enum
//	    min: "-8"
//	    max: "7"
//	    visibility: pub
type Decl struct {
	// Name of the type to produce.
	Name string `yaml:"name"`
	// Repr is the underlying primitive, e.g. "i8" or "u128".
	Repr string `yaml:"repr"`
	// Kind selects the layout: "enum" (one named constant per value) or
	// "struct" (opaque wrapper around the primitive).
	Kind string `yaml:"kind"`
	// Min and Max are inclusive decimal bounds. Strings, so 128-bit wide
	// bounds survive the YAML round trip.
	Min string `yaml:"min"`
	Max string `yaml:"max"`
	// Visibility is passed through to the emitted type, e.g. "pub".
	Visibility string `yaml:"visibility,omitempty"`
	// Attributes are attribute lines passed through above the emitted type.
	Attributes []string `yaml:"attributes,omitempty"`
	// SerdePath overrides the path used to reach the serde capability.
	SerdePath string `yaml:"serde_path,omitempty"`
}

// File is a declaration file holding any number of declarations.
type File struct {
	Declarations []Decl `yaml:"declarations"`
}

// Load reads a YAML declaration file and resolves every declaration into a
// validated Specification.
func Load(path string) ([]Specification, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading declaration file: %w", err)
	}

	specs, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return specs, nil
}

// Parse resolves raw YAML declaration bytes into validated Specifications.
func Parse(raw []byte) ([]Specification, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding declaration file: %w", err)
	}

	specs := make([]Specification, 0, len(file.Declarations))

	for _, decl := range file.Declarations {
		sp, err := decl.Resolve()
		if err != nil {
			return nil, err
		}

		specs = append(specs, *sp)
	}

	return specs, nil
}

// Resolve turns the YAML declaration into a validated Specification.
func (d Decl) Resolve() (*Specification, error) {
	sp := &Specification{
		Identifier: d.Name,
		Visibility: d.Visibility,
		Attributes: d.Attributes,
		Primitive:  primitiveFromDecl(d.Repr),
		SerdePath:  d.SerdePath,
	}

	switch d.Kind {
	case "enum":
		sp.Representation = RepresentationEnumerated
	case "struct":
		sp.Representation = RepresentationWrapped
	default:
		return nil, fmt.Errorf("%w: %q on %s", ErrUnknownRepresentation, d.Kind, d.Name)
	}

	min, err := parseBound(d.Min, "min", d.Name)
	if err != nil {
		return nil, err
	}

	max, err := parseBound(d.Max, "max", d.Name)
	if err != nil {
		return nil, err
	}

	sp.Bounds.Min, sp.Bounds.Max = min, max

	if err := sp.Validate(); err != nil {
		return nil, err
	}

	return sp, nil
}

func primitiveFromDecl(name string) primitive.KindEnum {
	return primitive.FromName(strings.TrimSpace(name))
}

func parseBound(lit, which, name string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(lit), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q on %s", ErrBadLiteral, which, lit, name)
	}

	return v, nil
}
