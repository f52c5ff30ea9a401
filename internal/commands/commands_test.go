package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounded-integer-generator/options"
)

const declFile = `
declarations:
  - name: Nibble
    repr: i8
    kind: enum
    min: "-8"
    max: "7"
    visibility: pub
  - name: Percent
    repr: u8
    kind: struct
    min: "0"
    max: "100"
`

func newController(t *testing.T, decl string) (*Controller, string) {
	t.Helper()

	dir := t.TempDir()
	specPath := filepath.Join(dir, "bounded.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(decl), 0o644))

	outDir := filepath.Join(dir, "generated")

	return &Controller{
		Flags: &Flags{Spec: specPath, Out: outDir},
		Log:   zerolog.Nop(),
	}, outDir
}

func TestController_Gen(t *testing.T) {
	ctrl, outDir := newController(t, declFile)

	require.NoError(t, ctrl.Gen(context.Background()))

	nibble, err := os.ReadFile(filepath.Join(outDir, "nibble.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(nibble), "pub enum Nibble {")

	percent, err := os.ReadFile(filepath.Join(outDir, "percent.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(percent), "struct Percent(u8);")
	assert.Contains(t, string(percent), "impl serde::Serialize for Percent {")
}

func TestController_Gen_SerdeDefault(t *testing.T) {
	ctrl, outDir := newController(t, declFile)
	ctrl.Flags.Serde = "my_reexports::serde"

	require.NoError(t, ctrl.Gen(context.Background()))

	percent, err := os.ReadFile(filepath.Join(outDir, "percent.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(percent), "impl my_reexports::serde::Serialize for Percent {")
}

func TestController_Gen_NoSerde(t *testing.T) {
	ctrl, outDir := newController(t, declFile)
	ctrl.Flags.NoSerde = true

	require.NoError(t, ctrl.Gen(context.Background()))

	percent, err := os.ReadFile(filepath.Join(outDir, "percent.rs"))
	require.NoError(t, err)
	assert.NotContains(t, string(percent), "serde")
}

func TestController_Gen_InvalidDeclaration(t *testing.T) {
	ctrl, outDir := newController(t, `
declarations:
  - name: Broken
    repr: i8
    kind: enum
    min: "7"
    max: "-8"
`)

	assert.Error(t, ctrl.Gen(context.Background()))

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err), "nothing should be written for an invalid declaration")
}

func TestController_Check(t *testing.T) {
	ctrl, outDir := newController(t, declFile)

	require.NoError(t, ctrl.Check(context.Background()))

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err), "check must not write artifacts")
}

func TestFlags_Emission(t *testing.T) {
	f := &Flags{}
	assert.Equal(t, options.FlagAll, f.Emission())

	f = &Flags{NoSerde: true}
	assert.False(t, f.Emission().Has(options.FlagSerde))
	assert.True(t, f.Emission().Has(options.FlagTests))

	f = &Flags{NoSerde: true, NoTests: true}
	assert.Equal(t, options.FlagNone, f.Emission())
}
