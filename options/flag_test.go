package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bounded-integer-generator/options"
)

func TestFlagEnum_Has(t *testing.T) {
	assert.True(t, options.FlagAll.Has(options.FlagSerde))
	assert.True(t, options.FlagAll.Has(options.FlagTests))
	assert.True(t, options.FlagAll.Has(options.FlagSerde|options.FlagTests))

	assert.False(t, options.FlagNone.Has(options.FlagSerde))
	assert.False(t, options.FlagNone.Has(options.FlagTests))

	noSerde := options.FlagAll &^ options.FlagSerde
	assert.False(t, noSerde.Has(options.FlagSerde))
	assert.True(t, noSerde.Has(options.FlagTests))

	// The empty set is a subset of every flag set.
	assert.True(t, options.FlagNone.Has(options.FlagNone))
	assert.True(t, options.FlagAll.Has(options.FlagNone))
}
