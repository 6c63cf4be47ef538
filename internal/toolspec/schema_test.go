package toolspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptionsAcceptsKnownNmapScanType(t *testing.T) {
	err := ValidateOptions(NewNmap(), Options{"scan_type": "quick", "timing": 4})
	assert.NoError(t, err)
}

func TestValidateOptionsRejectsUnknownNmapScanType(t *testing.T) {
	err := ValidateOptions(NewNmap(), Options{"scan_type": "not-a-real-preset"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestValidateOptionsRejectsOutOfRangeTiming(t *testing.T) {
	err := ValidateOptions(NewNmap(), Options{"timing": 9})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestValidateOptionsSkipsSpecsWithoutSchema(t *testing.T) {
	// Masscan declares no OptionSchema; any option map is accepted.
	err := ValidateOptions(NewMasscan(), Options{"anything": "goes"})
	assert.NoError(t, err)
}

func TestValidateOptionsRejectsNegativeFfufThreads(t *testing.T) {
	err := ValidateOptions(NewFfuf(), Options{"threads": -5})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}
