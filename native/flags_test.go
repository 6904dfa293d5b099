package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFlags(t *testing.T) {
	tests := []struct {
		name string
		in   Flags
		want Flags
	}{
		{"zero becomes public", 0, Public},
		{"final only", Final, Final | Public},
		{"abstract only", Abstract, Abstract | Public},
		{"static final abstract", Static | Final | Abstract, Static | Final | Abstract | Public},
		{"public untouched", Public, Public},
		{"protected untouched", Protected | Final, Protected | Final},
		{"private untouched", Private | Static, Private | Static},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFlags(tt.in)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, got, NormalizeFlags(got), "normalizing twice must be a no-op")
			assert.Equal(t, tt.in&^Visibility, got&^Visibility, "modifier bits must pass through")
		})
	}
}

func TestNormalizeFlagsExhaustive(t *testing.T) {
	modifiers := []Flags{0, Static, Abstract, Final}

	for _, a := range modifiers {
		for _, b := range modifiers {
			raw := a | b

			got := NormalizeFlags(raw)
			assert.Equal(t, raw|Public, got)

			for _, vis := range []Flags{Public, Protected, Private} {
				assert.Equal(t, raw|vis, NormalizeFlags(raw|vis))
			}
		}
	}
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "", Flags(0).String())
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "protected static final", (Final | Static | Protected).String())
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("Private", " final ")
	require.NoError(t, err)
	assert.Equal(t, Private|Final, f)
	assert.True(t, f.Has(Final))
	assert.Equal(t, Private, f.Visibility())

	_, err = ParseFlags("public", "virtual")
	assert.ErrorIs(t, err, ErrUnknownFlag)
}
