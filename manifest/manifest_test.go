package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suborbital/extkit/native"
)

func TestLoad(t *testing.T) {
	for _, path := range []string{"./testdata/shapes.yaml", "./testdata/shapes.toml"} {
		t.Run(path, func(t *testing.T) {
			m, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "shapes", m.Name)
			assert.Equal(t, "0.4.0", m.Version)
			require.Len(t, m.Interfaces, 2)
			require.Len(t, m.Interfaces[0].Methods, 2)
			require.Len(t, m.Interfaces[1].Methods[0].Args, 2)
			assert.True(t, m.Interfaces[1].Methods[0].Args[1].ByRef)

			ext, err := m.Extension()
			require.NoError(t, err)

			assert.NoError(t, ext.Compatible("1.0.0"))

			classes := ext.Classes()
			require.Len(t, classes, 2)

			drawable := classes[0]
			assert.True(t, drawable.IsInterface())

			draw, ok := drawable.Lookup("draw")
			require.True(t, ok)
			assert.Equal(t, native.ShapeAbstract, draw.Shape())
			assert.Equal(t, native.Public|native.Abstract, draw.Flags())
			assert.Equal(t, "Canvas", draw.Arguments()[0].ClassName)

			bounds, ok := drawable.Lookup("bounds")
			require.True(t, ok)

			entry := &native.FunctionEntry{}
			bounds.Initialize(entry, drawable.Name())
			assert.Equal(t, native.Final|native.Abstract|native.Public, entry.Flags)

			scale, ok := classes[1].Lookup("scale")
			require.True(t, ok)
			assert.Equal(t, native.Protected|native.Static|native.Abstract, scale.Flags())
			assert.Equal(t, native.TypeFloat, scale.Arguments()[0].Type)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing name", "version: 1.0.0"},
		{"missing version", "name: x"},
		{"duplicate interface", "name: x\nversion: 1.0.0\ninterfaces:\n  - name: A\n  - name: A"},
		{"nameless method", "name: x\nversion: 1.0.0\ninterfaces:\n  - name: A\n    methods:\n      - flags: [public]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("name: [unterminated"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("name = "), FormatTOML)
	assert.Error(t, err)

	_, err = Parse(nil, Format("json"))
	assert.Error(t, err)
}

func TestExtensionErrors(t *testing.T) {
	m, err := Parse([]byte("name: x\nversion: 1.0.0\ninterfaces:\n  - name: A\n    methods:\n      - name: f\n        flags: [virtual]"), FormatYAML)
	require.NoError(t, err)

	_, err = m.Extension()
	assert.ErrorIs(t, err, native.ErrUnknownFlag)

	m, err = Parse([]byte("name: x\nversion: 1.0.0\ninterfaces:\n  - name: A\n    methods:\n      - name: f\n        args:\n          - name: a\n            type: decimal"), FormatYAML)
	require.NoError(t, err)

	_, err = m.Extension()
	assert.ErrorIs(t, err, native.ErrArgumentType)

	m, err = Parse([]byte("name: x\nversion: 1.0.0\nrequires: nonsense"), FormatYAML)
	require.NoError(t, err)

	_, err = m.Extension()
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatForPath("a/b.json")
	assert.Error(t, err)

	_, err = Load("./testdata/missing.yaml")
	assert.Error(t, err)
}
