package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suborbital/extkit/native"
)

func entryFor(class, name string) *native.FunctionEntry {
	entry := &native.FunctionEntry{}

	if class == "" {
		native.NewVoidFunction(name, func() {}).Initialize(entry, "")
	} else {
		native.NewAbstractMethod(name, 0).Initialize(entry, class)
	}

	return entry
}

func TestFunctionTable(t *testing.T) {
	table := NewFunctionTable()

	for _, e := range []*native.FunctionEntry{
		entryFor("Counter", "value"),
		entryFor("Counter", "add"),
		entryFor("CounterSet", "first"),
		entryFor("", "counter_sum"),
		entryFor("", "abs"),
	} {
		require.NoError(t, table.Add(e))
	}

	assert.Equal(t, 5, table.Len())

	err := table.Add(entryFor("Counter", "add"))
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	assert.Error(t, table.Add(&native.FunctionEntry{Name: "bare"}))

	entry, ok := table.Lookup("Counter", "add")
	require.True(t, ok)
	assert.Equal(t, "Counter::add", entry.Key())

	_, ok = table.Lookup("Counter", "missing")
	assert.False(t, ok)

	fn, ok := table.Lookup("", "abs")
	require.True(t, ok)
	assert.Equal(t, "abs", fn.Name)

	methods := table.Class("Counter")
	require.Len(t, methods, 2)
	assert.Equal(t, "add", methods[0].Name)
	assert.Equal(t, "value", methods[1].Name)

	assert.Len(t, table.Class("CounterSet"), 1)
	assert.Empty(t, table.Class("Nope"))

	functions := table.Functions()
	require.Len(t, functions, 2)
	assert.Equal(t, "abs", functions[0].Name)
	assert.Equal(t, "counter_sum", functions[1].Name)

	keys := []string{}
	for _, e := range table.Entries() {
		keys = append(keys, e.Key())
	}

	assert.Equal(t, []string{"Counter::add", "Counter::value", "CounterSet::first", "abs", "counter_sum"}, keys)
}

func TestFunctionTableAddAll(t *testing.T) {
	table := NewFunctionTable()
	require.NoError(t, table.Add(entryFor("", "f")))

	tests := []struct {
		name    string
		entries []*native.FunctionEntry
	}{
		{"clashes with the table", []*native.FunctionEntry{entryFor("B", "get"), entryFor("", "f")}},
		{"repeated among entries", []*native.FunctionEntry{entryFor("B", "get"), entryFor("B", "get")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, table.AddAll(tt.entries...), ErrDuplicateEntry)
			assert.Equal(t, 1, table.Len())

			_, ok := table.Lookup("B", "get")
			assert.False(t, ok)
		})
	}

	assert.Error(t, table.AddAll(entryFor("B", "get"), &native.FunctionEntry{Name: "bare"}))
	assert.Equal(t, 1, table.Len())

	require.NoError(t, table.AddAll(entryFor("B", "get"), entryFor("", "g")))
	assert.Equal(t, 3, table.Len())
}
