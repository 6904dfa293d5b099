package command

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suborbital/extkit/host"
	"github.com/suborbital/extkit/native"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	t.Setenv("EXTKIT_LOG_LEVEL", "warn")

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, InspectCmd(), "--manifest", "../../../manifest/testdata/shapes.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Counter::addAndGet")
	assert.Contains(t, out, "int $n")
	assert.Contains(t, out, "Drawable::draw")
	assert.Contains(t, out, "public abstract")
	assert.Contains(t, out, "counter_sum")
	assert.Contains(t, out, "[int $b]")
	assert.Contains(t, out, "array &$out")
}

func TestInspectBadManifest(t *testing.T) {
	_, err := run(t, InspectCmd(), "--manifest", "./missing.toml")
	assert.Error(t, err)
}

func TestCall(t *testing.T) {
	out, err := run(t, CallCmd(), "Counter", "addAndGet", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, CallCmd(), "Counter", "increment")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	out, err = run(t, CallCmd(), "Counter", "zero")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = run(t, CallCmd(), "Counter", "reset")
	assert.ErrorIs(t, err, host.ErrNotAccessible)

	out, err = run(t, CallCmd(), "--caller", "Counter", "Counter", "resets")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = run(t, CallCmd(), "Counter", "add", "five")
	assert.ErrorIs(t, err, native.ErrArgumentType)

	_, err = run(t, CallCmd(), "Countable", "value")
	assert.ErrorIs(t, err, native.ErrNotInstantiable)

	_, err = run(t, CallCmd(), "Counter", "missing")
	assert.ErrorIs(t, err, host.ErrUnknownMethod)
}

func TestFn(t *testing.T) {
	out, err := run(t, FnCmd(), "counter_sum", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, err = run(t, FnCmd(), "counter_version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0\n", out)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, native.Int(-3), parseValue("-3"))
	assert.Equal(t, native.Float(1.5), parseValue("1.5"))
	assert.Equal(t, native.Bool(true), parseValue("true"))
	assert.Equal(t, native.Null(), parseValue("null"))
	assert.Equal(t, native.String("hi"), parseValue("hi"))
}

func TestRelease(t *testing.T) {
	t.Setenv("EXTKIT_LOG_LEVEL", "warn")

	rt, done, err := setupRuntime(nil)
	require.NoError(t, err)

	defer done()

	h, err := rt.New("Counter")
	require.NoError(t, err)

	release(rt, h)
	assert.Equal(t, 0, rt.Objects())

	// a second release finds nothing to destroy and only logs
	assert.NotPanics(t, func() { release(rt, h) })
	assert.ErrorIs(t, rt.Destroy(h), host.ErrUnknownObject)
}
