package command

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/suborbital/extkit/ext/counter"
	"github.com/suborbital/extkit/host"
	"github.com/suborbital/extkit/manifest"
	"github.com/suborbital/extkit/native"
	"github.com/suborbital/extkit/options"
	"github.com/suborbital/extkit/tracing"
)

// setupRuntime resolves options from the environment and returns a runtime with the built-in
// counter extension loaded, plus the manifest named by --manifest or EXTKIT_MANIFEST if any.
// The returned func shuts down tracing.
func setupRuntime(flags *pflag.FlagSet) (*host.Runtime, func(), error) {
	opts, err := options.Resolve(nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to options.Resolve")
	}

	logger := opts.Logger()

	tp, err := tracing.SetupTracing(opts.TracerConfig, logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to SetupTracing")
	}

	done := func() {
		if err := tp.Shutdown(cmdContext()); err != nil {
			logger.Error(errors.Wrap(err, "failed to Shutdown tracer provider"))
		}
	}

	rt := host.NewRuntime(
		host.UseLogger(logger),
		host.UseTracer(tp.Tracer("github.com/suborbital/extkit")),
		host.APIVersion(string(opts.APIVersion)),
	)

	ext, err := counter.Extension()
	if err != nil {
		done()
		return nil, nil, errors.Wrap(err, "failed to counter.Extension")
	}

	if err := rt.Load(ext); err != nil {
		done()
		return nil, nil, errors.Wrap(err, "failed to Load counter")
	}

	path := opts.Manifest
	if flags != nil {
		if p, _ := flags.GetString(manifestFlag); p != "" {
			path = p
		}
	}

	if path != "" {
		if err := loadManifest(rt, path); err != nil {
			done()
			return nil, nil, err
		}
	}

	return rt, done, nil
}

func loadManifest(rt *host.Runtime, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return errors.Wrap(err, "failed to manifest.Load")
	}

	ext, err := m.Extension()
	if err != nil {
		return errors.Wrap(err, "failed to Extension")
	}

	if err := rt.Load(ext); err != nil {
		return errors.Wrapf(err, "failed to Load %s", m.Name)
	}

	return nil
}

// parseValues converts command line words into call-site values
func parseValues(args []string) []native.Value {
	vals := make([]native.Value, len(args))

	for i, a := range args {
		vals[i] = parseValue(a)
	}

	return vals
}

func parseValue(s string) native.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return native.Int(i)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return native.Float(f)
	}

	switch s {
	case "true":
		return native.Bool(true)
	case "false":
		return native.Bool(false)
	case "null":
		return native.Null()
	}

	return native.String(s)
}
