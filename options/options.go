package options

import (
	"context"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"

	"github.com/suborbital/vektor/vlog"
)

const envPrefix = "EXTKIT"

var _ envconfig.Decoder = (*APIVersion)(nil) // interface check

// Options holds the environment-driven configuration of an extkit host
type Options struct {
	LogLevel   string     `env:"EXTKIT_LOG_LEVEL,default=info"`
	APIVersion APIVersion `env:"EXTKIT_API_VERSION,default=1.0.0"`
	Manifest   string     `env:"EXTKIT_MANIFEST"`

	TracerConfig TracerConfig `env:",prefix=EXTKIT_TRACER_"`
}

// TracerConfig holds values specific to setting up the tracer. All configuration options
// have a prefix of EXTKIT_TRACER_ specified in the parent Options struct.
type TracerConfig struct {
	TracerType  string           `env:"TYPE,default=none"`
	ServiceName string           `env:"SERVICENAME,default=extkit"`
	Probability float64          `env:"PROBABILITY,default=0.5"`
	Collector   *CollectorConfig `env:",prefix=COLLECTOR_,noinit"`
}

// CollectorConfig holds config values specific to the collector tracer exporter running locally / within your cluster.
// All the configuration values here have a prefix of EXTKIT_TRACER_COLLECTOR_.
type CollectorConfig struct {
	Endpoint string `env:"ENDPOINT"`
}

// APIVersion is the host API version that extension constraints are checked against
type APIVersion string

// EnvDecode implements the envconfig.Decoder interface, refusing anything that is not a version.
func (a *APIVersion) EnvDecode(in string) error {
	v, err := version.NewVersion(in)
	if err != nil {
		return errors.Wrap(err, "failed to NewVersion")
	}

	*a = APIVersion(v.String())

	return nil
}

// Resolve will use the passed in envconfig.Lookuper to figure out the options. If nil is
// passed in, it will use the OsLookuper implementation.
func Resolve(lookuper envconfig.Lookuper) (Options, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var opts Options

	if err := envconfig.ProcessWith(context.Background(), &opts, lookuper); err != nil {
		return Options{}, errors.Wrap(err, "extkit options parsing")
	}

	return opts, nil
}

// Logger builds the logger described by the options
func (o Options) Logger() *vlog.Logger {
	level := vlog.LogLevelInfo

	switch strings.ToLower(o.LogLevel) {
	case "debug":
		level = vlog.LogLevelDebug
	case "warn":
		level = vlog.LogLevelWarn
	}

	return vlog.Default(
		vlog.EnvPrefix(envPrefix),
		vlog.Level(level),
	)
}
