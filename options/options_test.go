package options

import (
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		configs map[string]string
		want    Options
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "options gets assembled with everything set",
			configs: map[string]string{
				"EXTKIT_LOG_LEVEL":                 "debug",
				"EXTKIT_API_VERSION":               "1.4.2",
				"EXTKIT_MANIFEST":                  "./shapes.yaml",
				"EXTKIT_TRACER_TYPE":               "collector",
				"EXTKIT_TRACER_SERVICENAME":        "service 543",
				"EXTKIT_TRACER_PROBABILITY":        "0.25",
				"EXTKIT_TRACER_COLLECTOR_ENDPOINT": "localhost:4317",
			},
			want: Options{
				LogLevel:   "debug",
				APIVersion: "1.4.2",
				Manifest:   "./shapes.yaml",
				TracerConfig: TracerConfig{
					TracerType:  "collector",
					ServiceName: "service 543",
					Probability: 0.25,
					Collector: &CollectorConfig{
						Endpoint: "localhost:4317",
					},
				},
			},
			wantErr: assert.NoError,
		},
		{
			name:    "options get assembled with defaults",
			configs: map[string]string{},
			want: Options{
				LogLevel:   "info",
				APIVersion: "1.0.0",
				TracerConfig: TracerConfig{
					TracerType:  "none",
					ServiceName: "extkit",
					Probability: 0.5,
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "api version is normalized",
			configs: map[string]string{
				"EXTKIT_API_VERSION": "2",
			},
			want: Options{
				LogLevel:   "info",
				APIVersion: "2.0.0",
				TracerConfig: TracerConfig{
					TracerType:  "none",
					ServiceName: "extkit",
					Probability: 0.5,
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "errors out on not-a-version",
			configs: map[string]string{
				"EXTKIT_API_VERSION": "latest",
			},
			want:    Options{},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(envconfig.MapLookuper(tt.configs))

			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, Options{LogLevel: "debug"}.Logger())
	assert.NotNil(t, Options{}.Logger())
}
