// Package manifest declares interface classes for an extension in a YAML or TOML file.
// Interfaces carry only declaration-only methods, so a manifest never needs native code.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/suborbital/extkit/native"
)

// Format is a manifest encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrInvalid = errors.New("invalid manifest")

// Manifest describes an extension made of interface declarations
type Manifest struct {
	Name       string      `yaml:"name" toml:"name"`
	Version    string      `yaml:"version" toml:"version"`
	Requires   string      `yaml:"requires" toml:"requires"`
	Interfaces []Interface `yaml:"interfaces" toml:"interfaces"`
}

// Interface is one declared interface class
type Interface struct {
	Name    string   `yaml:"name" toml:"name"`
	Methods []Method `yaml:"methods" toml:"methods"`
}

// Method is a declaration-only method
type Method struct {
	Name  string     `yaml:"name" toml:"name"`
	Flags []string   `yaml:"flags" toml:"flags"`
	Args  []Argument `yaml:"args" toml:"args"`
}

// Argument is one declared method parameter
type Argument struct {
	Name     string `yaml:"name" toml:"name"`
	Type     string `yaml:"type" toml:"type"`
	Class    string `yaml:"class" toml:"class"`
	Required bool   `yaml:"required" toml:"required"`
	ByRef    bool   `yaml:"byref" toml:"byref"`
	Nullable bool   `yaml:"nullable" toml:"nullable"`
}

// FormatForPath picks a format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", errors.Errorf("unrecognised manifest extension for %s", path)
}

// Load reads and parses the manifest at path
func Load(path string) (*Manifest, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ReadFile")
	}

	return Parse(data, format)
}

// Parse decodes and validates manifest data
func Parse(data []byte, format Format) (*Manifest, error) {
	m := &Manifest{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, errors.Wrap(err, "failed to yaml.Unmarshal")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, m); err != nil {
			return nil, errors.Wrap(err, "failed to toml.Unmarshal")
		}
	default:
		return nil, errors.Errorf("unknown manifest format %q", format)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the manifest is complete enough to build an extension from
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.Wrap(ErrInvalid, "name is required")
	}

	if m.Version == "" {
		return errors.Wrap(ErrInvalid, "version is required")
	}

	seen := map[string]bool{}

	for _, iface := range m.Interfaces {
		if iface.Name == "" {
			return errors.Wrap(ErrInvalid, "interface name is required")
		}

		if seen[iface.Name] {
			return errors.Wrapf(ErrInvalid, "interface %s is declared twice", iface.Name)
		}

		seen[iface.Name] = true

		for _, method := range iface.Methods {
			if method.Name == "" {
				return errors.Wrapf(ErrInvalid, "interface %s has a method without a name", iface.Name)
			}
		}
	}

	return nil
}

// Extension builds a native extension holding the declared interfaces
func (m *Manifest) Extension() (*native.Extension, error) {
	ext := native.NewExtension(m.Name, m.Version)

	if m.Requires != "" {
		if err := ext.Requires(m.Requires); err != nil {
			return nil, errors.Wrap(err, "failed to Requires")
		}
	}

	for _, iface := range m.Interfaces {
		class := native.NewInterface(iface.Name)

		for _, decl := range iface.Methods {
			method, err := decl.method()
			if err != nil {
				return nil, errors.Wrapf(err, "%s", native.EntryKey(iface.Name, decl.Name))
			}

			if err := class.Add(method); err != nil {
				return nil, errors.Wrap(err, "failed to Add")
			}
		}

		if err := ext.Add(class); err != nil {
			return nil, errors.Wrap(err, "failed to Add")
		}
	}

	return ext, nil
}

func (d Method) method() (*native.Method, error) {
	flags, err := native.ParseFlags(d.Flags...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ParseFlags")
	}

	args := make([]native.Argument, len(d.Args))

	for i, a := range d.Args {
		typ, err := native.ParseType(a.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %s", a.Name)
		}

		args[i] = native.Argument{
			Name:        a.Name,
			Type:        typ,
			ClassName:   a.Class,
			Required:    a.Required,
			ByReference: a.ByRef,
			Nullable:    a.Nullable,
		}
	}

	return native.NewAbstractMethod(d.Name, flags, args...), nil
}
