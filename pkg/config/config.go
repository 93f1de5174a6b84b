package config

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agilira/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/quidome/epoch-rewrite-go/pkg/render"
)

const (
	ErrCodeNotFound = "EPOCH_CONFIG_NOT_FOUND"
	ErrCodeInvalid  = "EPOCH_CONFIG_INVALID"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "EPOCH_REWRITE_CONFIG"

// Config is the snapshot of run options. It is built once at startup and
// only read afterwards.
type Config struct {
	Format    string `yaml:"format"`
	Local     bool   `yaml:"local"`
	Stringify bool   `yaml:"stringify"`
}

// Overrides carries command line values together with whether each flag was
// given explicitly, so --local=false can override local: true from a file.
type Overrides struct {
	Format    string
	FormatSet bool

	Local    bool
	LocalSet bool

	Stringify    bool
	StringifySet bool
}

func (c Config) RenderOptions() render.Options {
	return render.Options{
		Format:    c.Format,
		Local:     c.Local,
		Stringify: c.Stringify,
	}
}

// Load reads a YAML defaults file. Unknown keys and multiple documents are rejected.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrap(err, ErrCodeNotFound, fmt.Sprintf("config file %q not found", path))
		}
		return Config{}, errors.Wrap(err, ErrCodeInvalid, fmt.Sprintf("read config file %q", path))
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			// Empty file: all defaults.
			return Config{}, nil
		}
		return Config{}, errors.Wrap(err, ErrCodeInvalid, "invalid yaml")
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return Config{}, errors.New(ErrCodeInvalid, "invalid yaml: multiple documents are not supported")
		}
		return Config{}, errors.Wrap(err, ErrCodeInvalid, "invalid yaml")
	}

	return cfg, nil
}

// Resolve returns the effective configuration.
//
// The file is taken from path, or from $EPOCH_REWRITE_CONFIG when path is
// empty. Without either, only the overrides apply. Explicitly set overrides
// always win over file values.
func Resolve(path string, o Overrides) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv(EnvPath))
	}

	var cfg Config
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if o.FormatSet {
		cfg.Format = o.Format
	}
	if o.LocalSet {
		cfg.Local = o.Local
	}
	if o.StringifySet {
		cfg.Stringify = o.Stringify
	}
	return cfg, nil
}

// Code extracts the error code from err, or "" when it carries none.
func Code(err error) string {
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return string(coder.ErrorCode())
	}
	return ""
}
