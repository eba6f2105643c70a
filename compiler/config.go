package compiler

import (
	"bytes"
	"go/token"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"tlog.app/go/errors"
)

type (
	// Config describes one generated instruction set.
	Config struct {
		Package  string `toml:"package"`
		IRImport string `toml:"ir_import"`

		Formats   string `toml:"formats"`
		Operators string `toml:"operators"`

		FormatsOut   string `toml:"formats_out"`
		OperatorsOut string `toml:"operators_out"`

		// Dir is where relative paths are resolved from.
		// It's the config file directory.
		Dir string `toml:"-"`
	}
)

const DefaultIRImport = "github.com/slowlang/irgen/compiler/ir"

// LoadConfig reads the config file.
func LoadConfig(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg, err := ParseConfig(filepath.Dir(name), data)
	if err != nil {
		return nil, errors.Wrap(err, "%v", name)
	}

	return cfg, nil
}

// ParseConfig decodes the config and fills in defaults.
// Unknown keys are errors.
func ParseConfig(dir string, data []byte) (*Config, error) {
	cfg := &Config{
		IRImport:     DefaultIRImport,
		FormatsOut:   "formats_gen.go",
		OperatorsOut: "operators_gen.go",
		Dir:          dir,
	}

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()

	err := d.Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	if !token.IsIdentifier(cfg.Package) {
		return nil, errors.New("bad package name: %q", cfg.Package)
	}

	if cfg.Formats == "" || cfg.Operators == "" {
		return nil, errors.New("formats and operators tables are required")
	}

	return cfg, nil
}

// Path resolves the config relative name.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.Dir, name)
}
