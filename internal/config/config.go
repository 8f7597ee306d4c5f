package config

import (
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"voynich/internal/cipher"
	"voynich/internal/dictionary"
	"voynich/internal/importer/source"
)

// Config holds every setting of an analysis run.
type Config struct {
	Source     SourceConfig     `yaml:"source"`
	Cipher     CipherConfig     `yaml:"cipher"`
	Dictionary dictionary.Table `yaml:"dictionary"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SourceConfig locates the ciphertext sample.
type SourceConfig struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"` // utf8, cp437, cp850, iso-8859-1
}

// CipherConfig configures the substitution decryptor. Keys and values are
// single characters.
type CipherConfig struct {
	Map map[string]string `yaml:"map"`
}

// ReportConfig configures the reporting sink.
type ReportConfig struct {
	TopWords int    `yaml:"top_words"`
	Annotate bool   `yaml:"annotate"`
	Format   string `yaml:"format"` // text, table, json
}

// Formats lists the accepted report formats.
var Formats = []string{"text", "table", "json"}

// Default returns the settings of the manuscript study.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Path:     "capture/manuscript.txt",
			Encoding: "utf8",
		},
		Cipher: CipherConfig{
			Map: map[string]string{
				"o": "a",
				"e": "e",
				"c": "t",
				"h": "o",
				"y": "n",
				"p": "r",
				".": " ",
			},
		},
		Dictionary: dictionary.Default(),
		Report: ReportConfig{
			TopWords: 10,
			Format:   "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. Sections absent from the file
// keep their default values; a dictionary or cipher map present in the file
// replaces the default one.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var overlay struct {
		Cipher     *CipherConfig     `yaml:"cipher"`
		Dictionary *dictionary.Table `yaml:"dictionary"`
	}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if overlay.Cipher != nil {
		cfg.Cipher.Map = nil
	}
	if overlay.Dictionary != nil {
		cfg.Dictionary = nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Source.Encoding != "" && !slices.Contains(source.Encodings, c.Source.Encoding) {
		return fmt.Errorf("unsupported encoding: %s", c.Source.Encoding)
	}
	if _, err := c.SubstitutionMap(); err != nil {
		return err
	}
	if err := c.Dictionary.Validate(); err != nil {
		return err
	}
	if c.Report.TopWords < 0 {
		return fmt.Errorf("top_words must not be negative: %d", c.Report.TopWords)
	}
	if c.Report.Format != "" && !slices.Contains(Formats, c.Report.Format) {
		return fmt.Errorf("unsupported report format: %s", c.Report.Format)
	}
	return c.Logging.Validate()
}

// SubstitutionMap converts the configured pairs to a rune map.
func (c *Config) SubstitutionMap() (cipher.SubstitutionMap, error) {
	m := make(cipher.SubstitutionMap, len(c.Cipher.Map))
	for from, to := range c.Cipher.Map {
		if utf8.RuneCountInString(from) != 1 || utf8.RuneCountInString(to) != 1 {
			return nil, fmt.Errorf("cipher map entry %q: %q must map one character to one character", from, to)
		}
		f, _ := utf8.DecodeRuneInString(from)
		r, _ := utf8.DecodeRuneInString(to)
		m[f] = r
	}
	return m, nil
}
