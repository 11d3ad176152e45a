// Package config loads the YAML pipeline configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ppinet/edgelist"
)

// EnvLogLevel overrides log.level when set.
const EnvLogLevel = "PPINET_LOG_LEVEL"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full pipeline configuration.
type Config struct {
	Sources          []Source `yaml:"sources" validate:"required,min=1,unique=Name,dive"`
	Seeds            string   `yaml:"seeds" validate:"required"`
	Threshold        int      `yaml:"threshold" validate:"gte=0"`
	AugmentThreshold int      `yaml:"augment_threshold" validate:"gte=0"`
	Augment          Augment  `yaml:"augment"`
	Store            Store    `yaml:"store"`
	Paths            Paths    `yaml:"paths"`
	Ego              Ego      `yaml:"ego"`
	Log              Log      `yaml:"log"`
	OutputDir        string   `yaml:"output_dir" validate:"required"`
	MetricsFile      string   `yaml:"metrics_file"`
}

// Source is one edge-list input. Either Preset or both column names are set.
type Source struct {
	Name         string   `yaml:"name" validate:"required"`
	Paths        []string `yaml:"paths" validate:"required,min=1,dive,required"`
	Preset       string   `yaml:"preset"`
	SourceColumn string   `yaml:"source_column"`
	TargetColumn string   `yaml:"target_column"`
	Delimiter    string   `yaml:"delimiter" validate:"omitempty,len=1"`
}

// Augment names the optional homology inputs merged by the augment stage.
type Augment struct {
	Paralogs  string `yaml:"paralogs"`
	Orthologs string `yaml:"orthologs"`
	TaxIDs    string `yaml:"tax_ids" validate:"required_with=Orthologs"`
}

// Store selects the artifact backend.
type Store struct {
	Kind string `yaml:"kind" validate:"oneof=file badger"`
	Path string `yaml:"path" validate:"required"`
}

// Paths configures path queries.
type Paths struct {
	MaxNodes int `yaml:"max_nodes" validate:"gt=2,lt=10"`
}

// Ego configures neighbourhood queries.
type Ego struct {
	Radius  int `yaml:"radius" validate:"gte=0"`
	Workers int `yaml:"workers" validate:"gte=1,lte=64"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns a configuration with every optional field filled in.
func Default() *Config {
	return &Config{
		Threshold:        2,
		AugmentThreshold: 1,
		Store:            Store{Kind: "file", Path: "graphs"},
		Paths:            Paths{MaxNodes: 5},
		Ego:              Ego{Radius: 4, Workers: 4},
		Log:              Log{Level: "info", Format: "text"},
		OutputDir:        "out",
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not read configuration file '%s': %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default, applies environment
// overrides and validates the result. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("YAML syntax error: %w", err)
	}
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Columns resolves the endpoint adapter of s.
func (s Source) Columns() (edgelist.Columns, error) {
	if s.Preset != "" {
		return edgelist.LookupPreset(s.Preset)
	}

	return edgelist.Columns{Source: s.SourceColumn, Target: s.TargetColumn}, nil
}

// Delim returns the field separator of s, tab by default.
func (s Source) Delim() rune {
	if s.Delimiter == "" {
		return '\t'
	}

	return []rune(s.Delimiter)[0]
}
