package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"quotebook/internal/book"
	"quotebook/internal/book/commission"
	"quotebook/internal/errors"
)

type Book struct {
	Side   string    `json:"side" yaml:"side" validate:"required"`
	Quotes []float64 `json:"quotes" yaml:"quotes"`
}

// Layer is one commission decorator. A non-empty Rate wins over Multiplier;
// with neither set the default multiplier applies.
type Layer struct {
	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Rate       string   `json:"rate,omitempty" yaml:"rate,omitempty"`
}

type Commission struct {
	Layers []Layer `json:"layers" yaml:"layers"`
}

type Log struct {
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Trace bool   `json:"trace" yaml:"trace"`
}

type Config struct {
	Book       Book       `json:"book" yaml:"book"`
	Commission Commission `json:"commission" yaml:"commission"`
	Log        Log        `json:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Book: Book{Side: string(book.Bid)},
		Log:  Log{Level: "info"},
	}
}

// Load reads config from path. JSON is assumed unless the extension is
// .yaml or .yml. If path is empty, config.json then config.yaml in the
// working directory are tried; a missing file yields defaults. Environment
// variables are applied last. The result is not validated, so callers can
// layer further overrides before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		for _, candidate := range []string{"config.json", "config.yaml"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !stderrors.Is(err, os.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeConfigRead, "read config", err)
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	case ".json", "":
		err = json.Unmarshal(b, cfg)
	default:
		return errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigParse, "parse config", err)
	}
	return nil
}

// Validate checks field constraints, that the side is a known alias and
// that every commission rate parses as a decimal.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}
	if _, err := book.ParseSide(c.Book.Side); err != nil {
		return err
	}
	for i, l := range c.Commission.Layers {
		if l.Rate == "" {
			continue
		}
		if _, err := decimal.NewFromString(l.Rate); err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid config: commission layer %d rate %q", i, l.Rate)
		}
	}
	return nil
}

// Side returns the configured side. Call after Validate.
func (c *Config) Side() book.Side {
	side, _ := book.ParseSide(c.Book.Side)
	return side
}

// Multipliers resolves every layer to the factor it applies, innermost first.
func (c *Config) Multipliers() ([]float64, error) {
	out := make([]float64, 0, len(c.Commission.Layers))
	for i, l := range c.Commission.Layers {
		switch {
		case l.Rate != "":
			rate, err := decimal.NewFromString(l.Rate)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrCodeInvalidRate, err, "commission layer %d", i)
			}
			out = append(out, commission.MultiplierForRate(rate))
		case l.Multiplier != nil:
			out = append(out, *l.Multiplier)
		default:
			out = append(out, commission.DefaultMultiplier)
		}
	}
	return out, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("QUOTEBOOK_SIDE"); v != "" {
		cfg.Book.Side = v
	}
	if v := os.Getenv("QUOTEBOOK_QUOTES"); v != "" {
		quotes, err := ParseQuotes(v)
		if err != nil {
			return err
		}
		cfg.Book.Quotes = quotes
	}
	if v := os.Getenv("QUOTEBOOK_COMMISSION_RATE"); v != "" {
		cfg.Commission.Layers = []Layer{{Rate: strings.TrimSpace(v)}}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("QUOTEBOOK_TRACE"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			cfg.Log.Trace = true
		case "0", "false", "no", "n":
			cfg.Log.Trace = false
		}
	}
	return nil
}

// ParseQuotes parses a comma-separated list of prices, skipping blanks.
func ParseQuotes(s string) ([]float64, error) {
	parts := splitCSV(s)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidQuote, err, "quote %q", p)
		}
		out = append(out, f)
	}
	return out, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
