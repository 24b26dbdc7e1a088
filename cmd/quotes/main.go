package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"quotebook/internal/book"
	"quotebook/internal/book/commission"
	"quotebook/internal/book/store"
	"quotebook/internal/book/traced"
	"quotebook/internal/config"
	"quotebook/internal/logger"
)

type quotesResponse struct {
	Side   book.Side   `json:"side"`
	Quotes []jsonQuote `json:"quotes"`
}

// jsonQuote encodes finite quotes as JSON numbers and NaN/Inf, which JSON
// numbers cannot carry, as the strings "NaN", "+Inf" and "-Inf".
type jsonQuote book.Quote

func (q jsonQuote) MarshalJSON() ([]byte, error) {
	v := float64(q)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return []byte(formatFloat(v)), nil
}

func (q *jsonQuote) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*q = jsonQuote(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*q = jsonQuote(v)
	return nil
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "quotes",
		Usage: "Print one side of a book, marked up by zero or more commission layers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a JSON or YAML config file",
				Sources: cli.EnvVars("CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "side",
				Usage: fmt.Sprintf("book side (%s or %s)", book.Bid, book.Ask),
			},
			&cli.StringSliceFlag{
				Name:    "quote",
				Aliases: []string{"q"},
				Usage:   "quote price; repeat or comma-separate, replaces configured quotes",
			},
			&cli.StringSliceFlag{
				Name:    "multiplier",
				Aliases: []string{"m"},
				Usage:   "commission multiplier, innermost first; replaces configured layers",
			},
			&cli.StringFlag{
				Name:  "rate",
				Usage: "single commission rate (0.1 = 10% markup); replaces configured layers",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log each sequence as it is produced and exhausted (needs debug level)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print a JSON document instead of one quote per line",
			},
		},
		Action: quotesAction,
	}
}

func quotesAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	lg, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	side, err := build(cfg, lg.Logger)
	if err != nil {
		return err
	}
	quotes := book.Collect(side)
	lg.Info("book side drained", zap.String("side", cfg.Side().String()), zap.Int("quotes", len(quotes)))

	if cmd.Bool("json") {
		return writeJSON(cmd.Root().Writer, cfg.Side(), quotes)
	}
	return writeLines(cmd.Root().Writer, cfg.Side(), quotes)
}

// applyFlags overrides config fields with the flags the user actually set.
func applyFlags(cmd *cli.Command, cfg *config.Config) error {
	if cmd.IsSet("side") {
		cfg.Book.Side = cmd.String("side")
	}
	if cmd.IsSet("quote") {
		quotes, err := parseFloats(cmd.StringSlice("quote"))
		if err != nil {
			return err
		}
		cfg.Book.Quotes = quotes
	}
	if cmd.IsSet("multiplier") {
		ms, err := parseFloats(cmd.StringSlice("multiplier"))
		if err != nil {
			return err
		}
		layers := make([]config.Layer, 0, len(ms))
		for _, m := range ms {
			layers = append(layers, config.Layer{Multiplier: &m})
		}
		cfg.Commission.Layers = layers
	}
	if cmd.IsSet("rate") {
		cfg.Commission.Layers = []config.Layer{{Rate: strings.TrimSpace(cmd.String("rate"))}}
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = strings.ToLower(cmd.String("log-level"))
	}
	if cmd.IsSet("trace") {
		cfg.Log.Trace = cmd.Bool("trace")
	}
	return nil
}

// build assembles the configured stack: the store, then one commission layer
// per configured multiplier, optionally traced at both ends.
func build(cfg config.Config, lg *zap.Logger) (book.BookSide, error) {
	multipliers, err := cfg.Multipliers()
	if err != nil {
		return nil, err
	}

	var side book.BookSide = store.New(cfg.Book.Quotes)
	if cfg.Log.Trace {
		side = &traced.BookSide{Inner: side, Logger: lg, Name: "store"}
	}
	side = commission.Stack(side, multipliers...)
	if cfg.Log.Trace && len(multipliers) > 0 {
		side = &traced.BookSide{Inner: side, Logger: lg, Name: "commission"}
	}
	return side, nil
}

func parseFloats(values []string) ([]float64, error) {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		fs, err := config.ParseQuotes(v)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	return out, nil
}

func writeLines(w io.Writer, side book.Side, quotes []book.Quote) error {
	for _, q := range quotes {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", side, formatFloat(q)); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, side book.Side, quotes []book.Quote) error {
	resp := quotesResponse{Side: side, Quotes: make([]jsonQuote, len(quotes))}
	for i, q := range quotes {
		resp.Quotes[i] = jsonQuote(q)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
