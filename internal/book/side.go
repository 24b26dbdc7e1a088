package book

import (
	"strings"

	"quotebook/internal/errors"
)

// Side names which half of the book a sequence of quotes belongs to.
type Side string

const (
	Bid Side = "bid"
	Ask Side = "ask"
)

// sideAliases maps the spellings feeds and configs use onto a Side.
var sideAliases = map[string]Side{
	"bid":   Bid,
	"bids":  Bid,
	"buy":   Bid,
	"ask":   Ask,
	"asks":  Ask,
	"sell":  Ask,
	"offer": Ask,
}

// ParseSide normalizes s (case and surrounding spaces ignored) into a Side.
func ParseSide(s string) (Side, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if side, ok := sideAliases[key]; ok {
		return side, nil
	}
	return "", errors.Newf(errors.ErrCodeInvalidSide, "unknown book side %q", s)
}

func (s Side) String() string { return string(s) }
