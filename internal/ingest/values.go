package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bitly/go-simplejson"
	"github.com/shopspring/decimal"

	"github.com/drivahub/drivahub/internal/domain"
)

var numberCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// number reads a JSON number or a numeric string such as "$1,250.50".
// Missing, unreadable and negative values count as 0.
func number(v *simplejson.Json) float64 {
	var (
		d   decimal.Decimal
		err error
	)
	switch raw := v.Interface().(type) {
	case json.Number:
		d, err = decimal.NewFromString(raw.String())
	case float64:
		d = decimal.NewFromFloat(raw)
	case string:
		d, err = decimal.NewFromString(numberCleaner.Replace(strings.TrimSpace(raw)))
	default:
		return 0
	}
	if err != nil || d.IsNegative() {
		return 0
	}
	return d.InexactFloat64()
}

var dateLayouts = []string{
	domain.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// date returns the value as YYYY-MM-DD, or fallback when the field is missing or blank.
// Text that is not a recognizable date fails with ErrInvalidDate.
func date(v *simplejson.Json, fallback string) (string, error) {
	s, err := v.String()
	if err != nil {
		return fallback, nil
	}
	if s = strings.TrimSpace(s); s == "" {
		return fallback, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(domain.DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
