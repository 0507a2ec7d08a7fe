// Package ingest turns extraction service responses into statement and load drafts.
package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitly/go-simplejson"
	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
)

const unknownLocation = "Unknown"

var (
	ErrParse = errors.New("could not read the statement")

	ErrMalformedResponse = fmt.Errorf("%w: response is not JSON", ErrParse)
	ErrMalformedEnvelope = fmt.Errorf("%w: extracted content is not valid JSON", ErrParse)
	ErrNoDataFound       = fmt.Errorf("%w: no statement or loads found", ErrParse)
	ErrInvalidDate       = fmt.Errorf("%w: statement date is not a calendar date", ErrParse)
)

type Result struct {
	Statement *domain.StatementDraft
	Loads     []domain.LoadDraft
}

type Normalizer struct {
	now func() time.Time
}

func New() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewWithClock builds a Normalizer that reads "today" from now.
func NewWithClock(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// Decode parses a raw response body without assuming its shape.
func Decode(body []byte) (*simplejson.Json, error) {
	doc, err := simplejson.NewJson(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return doc, nil
}

func (n *Normalizer) Normalize(doc *simplejson.Json) (*Result, error) {
	if doc == nil {
		return nil, ErrNoDataFound
	}
	payload, sh, err := resolve(doc)
	if err != nil {
		return nil, err
	}

	today := n.now().UTC().Format(domain.DateLayout)
	res := &Result{Loads: make([]domain.LoadDraft, 0)}

	loadDate := today
	if perf := payload.Get("weeklyPerformance"); truthy(perf) {
		statement, err := statementDraft(perf, today)
		if err != nil {
			return nil, err
		}
		res.Statement = statement
		loadDate = statement.Date
	}

	loads := payload.Get("loads")
	if items, err := loads.Array(); err == nil {
		for i := range items {
			item := loads.GetIndex(i)
			if item.Interface() == nil {
				continue
			}
			res.Loads = append(res.Loads, loadDraft(item, loadDate))
		}
	}

	if res.Statement == nil && len(res.Loads) == 0 {
		return nil, ErrNoDataFound
	}

	zap.L().Debug("extraction response normalized",
		zap.String("shape", sh.String()),
		zap.Bool("statement", res.Statement != nil),
		zap.Int("loads", len(res.Loads)),
	)
	return res, nil
}

// statementDraft defaults every field that perf does not carry, including when perf is not an object.
func statementDraft(perf *simplejson.Json, today string) (*domain.StatementDraft, error) {
	day, err := date(perf.Get("date"), today)
	if err != nil {
		return nil, err
	}
	deadhead := number(perf.Get("deadheadMiles"))
	return &domain.StatementDraft{
		Date:          day,
		Amount:        number(perf.Get("totalEarnings")),
		Miles:         number(perf.Get("totalMilesDriven")),
		DeadheadMiles: &deadhead,
		Type:          domain.StatementTypeRegular,
	}, nil
}

func loadDraft(item *simplejson.Json, date string) domain.LoadDraft {
	return domain.LoadDraft{
		Pickup:  location(item.Get("pickupLocation")),
		Dropoff: location(item.Get("dropoffLocation")),
		Amount:  number(item.Get("price")),
		Date:    date,
		Miles:   0,
	}
}

func location(v *simplejson.Json) string {
	s, err := v.String()
	if err != nil {
		return unknownLocation
	}
	if s = strings.TrimSpace(s); s == "" {
		return unknownLocation
	}
	return s
}
