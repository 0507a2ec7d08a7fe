package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitly/go-simplejson"
)

type shape int

const (
	shapeNone shape = iota
	// shapeEnvelope is a chat-completion style array whose first element carries the payload as a JSON string.
	shapeEnvelope
	// shapeDirect is an object that already exposes weeklyPerformance and/or loads.
	shapeDirect
)

func (s shape) String() string {
	switch s {
	case shapeEnvelope:
		return "envelope"
	case shapeDirect:
		return "direct"
	default:
		return "none"
	}
}

// resolution is the outcome of one matcher: shapeNone with a nil err means "not this shape".
type resolution struct {
	shape   shape
	payload *simplejson.Json
	err     error
}

type matcher func(doc *simplejson.Json) resolution

var matchers = []matcher{matchEnvelope, matchDirect}

// resolve runs the matchers in order and returns the first payload found.
// A malformed envelope is reported only when no later matcher accepts the document.
func resolve(doc *simplejson.Json) (*simplejson.Json, shape, error) {
	var malformed error
	for _, match := range matchers {
		res := match(doc)
		if res.err != nil {
			if malformed == nil {
				malformed = res.err
			}
			continue
		}
		if res.shape != shapeNone {
			return res.payload, res.shape, nil
		}
	}
	if malformed != nil {
		return nil, shapeNone, malformed
	}
	return nil, shapeNone, ErrNoDataFound
}

func matchEnvelope(doc *simplejson.Json) resolution {
	items, err := doc.Array()
	if err != nil || len(items) == 0 {
		return resolution{}
	}
	content := envelopeContent(doc.GetIndex(0))
	if content == "" {
		return resolution{}
	}
	inner, err := simplejson.NewJson([]byte(stripCodeFence(content)))
	if err != nil {
		return resolution{err: fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)}
	}
	return resolution{shape: shapeEnvelope, payload: inner}
}

func envelopeContent(first *simplejson.Json) string {
	if s, err := first.Get("result").String(); err == nil && s != "" {
		return s
	}
	s, err := first.Get("choices").GetIndex(0).GetPath("message", "content").String()
	if err != nil {
		return ""
	}
	return s
}

func matchDirect(doc *simplejson.Json) resolution {
	if _, err := doc.Map(); err != nil {
		return resolution{}
	}
	if truthy(doc.Get("weeklyPerformance")) || truthy(doc.Get("loads")) {
		return resolution{shape: shapeDirect, payload: doc}
	}
	return resolution{}
}

func truthy(v *simplejson.Json) bool {
	switch raw := v.Interface().(type) {
	case nil:
		return false
	case bool:
		return raw
	case string:
		return raw != ""
	case json.Number:
		f, err := raw.Float64()
		return err == nil && f != 0
	case float64:
		return raw != 0
	default:
		return true
	}
}

// stripCodeFence removes a surrounding ``` fence, with or without a language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
