// README: Tolerant parser for model completions; brace slicing, string-or-object
// normalization, and field coercion.
package plan

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyResponse means the completion contained no JSON object at all.
	ErrEmptyResponse = errors.New("empty ai response")
	// ErrMalformedJSON means the brace-delimited slice did not decode.
	ErrMalformedJSON = errors.New("malformed ai response json")
)

// looseValue is a JSON value that may arrive either as a nested object or as a
// JSON-encoded string containing an object. Models under instruction pressure
// produce both; one normalization pass resolves the union before any field
// access.
type looseValue struct {
	raw json.RawMessage
}

func (l *looseValue) UnmarshalJSON(b []byte) error {
	l.raw = append(l.raw[:0], b...)
	return nil
}

// object returns the value as a decodable JSON object, unquoting one level of
// string encoding when needed. ok is false when neither form yields an object.
func (l looseValue) object() (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(string(l.raw))
	if trimmed == "" {
		return nil, false
	}
	if trimmed[0] == '{' {
		return json.RawMessage(trimmed), true
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, false
		}
		inner = strings.TrimSpace(inner)
		if strings.HasPrefix(inner, "{") {
			return json.RawMessage(inner), true
		}
	}
	return nil, false
}

// orderValue coerces the order field: numbers pass through, numeric-looking
// strings parse, and anything non-positive or unparsable becomes 1.
type orderValue int

func (o *orderValue) UnmarshalJSON(b []byte) error {
	*o = 1
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		if n >= 1 {
			*o = orderValue(int(n))
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 1 {
			*o = orderValue(n)
		}
		return nil
	}
	// Unexpected shape: keep the default rather than failing the item.
	return nil
}

type planWire struct {
	Summary string       `json:"summary"`
	Course  []looseValue `json:"course"`
}

type courseItemWire struct {
	Order       orderValue `json:"order"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// ParsePlans decodes raw completion text into loosely-typed plans. Individual
// malformed elements are dropped silently; only the total absence of plan
// structure surfaces as an error.
func ParsePlans(rawText string) ([]RawPlan, error) {
	start := strings.Index(rawText, "{")
	end := strings.LastIndex(rawText, "}")
	if start < 0 || end <= start {
		return nil, ErrEmptyResponse
	}
	slice := rawText[start : end+1]

	var top struct {
		Plans []looseValue `json:"plans"`
	}
	if err := json.Unmarshal([]byte(slice), &top); err != nil {
		return nil, ErrMalformedJSON
	}

	plans := make([]RawPlan, 0, len(top.Plans))
	for _, lv := range top.Plans {
		obj, ok := lv.object()
		if !ok {
			continue
		}
		var pw planWire
		if err := json.Unmarshal(obj, &pw); err != nil {
			continue
		}

		rp := RawPlan{Summary: strings.TrimSpace(pw.Summary)}
		for _, cv := range pw.Course {
			itemObj, ok := cv.object()
			if !ok {
				continue
			}
			var iw courseItemWire
			if err := json.Unmarshal(itemObj, &iw); err != nil {
				continue
			}
			order := int(iw.Order)
			if order < 1 {
				order = 1
			}
			rp.Course = append(rp.Course, RawCourseItem{
				Order:       order,
				Type:        strings.TrimSpace(iw.Type),
				Name:        strings.TrimSpace(iw.Name),
				Description: strings.TrimSpace(iw.Description),
			})
		}
		plans = append(plans, rp)
	}

	return plans, nil
}
