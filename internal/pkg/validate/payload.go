package validate

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Payload is a decoded JSON object as produced by binding into map[string]any.
// Accessors report ok=false only when the key is present with the wrong type;
// absent or null keys yield the zero value so the schema tags decide.
type Payload map[string]any

func (p Payload) String(key string) (string, bool) {
	raw, present := p[key]
	if !present || raw == nil {
		return "", true
	}
	s, ok := raw.(string)
	return s, ok
}

func (p Payload) OptionalString(key string) (*string, bool) {
	raw, present := p[key]
	if !present || raw == nil {
		return nil, true
	}
	s, ok := raw.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

// Int64 accepts JSON numbers with no fractional part.
func (p Payload) Int64(key string) (int64, bool) {
	raw, present := p[key]
	if !present || raw == nil {
		return 0, true
	}
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) >= 1<<63 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func (p Payload) Decimal(key string) (decimal.Decimal, bool) {
	raw, present := p[key]
	if !present || raw == nil {
		return decimal.Zero, true
	}
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case int64:
		return decimal.NewFromInt(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	default:
		return decimal.Zero, false
	}
}
