package provider

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ExtractValue normalizes a scalar from a provider row into a float64.
//
// stats.nba.com returns JSON numbers (sometimes null), nflverse CSV returns
// strings ("", "NA", "12.0"). Both end up here.
//
// Returns ok=false if the value is absent, malformed, NaN or infinite.
func ExtractValue(val interface{}) (float64, bool) {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0, false
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float returns val rounded to decimals places, or 0 when not extractable.
func Float(val interface{}, decimals int) float64 {
	f, ok := ExtractValue(val)
	if !ok {
		return 0
	}
	return Round(f, decimals)
}

// Int truncates val toward zero, or returns 0 when not extractable.
func Int(val interface{}) int {
	f, ok := ExtractValue(val)
	if !ok {
		return 0
	}
	return int(f)
}

// String renders val as a string, returning def for nil and the usual
// missing-value sentinels ("", "nan", "None", "NA").
func String(val interface{}, def string) string {
	var s string
	switch v := val.(type) {
	case nil:
		return def
	case string:
		s = v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		s = v.String()
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		return def
	}
	switch strings.TrimSpace(s) {
	case "", "nan", "NaN", "None", "NA":
		return def
	}
	return s
}

// Round rounds half away from zero to decimals places.
func Round(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}
