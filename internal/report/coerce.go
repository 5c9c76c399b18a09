package report

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// toJSNumber coerces an answer value to a number the way a JavaScript
// Number() call does for the JSON value space: a missing key is NaN, null is
// 0, booleans are 0/1, blank strings are 0, decimal and hex literals parse,
// anything else is NaN.
func toJSNumber(v any, present bool) float64 {
	if !present {
		return math.NaN()
	}

	switch value := v.(type) {
	case nil:
		return 0
	case bool:
		if value {
			return 1
		}
		return 0
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case json.Number:
		return parseJSNumber(string(value))
	case string:
		return parseJSNumber(value)
	default:
		return math.NaN()
	}
}

func parseJSNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		n, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	// out of range literals come back as ±Inf together with ErrRange
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// toJSString renders a value the way JavaScript String() does.
func toJSString(v any, present bool) string {
	if !present {
		return "undefined"
	}

	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return formatJSNumber(value)
	case float32:
		return formatJSNumber(float64(value))
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case json.Number:
		return value.String()
	case []any:
		// arrays join their elements with commas, null elements render empty
		parts := make([]string, len(value))
		for i, elem := range value {
			if elem != nil {
				parts[i] = toJSString(elem, true)
			}
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(value, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return fmt.Sprint(value)
	}
}

func formatJSNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits, JavaScript does not
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
