package models

import (
	"bytes"
	"encoding/json"
)

// Choices is the plain, order-preserving list of choice titles of a
// question.
//
// Decoding is lenient because AI generated and legacy payloads disagree on
// the shape: strings, numbers, booleans, objects carrying "title", "text" or
// "value", a single scalar and null are all accepted.
type Choices []string

func (c Choices) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(c))
}

// UnmarshalJSON never fails: a payload that cannot be read as choices
// decodes to an empty list.
func (c *Choices) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	if data[0] != '[' {
		if title, ok := choiceTitle(data); ok {
			*c = Choices{title}
		} else {
			*c = Choices{}
		}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = Choices{}
		return nil
	}

	titles := make(Choices, 0, len(raw))
	for _, item := range raw {
		if title, ok := choiceTitle(item); ok {
			titles = append(titles, title)
		}
	}

	*c = titles
	return nil
}

// choiceTitle reads one choice. Objects use their "title", "text" or
// "value" key in that order and fall back to their compact JSON text.
// Nulls and nested arrays are not choices.
func choiceTitle(data json.RawMessage) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", false
	}

	switch data[0] {
	case 'n', '[':
		return "", false
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return "", false
		}
		for _, key := range []string{"title", "text", "value"} {
			if v, ok := obj[key]; ok {
				return scalarText(v), true
			}
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return "", false
		}
		return compact.String(), true
	default:
		return scalarText(data), true
	}
}

// scalarText renders a JSON value as text: strings unquoted, numbers and
// booleans as written, null as "null" and containers as "".
func scalarText(data json.RawMessage) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(data)
	}
}
