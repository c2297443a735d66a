package deps

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeJSONObject decodes a top-level JSON object into its members, keeping
// each member's raw value for later decoding.
func DecodeJSONObject(data []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("expected JSON object, got null")
	}
	return doc, nil
}

// MergeJSONMember merges the object stored under key in doc into d, in
// document order. A missing key contributes nothing. A present key whose
// value is not an object is an error.
func MergeJSONMember(d *Dependencies, doc map[string]json.RawMessage, key string) error {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	if err := MergeJSONObject(d, raw); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// MergeJSONObject merges the members of a JSON object into d, preserving
// their order. String values are recorded verbatim; any other value is
// recorded as its compact JSON text. An empty array merges nothing.
func MergeJSONObject(d *Dependencies, raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); ok && delim == '[' && !dec.More() {
		_, err = dec.Token()
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %s", describeToken(tok))
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		v, err := jsonText(value)
		if err != nil {
			return err
		}
		d.Set(name, v)
	}

	_, err = dec.Token()
	return err
}

func jsonText(value json.RawMessage) (string, error) {
	if len(value) > 0 && value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return v.String()
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
