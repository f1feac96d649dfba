package geo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tags is an insertion-ordered string-to-string map holding the raw tag set
// of a mapped element. JSON encoding preserves the order the tags arrived in,
// unlike a plain map.
type Tags struct {
	keys   []string
	values map[string]string
}

// NewTags creates an empty tag set.
func NewTags() Tags {
	return Tags{values: make(map[string]string)}
}

// Set adds or replaces a tag, keeping first-insertion order for the key.
func (t *Tags) Set(key, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value for key, or "" when the tag is absent.
func (t Tags) Get(key string) string {
	return t.values[key]
}

// GetDefault returns the value for key, or def when the tag is absent.
func (t Tags) GetDefault(key, def string) string {
	if v, ok := t.values[key]; ok {
		return v
	}
	return def
}

// Len returns the number of tags.
func (t Tags) Len() int {
	return len(t.keys)
}

// Keys returns the tag keys in insertion order.
func (t Tags) Keys() []string {
	return t.keys
}

// MarshalJSON encodes the tags as a JSON object in insertion order.
func (t Tags) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, recording key order.
func (t *Tags) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("tags: expected JSON object, got %v", tok)
	}

	t.keys = nil
	t.values = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("tags: non-string key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("tags: value for %q: %w", key, err)
		}
		t.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
