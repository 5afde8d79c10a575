package sprig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// propsKey is the reserved JSON key that marks a container's own properties.
const propsKey = "props"

// Template is an ordered scene description. Entry order is significant: it is
// the order nodes are created in and, for engines that draw in insertion
// order, the stacking order.
type Template []Entry

// Entry is one keyed template item: a leaf property bag, a container with its
// own properties and nested entries, or a null placeholder.
type Entry struct {
	Key      string
	Props    Props
	Children Template

	container bool
}

// Leaf returns a leaf entry. A nil props makes the entry null.
func Leaf(key string, props Props) Entry {
	return Entry{Key: key, Props: props}
}

// Container returns a container entry with its own props and nested children.
// A container with nil props is never materialized; the parser skips it and
// logs a warning.
func Container(key string, props Props, children ...Entry) Entry {
	return Entry{Key: key, Props: props, Children: Template(children), container: true}
}

// Null returns an entry that produces no node.
func Null(key string) Entry {
	return Entry{Key: key}
}

// IsContainer reports whether the entry carries nested children.
func (e Entry) IsContainer() bool {
	return e.container
}

// IsNull reports whether the entry is a null leaf.
func (e Entry) IsNull() bool {
	return !e.container && e.Props == nil
}

// missingProps reports whether the entry is a container without its own props.
func (e Entry) missingProps() bool {
	return e.container && e.Props == nil
}

// Keys returns the keys of every entry that will produce a node, depth-first
// in template order.
func (t Template) Keys() []string {
	var keys []string
	var walk func(Template)
	walk = func(layer Template) {
		for _, e := range layer {
			if e.IsNull() || e.missingProps() {
				continue
			}
			keys = append(keys, e.Key)
			if e.container {
				walk(e.Children)
			}
		}
	}
	walk(t)
	return keys
}

// MissingProps returns the keys of containers that lack their "props" marker,
// depth-first in template order. Such containers and their children are
// skipped when a scene renders.
func (t Template) MissingProps() []string {
	var keys []string
	var walk func(Template)
	walk = func(layer Template) {
		for _, e := range layer {
			if e.missingProps() {
				keys = append(keys, e.Key)
				continue
			}
			if e.container {
				walk(e.Children)
			}
		}
	}
	walk(t)
	return keys
}

// LoadTemplate decodes a JSON template from r.
func LoadTemplate(r io.Reader) (Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	return t, nil
}

// --- JSON encoding ---

// rawPair is one key/value of a JSON object, in source order.
type rawPair struct {
	key   string
	value json.RawMessage
}

// UnmarshalJSON decodes the JSON template form, keeping key order. An object
// holding a "props" key is a container; an object without "props" whose values
// include an object is a container missing its marker; any other object is a
// leaf. null, false, 0 and "" are null entries.
func (t *Template) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*t = nil
		return nil
	}
	pairs, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}
	out, err := decodeLayer(pairs)
	if err != nil {
		return err
	}
	*t = out
	return nil
}

func decodeLayer(pairs []rawPair) (Template, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	layer := make(Template, 0, len(pairs))
	for _, p := range pairs {
		e, err := decodeEntry(p.key, p.value)
		if err != nil {
			return nil, err
		}
		layer = append(layer, e)
	}
	return layer, nil
}

func decodeEntry(key string, raw json.RawMessage) (Entry, error) {
	if isJSONFalsy(raw) {
		return Null(key), nil
	}
	if !isJSONObject(raw) {
		return Entry{}, fmt.Errorf("template entry %q: expected object or null, got %s", key, abbreviate(raw))
	}
	pairs, err := decodeObject(raw)
	if err != nil {
		return Entry{}, fmt.Errorf("template entry %q: %w", key, err)
	}

	var propsRaw json.RawMessage
	hasProps := false
	nestedObject := false
	rest := pairs[:0:0]
	for _, p := range pairs {
		if p.key == propsKey {
			propsRaw = p.value
			hasProps = true
			continue
		}
		if isJSONObject(p.value) {
			nestedObject = true
		}
		rest = append(rest, p)
	}

	switch {
	case hasProps:
		children, err := decodeLayer(rest)
		if err != nil {
			return Entry{}, err
		}
		var props Props
		if !isJSONNull(propsRaw) {
			if err := json.Unmarshal(propsRaw, &props); err != nil {
				return Entry{}, fmt.Errorf("template entry %q: props: %w", key, err)
			}
		}
		return Container(key, props, children...), nil
	case nestedObject:
		// Keep the nested entries so the parser can name what it skips.
		var children Template
		for _, p := range rest {
			if !isJSONObject(p.value) {
				continue
			}
			child, err := decodeEntry(p.key, p.value)
			if err != nil {
				return Entry{}, err
			}
			children = append(children, child)
		}
		return Container(key, nil, children...), nil
	default:
		var props Props
		if err := json.Unmarshal(raw, &props); err != nil {
			return Entry{}, fmt.Errorf("template entry %q: %w", key, err)
		}
		return Leaf(key, props), nil
	}
}

// MarshalJSON encodes the template in its JSON form, preserving entry order.
func (t Template) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeLayer(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeLayer(buf *bytes.Buffer, layer Template) error {
	buf.WriteByte('{')
	for i, e := range layer {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := encodeEntry(buf, e); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeEntry(buf *bytes.Buffer, e Entry) error {
	if !e.container {
		if e.Props == nil {
			buf.WriteString("null")
			return nil
		}
		b, err := json.Marshal(e.Props)
		if err != nil {
			return fmt.Errorf("template entry %q: %w", e.Key, err)
		}
		buf.Write(b)
		return nil
	}

	// Containers are the children object with "props" spliced in front.
	var children bytes.Buffer
	if err := encodeLayer(&children, e.Children); err != nil {
		return err
	}
	body := children.Bytes()
	if e.Props == nil {
		buf.Write(body)
		return nil
	}
	props, err := json.Marshal(e.Props)
	if err != nil {
		return fmt.Errorf("template entry %q: %w", e.Key, err)
	}
	buf.WriteString(`{"props":`)
	buf.Write(props)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return nil
}

// --- Helpers ---

// decodeObject splits a JSON object into its pairs in source order.
func decodeObject(data []byte) ([]rawPair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %s", abbreviate(data))
	}
	var pairs []rawPair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		pairs = append(pairs, rawPair{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func isJSONNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func isJSONObject(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// isJSONFalsy reports whether raw is null, false, zero or the empty string.
func isJSONFalsy(raw []byte) bool {
	switch s := string(bytes.TrimSpace(raw)); s {
	case "null", "false", `""`:
		return true
	default:
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return f == 0
		}
		return false
	}
}

func abbreviate(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 32 {
		return string(raw[:32]) + "..."
	}
	return string(raw)
}
