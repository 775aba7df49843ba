package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Index is the consolidated status document covering all crates in a run.
// Entries keep their insertion order so the written document reflects the
// order crates were fetched in.
type Index struct {
	names   []string
	entries map[string]Entry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]Entry)}
}

// Set records the entry for a crate, appending it to the order on first use.
func (x *Index) Set(name string, e Entry) {
	if x.entries == nil {
		x.entries = make(map[string]Entry)
	}
	if _, ok := x.entries[name]; !ok {
		x.names = append(x.names, name)
	}
	x.entries[name] = e
}

// Get returns the entry for a crate.
func (x *Index) Get(name string) (Entry, bool) {
	e, ok := x.entries[name]
	return e, ok
}

// Len returns the number of crates in the index.
func (x *Index) Len() int {
	return len(x.names)
}

// Names returns crate names in insertion order.
func (x *Index) Names() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// SortedNames returns crate names in ascending lexical order. The distill
// pass processes crates in this order.
func (x *Index) SortedNames() []string {
	out := x.Names()
	sort.Strings(out)
	return out
}

// MarshalJSON writes entries as a JSON object in insertion order.
func (x *Index) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range x.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(x.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order.
func (x *Index) UnmarshalJSON(data []byte) error {
	x.names = nil
	x.entries = make(map[string]Entry)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("index: expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("index: expected string key, got %v", tok)
		}
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("index: entry %s: %w", name, err)
		}
		x.Set(name, e)
	}

	// Consume closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
