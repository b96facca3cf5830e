package ordmap

import (
	"encoding/json"
	"fmt"
)

// The JSON form of a Map is a sequence of two element [key, value] arrays,
// in entry order:
//
//	[["a",1],["b",2],["c",3]]
//
// A JSON object cannot serve here: object keys must be strings and most
// decoders do not guarantee member order. The sequence-of-pairs form
// round-trips any key type and preserves order exactly.

// MarshalJSON encodes the entries in order as [key, value] pairs.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	out := make([][2]json.RawMessage, 0, len(m.entries))
	for _, e := range m.entries {
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("ordmap: marshal key at position %d: %w", len(out), err)
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("ordmap: marshal value at position %d: %w", len(out), err)
		}
		out = append(out, [2]json.RawMessage{k, v})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a sequence of [key, value] pairs, replacing the
// current contents and rebuilding the slot index from scratch. Duplicate
// keys collapse deterministically: the last occurrence wins the value while
// the entry keeps the position of the first occurrence, the same contract
// as FromPairs.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Clear()
	m.Reserve(len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return fmt.Errorf("%w: element %d has %d values", ErrBadPairEncoding, i, len(pair))
		}
		var k K
		if err := json.Unmarshal(pair[0], &k); err != nil {
			return fmt.Errorf("ordmap: unmarshal key at element %d: %w", i, err)
		}
		var v V
		if err := json.Unmarshal(pair[1], &v); err != nil {
			return fmt.Errorf("ordmap: unmarshal value at element %d: %w", i, err)
		}
		m.Insert(k, v)
	}
	return nil
}
