package ordset

import "encoding/json"

// The JSON form of a Set is a plain array of members in order:
//
//	["a","b","c"]

// MarshalJSON encodes the members in order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Members())
}

// UnmarshalJSON decodes an array of members, replacing the current contents
// and rebuilding the index from scratch. Duplicates collapse to the
// position of their first occurrence, the same contract as FromSlice.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var members []T
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	s.Clear()
	s.Reserve(len(members))
	for _, v := range members {
		s.Insert(v)
	}
	return nil
}
