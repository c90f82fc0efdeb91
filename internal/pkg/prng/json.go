package prng

import "encoding/json"

// MarshalJSON encodes the key as its raw token value.
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.state)
}

// UnmarshalJSON decodes a key from its raw token value.
func (k *Key) UnmarshalJSON(data []byte) error {
	var state uint64
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	k.state = state
	return nil
}
