package storage

import "encoding/json"

// decodeDoc unmarshals a subsystem document column. A NULL column (nil or
// empty raw bytes) stays a nil pointer - that is what marks the subsystem
// absent all the way up to the client.
func decodeDoc[T any](raw []byte) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
