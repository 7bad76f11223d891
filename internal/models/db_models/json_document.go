package db_models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// JSONDocument stores an arbitrary JSON document in a jsonb column without
// imposing a schema on it. Itineraries and picked flight/hotel bundles pass
// through byte-for-byte.
type JSONDocument []byte

func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

func (d *JSONDocument) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = JSONDocument(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return nil
}

func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("db_models.JSONDocument: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[:0], data...)
	return nil
}
