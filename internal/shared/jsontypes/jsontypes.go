package jsontypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a []string as a JSON column. A row holding malformed
// JSON scans to an empty list rather than failing the whole read.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	if value == nil {
		return nil
	}

	data, ok := asBytes(value)
	if !ok {
		return nil
	}

	var decoded []string
	if err := json.Unmarshal(data, &decoded); err != nil {
		// Legacy rows may hold free-form text; treat them as empty.
		return nil
	}
	*l = decoded
	return nil
}

// Document stores a free-form JSON object column, used for customer info on
// orders and bank details on withdrawals. Malformed rows scan to an empty
// document.
type Document map[string]interface{}

// Value implements driver.Valuer
func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (d *Document) Scan(value interface{}) error {
	*d = Document{}
	if value == nil {
		return nil
	}

	data, ok := asBytes(value)
	if !ok {
		return nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil
	}
	*d = decoded
	return nil
}

func asBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
