package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as a JSONB array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// ServiceEntry is one row of an IEP service grid.
type ServiceEntry struct {
	Service   string `json:"service"`
	Frequency string `json:"frequency"`
	Setting   string `json:"setting"`
}

// ServiceGrid is the optional service table extracted from an IEP,
// stored as a JSONB array.
type ServiceGrid []ServiceEntry

// Value implements driver.Valuer.
func (g ServiceGrid) Value() (driver.Value, error) {
	if g == nil {
		return nil, nil
	}
	return json.Marshal(g)
}

// Scan implements sql.Scanner.
func (g *ServiceGrid) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("cannot scan %T into ServiceGrid", src)
	}
}
