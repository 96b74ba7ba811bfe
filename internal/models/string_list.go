package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// StringList is stored as a JSON array in a text column so the same schema
// works on postgres and sqlite.
type StringList []string

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(bytes, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// Dedupe returns a sorted copy without duplicates.
func (l StringList) Dedupe() StringList {
	seen := make(map[string]struct{}, len(l))
	out := make(StringList, 0, len(l))
	for _, v := range l {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
