package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageList stores an ordered list of image URLs as a JSON column so the same
// entity works against postgres and the in-memory sqlite used in tests.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list column type %T", value)
	}
}
