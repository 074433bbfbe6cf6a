package settings

import (
	"fmt"
	"strings"
)

// ValidateProperty is the Hibernate configuration key that switches mapping
// validation
const ValidateProperty = "hibernate.xml.validate"

// FromProperties builds settings from a Hibernate style property map. Keys
// other than ValidateProperty are ignored.
func FromProperties(props map[string]string) (*Settings, error) {
	s := Default()
	v, ok := props[ValidateProperty]
	if !ok {
		return s, nil
	}
	enabled, err := parseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %w", ValidateProperty, err)
	}
	s.Validate = enabled
	return s, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", v)
}
