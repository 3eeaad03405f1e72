package cfg

import (
	"fmt"
	"regexp"
)

// ValueType is the declared type of a scalar cfg value.
type ValueType string

const (
	TypeNumber ValueType = "number"
	TypeString ValueType = "string"
)

// valuePattern returns the expression matching an assignment to key. The
// key must start the text or follow a statement terminator so that "id" never
// matches inside "modid".
func valuePattern(key string, typ ValueType) (*regexp.Regexp, error) {
	k := regexp.QuoteMeta(key)
	switch typ {
	case TypeNumber:
		return regexp.Compile(fmt.Sprintf(`(?:^|;)\s*%s\s*=\s*(\d+)\D?\s*;`, k))
	case TypeString:
		return regexp.Compile(fmt.Sprintf(`(?:^|;)\s*%s\s*=\s*"([^"]*)"\s*;`, k))
	default:
		return nil, &UnsupportedTypeError{Type: typ}
	}
}

// GetValue extracts the value assigned to key from cfg text. ok is false when
// the key has no value of the requested type. Only the first assignment is
// considered.
func GetValue(data, key string, typ ValueType) (value string, ok bool, err error) {
	re, err := valuePattern(key, typ)
	if err != nil {
		return "", false, err
	}
	m := re.FindStringSubmatch(data)
	if len(m) < 2 {
		return "", false, nil
	}
	return m[1], true, nil
}
