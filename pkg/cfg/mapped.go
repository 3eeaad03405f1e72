package cfg

import "fmt"

// MappedKey is the name a field is known by inside this program.
type MappedKey string

const (
	BundleDir   MappedKey = "bundleDir"
	ItemPreview MappedKey = "itemPreview"
)

// FieldSpec binds a mapped key to its on-disk key and type.
type FieldSpec struct {
	Key  string
	Type ValueType
}

var mappedKeys = map[MappedKey]FieldSpec{
	BundleDir:   {Key: "content", Type: TypeString},
	ItemPreview: {Key: "preview", Type: TypeString},
}

// MappedKeys lists the mapped keys in a stable order.
func MappedKeys() []MappedKey {
	return []MappedKey{BundleDir, ItemPreview}
}

// LookupMappedKey returns the on-disk spec for name.
func LookupMappedKey(name MappedKey) (FieldSpec, bool) {
	spec, ok := mappedKeys[name]
	return spec, ok
}

// GetMappedValue reads the value of a mapped key from data. filePath is only
// used for the error message and may be empty. It panics on names that are
// not in the table.
func GetMappedValue(filePath, data string, name MappedKey) (string, error) {
	spec, ok := mappedKeys[name]
	if !ok {
		panic(fmt.Sprintf("cfg: unknown mapped key %q", string(name)))
	}

	value, found, err := GetValue(data, spec.Key, spec.Type)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &MissingFieldError{Key: spec.Key, Path: filePath}
	}
	return value, nil
}
