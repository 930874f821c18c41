package config

import "errors"

// Document is a YAML configuration document decoded into a generic mapping.
// Documents are loaded fresh from disk on every pipeline run and never cached.
type Document map[string]any

var (
	// ErrNotFound indicates the config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrParse indicates the file content is not valid YAML.
	ErrParse = errors.New("invalid yaml")
	// ErrNotMapping indicates the top-level YAML value is not a mapping.
	ErrNotMapping = errors.New("top-level value is not a mapping")
)

// Mapping returns the nested mapping stored under key, if present.
func (d Document) Mapping(key string) (Document, bool) {
	m, ok := d[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Sequence returns the sequence stored under key, if present.
func (d Document) Sequence(key string) ([]any, bool) {
	s, ok := d[key].([]any)
	if !ok {
		return nil, false
	}
	return s, true
}

// StringField returns the string stored under key, if present.
func (d Document) StringField(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}
