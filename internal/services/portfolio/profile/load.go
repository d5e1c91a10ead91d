package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a profile document. Unknown fields are rejected so typos in
// the content file surface at start-up; values themselves are not checked.
func Decode(r io.Reader) (Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return New(Profile{}), nil
		}
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return New(p), nil
}

// LoadFile reads a profile document from path.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
	}
	return p, nil
}

// LoadOrDefault loads path when set, otherwise returns Default.
func LoadOrDefault(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
