// Package manifest loads and validates binding manifests.
//
// A manifest is a resolved binding table as data: for each owner type, which
// attributes are bound, in which direction, and which named handler serves
// each binding. It is what a binding compiler emits after resolving a
// declarative source — the source language itself is out of scope here.
// Build turns one manifest entry into a bind.Engine by resolving handler
// names through a Resolver.
package manifest

import (
	"fmt"
	"os"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Binding modes.
const (
	// ModeRead binds a read handler to the attribute (at most one; later
	// read bindings for the same attribute are a manifest error, even
	// though the engine itself is permissive).
	ModeRead = "read"
	// ModeWrite appends a write handler to the attribute's chain. Chain
	// order is the order bindings appear in the manifest.
	ModeWrite = "write"
)

// Manifest represents a bindings.yaml document.
type Manifest struct {
	// Version is the manifest schema version, e.g. "v1.0.0".
	Version string `yaml:"version"`
	// Module optionally names the Go module providing the handlers.
	Module string `yaml:"module,omitempty"`
	// Objects lists the owner types and their bindings.
	Objects []ObjectSpec `yaml:"objects"`
}

// ObjectSpec describes the bindings of one owner type.
type ObjectSpec struct {
	Type     string    `yaml:"type"`
	Bindings []Binding `yaml:"bindings"`
}

// Binding associates one attribute with one named handler.
type Binding struct {
	Attr    string `yaml:"attr"`
	Mode    string `yaml:"mode"`
	Handler string `yaml:"handler"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// Validate checks the manifest for structural errors: a supported schema
// version, a well-formed module path, non-empty names, known modes, and at
// most one read binding per attribute of a type.
func (m *Manifest) Validate() error {
	if m.Version == "" {
		return fmt.Errorf("manifest: missing version")
	}
	if !semver.IsValid(m.Version) {
		return fmt.Errorf("manifest: invalid version %q (want semver, e.g. v1.0.0)", m.Version)
	}
	if major := semver.Major(m.Version); major != "v1" {
		return fmt.Errorf("manifest: unsupported version %s (this tool reads v1)", m.Version)
	}
	if m.Module != "" {
		if err := module.CheckPath(m.Module); err != nil {
			return fmt.Errorf("manifest: invalid module path %q: %w", m.Module, err)
		}
	}
	for _, obj := range m.Objects {
		if obj.Type == "" {
			return fmt.Errorf("manifest: object with empty type")
		}
		readBound := make(map[string]bool)
		for _, b := range obj.Bindings {
			if b.Attr == "" {
				return fmt.Errorf("manifest: %s: binding with empty attr", obj.Type)
			}
			if b.Handler == "" {
				return fmt.Errorf("manifest: %s.%s: binding with empty handler", obj.Type, b.Attr)
			}
			switch b.Mode {
			case ModeRead:
				if readBound[b.Attr] {
					return fmt.Errorf("manifest: %s.%s: duplicate read binding", obj.Type, b.Attr)
				}
				readBound[b.Attr] = true
			case ModeWrite:
				// Chains grow freely.
			default:
				return fmt.Errorf("manifest: %s.%s: unknown mode %q (want read or write)", obj.Type, b.Attr, b.Mode)
			}
		}
	}
	return nil
}

// Object returns the spec for the named owner type.
func (m *Manifest) Object(typeName string) (ObjectSpec, bool) {
	for _, obj := range m.Objects {
		if obj.Type == typeName {
			return obj, true
		}
	}
	return ObjectSpec{}, false
}
