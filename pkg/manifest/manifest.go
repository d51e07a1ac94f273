// Package manifest defines the set of packages the provisioner installs.
// The default manifest is embedded so a bare invocation needs no files on
// disk.
package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultManifest []byte

// Package is a single installable package.
type Package struct {
	// Name is the package identifier passed to the package manager.
	Name string `yaml:"name"`

	// Description is a brief description of what the package provides.
	Description string `yaml:"description,omitempty"`

	// Category groups related packages for listing.
	Category string `yaml:"category,omitempty"`
}

// Manifest is an ordered list of packages to install.
type Manifest struct {
	// Name identifies the manifest.
	Name string `yaml:"name"`

	// Description says what the manifest provisions.
	Description string `yaml:"description,omitempty"`

	// Packages is the ordered package list.
	Packages []Package `yaml:"packages"`
}

// Names returns the package names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Packages))
	for i, pkg := range m.Packages {
		names[i] = pkg.Name
	}
	return names
}

// Categories returns the distinct categories in first-seen order.
func (m *Manifest) Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, pkg := range m.Packages {
		if !seen[pkg.Category] {
			seen[pkg.Category] = true
			result = append(result, pkg.Category)
		}
	}
	return result
}

// ByCategory returns the packages in the given category, in manifest order.
func (m *Manifest) ByCategory(category string) []Package {
	var result []Package
	for _, pkg := range m.Packages {
		if pkg.Category == category {
			result = append(result, pkg)
		}
	}
	return result
}

// Load parses a manifest from r and validates it.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if len(m.Packages) == 0 {
		return nil, fmt.Errorf("manifest %q declares no packages", m.Name)
	}

	seen := make(map[string]bool)
	for _, pkg := range m.Packages {
		if pkg.Name == "" {
			return nil, fmt.Errorf("manifest %q contains a package without a name", m.Name)
		}
		if seen[pkg.Name] {
			return nil, fmt.Errorf("manifest %q lists %q more than once", m.Name, pkg.Name)
		}
		seen[pkg.Name] = true
	}

	return &m, nil
}

// Default returns the embedded sandbox manifest.
func Default() *Manifest {
	m, err := Load(bytes.NewReader(defaultManifest))
	if err != nil {
		// The embedded manifest is fixed at build time; failing validation
		// is a programming error.
		panic(fmt.Sprintf("embedded manifest is invalid: %v", err))
	}
	return m
}
