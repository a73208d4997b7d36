package registry

import (
	"os"
	"reflect"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a module and the types it
// declares.
type Manifest struct {
	Module   string         `yaml:"module"`
	Version  string         `yaml:"version"`
	Requires []string       `yaml:"requires"`
	Types    []ManifestType `yaml:"types"`
}

// ManifestType is one declared type entry in a manifest.
type ManifestType struct {
	Name     string   `yaml:"name"`
	Requires []string `yaml:"requires"`
}

// ParseManifest decodes a YAML manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var man Manifest
	if err := yaml.Unmarshal(data, &man); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}
	if man.Module == "" {
		return nil, zerr.With(ErrInvalidManifest, "reason", "missing module name")
	}
	return &man, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}
	return ParseManifest(data)
}

// RegisterManifest builds a module from man, binding each declared type
// name through bindings, and registers the result.
//
// Drift between manifest and Go code is handled asymmetrically. A
// binding for a name the manifest never declares is a registration
// error: the Go side carries code the manifest does not know about, so
// the caller must reconcile before anything is registered. A declared
// name without a binding still registers; it resolves to a per-type
// failure at enumeration time, and the rest of the module stays
// usable.
func (r *Registry) RegisterManifest(man *Manifest, bindings map[string]reflect.Type) (*Module, error) {
	if man == nil {
		return nil, zerr.With(ErrInvalidManifest, "reason", "nil manifest")
	}

	declared := make(map[string]bool, len(man.Types))
	decls := make([]Decl, 0, len(man.Types))
	for _, mt := range man.Types {
		if mt.Name == "" {
			return nil, zerr.With(zerr.With(ErrInvalidManifest, "reason", "unnamed type entry"), "module", man.Module)
		}
		if declared[mt.Name] {
			return nil, zerr.With(zerr.With(ErrDuplicateType, "type", mt.Name), "module", man.Module)
		}
		declared[mt.Name] = true

		decls = append(decls, Decl{
			Name:     mt.Name,
			Type:     bindings[mt.Name], // nil when the Go side has no binding
			Requires: mt.Requires,
		})
	}

	for name := range bindings {
		if !declared[name] {
			return nil, zerr.With(zerr.With(ErrUndeclaredBinding, "binding", name), "module", man.Module)
		}
	}

	mod := NewModule(man.Module, man.Version, man.Requires, decls...)
	if err := r.Register(mod); err != nil {
		return nil, err
	}
	return mod, nil
}
