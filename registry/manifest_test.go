package registry_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/typecache"
	"go.trai.ch/typecache/registry"
)

const geometryManifest = `
module: geometry
version: 1.4.2
requires:
  - stdlib
types:
  - name: Point
  - name: Circle
    requires:
      - render
`

func TestParseManifest(t *testing.T) {
	man, err := registry.ParseManifest([]byte(geometryManifest))

	require.NoError(t, err)
	assert.Equal(t, "geometry", man.Module)
	assert.Equal(t, "1.4.2", man.Version)
	assert.Equal(t, []string{"stdlib"}, man.Requires)
	require.Len(t, man.Types, 2)
	assert.Equal(t, "Point", man.Types[0].Name)
	assert.Empty(t, man.Types[0].Requires)
	assert.Equal(t, "Circle", man.Types[1].Name)
	assert.Equal(t, []string{"render"}, man.Types[1].Requires)
}

func TestParseManifest_InvalidYAML(t *testing.T) {
	_, err := registry.ParseManifest([]byte("module: [unclosed"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse manifest")
}

func TestParseManifest_MissingModuleName(t *testing.T) {
	_, err := registry.ParseManifest([]byte("version: 1.0.0\n"))

	assert.ErrorIs(t, err, registry.ErrInvalidManifest)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geometry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(geometryManifest), 0o600))

	man, err := registry.LoadManifest(path)

	require.NoError(t, err)
	assert.Equal(t, "geometry", man.Module)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := registry.LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read manifest file")
}

func TestRegistry_RegisterManifest_FullBinding(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(registry.NewModule("stdlib", "1.0.0", nil)))
	require.NoError(t, reg.Register(registry.NewModule("render", "1.0.0", nil)))

	man, err := registry.ParseManifest([]byte(geometryManifest))
	require.NoError(t, err)

	mod, err := reg.RegisterManifest(man, map[string]reflect.Type{
		"Point":  reflect.TypeOf(point{}),
		"Circle": reflect.TypeOf(circle{}),
	})
	require.NoError(t, err)
	assert.Equal(t, "geometry", mod.Name())
	assert.Equal(t, "1.4.2", mod.Version())

	got, err := reg.EnumerateTypes(mod)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(point{}), reflect.TypeOf(circle{})}, got)
}

func TestRegistry_RegisterManifest_MissingBindingDegrades(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(registry.NewModule("stdlib", "1.0.0", nil)))
	require.NoError(t, reg.Register(registry.NewModule("render", "1.0.0", nil)))

	man, err := registry.ParseManifest([]byte(geometryManifest))
	require.NoError(t, err)

	// The manifest declares Circle, but the Go side only binds Point.
	mod, err := reg.RegisterManifest(man, map[string]reflect.Type{
		"Point": reflect.TypeOf(point{}),
	})
	require.NoError(t, err)

	_, err = reg.EnumerateTypes(mod)
	var partial *typecache.PartialError[reflect.Type]
	require.ErrorAs(t, err, &partial)
	require.Len(t, partial.Causes, 1)

	var typeErr *typecache.TypeError
	require.ErrorAs(t, partial.Causes[0], &typeErr)
	assert.Equal(t, "Circle", typeErr.TypeName)
	assert.ErrorIs(t, partial.Causes[0], registry.ErrUnbound)
}

func TestRegistry_RegisterManifest_UndeclaredBinding(t *testing.T) {
	reg := registry.New()
	man, err := registry.ParseManifest([]byte(geometryManifest))
	require.NoError(t, err)

	_, err = reg.RegisterManifest(man, map[string]reflect.Type{
		"Point":    reflect.TypeOf(point{}),
		"Circle":   reflect.TypeOf(circle{}),
		"Triangle": reflect.TypeOf(point{}),
	})

	assert.ErrorIs(t, err, registry.ErrUndeclaredBinding)

	// Nothing was registered.
	_, ok := reg.Lookup("geometry")
	assert.False(t, ok)
}

func TestRegistry_RegisterManifest_DuplicateType(t *testing.T) {
	reg := registry.New()
	man := &registry.Manifest{
		Module: "geometry",
		Types: []registry.ManifestType{
			{Name: "Point"},
			{Name: "Point"},
		},
	}

	_, err := reg.RegisterManifest(man, nil)

	assert.ErrorIs(t, err, registry.ErrDuplicateType)
}

func TestRegistry_RegisterManifest_UnnamedType(t *testing.T) {
	reg := registry.New()
	man := &registry.Manifest{
		Module: "geometry",
		Types:  []registry.ManifestType{{Name: ""}},
	}

	_, err := reg.RegisterManifest(man, nil)

	assert.ErrorIs(t, err, registry.ErrInvalidManifest)
}

func TestRegistry_RegisterManifest_DuplicateModule(t *testing.T) {
	reg := registry.New()
	man := &registry.Manifest{Module: "geometry"}

	_, err := reg.RegisterManifest(man, nil)
	require.NoError(t, err)

	_, err = reg.RegisterManifest(man, nil)
	assert.ErrorIs(t, err, registry.ErrDuplicateModule)
}

func TestRegistry_RegisterManifest_NilManifest(t *testing.T) {
	reg := registry.New()

	_, err := reg.RegisterManifest(nil, nil)

	assert.ErrorIs(t, err, registry.ErrInvalidManifest)
}
