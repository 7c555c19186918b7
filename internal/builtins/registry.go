// Package builtins implements the fixed set of built-in functions the
// analyzer can call: their type signatures, loaded from an embedded YAML
// table, and their actual Go implementations.
package builtins

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/quill-lang/quill/internal/types"
)

//go:embed registry.yaml
var registryYAML []byte

// FunctionInfo is one built-in's type signature: its positional parameter
// types, its return type, and the module it is grouped under (recorded
// only; no lookup or diagnostic reads it).
type FunctionInfo struct {
	Name    string
	Params  []types.Type
	Returns types.Type
	Module  string
}

// rawEntry mirrors one YAML list entry before its textual type names are
// resolved to types.Type values.
type rawEntry struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params"`
	Returns string   `yaml:"returns"`
	Module  string   `yaml:"module"`
}

type rawTable struct {
	Functions []rawEntry `yaml:"functions"`
}

// Registry is a read-only, name-indexed table of FunctionInfo. It is built
// once from the embedded YAML document and never mutated afterward.
type Registry struct {
	byName map[string]FunctionInfo
}

// Lookup returns the signature registered for name, and whether it exists.
func (r *Registry) Lookup(name string) (FunctionInfo, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// Default is the registry every analyzer uses; it is loaded once at package
// initialization from the embedded registry.yaml.
var Default = mustLoad()

func mustLoad() *Registry {
	r, err := load(registryYAML)
	if err != nil {
		panic(fmt.Sprintf("builtins: malformed embedded registry.yaml: %v", err))
	}
	return r
}

func load(doc []byte) (*Registry, error) {
	var raw rawTable
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("parsing builtin registry: %w", err)
	}
	reg := &Registry{byName: make(map[string]FunctionInfo, len(raw.Functions))}
	for _, entry := range raw.Functions {
		params := make([]types.Type, len(entry.Params))
		for i, p := range entry.Params {
			t, err := resolveTypeName(p)
			if err != nil {
				return nil, fmt.Errorf("function %q, parameter %d: %w", entry.Name, i, err)
			}
			params[i] = t
		}
		ret, err := resolveTypeName(entry.Returns)
		if err != nil {
			return nil, fmt.Errorf("function %q: return type: %w", entry.Name, err)
		}
		reg.byName[entry.Name] = FunctionInfo{
			Name:    entry.Name,
			Params:  params,
			Returns: ret,
			Module:  entry.Module,
		}
	}
	return reg, nil
}

func resolveTypeName(name string) (types.Type, error) {
	switch name {
	case "Integer":
		return types.IntegerType, nil
	case "Decimal":
		return types.DecimalType, nil
	case "String":
		return types.StringType, nil
	case "Bool":
		return types.BoolType, nil
	case "Void":
		return types.VoidType, nil
	default:
		return types.Type{}, fmt.Errorf("unknown type name %q", name)
	}
}
