package gadk

import (
	"sort"

	"gopkg.in/yaml.v2"
)

// Node is anything that can project itself into a generic YAML value: a
// yaml.MapSlice, a list, a scalar, or nil. Every element of the workflow
// model implements it. The method name follows yaml.v2's Marshaler so that
// a Node handed straight to yaml.Marshal also does the right thing.
//
// Projection is pure: it never mutates the receiver, and it cannot fail for
// a value built through this package's constructors.
type Node interface {
	MarshalYAML() (any, error)
}

// Null projects to an explicit YAML null. Use it where a key must appear
// with no value, such as enabling workflow_dispatch with no inputs.
type Null struct{}

// MarshalYAML returns nil, which renders as "null".
func (Null) MarshalYAML() (any, error) { return nil, nil }

// projectValue reduces v to generic YAML building blocks: yaml.MapSlice,
// []any, []string, scalars, or nil. Nodes are projected eagerly, including
// the values inside any map or list they return, so the result contains no
// element types. Keys of plain Go maps are emitted sorted; their order is
// not semantic, and sorting keeps renders byte-stable.
func projectValue(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case Node:
		u, err := v.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return projectValue(u)
	case yaml.MapSlice:
		doc := make(yaml.MapSlice, 0, len(v))
		for _, item := range v {
			pv, err := projectValue(item.Value)
			if err != nil {
				return nil, err
			}
			doc = append(doc, yaml.MapItem{Key: item.Key, Value: pv})
		}
		return doc, nil
	case map[string]any:
		return projectMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return projectMap(m)
	case []any:
		return projectList(v)
	case []map[string]any:
		list := make([]any, len(v))
		for i, e := range v {
			list[i] = e
		}
		return projectList(list)
	case []string:
		// Already generic; copy so later mutation of the source can't
		// reach into a projected document.
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	default:
		return v, nil
	}
}

// projectMap projects a plain Go map into a key-sorted yaml.MapSlice.
func projectMap(m map[string]any) (yaml.MapSlice, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := make(yaml.MapSlice, 0, len(m))
	for _, k := range keys {
		pv, err := projectValue(m[k])
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: k, Value: pv})
	}
	return doc, nil
}

func projectList(list []any) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, e := range list {
		pv, err := projectValue(e)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}
