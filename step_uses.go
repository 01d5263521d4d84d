package gadk

import (
	"gopkg.in/yaml.v2"

	"github.com/Piclo/gadk/ordered"
)

// Action references used by the steps this package generates.
const (
	ActionCheckout = "actions/checkout@v4"
	ActionUpload   = "actions/upload-artifact@v4"
	ActionDownload = "actions/download-artifact@v4"
)

// UsesStep invokes a reusable action by reference, e.g.
// "actions/setup-go@v5". Arguments go in With, which preserves the order
// keys were set in.
type UsesStep struct {
	StepMeta

	// Action is the action reference, owner/action@version.
	Action string
	// With holds the action's arguments. Build it with gadk.With.
	With *ordered.MapSS
}

func (*UsesStep) stepTag() {}

// MarshalYAML projects the step. Key order: name, id, if, uses, with,
// continue-on-error, env.
func (s *UsesStep) MarshalYAML() (any, error) {
	doc := s.open()
	doc = append(doc, yaml.MapItem{Key: "uses", Value: s.Action})
	if s.With.Len() > 0 {
		with := make(yaml.MapSlice, 0, s.With.Len())
		s.With.Range(func(k, v string) error {
			with = append(with, yaml.MapItem{Key: k, Value: v})
			return nil
		})
		doc = append(doc, yaml.MapItem{Key: "with", Value: with})
	}
	return s.close(doc)
}

// With builds an ordered argument map from alternating key/value pairs:
//
//	With("name", "dist", "path", "build/")
//
// It panics if given an odd number of arguments.
func With(pairs ...string) *ordered.MapSS {
	if len(pairs)%2 != 0 {
		panic("gadk.With: odd number of arguments")
	}
	m := ordered.NewMap[string, string](len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}
