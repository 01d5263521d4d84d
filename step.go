package gadk

import "gopkg.in/yaml.v2"

// Step is one entry in a job's steps list. It is a closed interface: the
// implementations are *RunStep (a shell command) and *UsesStep (an action
// use, which the cache and artifact helpers also produce).
type Step interface {
	Node

	// stepTag keeps the interface closed to this package's step kinds.
	stepTag()
}

// StepMeta holds the fields every step kind shares. Embed it in a step
// literal:
//
//	&RunStep{StepMeta: StepMeta{Name: "Run tests"}, Command: "make test"}
//
// All fields are optional; a step with neither name nor id is fine.
type StepMeta struct {
	// Name is the step's display name.
	Name string
	// ID names the step for later reference via steps.<id>.
	ID string
	// If guards the step with a condition expression (without delimiters,
	// e.g. "github.ref == 'refs/heads/main'", or an Expression's String).
	If string
	// Env sets environment variables for this step only.
	Env EnvVars
	// ContinueOnError marks the job as passing even if this step fails.
	// Both explicit true and explicit false are emitted; nil is omitted.
	ContinueOnError *bool
}

// open starts a step's document with the shared leading keys.
func (m *StepMeta) open() yaml.MapSlice {
	doc := yaml.MapSlice{}
	if m.Name != "" {
		doc = append(doc, yaml.MapItem{Key: "name", Value: m.Name})
	}
	if m.ID != "" {
		doc = append(doc, yaml.MapItem{Key: "id", Value: m.ID})
	}
	if m.If != "" {
		doc = append(doc, yaml.MapItem{Key: "if", Value: m.If})
	}
	return doc
}

// close appends the shared trailing keys after the subtype's own.
func (m *StepMeta) close(doc yaml.MapSlice) (yaml.MapSlice, error) {
	if m.ContinueOnError != nil {
		doc = append(doc, yaml.MapItem{Key: "continue-on-error", Value: *m.ContinueOnError})
	}
	if len(m.Env) > 0 {
		env, err := m.Env.MarshalYAML()
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "env", Value: env})
	}
	return doc, nil
}

// Bool returns a pointer to b, for the tri-state *bool fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for the optional *int fields.
func Int(n int) *int { return &n }
