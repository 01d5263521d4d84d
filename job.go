package gadk

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v2"
)

// DefaultRunsOn is the runner label used when JobConfig.RunsOn is empty.
const DefaultRunsOn = "ubuntu-latest"

// ErrNoMatrix is returned by NewJob when fail-fast or max-parallel is
// configured without a matrix.
var ErrNoMatrix = errors.New("fail-fast and max-parallel require a matrix")

// Matrix is a literal build matrix. Values maps each variable to the list
// it ranges over; Include and Exclude pass through to the corresponding
// strategy keys. Variable names are emitted sorted; Include and Exclude
// entries keep their list order.
type Matrix struct {
	Values  map[string][]any
	Include []map[string]any
	Exclude []map[string]any
}

// MarshalYAML projects the matrix: the sorted variables, then include,
// then exclude, each omitted when empty.
func (m *Matrix) MarshalYAML() (any, error) {
	if m == nil {
		return yaml.MapSlice{}, nil
	}
	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := yaml.MapSlice{}
	for _, k := range keys {
		pv, err := projectValue(m.Values[k])
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: k, Value: pv})
	}
	if len(m.Include) > 0 {
		pv, err := projectValue(m.Include)
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "include", Value: pv})
	}
	if len(m.Exclude) > 0 {
		pv, err := projectValue(m.Exclude)
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "exclude", Value: pv})
	}
	return doc, nil
}

// JobConfig configures NewJob. The zero value is a valid job that checks
// out the repository on ubuntu-latest and does nothing else.
type JobConfig struct {
	// Name is the job's display name.
	Name string
	// If guards the job with a condition expression.
	If string
	// RunsOn is the runner label. Defaults to DefaultRunsOn.
	RunsOn string
	// Matrix is a *Matrix literal or an Expression referring to one.
	Matrix any
	// FailFast cancels in-flight matrix jobs when one fails. Requires
	// Matrix.
	FailFast *bool
	// MaxParallel caps concurrently running matrix jobs. Requires Matrix.
	MaxParallel *int
	// Steps run in order. A checkout step is prepended unless
	// SkipCheckout.
	Steps []Step
	// Needs declares dependencies: a single job key (string) or several
	// ([]string).
	Needs any
	// Outputs maps output names to values, typically Expressions.
	Outputs map[string]any
	// Env sets environment variables for every step in the job.
	Env EnvVars
	// SkipCheckout leaves the checkout step out.
	SkipCheckout bool
}

// Job is a named unit of work within a workflow. Construct it with NewJob;
// the zero Job is not usable.
type Job struct {
	name        string
	condition   string
	runsOn      string
	matrix      any
	failFast    *bool
	maxParallel *int
	needs       any
	outputs     map[string]any
	env         EnvVars
	steps       []Step
}

// NewJob validates cfg and returns the job. Configuring FailFast or
// MaxParallel without a Matrix is an error, as are unsupported Matrix or
// Needs types.
func NewJob(cfg JobConfig) (*Job, error) {
	matrix := cfg.Matrix
	switch m := matrix.(type) {
	case nil, Expression:
	case *Matrix:
		// A nil *Matrix carries no variables; treat it as absent.
		if m == nil {
			matrix = nil
		}
	default:
		return nil, fmt.Errorf("job %q: matrix must be *Matrix or Expression, got %T", cfg.Name, cfg.Matrix)
	}
	if matrix == nil && (cfg.FailFast != nil || cfg.MaxParallel != nil) {
		return nil, fmt.Errorf("job %q: %w", cfg.Name, ErrNoMatrix)
	}
	switch cfg.Needs.(type) {
	case nil, string, []string:
	default:
		return nil, fmt.Errorf("job %q: needs must be a string or []string, got %T", cfg.Name, cfg.Needs)
	}

	runsOn := cfg.RunsOn
	if runsOn == "" {
		runsOn = DefaultRunsOn
	}

	steps := make([]Step, 0, len(cfg.Steps)+1)
	if !cfg.SkipCheckout {
		steps = append(steps, &UsesStep{Action: ActionCheckout})
	}
	steps = append(steps, cfg.Steps...)

	return &Job{
		name:        cfg.Name,
		condition:   cfg.If,
		runsOn:      runsOn,
		matrix:      matrix,
		failFast:    cfg.FailFast,
		maxParallel: cfg.MaxParallel,
		needs:       cfg.Needs,
		outputs:     cfg.Outputs,
		env:         cfg.Env,
		steps:       steps,
	}, nil
}

// AddStep appends a step after construction.
func (j *Job) AddStep(s Step) {
	j.steps = append(j.steps, s)
}

// MarshalYAML projects the job. Key order: name, if, needs, runs-on,
// strategy, outputs, env, steps.
func (j *Job) MarshalYAML() (any, error) {
	doc := yaml.MapSlice{}
	if j.name != "" {
		doc = append(doc, yaml.MapItem{Key: "name", Value: j.name})
	}
	if j.condition != "" {
		doc = append(doc, yaml.MapItem{Key: "if", Value: j.condition})
	}
	if j.needs != nil {
		needs, err := projectValue(j.needs)
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "needs", Value: needs})
	}
	doc = append(doc, yaml.MapItem{Key: "runs-on", Value: j.runsOn})

	if j.matrix != nil {
		matrix, err := projectValue(j.matrix)
		if err != nil {
			return nil, err
		}
		strategy := yaml.MapSlice{{Key: "matrix", Value: matrix}}
		if j.failFast != nil {
			strategy = append(strategy, yaml.MapItem{Key: "fail-fast", Value: *j.failFast})
		}
		if j.maxParallel != nil {
			strategy = append(strategy, yaml.MapItem{Key: "max-parallel", Value: *j.maxParallel})
		}
		doc = append(doc, yaml.MapItem{Key: "strategy", Value: strategy})
	}

	if len(j.outputs) > 0 {
		outputs, err := projectMap(j.outputs)
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "outputs", Value: outputs})
	}
	if len(j.env) > 0 {
		env, err := j.env.MarshalYAML()
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "env", Value: env})
	}

	if len(j.steps) > 0 {
		steps := make([]any, 0, len(j.steps))
		for _, s := range j.steps {
			ps, err := projectValue(s)
			if err != nil {
				return nil, err
			}
			steps = append(steps, ps)
		}
		doc = append(doc, yaml.MapItem{Key: "steps", Value: steps})
	}
	return doc, nil
}
