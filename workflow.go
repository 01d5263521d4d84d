package gadk

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/Piclo/gadk/ordered"
)

// ErrNoConcurrencyGroup is returned by NewWorkflow when cancel-in-progress
// is configured without a concurrency group.
var ErrNoConcurrencyGroup = errors.New("cancel-in-progress requires a concurrency group")

// WorkflowConfig configures NewWorkflow.
type WorkflowConfig struct {
	// Name is the workflow's display name.
	Name string
	// Env sets environment variables for the whole workflow.
	Env EnvVars
	// ConcurrencyGroup serializes runs sharing the group name.
	ConcurrencyGroup string
	// CancelInProgress cancels an in-flight run when a new one starts: a
	// bool or an Expression. Requires ConcurrencyGroup.
	CancelInProgress any
	// Permissions maps token scopes ("contents", "id-token", ...) to
	// access levels ("read", "write", "none").
	Permissions map[string]string
}

// Workflow is the document root: triggers, workflow-level configuration,
// and an ordered collection of jobs, rendered to one file. Construct it
// with NewWorkflow.
type Workflow struct {
	filename         string
	name             string
	env              EnvVars
	concurrencyGroup string
	cancelInProgress any
	permissions      map[string]string
	on               *ordered.Map[string, Node]
	jobs             *ordered.Map[string, *Job]
}

// NewWorkflow validates cfg and returns the workflow. filename is the
// workflow's identity: rendered output is written to <filename>.yml.
func NewWorkflow(filename string, cfg WorkflowConfig) (*Workflow, error) {
	if filename == "" {
		return nil, errors.New("workflow filename must not be empty")
	}
	switch cfg.CancelInProgress.(type) {
	case nil, bool, Expression:
	default:
		return nil, fmt.Errorf("workflow %q: cancel-in-progress must be a bool or Expression, got %T", filename, cfg.CancelInProgress)
	}
	if cfg.CancelInProgress != nil && cfg.ConcurrencyGroup == "" {
		return nil, fmt.Errorf("workflow %q: %w", filename, ErrNoConcurrencyGroup)
	}

	return &Workflow{
		filename:         filename,
		name:             cfg.Name,
		env:              cfg.Env,
		concurrencyGroup: cfg.ConcurrencyGroup,
		cancelInProgress: cfg.CancelInProgress,
		permissions:      cfg.Permissions,
		on:               ordered.NewMap[string, Node](4),
		jobs:             ordered.NewMap[string, *Job](4),
	}, nil
}

// Filename returns the identity the workflow was created with.
func (w *Workflow) Filename() string {
	return w.filename
}

// OutputFile returns the name of the file rendered output belongs in,
// Filename() plus the ".yml" extension.
func (w *Workflow) OutputFile() string {
	return w.filename + ".yml"
}

// On sets and clears trigger entries. A set field overwrites that entry,
// keeping the position it first appeared at; a nil field removes the
// entry. Calling On again with the same arguments is a no-op.
func (w *Workflow) On(t Triggers) {
	w.setTrigger("push", t.Push)
	w.setTrigger("pull_request", t.PullRequest)
	if t.WorkflowDispatch != nil {
		w.on.Set("workflow_dispatch", t.WorkflowDispatch)
	} else {
		w.on.Delete("workflow_dispatch")
	}
	w.setTrigger("schedule", t.Schedule)
}

func (w *Workflow) setTrigger(key string, o *On) {
	if o == nil {
		w.on.Delete(key)
		return
	}
	w.on.Set(key, o)
}

// AddJob adds the job under the given key. Adding a key again replaces the
// job but keeps its position. Key insertion order is emission order.
func (w *Workflow) AddJob(key string, j *Job) {
	w.jobs.Set(key, j)
}

// MarshalYAML projects the workflow. Key order: name, env, concurrency,
// permissions, on, jobs. The on key is always present, even when no
// triggers are set.
func (w *Workflow) MarshalYAML() (any, error) {
	doc := yaml.MapSlice{}
	if w.name != "" {
		doc = append(doc, yaml.MapItem{Key: "name", Value: w.name})
	}
	if len(w.env) > 0 {
		env, err := w.env.MarshalYAML()
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "env", Value: env})
	}

	if w.concurrencyGroup != "" {
		var concurrency any = w.concurrencyGroup
		if w.cancelInProgress != nil {
			cancel, err := projectValue(w.cancelInProgress)
			if err != nil {
				return nil, err
			}
			concurrency = yaml.MapSlice{
				{Key: "group", Value: w.concurrencyGroup},
				{Key: "cancel-in-progress", Value: cancel},
			}
		}
		doc = append(doc, yaml.MapItem{Key: "concurrency", Value: concurrency})
	}

	if len(w.permissions) > 0 {
		permissions, err := projectValue(w.permissions)
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "permissions", Value: permissions})
	}

	on, err := projectValue(w.on)
	if err != nil {
		return nil, err
	}
	doc = append(doc, yaml.MapItem{Key: "on", Value: on})

	if w.jobs.Len() > 0 {
		jobs, err := projectValue(w.jobs)
		if err != nil {
			return nil, err
		}
		doc = append(doc, yaml.MapItem{Key: "jobs", Value: jobs})
	}
	return doc, nil
}
