package gadk

import "gopkg.in/yaml.v2"

// On describes the event filters for one trigger kind: path globs and
// branch globs for push/pull_request triggers, or cron entries for a
// schedule trigger.
//
// With Crons set, On projects to the schedule form: a list with each cron
// wrapped as {cron: <entry>}. Otherwise it projects to a map holding paths
// then branches, omitting whichever is empty; an On with nothing set
// projects to an empty map, meaning "any event of this kind".
type On struct {
	Paths    []string
	Branches []string
	Crons    []string
}

// MarshalYAML projects the trigger filters.
func (o *On) MarshalYAML() (any, error) {
	if o == nil {
		return yaml.MapSlice{}, nil
	}

	if len(o.Crons) > 0 {
		entries := make([]any, 0, len(o.Crons))
		for _, c := range o.Crons {
			entries = append(entries, yaml.MapSlice{{Key: "cron", Value: c}})
		}
		return entries, nil
	}

	doc := yaml.MapSlice{}
	if len(o.Paths) > 0 {
		doc = append(doc, yaml.MapItem{Key: "paths", Value: o.Paths})
	}
	if len(o.Branches) > 0 {
		doc = append(doc, yaml.MapItem{Key: "branches", Value: o.Branches})
	}
	return doc, nil
}

// Triggers names the trigger entries a workflow can carry. Passing a set
// field to Workflow.On sets or overwrites that entry; leaving it nil
// removes any existing entry for that key.
type Triggers struct {
	Push        *On
	PullRequest *On
	// WorkflowDispatch usually wants Null{} (renders "workflow_dispatch:
	// null") or &On{} (renders an empty map).
	WorkflowDispatch Node
	// Schedule is an On with Crons set.
	Schedule *On
}
