package gadk

import "gopkg.in/yaml.v2"

// RunStep executes a shell command. Multi-line commands render as a literal
// block, so a script with several lines stays readable in the output.
type RunStep struct {
	StepMeta

	// Command is the shell command to run.
	Command string
	// WorkingDirectory, if set, is the directory to run the command in.
	WorkingDirectory string
}

func (*RunStep) stepTag() {}

// MarshalYAML projects the step. Key order: name, id, if, run,
// working-directory, continue-on-error, env.
func (s *RunStep) MarshalYAML() (any, error) {
	doc := s.open()
	doc = append(doc, yaml.MapItem{Key: "run", Value: s.Command})
	if s.WorkingDirectory != "" {
		doc = append(doc, yaml.MapItem{Key: "working-directory", Value: s.WorkingDirectory})
	}
	return s.close(doc)
}
