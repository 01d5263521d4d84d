package gadk

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// ProvenanceHeader is the comment line opening every rendered document, so
// a reader of the generated file knows where to edit instead.
const ProvenanceHeader = "# This file is managed by gadk. For more information see https://github.com/Piclo/gadk."

// yaml.v2 soft-wraps long lines at column 80 unless told not to. Wrapping
// inside scalar content would corrupt commands and cache keys, so turn it
// off process-wide.
func init() {
	yaml.FutureLineWrap()
}

// Render projects the workflow and serializes it: the provenance header
// line followed by the YAML document. Rendering the same graph twice
// produces identical bytes, so generated files can be compared for drift
// with plain string equality.
func (w *Workflow) Render() (string, error) {
	doc, err := w.MarshalYAML()
	if err != nil {
		return "", fmt.Errorf("projecting workflow %q: %w", w.filename, err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serializing workflow %q: %w", w.filename, err)
	}
	return ProvenanceHeader + "\n" + string(out), nil
}
