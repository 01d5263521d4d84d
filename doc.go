// Package gadk declares GitHub Actions workflows as Go values and renders
// them to YAML.
//
// A Workflow is built from Jobs, which are built from Steps (shell commands
// or action uses), then rendered with Render. Rendering is deterministic:
// the same object graph always produces byte-identical output, so generated
// files can be checked for drift with plain string comparison.
//
// The object model has these caveats:
//   - It is incomplete: GitHub accepts workflow keys this model does not
//     have. Do not treat Workflow, Job, etc, as a reference guide for the
//     workflow syntax.
//   - It is write-only: there is no unmarshaling. Generated files are the
//     output, not an interchange format.
//   - It is non-canonical: building a Workflow does not guarantee GitHub
//     will accept it; no schema validation is performed beyond the
//     construction rules documented on NewJob and NewWorkflow.
package gadk
