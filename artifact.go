package gadk

import "fmt"

// Artifact pairs an artifact name with the path it is collected from, and
// produces the matching upload and download steps. Declare it once and use
// it from both the producing and the consuming job:
//
//	dist := Artifact{Name: "dist", Path: "build/dist"}
//	buildJob.AddStep(dist.UploadStep())
//	deployJob.AddStep(dist.DownloadStep())
type Artifact struct {
	Name string
	Path string
	// IfNoFilesFound sets the upload behavior when Path matches nothing:
	// "warn", "error", or "ignore". Empty leaves it to the action's
	// default.
	IfNoFilesFound string
}

// UploadStep returns a step uploading the artifact.
func (a Artifact) UploadStep() *UsesStep {
	with := With("name", a.Name, "path", a.Path)
	if a.IfNoFilesFound != "" {
		with.Set("if-no-files-found", a.IfNoFilesFound)
	}
	return &UsesStep{
		StepMeta: StepMeta{Name: fmt.Sprintf("Upload artifact '%s'", a.Name)},
		Action:   ActionUpload,
		With:     with,
	}
}

// DownloadStep returns a step downloading the artifact to the path it was
// uploaded from.
func (a Artifact) DownloadStep() *UsesStep {
	return a.DownloadStepTo(a.Path)
}

// DownloadStepTo returns a step downloading the artifact to an alternate
// destination.
func (a Artifact) DownloadStepTo(path string) *UsesStep {
	return &UsesStep{
		StepMeta: StepMeta{Name: fmt.Sprintf("Download artifact '%s'", a.Name)},
		Action:   ActionDownload,
		With:     With("name", a.Name, "path", path),
	}
}
