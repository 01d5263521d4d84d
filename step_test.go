package gadk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
)

func TestRunStepMarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		step *RunStep
		want yaml.MapSlice
	}{
		{
			desc: "command only",
			step: &RunStep{Command: "make test"},
			want: yaml.MapSlice{
				{Key: "run", Value: "make test"},
			},
		},
		{
			desc: "all fields in order",
			step: &RunStep{
				StepMeta: StepMeta{
					Name:            "Publish",
					ID:              "publish",
					If:              "github.ref == 'refs/heads/main'",
					Env:             EnvVars{"TOKEN": Expression("secrets.TOKEN")},
					ContinueOnError: Bool(true),
				},
				Command:          "make publish",
				WorkingDirectory: "dist",
			},
			want: yaml.MapSlice{
				{Key: "name", Value: "Publish"},
				{Key: "id", Value: "publish"},
				{Key: "if", Value: "github.ref == 'refs/heads/main'"},
				{Key: "run", Value: "make publish"},
				{Key: "working-directory", Value: "dist"},
				{Key: "continue-on-error", Value: true},
				{Key: "env", Value: yaml.MapSlice{
					{Key: "TOKEN", Value: "${{ secrets.TOKEN }}"},
				}},
			},
		},
		{
			desc: "explicit false continue-on-error is emitted",
			step: &RunStep{
				StepMeta: StepMeta{ContinueOnError: Bool(false)},
				Command:  "make flaky",
			},
			want: yaml.MapSlice{
				{Key: "run", Value: "make flaky"},
				{Key: "continue-on-error", Value: false},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			t.Parallel()

			got, err := test.step.MarshalYAML()
			if err != nil {
				t.Fatalf("RunStep.MarshalYAML() error = %v", err)
			}
			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Errorf("projected step diff (-got +want):\n%s", diff)
			}
		})
	}
}

func TestUsesStepMarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		step *UsesStep
		want yaml.MapSlice
	}{
		{
			desc: "bare action",
			step: &UsesStep{Action: ActionCheckout},
			want: yaml.MapSlice{
				{Key: "uses", Value: "actions/checkout@v4"},
			},
		},
		{
			desc: "with preserves argument order",
			step: &UsesStep{
				StepMeta: StepMeta{Name: "Set up Go"},
				Action:   "actions/setup-go@v5",
				With: With(
					"go-version-file", "go.mod",
					"cache", "false",
				),
			},
			want: yaml.MapSlice{
				{Key: "name", Value: "Set up Go"},
				{Key: "uses", Value: "actions/setup-go@v5"},
				{Key: "with", Value: yaml.MapSlice{
					{Key: "go-version-file", Value: "go.mod"},
					{Key: "cache", Value: "false"},
				}},
			},
		},
		{
			desc: "empty with is omitted",
			step: &UsesStep{Action: "actions/setup-go@v5", With: With()},
			want: yaml.MapSlice{
				{Key: "uses", Value: "actions/setup-go@v5"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			t.Parallel()

			got, err := test.step.MarshalYAML()
			if err != nil {
				t.Fatalf("UsesStep.MarshalYAML() error = %v", err)
			}
			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Errorf("projected step diff (-got +want):\n%s", diff)
			}
		})
	}
}

func TestWithOddArgumentsPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Errorf(`With("name") did not panic`)
		}
	}()
	With("name")
}
