package gadk

// EnvVars maps environment variable names to values. Values are plain
// scalars or Expressions; Expressions are projected to their delimited form.
// Name order is not semantic, so projection emits names sorted to keep
// renders byte-stable.
type EnvVars map[string]any

// MarshalYAML projects the map to a name-sorted yaml.MapSlice.
func (e EnvVars) MarshalYAML() (any, error) {
	return projectMap(e)
}
