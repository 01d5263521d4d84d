package gadk

import "fmt"

// Expression is a GitHub Actions expression, like "secrets.TOKEN" or
// "matrix.os". It renders wrapped in the platform's interpolation
// delimiters and is otherwise opaque: nothing here evaluates it.
type Expression string

// String returns the delimited form, e.g. "${{ github.sha }}". Useful for
// embedding an expression inside a larger string such as a cache key or an
// if: condition.
func (e Expression) String() string {
	return fmt.Sprintf("${{ %s }}", string(e))
}

// MarshalYAML projects the expression to its delimited string form.
func (e Expression) MarshalYAML() (any, error) {
	return e.String(), nil
}
