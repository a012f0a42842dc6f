package rendering

import "fmt"

// RenderError wraps a failure to parse or execute a template.
type RenderError struct {
	Template string
	Cause    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
