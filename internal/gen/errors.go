package gen

import (
	"errors"
	"fmt"
)

// Generation failure taxonomy. Each kind surfaces once to the caller, which
// decides whether to retry; nothing here retries internally.
var (
	ErrUnavailable     = errors.New("generation unavailable")
	ErrEmptyGeneration = errors.New("model returned no content")
	ErrMalformed       = errors.New("model did not return valid JSON")
	ErrSchemaViolation = errors.New("model response did not match expected shape")
)

// SchemaError carries enough detail (path + expectation) to diagnose a
// non-conforming model response from logs.
type SchemaError struct {
	Path   string
	Expect string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %q: expected %s", e.Path, e.Expect)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }
