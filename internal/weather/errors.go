package weather

import (
	"fmt"
	"strings"
)

// FetchError covers everything that can go wrong between issuing the
// request and holding a parsed document: unreachable host, non-2xx status,
// a body that does not parse as XML. Callers see a single category with
// the underlying cause attached, so a retry decision (transport problem)
// can be told apart from a ValidationError (feed shape problem).
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports a response that parsed but is missing one or
// both of the required sections.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("response missing required sections: %s", strings.Join(e.Missing, ", "))
}
