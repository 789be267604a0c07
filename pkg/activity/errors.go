package activity

import "fmt"

// FetchErrorKind classifies a platform fetch failure.
type FetchErrorKind string

const (
	FetchNotFound    FetchErrorKind = "not_found"
	FetchRateLimited FetchErrorKind = "rate_limited"
	FetchNetwork     FetchErrorKind = "network_error"
	FetchTimeout     FetchErrorKind = "timeout"
)

// FetchError is a fetch failure scoped to a single snapshot.
// It is recorded on the snapshot and never escalates to a request failure.
type FetchError struct {
	Kind   FetchErrorKind
	Detail string
}

func (e *FetchError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}
