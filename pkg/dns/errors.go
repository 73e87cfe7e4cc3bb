package dns

import (
	"fmt"
	"reflect"
)

// ZoneNotFoundError is returned when no zone at the provider matches the
// requested domain exactly.
type ZoneNotFoundError struct {
	Domain string
}

func (e *ZoneNotFoundError) Error() string {
	return fmt.Sprintf("could not find zone for domain %q", e.Domain)
}

func (e *ZoneNotFoundError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// DependencyError is returned when a provider call fails: transport errors,
// non-2xx responses and provider-reported validation errors. The provider's
// detail is preserved in Err.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func (e *DependencyError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// RecordParseError is returned when a live record cannot be parsed into the
// record model, e.g. an unparsable IP literal in an A record. A corrupt
// record fails the whole read instead of silently vanishing from the view:
// a reconciler that cannot see the record would recreate a duplicate.
type RecordParseError struct {
	Value    string
	Hostname string
	Domain   string
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("could not parse IP %q of A record for hostname %q in domain %q", e.Value, e.Hostname, e.Domain)
}

func (e *RecordParseError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// TruncatedListingError is returned when a listing the adapter does not
// paginate returned more data than a single page holds. Truncation is a hard
// failure rather than an invitation to operate on partial data.
type TruncatedListingError struct {
	Listing string
}

func (e *TruncatedListingError) Error() string {
	return fmt.Sprintf("%s listing truncated", e.Listing)
}

func (e *TruncatedListingError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}
