package survey

import "fmt"

// ValidationError marks a client-caused fault: bad page number, wrong
// answer count, out-of-range score, missing user.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func validationf(format string, args ...any) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}
