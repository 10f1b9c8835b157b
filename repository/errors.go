package repository

import (
	"fmt"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
)

// Typed failures raised by repository operations. The route layer only ever
// inspects these kinds when picking a status code; raw store errors stay
// internal.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// InvalidArgumentError reports malformed or unresolvable input. Items holds
// every offending value, not just the first, so a caller can fix the whole
// batch at once.
type InvalidArgumentError struct {
	Reason string
	Items  []string
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Items) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Items, ", "))
}

func NewInvalidArgument(reason string, items ...string) error {
	return &InvalidArgumentError{Reason: reason, Items: items}
}

func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// uniqueViolationCode is the Postgres error code for a unique constraint
// violation.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
