package records

import (
	"fmt"

	statuserrors "github.com/status-im/status-names/errors"
)

// ErrInvalidFullName is returned for a full name without a prefix part.
var ErrInvalidFullName = statuserrors.New(statuserrors.ErrorCodeInvalidRequest, "full name must be <name>.<prefix>")

// PrefixMismatchError is returned when an address is bound under a prefix
// other than its own.
type PrefixMismatchError struct {
	Prefix  string
	Address string
}

func (e *PrefixMismatchError) Error() string {
	return fmt.Sprintf("address %s does not use prefix %q", e.Address, e.Prefix)
}

// Code implements errors.Coded.
func (e *PrefixMismatchError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeBech32PrefixMismatch
}

type RecordNotFoundError struct {
	Name    string
	Prefix  string
	Address string
}

func (e *RecordNotFoundError) Error() string {
	if e.Address == "" {
		return fmt.Sprintf("record not found: %s.%s", e.Name, e.Prefix)
	}
	return fmt.Sprintf("record not found: %s.%s -> %s", e.Name, e.Prefix, e.Address)
}

// Code implements errors.Coded.
func (e *RecordNotFoundError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeRecordNotFound
}

// PrimaryRemovalNotAllowedError is returned when removing the record
// behind the primary name of an address that has other records. The
// primary has to be moved first.
type PrimaryRemovalNotAllowedError struct {
	Name    string
	Address string
	Records int
}

func (e *PrimaryRemovalNotAllowedError) Error() string {
	return fmt.Sprintf("cannot remove primary name %q of %s while it has %d records, set another primary first", e.Name, e.Address, e.Records)
}

// Code implements errors.Coded.
func (e *PrimaryRemovalNotAllowedError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodePrimaryRemovalNotAllowed
}
