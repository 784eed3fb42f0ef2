package thoth

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUnsupportedVersion   = errors.New("unsupported API version")
	ErrUnsupportedOperation = errors.New("operation not supported by this API version")
	ErrUnsupportedParameter = errors.New("parameter not supported by this operation")
	ErrInvalidID            = errors.New("invalid Thoth ID")
	ErrInvalidDOI           = errors.New("invalid DOI")
	ErrNotFound             = errors.New("not found")
)

// VersionError reports a version string that no bound API exists for
type VersionError struct {
	Version   string
	Supported []string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: %q (supported: %v)", ErrUnsupportedVersion, e.Version, e.Supported)
}

func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// OperationError reports an operation or parameter the bound version lacks
type OperationError struct {
	Version   string
	Operation string
	Parameter string
	Err       error
}

func (e *OperationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("%s %s: %s does not accept %q", e.Err, e.Version, e.Operation, e.Parameter)
	}
	return fmt.Sprintf("%s %s: %s", e.Err, e.Version, e.Operation)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested entity does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
