package sim

import (
	"errors"
	"fmt"
)

// Code classifies a rejected operation. Every failure the engine can return
// is one of these; all are recoverable by correcting the input.
type Code string

const (
	CodeReferenceNotFound     Code = "REFERENCE_NOT_FOUND"
	CodeCapacityExceeded      Code = "CAPACITY_EXCEEDED"
	CodeInfrastructureMissing Code = "INFRASTRUCTURE_MISSING"
	CodeInsufficientFunds     Code = "INSUFFICIENT_FUNDS"
	CodeAssetInUse            Code = "ASSET_IN_USE"
	CodePlanInvalid           Code = "PLAN_INVALID"
	CodeDuplicateFlight       Code = "DUPLICATE_FLIGHT"
)

// Error is a caller-visible validation failure. Operations either return one
// of these and change nothing, or fully commit.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the classification from an engine error. The second return
// is false for errors that did not originate in the engine.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
