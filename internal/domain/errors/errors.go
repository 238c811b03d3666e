// Package errors defines the faults the identity store raises itself, as opposed to the
// faults its collaborators raise and it merely propagates.
package errors

import (
	"fmt"

	"idstore/internal/errors"
)

// Kind classifies an IdentityError.
type Kind int

const (
	// KindInvalidArgument: a required argument is nil or blank.
	KindInvalidArgument Kind = iota + 1
	// KindWrongCapability: the entity lacks a capability the operation needs.
	KindWrongCapability
	// KindInvalidOperation: the stored state does not allow the operation.
	KindInvalidOperation
	// KindDataConsistency: an internal lookup found nothing, so the backing stores disagree.
	KindDataConsistency
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindWrongCapability:
		return "wrong capability"
	case KindInvalidOperation:
		return "invalid operation"
	case KindDataConsistency:
		return "data consistency"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IdentityError is a fault raised by the identity store.
type IdentityError struct {
	kind    Kind
	code    string
	message string
	param   string
}

func newIdentityError(kind Kind, code, message, param string) *IdentityError {
	return &IdentityError{
		kind:    kind,
		code:    code,
		message: message,
		param:   param,
	}
}

// Error implements the error interface.
func (e *IdentityError) Error() string {
	if e.param == "" {
		return e.message
	}

	return fmt.Sprintf("%s (parameter: %s)", e.message, e.param)
}

// Is matches any IdentityError of the same kind, so the package sentinels work with
// errors.Is regardless of message or parameter.
func (e *IdentityError) Is(target error) bool {
	t, ok := target.(*IdentityError)
	if !ok {
		return false
	}

	return t.kind == e.kind
}

// Kind returns the fault classification.
func (e *IdentityError) Kind() Kind { return e.kind }

// ErrorCode returns the stable machine-readable code.
func (e *IdentityError) ErrorCode() string { return e.code }

// Message returns the message without the parameter name.
func (e *IdentityError) Message() string { return e.message }

// Param returns the offending parameter name, if any.
func (e *IdentityError) Param() string { return e.param }

// WrapMessage wraps the error with additional context.
func (e *IdentityError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Sentinels for errors.Is.
var (
	ErrInvalidArgument  = newIdentityError(KindInvalidArgument, "INVALID_ARGUMENT", "invalid argument", "")
	ErrWrongCapability  = newIdentityError(KindWrongCapability, "WRONG_CAPABILITY", "entity lacks a required capability", "")
	ErrInvalidOperation = newIdentityError(KindInvalidOperation, "INVALID_OPERATION", "invalid operation", "")
	ErrDataConsistency  = newIdentityError(KindDataConsistency, "DATA_CONSISTENCY", "backing stores are out of sync", "")
)

// Messages shared by the store.
const (
	MsgNoEmailForConfirmation = "cannot get the confirmation status of the e-mail because user doesn't have an e-mail"
	MsgConfirmationNotFound   = "unable to find item in mail confirmation repository for given user"
	MsgEmailNotFound          = "unable to find item in email repository for given user"
)

// NullArgument reports a nil or blank required argument.
func NullArgument(param string) *IdentityError {
	return newIdentityError(KindInvalidArgument, "ARGUMENT_NULL", "value cannot be null or empty", param)
}

// WrongCapability reports an entity that does not implement capability.
func WrongCapability(param, capability string) *IdentityError {
	return newIdentityError(KindWrongCapability, "WRONG_CAPABILITY",
		fmt.Sprintf("%s isn't of type %s", param, capability), param)
}

// InvalidOperation reports a violated precondition on stored state.
func InvalidOperation(message string) *IdentityError {
	return newIdentityError(KindInvalidOperation, "INVALID_OPERATION", message, "")
}

// DataConsistency reports an internal lookup that came back empty.
func DataConsistency(message string) *IdentityError {
	return newIdentityError(KindDataConsistency, "DATA_CONSISTENCY", message, "")
}

// KindOf returns the Kind of the first IdentityError in err's tree, or 0.
func KindOf(err error) Kind {
	var identityErr *IdentityError
	if errors.As(err, &identityErr) {
		return identityErr.kind
	}

	return 0
}

// ParamOf returns the parameter name of the first IdentityError in err's tree.
func ParamOf(err error) string {
	var identityErr *IdentityError
	if errors.As(err, &identityErr) {
		return identityErr.param
	}

	return ""
}
