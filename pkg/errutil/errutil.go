package errutil

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrIllegalParameter   = errors.New("illegal parameter")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrServerInternal     = errors.New("server internal error")
	ErrDBOperation        = errors.New("database opertaion failed")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrAlreadyInRoom      = errors.New("player already in room")
	ErrHistoryNotFound    = errors.New("history not found")
	ErrIllegalPhase       = errors.New("illegal game phase")
	ErrIllegalDeclaration = errors.New("illegal declaration")
	ErrIllegalPlay        = errors.New("illegal play")
	ErrOutOfTurn          = errors.New("out of turn")
	ErrInvalidRedealState = errors.New("invalid redeal state")
	ErrInternalInvariant  = errors.New("internal invariant violated")
)

// Reject wraps a sentinel error with the human readable reason of the rejection.
func Reject(sentinel error, reason string) error {
	return pkgerrors.Wrap(sentinel, reason)
}

// Rejectf is Reject with a formatted reason.
func Rejectf(sentinel error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(sentinel, format, args...)
}

// Is reports whether err was produced from the given sentinel.
func Is(err, sentinel error) bool {
	return pkgerrors.Cause(err) == sentinel
}

// Reason returns the rejection reason carried by err, or the error text itself
// when err is a bare sentinel.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	cause := pkgerrors.Cause(err)
	msg := err.Error()
	if cause == err {
		return msg
	}
	return strings.TrimSuffix(msg, ": "+cause.Error())
}

// Code code for the error
func Code(err error) int {
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
