package iec104

import (
	"errors"
	"fmt"
)

// ErrNotEnoughBytes is returned by a decode operation that ran out of input.
type ErrNotEnoughBytes struct {
	Need int
	Have int
}

func (e *ErrNotEnoughBytes) Error() string {
	return fmt.Sprintf("not enough bytes: need %d, have %d", e.Need, e.Have)
}

func IsErrNotEnoughBytes(err error) bool {
	var e *ErrNotEnoughBytes
	return errors.As(err, &e)
}

// ErrInvalidTimeField is returned when a CP16/24/56Time2a field fails its
// range check on decode.
type ErrInvalidTimeField struct {
	Field string
	Value int
}

func (e *ErrInvalidTimeField) Error() string {
	return fmt.Sprintf("invalid time field %s: %d", e.Field, e.Value)
}

func IsErrInvalidTimeField(err error) bool {
	var e *ErrInvalidTimeField
	return errors.As(err, &e)
}

// ErrUnknownType is returned for an ASDU type code with no registered value
// codec. It is per-frame, not connection fatal: the caller is expected to
// reply with COT = UnknownType and keep the connection.
type ErrUnknownType struct {
	TypeID TypeID
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown or unimplemented type id %d", uint8(e.TypeID))
}

func IsErrUnknownType(err error) bool {
	var e *ErrUnknownType
	return errors.As(err, &e)
}

// ErrNumberOfObjectsMismatch is returned when an ASDU's declared object
// count doesn't match the remaining bytes for its type and sequence mode.
type ErrNumberOfObjectsMismatch struct {
	ExpectedBytes int
	RemainBytes   int
}

func (e *ErrNumberOfObjectsMismatch) Error() string {
	return fmt.Sprintf("number of objects mismatch: expected %d remaining bytes, have %d",
		e.ExpectedBytes, e.RemainBytes)
}

func IsErrNumberOfObjectsMismatch(err error) bool {
	var e *ErrNumberOfObjectsMismatch
	return errors.As(err, &e)
}

// ErrTooManyObjects is returned by encode when more than 127 objects were
// requested in a single ASDU (the object-count field is 7 bits).
type ErrTooManyObjects struct {
	Count int
}

func (e *ErrTooManyObjects) Error() string {
	return fmt.Sprintf("too many objects: %d (max 127)", e.Count)
}

func IsErrTooManyObjects(err error) bool {
	var e *ErrTooManyObjects
	return errors.As(err, &e)
}

// ErrInvalidStart is returned when an APDU does not begin with 0x68.
type ErrInvalidStart struct {
	Got byte
}

func (e *ErrInvalidStart) Error() string {
	return fmt.Sprintf("invalid start byte: 0x%02X, expected 0x68", e.Got)
}

func IsErrInvalidStart(err error) bool {
	var e *ErrInvalidStart
	return errors.As(err, &e)
}

// ErrInvalidLength is returned when an APDU length byte exceeds 253.
type ErrInvalidLength struct {
	Got int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid apdu length: %d (max 253)", e.Got)
}

func IsErrInvalidLength(err error) bool {
	var e *ErrInvalidLength
	return errors.As(err, &e)
}

// ErrInvalidControlField is returned when a fixed-length (4-byte) APDU's
// control byte doesn't match the S or U frame bit patterns.
type ErrInvalidControlField struct {
	Got byte
}

func (e *ErrInvalidControlField) Error() string {
	return fmt.Sprintf("invalid control field: 0x%02X", e.Got)
}

func IsErrInvalidControlField(err error) bool {
	var e *ErrInvalidControlField
	return errors.As(err, &e)
}

// ErrSequenceNumberMismatch is connection fatal: a received I-frame's SSN
// did not equal the session's expected received_counter.
type ErrSequenceNumberMismatch struct {
	Expected uint16
	Got      uint16
}

func (e *ErrSequenceNumberMismatch) Error() string {
	return fmt.Sprintf("sequence number mismatch: expected %d, got %d", e.Expected, e.Got)
}

func IsErrSequenceNumberMismatch(err error) bool {
	var e *ErrSequenceNumberMismatch
	return errors.As(err, &e)
}

// ErrAckOutsideWindow is connection fatal: a received RSN did not fall
// within the outstanding send window.
type ErrAckOutsideWindow struct {
	Rsn uint16
}

func (e *ErrAckOutsideWindow) Error() string {
	return fmt.Sprintf("acknowledge %d outside send window", e.Rsn)
}

func IsErrAckOutsideWindow(err error) bool {
	var e *ErrAckOutsideWindow
	return errors.As(err, &e)
}

// ErrOutputBufferFull is a per-call failure: the outstanding-sent window
// (capacity k) is full and send_asdu must fail fast.
type ErrOutputBufferFull struct{}

func (e *ErrOutputBufferFull) Error() string { return "output buffer full" }

func IsErrOutputBufferFull(err error) bool {
	var e *ErrOutputBufferFull
	return errors.As(err, &e)
}

// ErrNotConnected is a per-call failure: there is no live transport.
type ErrNotConnected struct{}

func (e *ErrNotConnected) Error() string { return "not connected" }

func IsErrNotConnected(err error) bool {
	var e *ErrNotConnected
	return errors.As(err, &e)
}

// ErrNotReceiving is a per-call failure: the session is not in Started.
type ErrNotReceiving struct{}

func (e *ErrNotReceiving) Error() string { return "not receiving" }

func IsErrNotReceiving(err error) bool {
	var e *ErrNotReceiving
	return errors.As(err, &e)
}

// ErrReconnecting is a per-call failure: the session is re-establishing
// its transport and cannot accept new work.
type ErrReconnecting struct{}

func (e *ErrReconnecting) Error() string { return "reconnecting" }

func IsErrReconnecting(err error) bool {
	var e *ErrReconnecting
	return errors.As(err, &e)
}

// ErrLifecycleConflict is a per-call failure, e.g. calling StartReceiving
// while already Started.
type ErrLifecycleConflict struct {
	State LifecycleState
}

func (e *ErrLifecycleConflict) Error() string {
	return fmt.Sprintf("lifecycle conflict: already %s", e.State)
}

func IsErrLifecycleConflict(err error) bool {
	var e *ErrLifecycleConflict
	return errors.As(err, &e)
}

// FatalError wraps any error whose category is "Connection fatal" per the
// error taxonomy: the engine surfaces it through on_error and transitions
// the lifecycle to Reconnecting.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

func fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err (or something it wraps) is a FatalError, i.e.
// handling it must transition the connection to Reconnecting.
func IsFatal(err error) bool {
	var f *FatalError
	return errors.As(err, &f)
}

// ErrInvalidWindowConfig is returned by Config.Validate when w exceeds
// two-thirds of k.
type ErrInvalidWindowConfig struct {
	K uint16
	W uint16
}

func (e *ErrInvalidWindowConfig) Error() string {
	return fmt.Sprintf("invalid window config: w=%d exceeds two-thirds of k=%d", e.W, e.K)
}

func IsErrInvalidWindowConfig(err error) bool {
	var e *ErrInvalidWindowConfig
	return errors.As(err, &e)
}

// legacy teacher-era sentinel, kept because C_SC_NA_1/C_DC_NA_1 single/double
// command activation termination (COT = ActivationTermination) is still a
// distinct, callers-care-about condition in the control-direction flow.
type errSingleCmdTerm struct{}

func (e errSingleCmdTerm) Error() string { return "termination of single command" }

func IsErrSingleCmdTerm(err error) bool {
	_, ok := err.(errSingleCmdTerm)
	return ok
}

type errDoubleCmdTerm struct{}

func (e errDoubleCmdTerm) Error() string { return "termination of double command" }

func IsErrDoubleCmdTerm(err error) bool {
	_, ok := err.(errDoubleCmdTerm)
	return ok
}
