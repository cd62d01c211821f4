package iec104

import "net"

// ConnectionEvent enumerates the lifecycle notifications OnConnectionEvent
// receives.
type ConnectionEvent uint8

const (
	ConnectionOpened ConnectionEvent = iota
	ConnectionClosed
	StartDTConReceived
	StopDTConReceived
)

func (e ConnectionEvent) String() string {
	switch e {
	case ConnectionOpened:
		return "opened"
	case ConnectionClosed:
		return "closed"
	case StartDTConReceived:
		return "startdt-con-received"
	case StopDTConReceived:
		return "stopdt-con-received"
	default:
		return "unknown"
	}
}

// Callbacks is the set of user-supplied hooks the session engine invokes;
// named after spec.md §6. Every field is optional — a nil hook is simply
// not called. Grounded on original_source's single-method OnNewObjects
// trait, generalized to the full seam set the spec names.
type Callbacks struct {
	// OnNewASDU fires once per decoded I-frame. Unless AsyncCallback is
	// set, it runs in wire-arrival order and never concurrently for a
	// given connection.
	OnNewASDU func(*ASDU)

	OnConnectionEvent func(ConnectionEvent)

	// OnReceiveIFrame is a server-side hook: its return value is sent back
	// immediately, before any further protocol processing.
	OnReceiveIFrame func(*IFrame) []Frame

	// OnConnectionRequested is server-only, invoked before a newly
	// accepted connection is handed to an engine. Returning false rejects
	// the connection and closes the socket.
	OnConnectionRequested func(remote net.Addr) bool

	OnError func(error)

	// AsyncCallback runs OnNewASDU on its own goroutine instead of inline
	// on the engine's read loop, trading in-order delivery guarantees
	// within a single connection for not letting a slow callback delay
	// acks. Per spec.md §9, both are acceptable; this flag picks one.
	AsyncCallback bool
}

func (cb Callbacks) notifyNewASDU(a *ASDU) {
	if cb.OnNewASDU == nil {
		return
	}
	if cb.AsyncCallback {
		go cb.OnNewASDU(a)
		return
	}
	cb.OnNewASDU(a)
}

func (cb Callbacks) notifyEvent(e ConnectionEvent) {
	if cb.OnConnectionEvent != nil {
		cb.OnConnectionEvent(e)
	}
}

func (cb Callbacks) notifyError(err error) {
	if cb.OnError != nil {
		cb.OnError(err)
	}
}
