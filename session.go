package iec104

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

/*
Session is the link-layer engine for one live connection: lifecycle state
machine, sliding-window flow control, four-timer supervision, and dispatch
to the user's Callbacks. Grounded on original_source's
link/connection_handler.rs (state machine) and receive_handler.rs
(the select-style read/command/timer loop), with the Go surface shape
(goroutine owning a net.Conn, channel-based command queue) generalized
from Yobol-go-iec104/client.go's writingToSocket/readingFromSocket
goroutine pair.

Per spec.md §5, the engine task is the sole writer of session state: one
goroutine runs handleCommand/handleFrame/checkTimers serially. The only
state touched from other goroutines is the atomic lifecycle field (for
fast introspection) and the command channel itself.
*/

// LifecycleState is one of the four connection phases.
type LifecycleState int32

const (
	WaitingForStart LifecycleState = iota
	Starting
	Started
	Reconnecting
)

func (s LifecycleState) String() string {
	switch s {
	case WaitingForStart:
		return "waiting-for-start"
	case Starting:
		return "starting"
	case Started:
		return "started"
	case Reconnecting:
		return "reconnecting"
	default:
		return "unknown"
	}
}

type cmdKind uint8

const (
	cmdStart cmdKind = iota
	cmdStop
	cmdSendASDU
	cmdSendTestFrame
	cmdSendRaw
	cmdClose
	cmdForceShutdown
)

type command struct {
	kind   cmdKind
	asdu   *ASDU
	frame  Frame
	result chan error
}

// commandQueueCapacity matches spec.md §4.5's "bounded queue (capacity
// 1024)".
const commandQueueCapacity = 1024

// Session runs the engine for a single net.Conn. Construct with
// NewSession, then run it with Run on its own goroutine.
type Session struct {
	cfg Config
	cb  Callbacks

	conn   net.Conn
	connID string

	sendWindow *SendWindow
	recvWindow *ReceiveWindow
	timers     *Timers

	sentCounter     uint16
	receivedCounter uint16

	lifecycle atomic.Int32

	cmdCh   chan command
	frameCh chan Frame
	errCh   chan error
	doneCh  chan struct{}
}

// NewSession wraps an already-established transport. cfg.Server selects
// client or server role behavior in the STARTDT/STOPDT handshake.
func NewSession(conn net.Conn, cfg Config, cb Callbacks) *Session {
	s := &Session{
		cfg:        cfg,
		cb:         cb,
		conn:       conn,
		connID:     conn.RemoteAddr().String(),
		sendWindow: NewSendWindow(cfg.K),
		recvWindow: NewReceiveWindow(cfg.W),
		timers:     NewTimers(cfg.T0, cfg.T1, cfg.T2, cfg.T3),
		cmdCh:      make(chan command, commandQueueCapacity),
		frameCh:    make(chan Frame),
		errCh:      make(chan error, 1),
		doneCh:     make(chan struct{}),
	}
	s.lifecycle.Store(int32(WaitingForStart))
	return s
}

// Lifecycle reports the current connection phase. Safe to call from any
// goroutine.
func (s *Session) Lifecycle() LifecycleState {
	return LifecycleState(s.lifecycle.Load())
}

func (s *Session) setLifecycle(l LifecycleState) {
	s.lifecycle.Store(int32(l))
	_lg.WithFields(logrus.Fields{
		"conn":      s.connID,
		"lifecycle": l,
	}).Info("lifecycle transition")
}

// fields returns the structured fields every frame-level log line carries:
// connection id and the current send/receive sequence numbers.
func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"conn": s.connID,
		"ssn":  s.sentCounter,
		"rsn":  s.receivedCounter,
	}
}

func (s *Session) enqueue(cmd command) error {
	select {
	case s.cmdCh <- cmd:
		return nil
	case <-s.doneCh:
		return &ErrNotConnected{}
	}
}

func (s *Session) do(cmd command) error {
	cmd.result = make(chan error, 1)
	if err := s.enqueue(cmd); err != nil {
		return err
	}
	select {
	case err := <-cmd.result:
		return err
	case <-s.doneCh:
		return &ErrNotConnected{}
	}
}

// StartReceiving sends the `start` command: clients initiate STARTDT_ACT,
// servers simply enter Started and await the peer's activation.
func (s *Session) StartReceiving() error {
	return s.do(command{kind: cmdStart})
}

// StopReceiving acknowledges all received I-frames with an S-frame, then
// sends STOPDT_ACT.
func (s *Session) StopReceiving() error {
	return s.do(command{kind: cmdStop})
}

// SendASDU queues an ASDU for transmission as an I-frame.
func (s *Session) SendASDU(a *ASDU) error {
	return s.do(command{kind: cmdSendASDU, asdu: a})
}

// SendTestFrame injects a TESTFR_ACT.
func (s *Session) SendTestFrame() error {
	return s.do(command{kind: cmdSendTestFrame})
}

// SendRaw writes a frame to the wire without any sequence-window
// bookkeeping, routed through the engine's command queue so it still
// serializes with every other write. Used by Server.Broadcast.
func (s *Session) SendRaw(f Frame) error {
	return s.do(command{kind: cmdSendRaw, frame: f})
}

// Close requests a graceful shutdown: flush acks, STOPDT_ACT, wait for
// STOPDT_CON up to t1, then close the socket.
func (s *Session) Close() error {
	return s.enqueue(command{kind: cmdClose})
}

// ForceShutdown closes the transport immediately without negotiation.
func (s *Session) ForceShutdown() error {
	return s.enqueue(command{kind: cmdForceShutdown})
}

// Done is closed once Run returns.
func (s *Session) Done() <-chan struct{} { return s.doneCh }

// Run drives the engine until a fatal error, a close command, or the
// socket is torn down. It spawns its own read goroutine and must itself
// run on its own goroutine; it returns once the connection is no longer
// usable.
func (s *Session) Run() {
	defer close(s.doneCh)
	defer s.conn.Close()

	go s.readLoop()

	_lg.WithField("conn", s.connID).Info("connection opened")
	s.cb.notifyEvent(ConnectionOpened)
	now := time.Now()
	s.timers.ArmT3(now)
	if s.cfg.Server {
		s.setLifecycle(Started)
	}

	closing := false

	for {
		now := time.Now()
		wait := s.timers.Next(now)
		timer := time.NewTimer(wait)

		select {
		case cmd := <-s.cmdCh:
			timer.Stop()
			if s.handleCommand(cmd) {
				closing = true
			}
		case frame := <-s.frameCh:
			timer.Stop()
			s.handleFrame(frame)
		case err := <-s.errCh:
			timer.Stop()
			_lg.WithField("conn", s.connID).WithError(err).Error("session failed")
			s.cb.notifyError(err)
			s.setLifecycle(Reconnecting)
			s.cb.notifyEvent(ConnectionClosed)
			return
		case <-timer.C:
			s.checkTimers(time.Now())
		}

		if closing && s.Lifecycle() == WaitingForStart {
			_lg.WithField("conn", s.connID).Info("connection closed")
			s.cb.notifyEvent(ConnectionClosed)
			return
		}
	}
}

// readLoop feeds frames to Run via frameCh, and fatal transport errors via
// errCh. It uses a short read deadline so that, even while the peer is
// idle, it regularly checks doneCh and exits once Run has returned.
func (s *Session) readLoop() {
	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(250 * time.Millisecond))
		frame, err := ReadAPDU(s.conn)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				select {
				case <-s.doneCh:
					return
				default:
					continue
				}
			}
			select {
			case s.errCh <- fatal(err):
			case <-s.doneCh:
			}
			return
		}
		select {
		case s.frameCh <- frame:
		case <-s.doneCh:
			return
		}
	}
}

func (s *Session) send(f Frame) error {
	_lg.WithFields(s.fields()).WithField("type", f.Type()).Debug("sending frame")
	return WriteAPDU(s.conn, f)
}

// sendASDU is the shared path for user-queued sends and automatic
// unknown-type replies.
func (s *Session) sendASDU(a *ASDU) error {
	if s.sendWindow.Full() {
		return &ErrOutputBufferFull{}
	}
	body, err := a.Encode()
	if err != nil {
		return err
	}
	ssn := s.sentCounter
	frame := &IFrame{SendSN: ssn, RecvSN: s.receivedCounter, ASDU: body}
	_lg.WithFields(s.fields()).WithField("asduType", a.Type).Debug("sending ASDU")
	if err := s.send(frame); err != nil {
		return fatal(err)
	}
	s.sentCounter = nextSeq(s.sentCounter)
	s.sendWindow.Push(ssn, time.Now())
	s.recvWindow.Reset()
	s.timers.DisarmT2()
	s.syncT1I(time.Now())
	return nil
}

func (s *Session) handleCommand(cmd command) (closing bool) {
	var err error
	switch cmd.kind {
	case cmdStart:
		err = s.handleStart()
	case cmdStop:
		err = s.handleStop()
	case cmdSendASDU:
		if s.Lifecycle() != Started {
			err = &ErrNotReceiving{}
		} else {
			err = s.sendASDU(cmd.asdu)
		}
	case cmdSendTestFrame:
		err = s.handleSendTestFrame()
	case cmdSendRaw:
		err = s.send(cmd.frame)
	case cmdClose:
		err = s.handleStop()
		closing = true
	case cmdForceShutdown:
		if cmd.result != nil {
			cmd.result <- nil
		}
		s.setLifecycle(WaitingForStart)
		return true
	}
	if cmd.result != nil {
		cmd.result <- err
	}
	return closing
}

func (s *Session) handleStart() error {
	if s.Lifecycle() != WaitingForStart {
		return &ErrLifecycleConflict{State: s.Lifecycle()}
	}
	if s.cfg.Server {
		s.setLifecycle(Started)
		return nil
	}
	s.setLifecycle(Starting)
	if err := s.send(&UFrame{Function: UStartDTAct}); err != nil {
		return fatal(err)
	}
	s.timers.ArmT1U(time.Now())
	return nil
}

func (s *Session) handleStop() error {
	if s.recvWindow.Count > 0 {
		if err := s.send(&SFrame{RecvSN: s.receivedCounter}); err != nil {
			return fatal(err)
		}
		s.recvWindow.Reset()
		s.timers.DisarmT2()
	}
	if err := s.send(&UFrame{Function: UStopDTAct}); err != nil {
		return fatal(err)
	}
	s.timers.ArmT1U(time.Now())
	return nil
}

func (s *Session) handleSendTestFrame() error {
	if err := s.send(&UFrame{Function: UTestFRAct}); err != nil {
		return fatal(err)
	}
	s.timers.OutstandingTestActs++
	s.timers.ArmT1U(time.Now())
	return nil
}

func (s *Session) handleFrame(f Frame) {
	now := time.Now()
	s.timers.ArmT3(now)
	_lg.WithFields(s.fields()).WithField("type", f.Type()).Debug("received frame")

	switch v := f.(type) {
	case *UFrame:
		s.handleUFrame(v)
	case *SFrame:
		if err := s.sendWindow.CheckAck(v.RecvSN, s.sentCounter); err != nil {
			s.fail(fatal(err))
			return
		}
		s.syncT1I(now)
	case *IFrame:
		s.handleIFrame(v, now)
	}
}

func (s *Session) handleUFrame(u *UFrame) {
	switch u.Function {
	case UTestFRAct:
		_ = s.send(&UFrame{Function: UTestFRCon})
	case UTestFRCon:
		s.timers.OutstandingTestActs = 0
		s.timers.DisarmT1U()
	case UStartDTAct:
		if s.cfg.Server {
			// Lenient per spec.md §9 open question: re-confirm even if
			// already Started rather than treating this as a violation.
			_ = s.send(&UFrame{Function: UStartDTCon})
			s.setLifecycle(Started)
			return
		}
		s.fail(fatal(fmt.Errorf("iec104: unexpected STARTDT_ACT received by client")))
	case UStartDTCon:
		if !s.cfg.Server && s.Lifecycle() == Starting {
			s.timers.DisarmT1U()
			s.setLifecycle(Started)
			s.cb.notifyEvent(StartDTConReceived)
		}
	case UStopDTAct:
		if s.recvWindow.Count > 0 {
			_ = s.send(&SFrame{RecvSN: s.receivedCounter})
			s.recvWindow.Reset()
			s.timers.DisarmT2()
		}
		_ = s.send(&UFrame{Function: UStopDTCon})
		s.setLifecycle(WaitingForStart)
	case UStopDTCon:
		if !s.cfg.Server {
			s.timers.DisarmT1U()
			s.setLifecycle(WaitingForStart)
			s.cb.notifyEvent(StopDTConReceived)
		}
	}
}

func (s *Session) handleIFrame(f *IFrame, now time.Time) {
	if f.SendSN != s.receivedCounter {
		s.fail(fatal(&ErrSequenceNumberMismatch{Expected: s.receivedCounter, Got: f.SendSN}))
		return
	}
	if err := s.sendWindow.CheckAck(f.RecvSN, s.sentCounter); err != nil {
		s.fail(fatal(err))
		return
	}
	s.syncT1I(now)

	s.receivedCounter = nextSeq(s.receivedCounter)
	s.recvWindow.Increment()
	if s.recvWindow.Count == 1 {
		s.timers.ArmT2(now)
	}

	asdu, err := DecodeASDU(f.ASDU)
	if err != nil {
		if IsErrUnknownType(err) && len(f.ASDU) >= asduHeaderLen {
			reply := &ASDU{
				Type:              TypeID(f.ASDU[0]),
				Cause:             CotUnType,
				OriginatorAddress: s.cfg.OriginatorAddress,
				CommonAddress:     parseLittleEndianUint16(f.ASDU[4:6]),
			}
			_ = s.sendASDU(reply)
		}
		s.cb.notifyError(err)
	} else {
		if s.cb.OnReceiveIFrame != nil {
			for _, reply := range s.cb.OnReceiveIFrame(f) {
				_ = s.send(reply)
			}
		}
		s.cb.notifyNewASDU(asdu)
	}

	if s.recvWindow.ExceedsThreshold() {
		_ = s.send(&SFrame{RecvSN: s.receivedCounter})
		s.recvWindow.Reset()
		s.timers.ArmT2(now)
	}
}

// syncT1I re-arms t1_i to the send time of the (possibly new) oldest
// unacknowledged I-frame, or disarms it if the window has drained.
func (s *Session) syncT1I(now time.Time) {
	if sentAt, ok := s.sendWindow.Oldest(); ok {
		s.timers.ArmT1IAt(sentAt)
	} else {
		s.timers.DisarmT1I()
	}
}

func (s *Session) checkTimers(now time.Time) {
	if s.timers.T1UExpired(now) {
		s.fail(fatal(fmt.Errorf("iec104: t1 timeout waiting for u-frame confirmation")))
		return
	}
	if s.timers.T1IExpired(now) {
		s.fail(fatal(fmt.Errorf("iec104: t1 timeout waiting for i-frame acknowledgement")))
		return
	}
	if s.timers.T2Expired(now) {
		_ = s.send(&SFrame{RecvSN: s.receivedCounter})
		s.recvWindow.Reset()
		s.timers.DisarmT2()
	}
	if s.timers.T3Expired(now) {
		_lg.WithField("conn", s.connID).Debug("t3 expired, sending test frame")
		_ = s.send(&UFrame{Function: UTestFRAct})
		s.timers.OutstandingTestActs++
		s.timers.ArmT1U(now)
		s.timers.ArmT3(now)
		if s.timers.OutstandingTestActs > 2 {
			s.fail(fatal(fmt.Errorf("iec104: more than 2 outstanding TESTFR_ACT without confirmation")))
		}
	}
}

func (s *Session) fail(err error) {
	_lg.WithField("conn", s.connID).WithError(err).Error("session error")
	select {
	case s.errCh <- err:
	default:
	}
}
