package iec104

import (
	"crypto/tls"
	"net"
	"strconv"
	"sync"
	"time"
)

// cleanupInterval matches spec.md §5's "periodic cleanup (every 60 s)
// drops closed entries".
const cleanupInterval = 60 * time.Second

// Server is the controlled station (slave) role: a listener accepting
// many concurrent connections, each run by its own Session, grounded on
// original_source's multi_thread/{server,base_connection}.rs shared
// connection table and Yobol-go-iec104/server.go's accept-loop shape.
type Server struct {
	cfg Config
	cb  Callbacks

	listener net.Listener

	mu    sync.Mutex
	conns map[*Session]struct{}

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewServer builds a Server from cfg (Server is forced true) and cb.
func NewServer(cfg Config, cb Callbacks) *Server {
	cfg.Server = true
	return &Server{
		cfg:    cfg,
		cb:     cb,
		conns:  make(map[*Session]struct{}),
		stopCh: make(chan struct{}),
	}
}

// Serve listens and accepts connections until Close is called or the
// listener fails. Each accepted connection gets its own Session and
// engine goroutine. Returns the cfg.Validate error without binding the
// listener if the configuration violates the w <= 2/3k invariant.
func (s *Server) Serve() error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Address, strconv.Itoa(int(s.cfg.Port)))

	tlsCfg, err := BuildTLSConfig(s.cfg.TLS)
	if err != nil {
		return err
	}

	var ln net.Listener
	if tlsCfg != nil {
		ln, err = tls.Listen("tcp", addr, tlsCfg)
	} else {
		ln, err = net.Listen("tcp", addr)
	}
	if err != nil {
		return err
	}
	s.listener = ln
	defer ln.Close()

	_lg.WithField("addr", addr).Info("server listening")
	go s.cleanupLoop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.stopCh:
				return nil
			default:
				return err
			}
		}
		s.acceptConn(conn)
	}
}

func (s *Server) acceptConn(conn net.Conn) {
	if s.cb.OnConnectionRequested != nil && !s.cb.OnConnectionRequested(conn.RemoteAddr()) {
		_lg.WithField("addr", conn.RemoteAddr()).Info("connection rejected")
		conn.Close()
		return
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(s.cfg.TCPNoDelay)
		_ = tcpConn.SetKeepAlive(s.cfg.SOKeepAlive)
	}

	session := NewSession(conn, s.cfg, s.cb)

	s.mu.Lock()
	s.conns[session] = struct{}{}
	s.mu.Unlock()

	go func() {
		session.Run()
		s.mu.Lock()
		delete(s.conns, session)
		s.mu.Unlock()
	}()

	_ = session.StartReceiving()
}

func (s *Server) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			for sess := range s.conns {
				select {
				case <-sess.Done():
					delete(s.conns, sess)
				default:
				}
			}
			s.mu.Unlock()
		}
	}
}

// Broadcast fans f out to every live connection concurrently and waits
// for every send to complete before returning.
func (s *Server) Broadcast(f Frame) {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.conns))
	for sess := range s.conns {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, sess := range sessions {
		wg.Add(1)
		go func(sess *Session) {
			defer wg.Done()
			_ = sess.SendRaw(f)
		}(sess)
	}
	wg.Wait()
}

// ConnectionCount reports the number of live connections.
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Close stops accepting new connections and closes the listener. Live
// connections are left to drain on their own.
func (s *Server) Close() error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}
