package iec104

import (
	"crypto/tls"
	"net"
	"strconv"
	"time"
)

// Client is the controlling station (master) role. It wraps a Session
// around a dialed net.Conn, generalizing Yobol-go-iec104/client.go's
// struct shape and Connect/Close pair from panic-stubbed sketches into a
// complete engine-backed implementation.
type Client struct {
	cfg Config
	cb  Callbacks

	session *Session
}

// NewClient builds a Client from cfg (Server is forced false) and cb.
func NewClient(cfg Config, cb Callbacks) *Client {
	cfg.Server = false
	return &Client{cfg: cfg, cb: cb}
}

// Connect dials the configured address, starts the engine on its own
// goroutine, and sends the start command (STARTDT_ACT). Returns the
// cfg.Validate error without dialing if the configuration violates the
// w <= 2/3k invariant.
func (c *Client) Connect() error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	conn, err := c.dial()
	if err != nil {
		return err
	}

	_lg.WithField("addr", conn.RemoteAddr()).Info("client connected")
	c.session = NewSession(conn, c.cfg, c.cb)
	go c.session.Run()
	return c.session.StartReceiving()
}

func (c *Client) dial() (net.Conn, error) {
	addr := net.JoinHostPort(c.cfg.Address, strconv.Itoa(int(c.cfg.Port)))

	tlsCfg, err := BuildTLSConfig(c.cfg.TLS)
	if err != nil {
		return nil, err
	}

	var conn net.Conn
	if tlsCfg != nil {
		conn, err = tls.Dial("tcp", addr, tlsCfg)
	} else {
		conn, err = net.Dial("tcp", addr)
	}
	if err != nil {
		return nil, err
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(c.cfg.TCPNoDelay)
		_ = tcpConn.SetKeepAlive(c.cfg.SOKeepAlive)
	}
	return conn, nil
}

// ConnectWithRetry connects and, whenever the session ends, waits t0 and
// retries, until stop is closed. This is the client-side half of the
// Reconnecting state's "retry connect every t0" rule; the server-side
// half (re-accept) needs no special loop since Server.Serve already
// accepts continuously.
func (c *Client) ConnectWithRetry(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		if err := c.Connect(); err != nil {
			c.cb.notifyError(err)
		} else {
			select {
			case <-c.session.Done():
			case <-stop:
				_ = c.session.ForceShutdown()
				return
			}
		}

		select {
		case <-stop:
			return
		case <-time.After(c.cfg.T0):
		}
	}
}

// IsConnected reports whether the underlying session exists and is not
// in Reconnecting.
func (c *Client) IsConnected() bool {
	return c.session != nil && c.session.Lifecycle() != Reconnecting
}

// Lifecycle reports the current connection phase.
func (c *Client) Lifecycle() LifecycleState {
	if c.session == nil {
		return WaitingForStart
	}
	return c.session.Lifecycle()
}

func (c *Client) StopReceiving() error { return c.session.StopReceiving() }

func (c *Client) SendASDU(a *ASDU) error { return c.session.SendASDU(a) }

func (c *Client) SendTestFrame() error { return c.session.SendTestFrame() }

// Close gracefully shuts the connection down: S-frame ack flush,
// STOPDT_ACT, then socket close once STOPDT_CON arrives or t1 expires.
func (c *Client) Close() error { return c.session.Close() }

// ForceShutdown closes the transport immediately.
func (c *Client) ForceShutdown() error { return c.session.ForceShutdown() }
