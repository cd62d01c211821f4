package iec104

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"
)

// DefaultPort is the IANA-registered TCP port for IEC 60870-5-104.
const DefaultPort uint16 = 2404

// Default protocol timer and window values per spec.md §6.
const (
	DefaultT0 = 10 * time.Second
	DefaultT1 = 12 * time.Second
	DefaultT2 = 10 * time.Second
	DefaultT3 = 20 * time.Second

	DefaultK uint16 = 12
	DefaultW uint16 = 8

	DefaultOriginatorAddress uint8 = 1
)

// TLSConfig names the mutual-TLS material a transport may need. Per this
// module's scope, TLS handshake wrapping is an external collaborator:
// these fields only describe what to load, BuildTLSConfig turns them into
// a *tls.Config that the caller hands to its own net.Conn/net.Listener.
type TLSConfig struct {
	ClientKey              string
	ClientCertificate      string
	ServerCertificate      string
	DangerDisableTLSVerify bool
}

// BuildTLSConfig loads the configured key material into a *tls.Config.
// Returns (nil, nil) if t is nil, meaning no TLS.
func BuildTLSConfig(t *TLSConfig) (*tls.Config, error) {
	if t == nil {
		return nil, nil
	}

	cfg := &tls.Config{InsecureSkipVerify: t.DangerDisableTLSVerify}

	if t.ClientCertificate != "" && t.ClientKey != "" {
		cert, err := tls.LoadX509KeyPair(t.ClientCertificate, t.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("iec104: load client keypair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if t.ServerCertificate != "" {
		pem, err := os.ReadFile(t.ServerCertificate)
		if err != nil {
			return nil, fmt.Errorf("iec104: read server certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("iec104: no certificates parsed from %s", t.ServerCertificate)
		}
		cfg.RootCAs = pool
		cfg.ClientCAs = pool
	}

	return cfg, nil
}

// Config collects every tunable named in spec.md §6. Use DefaultConfig
// and apply Options rather than constructing one by hand.
type Config struct {
	Address string
	Port    uint16
	Server  bool

	T0 time.Duration
	T1 time.Duration
	T2 time.Duration
	T3 time.Duration

	K uint16
	W uint16

	OriginatorAddress uint8

	TLS *TLSConfig

	TCPNoDelay  bool
	SOKeepAlive bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Port:              DefaultPort,
		T0:                DefaultT0,
		T1:                DefaultT1,
		T2:                DefaultT2,
		T3:                DefaultT3,
		K:                 DefaultK,
		W:                 DefaultW,
		OriginatorAddress: DefaultOriginatorAddress,
		TCPNoDelay:        true,
		SOKeepAlive:       true,
	}
}

// Validate enforces the w ≤ ⅔k constraint from spec.md §4.5.
func (c Config) Validate() error {
	if uint32(c.W)*3 > uint32(c.K)*2 {
		return &ErrInvalidWindowConfig{K: c.K, W: c.W}
	}
	return nil
}

// Option mutates a Config, following the chaining style of
// Yobol-go-iec104/client_option.go generalized to a plain functional
// option rather than a pointer-returning builder.
type Option func(*Config)

func WithAddress(address string) Option {
	return func(c *Config) { c.Address = address }
}

func WithPort(port uint16) Option {
	return func(c *Config) { c.Port = port }
}

func WithServerRole(server bool) Option {
	return func(c *Config) { c.Server = server }
}

func WithTimers(t0, t1, t2, t3 time.Duration) Option {
	return func(c *Config) {
		c.T0, c.T1, c.T2, c.T3 = t0, t1, t2, t3
	}
}

func WithWindow(k, w uint16) Option {
	return func(c *Config) { c.K, c.W = k, w }
}

func WithOriginatorAddress(addr uint8) Option {
	return func(c *Config) { c.OriginatorAddress = addr }
}

func WithTLS(t *TLSConfig) Option {
	return func(c *Config) { c.TLS = t }
}

func WithTCPNoDelay(v bool) Option {
	return func(c *Config) { c.TCPNoDelay = v }
}

func WithSOKeepAlive(v bool) Option {
	return func(c *Config) { c.SOKeepAlive = v }
}

// NewConfig builds a Config from DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
