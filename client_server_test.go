package iec104

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) uint16 {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return uint16(port)
}

func TestClientServer_connectAndExchangeASDU(t *testing.T) {
	port := freePort(t)

	received := make(chan *ASDU, 1)
	server := NewServer(NewConfig(
		WithAddress("127.0.0.1"),
		WithPort(port),
		WithTimers(time.Second, time.Second, time.Second, time.Hour),
	), Callbacks{
		OnNewASDU: func(a *ASDU) { received <- a },
	})

	go func() { _ = server.Serve() }()
	t.Cleanup(func() { _ = server.Close() })

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))))
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, time.Second, 10*time.Millisecond, "server never started listening")

	client := NewClient(NewConfig(
		WithAddress("127.0.0.1"),
		WithPort(port),
		WithTimers(time.Second, time.Second, time.Second, time.Hour),
	), Callbacks{})
	require.NoError(t, client.Connect())
	t.Cleanup(func() { _ = client.Close() })

	require.Eventually(t, func() bool {
		return client.Lifecycle() == Started
	}, time.Second, 5*time.Millisecond, "client never reached Started")

	require.NoError(t, client.SendASDU(&ASDU{
		Type:          TypeMMeNc1,
		Cause:         CotSpt,
		CommonAddress: 1,
		Objects: []ObjectEntry{
			{Address: 5, Value: MMeNc1{Value: R32(21.5)}},
		},
	}))

	select {
	case got := <-received:
		require.Len(t, got.Objects, 1)
		obj, ok := got.Objects[0].Value.(MMeNc1)
		require.True(t, ok)
		require.Equal(t, R32(21.5), obj.Value)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the ASDU")
	}

	require.Eventually(t, func() bool {
		return server.ConnectionCount() == 1
	}, time.Second, 5*time.Millisecond, "server never registered the connection")
}

func TestServer_serveRejectsInvalidWindowConfig(t *testing.T) {
	port := freePort(t)
	server := NewServer(NewConfig(
		WithAddress("127.0.0.1"),
		WithPort(port),
		WithWindow(4, 4), // w=4 > 2/3*k=2.67, violates the invariant
	), Callbacks{})

	err := server.Serve()
	assert.True(t, IsErrInvalidWindowConfig(err), "Serve() error = %v, want ErrInvalidWindowConfig", err)
}

func TestClient_connectRejectsInvalidWindowConfig(t *testing.T) {
	port := freePort(t)
	client := NewClient(NewConfig(
		WithAddress("127.0.0.1"),
		WithPort(port),
		WithWindow(4, 4),
	), Callbacks{})

	err := client.Connect()
	assert.True(t, IsErrInvalidWindowConfig(err), "Connect() error = %v, want ErrInvalidWindowConfig", err)
}

func TestClientServer_connectionRequestedRejectsConnection(t *testing.T) {
	port := freePort(t)

	server := NewServer(NewConfig(
		WithAddress("127.0.0.1"),
		WithPort(port),
	), Callbacks{
		OnConnectionRequested: func(net.Addr) bool { return false },
	})
	go func() { _ = server.Serve() }()
	t.Cleanup(func() { _ = server.Close() })

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))))
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, time.Second, 10*time.Millisecond, "server never started listening")

	conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))))
	require.NoError(t, err)
	defer conn.Close()

	buf := make([]byte, 1)
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, err = conn.Read(buf)
	require.Error(t, err, "rejected connection should be closed by the server, not left open")
}
