package iec104

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeSessions(t *testing.T, serverCb Callbacks) (client, server *Session) {
	t.Helper()
	clientConn, serverConn := net.Pipe()

	clientCfg := NewConfig(WithServerRole(false), WithTimers(time.Second, time.Second, time.Second, time.Hour))
	serverCfg := NewConfig(WithServerRole(true), WithTimers(time.Second, time.Second, time.Second, time.Hour))

	client = NewSession(clientConn, clientCfg, Callbacks{})
	server = NewSession(serverConn, serverCfg, serverCb)

	go client.Run()
	go server.Run()
	t.Cleanup(func() {
		_ = client.ForceShutdown()
		_ = server.ForceShutdown()
	})
	return client, server
}

func waitForLifecycle(t *testing.T, s *Session, want LifecycleState) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.Lifecycle() == want
	}, time.Second, time.Millisecond, "lifecycle never reached %s, stuck at %s", want, s.Lifecycle())
}

func TestSession_startHandshake(t *testing.T) {
	client, server := newPipeSessions(t, Callbacks{})

	err := client.StartReceiving()
	require.NoError(t, err)

	waitForLifecycle(t, client, Started)
	waitForLifecycle(t, server, Started)
}

func TestSession_sendASDU_deliversToPeer(t *testing.T) {
	received := make(chan *ASDU, 1)
	client, server := newPipeSessions(t, Callbacks{OnNewASDU: func(a *ASDU) { received <- a }})

	require.NoError(t, client.StartReceiving())
	waitForLifecycle(t, server, Started)

	asdu := &ASDU{
		Type:          TypeMSpNa1,
		Cause:         CotSpt,
		CommonAddress: 1,
		Objects: []ObjectEntry{
			{Address: 1, Value: MSpNa1{Value: SIQ{Value: SpiOn}}},
		},
	}
	require.NoError(t, client.SendASDU(asdu))

	select {
	case got := <-received:
		assert.Equal(t, TypeMSpNa1, got.Type)
		assert.Equal(t, CotSpt, got.Cause)
		require.Len(t, got.Objects, 1)
		obj, ok := got.Objects[0].Value.(MSpNa1)
		require.True(t, ok)
		assert.Equal(t, SpiOn, obj.Value.Value)
	case <-time.After(time.Second):
		t.Fatal("server never received the ASDU")
	}
}

func TestSession_sendASDU_beforeStarted_failsWithNotReceiving(t *testing.T) {
	client, _ := newPipeSessions(t, Callbacks{})

	err := client.SendASDU(&ASDU{Type: TypeMSpNa1, Cause: CotSpt})
	assert.True(t, IsErrNotReceiving(err))
}

func TestSession_stopReceiving_returnsToWaitingForStart(t *testing.T) {
	client, server := newPipeSessions(t, Callbacks{})

	require.NoError(t, client.StartReceiving())
	waitForLifecycle(t, client, Started)
	waitForLifecycle(t, server, Started)

	require.NoError(t, client.StopReceiving())
	waitForLifecycle(t, client, WaitingForStart)
	waitForLifecycle(t, server, WaitingForStart)
}

func TestSession_testFrameHandshake_clearsOutstandingCount(t *testing.T) {
	client, server := newPipeSessions(t, Callbacks{})

	require.NoError(t, client.StartReceiving())
	waitForLifecycle(t, server, Started)

	require.NoError(t, client.SendTestFrame())
	require.Eventually(t, func() bool {
		return client.timers.OutstandingTestActs == 0
	}, time.Second, time.Millisecond, "TESTFR_CON never cleared the outstanding count")
}
