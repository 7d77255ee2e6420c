package udpstream

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsdsdemod/frame"
)

func TestStreamSendsOKFramesOnly(t *testing.T) {
	listener, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	ch := make(chan frame.Frame, 2)
	ch <- frame.Frame{OK: true, Data: []byte("hello")}
	ch <- frame.Frame{OK: false}
	close(ch)

	done := make(chan error, 1)
	go func() { done <- Stream(listener.LocalAddr().String(), ch) }()

	buf := make([]byte, 64)
	listener.SetReadDeadline(time.Now().Add(time.Second))
	n, _, err := listener.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	require.NoError(t, <-done)
}

func TestPumpDrainsDecoder(t *testing.T) {
	dec := frame.NewDecoder([]byte{})
	ch := Pump(dec)
	_, ok := <-ch
	assert.False(t, ok)
}
