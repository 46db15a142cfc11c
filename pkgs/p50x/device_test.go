package p50x

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTransport is an in-memory Transport recording writes and serving reads
// from a preloaded script of hex-text frames, letting the codec and device
// tests run without a real serial port.
type mockTransport struct {
	writes [][]byte
	inbox  []byte
	closed bool
	// burst makes ReadAtLeast hand back everything pending, as a real
	// serial read may, instead of exactly the requested count.
	burst bool
}

func newMockTransport(frames ...string) *mockTransport {
	t := &mockTransport{}
	for _, f := range frames {
		t.inbox = append(t.inbox, []byte(f)...)
	}
	return t
}

func (m *mockTransport) Write(data []byte) error {
	m.writes = append(m.writes, append([]byte(nil), data...))
	return nil
}

func (m *mockTransport) ReadAtLeast(n int) ([]byte, error) {
	if m.closed {
		return nil, &TransportError{Closed: true, Cause: io.EOF}
	}
	if len(m.inbox) < n {
		return nil, &TransportError{Timeout: true}
	}
	if m.burst {
		n = len(m.inbox)
	}
	data := m.inbox[:n]
	m.inbox = m.inbox[n:]
	return data, nil
}

func (m *mockTransport) SetTimeout(d time.Duration) error { return nil }

func (m *mockTransport) Close() error {
	m.closed = true
	return nil
}

func TestFrameCodec_RecvDrainsReadAhead(t *testing.T) {
	transport := newMockTransport("0102030405")
	codec := newFrameCodec(transport, HexText)

	first, err := codec.recv(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, first)

	// transport has one more byte buffered ahead of what the next recv asks
	// for; it should be served from readAhead, not a fresh transport read.
	codec.readAhead = []byte{0xAA}
	second, err := codec.recv(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA}, second)

	third, err := codec.recv(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x04, 0x05}, third)
}

func TestFrameCodec_RecvStashesSurplus(t *testing.T) {
	transport := newMockTransport("AABBCC")
	transport.burst = true
	codec := newFrameCodec(transport, HexText)

	one, err := codec.recv(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA}, one)
	assert.Equal(t, []byte{0xBB, 0xCC}, codec.readAhead)
}

func TestFrameCodec_ExpectReplyRejectsUnlisted(t *testing.T) {
	transport := newMockTransport("01")
	codec := newFrameCodec(transport, HexText)

	_, err := codec.expectReply(Ok)
	require.Error(t, err)

	var replyErr *ProtocolReplyError
	require.ErrorAs(t, err, &replyErr)
	assert.Equal(t, BadCommand, replyErr.Kind)
}

func TestFrameCodec_ExpectReplyRejectsGarbageByte(t *testing.T) {
	transport := newMockTransport("55")
	codec := newFrameCodec(transport, HexText)

	kind, err := codec.expectReply(Ok)
	assert.Equal(t, Unknown, kind)
	require.Error(t, err)

	var unknownErr *UnknownResponseError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []byte{0x55}, unknownErr.Bytes)

	var replyErr *ProtocolReplyError
	assert.False(t, errors.As(err, &replyErr), "a garbage byte must not surface as ProtocolReplyError")
}

func newVerifiedMockDevice(t *testing.T, frames ...string) (*Device, *mockTransport) {
	t.Helper()
	transport := newMockTransport(append([]string{"00", "0000"}, frames...)...)
	d := newDevice(transport, HexText)
	require.NoError(t, d.verifyConnection())
	return d, transport
}

func TestDevice_VerifyConnectionFailsOnUnexpectedBytes(t *testing.T) {
	transport := newMockTransport("01", "0000")
	d := newDevice(transport, HexText)

	err := d.verifyConnection()
	require.Error(t, err)
	assert.IsType(t, &UnknownDeviceError{}, err)
}

func TestDevice_XStatus(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "4D")
	status, err := d.XStatus()
	require.NoError(t, err)
	assert.True(t, status.StopPressed)
	assert.True(t, status.VoltageRegulation)
}

func TestDevice_XPowerOnOff(t *testing.T) {
	d, transport := newVerifiedMockDevice(t, "00", "00")
	energized, err := d.XPowerOn()
	require.NoError(t, err)
	assert.True(t, energized)
	require.NoError(t, d.XPowerOff())
	assert.Len(t, transport.writes, 6) // 2 handshake + 2 per call
}

func TestDevice_XPowerOn_DeniedReturnsFalseNotError(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "06") // PowerOff reply
	energized, err := d.XPowerOn()
	require.NoError(t, err)
	assert.False(t, energized)
}

func TestDevice_XSOGet_BadParameterReturnsNilNotError(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "02") // BadParameter reply
	value, err := d.XSOGet(7)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDevice_XSOGet_Ok(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "00", "2A")
	value, err := d.XSOGet(7)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, byte(0x2A), *value)
}

func TestDevice_XLokStatus_NegativeSpeed(t *testing.T) {
	// ok, speed=01, config=20 (direction bit), real_speed=01
	d, _ := newVerifiedMockDevice(t, "00", "01", "20", "01")
	status, err := d.XLokStatus(3)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), status.Speed)
	assert.Equal(t, int8(-1), status.RealSpeed)
}

func TestDevice_XLokDispatch_VirtualAddressReturnsSlot(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "07")
	slot, err := d.XLokDispatch(0x0103)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, byte(0x07), *slot)
}

func TestDevice_XLokDispatch_DirectAddressReturnsNil(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "00")
	slot, err := d.XLokDispatch(3)
	require.NoError(t, err)
	assert.Nil(t, slot)
}

func TestDevice_XVersion_ReadsUntilZeroLength(t *testing.T) {
	// two three-byte chunks followed by a terminating zero length
	d, _ := newVerifiedMockDevice(t, "03", "010203", "03", "040506", "00")
	data, err := d.XVersion()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x01, 0x02, 0x03, 0x03, 0x04, 0x05, 0x06, 0x00}, data)
}

func TestDevice_XSensor(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "00", "0100")
	reading, err := d.XSensor(0)
	require.NoError(t, err)
	assert.True(t, reading[0])
	for i := 1; i < 16; i++ {
		assert.False(t, reading[i])
	}
}

func TestDevice_XTurnoutGroup(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "00", "01", "02")
	group, err := d.XTurnoutGroup(0)
	require.NoError(t, err)
	assert.True(t, group[0].State)
	assert.True(t, group[1].Reserved)
}

func TestDevice_CommandPropagatesNonOkReply(t *testing.T) {
	d, _ := newVerifiedMockDevice(t, "02") // BadParameter
	err := d.XHalt()
	require.Error(t, err)

	var replyErr *ProtocolReplyError
	require.ErrorAs(t, err, &replyErr)
	assert.Equal(t, BadParameter, replyErr.Kind)
}
