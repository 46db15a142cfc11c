package p50x

import "encoding/binary"

// frameCodec implements the P50X frame-level primitives (C3): the extended
// prefix, little-endian scalar sends, and a read-ahead buffer over an
// arbitrary byte transport. It never interprets opcodes; the command
// dispatcher (C4) is built on top of it.
type frameCodec struct {
	transport Transport
	encoding  WireEncoding

	// extChar is the byte prepended by sendExtended. Mutated only by a
	// successful xp50xch.
	extChar byte

	// readAhead is the FIFO byte queue carrying surplus bytes the
	// transport delivered beyond what a previous recv asked for.
	readAhead []byte
}

func newFrameCodec(t Transport, encoding WireEncoding) *frameCodec {
	return &frameCodec{
		transport: t,
		encoding:  encoding,
		extChar:   0x58,
	}
}

// write sends raw bytes, applying the codec's wire encoding.
func (c *frameCodec) write(data []byte) error {
	switch c.encoding {
	case Raw:
		return c.transport.Write(data)
	default:
		return c.transport.Write(hexEncode(data))
	}
}

func (c *frameCodec) sendExtended() error {
	return c.write([]byte{c.extChar})
}

func (c *frameCodec) sendU8(v byte) error {
	return c.write([]byte{v})
}

func (c *frameCodec) sendU16(v uint16) error {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return c.write(buf)
}

func (c *frameCodec) sendU32(v uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return c.write(buf)
}

// recv returns exactly n bytes, draining the read-ahead buffer first and
// only reading from the transport for the shortfall. Any bytes decoded
// beyond n are kept, in order, for the next call.
func (c *frameCodec) recv(n int) ([]byte, error) {
	if len(c.readAhead) >= n {
		data := c.readAhead[:n]
		c.readAhead = c.readAhead[n:]
		return data, nil
	}

	need := n - len(c.readAhead)

	var fresh []byte
	switch c.encoding {
	case Raw:
		raw, err := c.transport.ReadAtLeast(need)
		if err != nil {
			return nil, err
		}
		fresh = raw
	default:
		raw, err := c.transport.ReadAtLeast(need * 2)
		if err != nil {
			return nil, err
		}
		decoded, decErr := hexDecode(raw)
		if decErr != nil {
			return nil, decErr
		}
		fresh = decoded
	}

	data := append(c.readAhead, fresh...)
	c.readAhead = nil

	if len(data) < n {
		// hex decoding dropped stray whitespace; keep what arrived and read
		// the rest
		c.readAhead = data
		return c.recv(n)
	}

	if len(data) > n {
		c.readAhead = append(c.readAhead, data[n:]...)
		data = data[:n]
	}

	return data, nil
}

func (c *frameCodec) recvU8() (byte, error) {
	data, err := c.recv(1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

func (c *frameCodec) recvU16() (uint16, error) {
	data, err := c.recv(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// recvReply reads one reply byte and classifies it per the reply table (C2),
// also handing back the raw byte so callers can report it verbatim.
func (c *frameCodec) recvReply() (ReplyKind, byte, error) {
	b, err := c.recvU8()
	if err != nil {
		return Unknown, 0, err
	}
	return replyKindFromByte(b), b, nil
}

// expectReply reads one reply byte and returns it unless it classifies as
// one of the accepted kinds. A byte that classifies as Unknown surfaces as
// UnknownResponseError; any other non-accepted kind surfaces as
// ProtocolReplyError.
func (c *frameCodec) expectReply(accepted ...ReplyKind) (ReplyKind, error) {
	kind, raw, err := c.recvReply()
	if err != nil {
		return Unknown, err
	}
	for _, ok := range accepted {
		if kind == ok {
			return kind, nil
		}
	}
	if kind == Unknown {
		return kind, &UnknownResponseError{Bytes: []byte{raw}}
	}
	return kind, &ProtocolReplyError{Kind: kind}
}

// expectOk is the common case of expectReply(Ok).
func (c *frameCodec) expectOk() error {
	_, err := c.expectReply(Ok)
	return err
}
