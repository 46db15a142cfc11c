package p50x

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// Transport is the byte-oriented blocking I/O contract the frame codec (C3)
// is built on. Implementations own a single physical channel; Write and
// ReadAtLeast block up to the configured timeout and never retry internally.
type Transport interface {
	// Write sends raw bytes to the wire exactly as given.
	Write(data []byte) error
	// ReadAtLeast blocks until at least n bytes are available (or the
	// timeout elapses) and returns everything read, which may be more
	// than n bytes.
	ReadAtLeast(n int) ([]byte, error)
	// SetTimeout changes the blocking-read timeout for subsequent calls.
	SetTimeout(d time.Duration) error
	// Close releases the underlying channel.
	Close() error
}

// SerialTransport is a Transport backed by a real USB/TTY serial port via
// go.bug.st/serial. Line parameters beyond baud rate use 8N1 defaults, as
// the original device firmware expects.
type SerialTransport struct {
	port    serial.Port
	timeout time.Duration
}

// OpenSerial opens portName at baudRate with 8 data bits, no parity, one
// stop bit, and the given read timeout.
func OpenSerial(portName string, baudRate int, timeout time.Duration) (*SerialTransport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	t := &SerialTransport{port: port, timeout: timeout}
	if err := t.SetTimeout(timeout); err != nil {
		_ = port.Close()
		return nil, err
	}

	return t, nil
}

func (t *SerialTransport) Write(data []byte) error {
	_, err := t.port.Write(data)
	if err != nil {
		return &TransportError{Cause: err}
	}
	return nil
}

func (t *SerialTransport) ReadAtLeast(n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	chunk := make([]byte, 256)

	for len(buf) < n {
		read, err := t.port.Read(chunk)
		if err != nil {
			if err == io.EOF {
				return buf, &TransportError{Closed: true, Cause: err}
			}
			return buf, &TransportError{Cause: err}
		}
		if read == 0 {
			return buf, &TransportError{Timeout: true}
		}
		buf = append(buf, chunk[:read]...)
	}

	return buf, nil
}

func (t *SerialTransport) SetTimeout(d time.Duration) error {
	t.timeout = d
	if err := t.port.SetReadTimeout(d); err != nil {
		return &TransportError{Cause: err}
	}
	return nil
}

func (t *SerialTransport) Close() error {
	if err := t.port.Close(); err != nil {
		return &TransportError{Cause: err}
	}
	return nil
}

// hexEncode renders data as lower-case ASCII hex text, the wire encoding the
// external P50X contract documents (two nibbles per byte).
func hexEncode(data []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(dst, data)
	return dst
}

// hexDecode parses ASCII hex text (case-insensitive) back into raw bytes.
func hexDecode(text []byte) ([]byte, error) {
	clean := make([]byte, 0, len(text))
	for _, b := range text {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f':
			clean = append(clean, b)
		case b >= 'A' && b <= 'F':
			clean = append(clean, b-'A'+'a')
		case b == ' ', b == '\t', b == '\r', b == '\n':
			// ignore stray framing whitespace some adapters insert
			continue
		default:
			return nil, &EncodingError{Data: text}
		}
	}

	if len(clean)%2 != 0 {
		return nil, &EncodingError{Data: text}
	}

	dst := make([]byte, hex.DecodedLen(len(clean)))
	if _, err := hex.Decode(dst, clean); err != nil {
		return nil, &EncodingError{Data: text}
	}
	return dst, nil
}

// WireEncoding selects how bytes are framed on top of the Transport.
type WireEncoding int

const (
	// HexText renders every byte as two ASCII hex nibbles, matching the
	// documented external wire contract.
	HexText WireEncoding = iota
	// Raw sends/receives binary bytes unmodified, for transports already
	// configured for raw binary framing.
	Raw
)

func (e WireEncoding) String() string {
	if e == Raw {
		return "raw"
	}
	return "hex-text"
}

var _ fmt.Stringer = HexText
