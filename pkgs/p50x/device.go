package p50x

import "time"

// Station is the full set of P50X operations (C4) a connected central unit
// exposes. The app layer (C7) depends on this interface rather than *Device
// so it can be exercised against a mock in tests.
type Station interface {
	XVersion() ([]byte, error)
	XP50XCh(extended byte) error
	XStatus() (DeviceStatus, error)
	XNop() error

	XHalt() error
	XPowerOff() error
	XPowerOn() (bool, error)

	XSOSet(option uint16, value byte) error
	XSOGet(option uint16) (*byte, error)

	XLok(address uint16, speed int8, opts LokOptions) error
	XLokDispatch(address uint16) (*byte, error)
	XLokStatus(address uint16) (LokStatus, error)
	XLokConfig(address uint16) (LokConfig, error)

	XFunc(address uint16, functions [8]bool) error
	XFuncStatus(address uint16) ([8]bool, error)
	XFuncX(address uint16, functions [8]bool) error
	XFuncXStatus(address uint16) ([8]bool, error)

	XTurnout(address uint16, state bool, opts TurnoutOptions) error
	XTurnoutFree() error
	XTurnoutStatus(address uint16) (TurnoutStatus, error)
	XTurnoutGroup(groupAddress byte) ([8]TurnoutGroupEntry, error)

	XSensor(module byte) (SensorReading, error)
	XSensOff() error
	X88PGet(parameter byte) (byte, error)
	X88PSet(parameter, value byte) error
	XS88Timer(timer byte, reset bool) (uint16, error)
	XS88Count(timer byte, reset bool) (uint16, error)

	SetTimeout(d time.Duration) error
	Close() error
}

// Device is a Station backed by a Transport through a frameCodec. It owns no
// connection-retry or pipelining logic: every call is a single
// request/response round-trip over the one connection it was opened with.
type Device struct {
	codec *frameCodec
}

var _ Station = (*Device)(nil)

// Open dials a physical serial port and performs the two-probe handshake
// that confirms a P50X-capable device is listening before returning.
func Open(portName string, baudRate int, encoding WireEncoding) (*Device, error) {
	transport, err := OpenSerial(portName, baudRate, time.Second)
	if err != nil {
		return nil, err
	}

	d := newDevice(transport, encoding)
	if err := d.verifyConnection(); err != nil {
		_ = transport.Close()
		return nil, err
	}

	return d, nil
}

// newDevice wraps an already-open Transport without performing a handshake,
// letting tests inject a mock transport.
func newDevice(t Transport, encoding WireEncoding) *Device {
	return &Device{codec: newFrameCodec(t, encoding)}
}

// verifyConnection performs the documented two-probe handshake: the
// extended-character-prefixed no-op must answer with a single Ok byte, and
// the bare opcode byte (misinterpreted by the firmware as a malformed
// extended command) must answer with two zero bytes.
func (d *Device) verifyConnection() error {
	if err := d.codec.write([]byte{d.codec.extChar, 0xC4}); err != nil {
		return err
	}
	first, err := d.codec.recv(1)
	if err != nil {
		return err
	}
	if first[0] != 0x00 {
		return &UnknownDeviceError{}
	}

	if err := d.codec.write([]byte{0xC4}); err != nil {
		return err
	}
	second, err := d.codec.recv(2)
	if err != nil {
		return err
	}

	if second[0] != 0x00 || second[1] != 0x00 {
		return &UnknownDeviceError{}
	}

	return nil
}

func (d *Device) SetTimeout(dur time.Duration) error {
	return d.codec.transport.SetTimeout(dur)
}

func (d *Device) Close() error {
	return d.codec.transport.Close()
}
