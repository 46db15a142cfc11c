package p50x

// Opcodes as documented by the protocol's command table. All of them are
// sent behind the extended-character prefix, xnop included; its 0xC4 is the
// same byte the handshake's second probe sends bare.
const (
	opXLok         = 0x80
	opXLokDispatch = 0x83
	opXLokStatus   = 0x84
	opXLokConfig   = 0x85
	opXFunc        = 0x88
	opXFuncX       = 0x89
	opXFuncStatus  = 0x8C
	opXFuncXStatus = 0x8D
	opXTurnout       = 0x90
	opXTurnoutFree   = 0x93
	opXTurnoutStatus = 0x94
	opXTurnoutGroup  = 0x95
	opXSensor    = 0x98
	opXSensOff   = 0x99
	opX88PGet    = 0x9C
	opX88PSet    = 0x9D
	opXS88Timer  = 0x9E
	opXS88Count  = 0x9F
	opXVersion = 0xA0
	opXP50XCh  = 0xA1
	opXStatus  = 0xA2
	opXSOSet   = 0xA3
	opXSOGet   = 0xA4
	opXHalt     = 0xA5
	opXPowerOff = 0xA6
	opXPowerOn  = 0xA7
	opXNop = 0xC4
)

// XVersion returns the raw length-prefixed version chunk sequence, including
// the terminating zero-length byte, exactly as the device sends it.
func (d *Device) XVersion() ([]byte, error) {
	if err := d.codec.sendExtended(); err != nil {
		return nil, err
	}
	if err := d.codec.sendU8(opXVersion); err != nil {
		return nil, err
	}

	var data []byte
	for {
		length, err := d.codec.recvU8()
		if err != nil {
			return nil, err
		}
		data = append(data, length)
		if length == 0 {
			break
		}

		chunk, err := d.codec.recv(int(length))
		if err != nil {
			return nil, err
		}
		data = append(data, chunk...)
	}

	return data, nil
}

// XP50XCh reassigns the extended-command prefix byte. On success the codec
// adopts the new prefix for every subsequent command.
func (d *Device) XP50XCh(extended byte) error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXP50XCh); err != nil {
		return err
	}
	if err := d.codec.sendU8(extended); err != nil {
		return err
	}

	if err := d.codec.expectOk(); err != nil {
		return err
	}

	d.codec.extChar = extended
	return nil
}

func (d *Device) XStatus() (DeviceStatus, error) {
	if err := d.codec.sendExtended(); err != nil {
		return DeviceStatus{}, err
	}
	if err := d.codec.sendU8(opXStatus); err != nil {
		return DeviceStatus{}, err
	}

	b, err := d.codec.recvU8()
	if err != nil {
		return DeviceStatus{}, err
	}
	return unpackDeviceStatus(b), nil
}

func (d *Device) XNop() error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXNop); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XHalt() error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXHalt); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XPowerOff() error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXPowerOff); err != nil {
		return err
	}
	return d.codec.expectOk()
}

// XPowerOn energizes the track. It returns false, without an error, when the
// central unit refuses because it is already in the powered-off fault state.
func (d *Device) XPowerOn() (bool, error) {
	if err := d.codec.sendExtended(); err != nil {
		return false, err
	}
	if err := d.codec.sendU8(opXPowerOn); err != nil {
		return false, err
	}
	kind, err := d.codec.expectReply(Ok, PowerOff)
	if err != nil {
		return false, err
	}
	return kind == Ok, nil
}

func (d *Device) XSOSet(option uint16, value byte) error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXSOSet); err != nil {
		return err
	}
	if err := d.codec.sendU16(option); err != nil {
		return err
	}
	if err := d.codec.sendU8(value); err != nil {
		return err
	}
	return d.codec.expectOk()
}

// XSOGet reads one special option. It returns a nil value, without an error,
// when the central unit reports the option does not exist.
func (d *Device) XSOGet(option uint16) (*byte, error) {
	if err := d.codec.sendExtended(); err != nil {
		return nil, err
	}
	if err := d.codec.sendU8(opXSOGet); err != nil {
		return nil, err
	}
	if err := d.codec.sendU16(option); err != nil {
		return nil, err
	}

	kind, err := d.codec.expectReply(Ok, BadParameter)
	if err != nil {
		return nil, err
	}
	if kind == BadParameter {
		return nil, nil
	}
	value, err := d.codec.recvU8()
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// XLok issues a speed and direction command for one locomotive address.
func (d *Device) XLok(address uint16, speed int8, opts LokOptions) error {
	speedByte, config := encodeLok(speed, opts)

	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXLok); err != nil {
		return err
	}
	if err := d.codec.sendU16(address); err != nil {
		return err
	}
	if err := d.codec.sendU8(speedByte); err != nil {
		return err
	}
	if err := d.codec.sendU8(config); err != nil {
		return err
	}
	return d.codec.expectOk()
}

// XLokDispatch requests a locomotive's slot for free control. A virtual
// address (high byte non-zero) returns the assigned physical slot; a direct
// address returns nil and only confirms with Ok.
func (d *Device) XLokDispatch(address uint16) (*byte, error) {
	if err := d.codec.sendExtended(); err != nil {
		return nil, err
	}
	if err := d.codec.sendU8(opXLokDispatch); err != nil {
		return nil, err
	}
	if err := d.codec.sendU16(address); err != nil {
		return nil, err
	}

	if address&0xFF00 != 0 {
		slot, err := d.codec.recvU8()
		if err != nil {
			return nil, err
		}
		return &slot, nil
	}

	if err := d.codec.expectOk(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (d *Device) XLokStatus(address uint16) (LokStatus, error) {
	if err := d.codec.sendExtended(); err != nil {
		return LokStatus{}, err
	}
	if err := d.codec.sendU8(opXLokStatus); err != nil {
		return LokStatus{}, err
	}
	if err := d.codec.sendU16(address); err != nil {
		return LokStatus{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return LokStatus{}, err
	}

	speedByte, err := d.codec.recvU8()
	if err != nil {
		return LokStatus{}, err
	}
	config, err := d.codec.recvU8()
	if err != nil {
		return LokStatus{}, err
	}
	realSpeedByte, err := d.codec.recvU8()
	if err != nil {
		return LokStatus{}, err
	}

	return decodeLokStatus(speedByte, config, realSpeedByte), nil
}

func (d *Device) XLokConfig(address uint16) (LokConfig, error) {
	if err := d.codec.sendExtended(); err != nil {
		return LokConfig{}, err
	}
	if err := d.codec.sendU8(opXLokConfig); err != nil {
		return LokConfig{}, err
	}
	if err := d.codec.sendU16(address); err != nil {
		return LokConfig{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return LokConfig{}, err
	}

	protocolByte, err := d.codec.recvU8()
	if err != nil {
		return LokConfig{}, err
	}
	speedSteps, err := d.codec.recvU8()
	if err != nil {
		return LokConfig{}, err
	}
	virtualAddr, err := d.codec.recvU16()
	if err != nil {
		return LokConfig{}, err
	}

	return decodeLokConfig(protocolByte, speedSteps, virtualAddr), nil
}

func (d *Device) XFunc(address uint16, functions [8]bool) error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXFunc); err != nil {
		return err
	}
	if err := d.codec.sendU16(address); err != nil {
		return err
	}
	if err := d.codec.sendU8(encodeFunctionBits(functions)); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XFuncStatus(address uint16) ([8]bool, error) {
	if err := d.codec.sendExtended(); err != nil {
		return [8]bool{}, err
	}
	if err := d.codec.sendU8(opXFuncStatus); err != nil {
		return [8]bool{}, err
	}
	if err := d.codec.sendU16(address); err != nil {
		return [8]bool{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return [8]bool{}, err
	}
	b, err := d.codec.recvU8()
	if err != nil {
		return [8]bool{}, err
	}
	return decodeFunctionBits(b), nil
}

func (d *Device) XFuncX(address uint16, functions [8]bool) error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXFuncX); err != nil {
		return err
	}
	if err := d.codec.sendU16(address); err != nil {
		return err
	}
	if err := d.codec.sendU8(encodeFunctionBits(functions)); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XFuncXStatus(address uint16) ([8]bool, error) {
	if err := d.codec.sendExtended(); err != nil {
		return [8]bool{}, err
	}
	if err := d.codec.sendU8(opXFuncXStatus); err != nil {
		return [8]bool{}, err
	}
	if err := d.codec.sendU16(address); err != nil {
		return [8]bool{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return [8]bool{}, err
	}
	b, err := d.codec.recvU8()
	if err != nil {
		return [8]bool{}, err
	}
	return decodeFunctionBits(b), nil
}

func (d *Device) XTurnout(address uint16, state bool, opts TurnoutOptions) error {
	lo, packed := encodeTurnout(address, state, opts)

	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXTurnout); err != nil {
		return err
	}
	if err := d.codec.sendU8(lo); err != nil {
		return err
	}
	if err := d.codec.sendU8(packed); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XTurnoutFree() error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXTurnoutFree); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XTurnoutStatus(address uint16) (TurnoutStatus, error) {
	if err := d.codec.sendExtended(); err != nil {
		return TurnoutStatus{}, err
	}
	if err := d.codec.sendU8(opXTurnoutStatus); err != nil {
		return TurnoutStatus{}, err
	}
	if err := d.codec.sendU16(address); err != nil {
		return TurnoutStatus{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return TurnoutStatus{}, err
	}
	b, err := d.codec.recvU8()
	if err != nil {
		return TurnoutStatus{}, err
	}
	return decodeTurnoutStatus(b), nil
}

func (d *Device) XTurnoutGroup(groupAddress byte) ([8]TurnoutGroupEntry, error) {
	if err := d.codec.sendExtended(); err != nil {
		return [8]TurnoutGroupEntry{}, err
	}
	if err := d.codec.sendU8(opXTurnoutGroup); err != nil {
		return [8]TurnoutGroupEntry{}, err
	}
	if err := d.codec.sendU8(groupAddress); err != nil {
		return [8]TurnoutGroupEntry{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return [8]TurnoutGroupEntry{}, err
	}
	stateMask, err := d.codec.recvU8()
	if err != nil {
		return [8]TurnoutGroupEntry{}, err
	}
	reservedMask, err := d.codec.recvU8()
	if err != nil {
		return [8]TurnoutGroupEntry{}, err
	}
	return decodeTurnoutGroup(stateMask, reservedMask), nil
}

func (d *Device) XSensor(module byte) (SensorReading, error) {
	if err := d.codec.sendExtended(); err != nil {
		return SensorReading{}, err
	}
	if err := d.codec.sendU8(opXSensor); err != nil {
		return SensorReading{}, err
	}
	if err := d.codec.sendU8(module); err != nil {
		return SensorReading{}, err
	}

	if err := d.codec.expectOk(); err != nil {
		return SensorReading{}, err
	}
	bitmap, err := d.codec.recvU16()
	if err != nil {
		return SensorReading{}, err
	}
	return decodeSensorReading(bitmap), nil
}

func (d *Device) XSensOff() error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opXSensOff); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) X88PGet(parameter byte) (byte, error) {
	if err := d.codec.sendExtended(); err != nil {
		return 0, err
	}
	if err := d.codec.sendU8(opX88PGet); err != nil {
		return 0, err
	}
	if err := d.codec.sendU8(parameter); err != nil {
		return 0, err
	}

	if err := d.codec.expectOk(); err != nil {
		return 0, err
	}
	return d.codec.recvU8()
}

func (d *Device) X88PSet(parameter, value byte) error {
	if err := d.codec.sendExtended(); err != nil {
		return err
	}
	if err := d.codec.sendU8(opX88PSet); err != nil {
		return err
	}
	if err := d.codec.sendU8(parameter); err != nil {
		return err
	}
	if err := d.codec.sendU8(value); err != nil {
		return err
	}
	return d.codec.expectOk()
}

func (d *Device) XS88Timer(timer byte, reset bool) (uint16, error) {
	if err := d.codec.sendExtended(); err != nil {
		return 0, err
	}
	if err := d.codec.sendU8(opXS88Timer); err != nil {
		return 0, err
	}
	if err := d.codec.sendU8(encodeS88Param(timer, reset)); err != nil {
		return 0, err
	}

	if err := d.codec.expectOk(); err != nil {
		return 0, err
	}
	return d.codec.recvU16()
}

func (d *Device) XS88Count(timer byte, reset bool) (uint16, error) {
	if err := d.codec.sendExtended(); err != nil {
		return 0, err
	}
	if err := d.codec.sendU8(opXS88Count); err != nil {
		return 0, err
	}
	if err := d.codec.sendU8(encodeS88Param(timer, reset)); err != nil {
		return 0, err
	}

	if err := d.codec.expectOk(); err != nil {
		return 0, err
	}
	return d.codec.recvU16()
}
