package p50x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpackDeviceStatus_RoundTrip(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		status := unpackDeviceStatus(byte(b))
		assert.Equal(t, byte(b), packDeviceStatus(status), "round trip mismatch for 0x%02X", b)
	}
}

func TestUnpackDeviceStatus_Fields(t *testing.T) {
	status := unpackDeviceStatus(0x4D) // 0100 1101
	assert.True(t, status.StopPressed)
	assert.False(t, status.GoPressed)
	assert.True(t, status.Hot)
	assert.True(t, status.Power)
	assert.False(t, status.Halt)
	assert.False(t, status.ExternalCentralUnit)
	assert.True(t, status.VoltageRegulation)
}

func TestProtocolFromByte(t *testing.T) {
	assert.Equal(t, Motorola, protocolFromByte(0))
	assert.Equal(t, Selectrix, protocolFromByte(1))
	assert.Equal(t, DCC, protocolFromByte(2))
	assert.Equal(t, FMZ, protocolFromByte(3))
	assert.Equal(t, Motorola, protocolFromByte(0xFF), "unknown codes default to Motorola")
}

func TestEncodeLok_PositiveSpeed(t *testing.T) {
	speedByte, config := encodeLok(42, LokOptions{})
	assert.Equal(t, byte(42), speedByte)
	assert.Equal(t, byte(0), config)
}

func TestEncodeLok_NegativeSpeedSetsDirectionBit(t *testing.T) {
	speedByte, config := encodeLok(-42, LokOptions{})
	assert.Equal(t, byte(42), speedByte)
	assert.Equal(t, byte(0x20), config)
}

func TestEncodeLok_EmergencyStopForcesSpeedOne(t *testing.T) {
	speedByte, _ := encodeLok(-100, LokOptions{EmergencyStop: true})
	assert.Equal(t, byte(1), speedByte)
}

func TestEncodeLok_LightForceAndFunctions(t *testing.T) {
	fns := [4]bool{true, false, true, false}
	speedByte, config := encodeLok(10, LokOptions{Light: true, Force: true, Functions: &fns})
	assert.Equal(t, byte(10), speedByte)
	assert.Equal(t, byte(0x10|0x40|0x80|0x02|0x08), config)
}

func TestDecodeLokStatus(t *testing.T) {
	status := decodeLokStatus(1, 0x20, 1)
	assert.Equal(t, int8(-1), status.Speed)
	assert.Equal(t, int8(-1), status.RealSpeed)
	// EmergencyStop compares the signed speed with 1, so a reversed speed
	// byte of 1 does not count as an emergency stop.
	assert.False(t, status.Options.EmergencyStop)
	assert.False(t, status.Options.Force)
}

func TestDecodeLokConfig_VirtualAddressAbsent(t *testing.T) {
	cfg := decodeLokConfig(2, 28, 0xFFFF)
	assert.Equal(t, DCC, cfg.Protocol)
	assert.Equal(t, byte(28), cfg.SpeedSteps)
	assert.Nil(t, cfg.VirtualAddress)
}

func TestDecodeLokConfig_VirtualAddressPresent(t *testing.T) {
	cfg := decodeLokConfig(0, 14, 200)
	assert.NotNil(t, cfg.VirtualAddress)
	assert.Equal(t, uint16(200), *cfg.VirtualAddress)
}

func TestEncodeTurnout(t *testing.T) {
	lo, packed := encodeTurnout(0x0312, true, DefaultTurnoutOptions())
	assert.Equal(t, byte(0x12), lo)
	assert.Equal(t, byte(0x80|0x40|0x03), packed)
}

func TestDecodeTurnoutStatus(t *testing.T) {
	status := decodeTurnoutStatus(0x0F)
	assert.Equal(t, FMZ, status.Protocol)
	assert.True(t, status.Reserved)
	assert.True(t, status.State)
}

func TestDecodeTurnoutGroup(t *testing.T) {
	group := decodeTurnoutGroup(0x01, 0x02)
	assert.True(t, group[0].State)
	assert.False(t, group[0].Reserved)
	assert.False(t, group[1].State)
	assert.True(t, group[1].Reserved)
}

func TestDecodeSensorReading(t *testing.T) {
	reading := decodeSensorReading(0x8001)
	assert.True(t, reading[0])
	assert.True(t, reading[15])
	for i := 1; i < 15; i++ {
		assert.False(t, reading[i])
	}
}

func TestEncodeS88Param(t *testing.T) {
	assert.Equal(t, byte(0x05), encodeS88Param(5, false))
	assert.Equal(t, byte(0x85), encodeS88Param(5, true))
	assert.Equal(t, byte(0x8F), encodeS88Param(0xFF, true), "timer index is masked to the low nibble")
}

func TestFunctionBits_RoundTrip(t *testing.T) {
	functions := [8]bool{true, false, true, true, false, false, false, true}
	b := encodeFunctionBits(functions)
	assert.Equal(t, functions, decodeFunctionBits(b))
}
