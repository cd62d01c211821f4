package iec104

import (
	"encoding/binary"
	"math"

	"github.com/sirupsen/logrus"
)

var _lg = logrus.New()

// SetLogger overrides the package-wide logger used by the session engine,
// Client and Server. Frame-level traffic logs at Debug, lifecycle
// transitions at Info, fatal conditions at Error.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}

func serializeBigEndianUint16(i uint16) []byte {
	bytes := make([]byte, 2)
	binary.BigEndian.PutUint16(bytes, i)
	return bytes
}

func parseLittleEndianUint16(x []byte) uint16 {
	return binary.LittleEndian.Uint16(x)
}

func parseLittleEndianInt16(x []byte) int16 {
	return int16(parseLittleEndianUint16(x))
}

func serializeLittleEndianUint16(i uint16) []byte {
	bytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(bytes, i)
	return bytes
}

func parseLittleEndianUint32(x []byte) uint32 {
	return binary.LittleEndian.Uint32(x)
}

func parseLittleEndianInt32(x []byte) int32 {
	return int32(parseLittleEndianUint32(x))
}

func serializeLittleEndianUint32(i uint32) []byte {
	bytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(bytes, i)
	return bytes
}

// parseLittleEndianFloat32 decodes an IEEE-754 little-endian short float,
// the wire format for R32 (measured values, set-point commands).
func parseLittleEndianFloat32(x []byte) float32 {
	return math.Float32frombits(parseLittleEndianUint32(x))
}

func serializeLittleEndianFloat32(f float32) []byte {
	return serializeLittleEndianUint32(math.Float32bits(f))
}
