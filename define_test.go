package iec104

import "testing"

func Test_parseLittleEndianInt16(t *testing.T) {
	type args struct {
		x []byte
	}
	tests := []struct {
		name string
		args args
		want int16
	}{
		{
			"all bits are 0",
			args{
				[]byte{0x00, 0x00},
			},
			0,
		},
		{
			"all bits are 1",
			args{
				[]byte{0xff, 0xff},
			},
			-1,
		},
		{
			"only first byte is 0",
			args{
				[]byte{0x00, 0xff},
			},
			-256,
		},
		{
			"only first byte is 1",
			args{
				[]byte{0xff, 0x00},
			},
			255,
		},
		{
			"only first bit is 0",
			args{
				[]byte{0x7f, 0xff},
			},
			-129,
		},
		{
			"only first bit is 1",
			args{
				[]byte{0x80, 0x00},
			},
			128,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLittleEndianInt16(tt.args.x); got != tt.want {
				t.Errorf("parseLittleEndianInt16() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_parseLittleEndianUint32_roundtrip(t *testing.T) {
	tests := []uint32{0, 1, 0x7fffffff, 0x80000000, 0xffffffff, 1024}
	for _, want := range tests {
		got := parseLittleEndianUint32(serializeLittleEndianUint32(want))
		if got != want {
			t.Errorf("roundtrip(%d) = %d", want, got)
		}
	}
}

func Test_parseLittleEndianFloat32(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want float32
	}{
		{"zero", 0x00000000, 0},
		{"one", 0x3f800000, 1},
		{"negative one", 0xbf800000, -1},
		{"half", 0x3f000000, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLittleEndianFloat32(serializeLittleEndianUint32(tt.bits))
			if got != tt.want {
				t.Errorf("parseLittleEndianFloat32(%#x) = %v, want %v", tt.bits, got, tt.want)
			}
		})
	}
}

func Test_serializeLittleEndianFloat32_roundtrip(t *testing.T) {
	tests := []float32{0, 1, -1, 3.14159, -273.15, 1e10}
	for _, want := range tests {
		got := parseLittleEndianFloat32(serializeLittleEndianFloat32(want))
		if got != want {
			t.Errorf("roundtrip(%v) = %v", want, got)
		}
	}
}

func Test_serializeBigEndianUint16(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want []byte
	}{
		{"zero", 0, []byte{0x00, 0x00}},
		{"max", 0xffff, []byte{0xff, 0xff}},
		{"1024", 1024, []byte{0x04, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serializeBigEndianUint16(tt.in)
			if len(got) != 2 || got[0] != tt.want[0] || got[1] != tt.want[1] {
				t.Errorf("serializeBigEndianUint16(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
