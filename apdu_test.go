package iec104

import (
	"bytes"
	"testing"
)

func TestFrameTypeOf(t *testing.T) {
	tests := []struct {
		name string
		cf1  byte
		want FrameType
	}{
		{"even low bit is I-frame", 0b0000_0000, FrameTypeI},
		{"even low bit, high bits set, still I-frame", 0b1111_1110, FrameTypeI},
		{"01 low bits is S-frame", 0b0000_0001, FrameTypeS},
		{"11 low bits is U-frame", 0b0000_0011, FrameTypeU},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameTypeOf(tt.cf1); got != tt.want {
				t.Errorf("frameTypeOf(%#b) = %v, want %v", tt.cf1, got, tt.want)
			}
		})
	}
}

// DecodeAPDU on the fixed S-frame `68 04 01 00 7E 14`: control field
// 01 00 7E 14 decodes to RecvSN = 0x14<<8 | (0x7E>>1) = 5183.
func TestDecodeAPDU_sFrameFixture(t *testing.T) {
	data := []byte{0x68, 0x04, 0x01, 0x00, 0x7E, 0x14}
	frame, err := DecodeAPDU(data)
	if err != nil {
		t.Fatalf("DecodeAPDU() error = %v", err)
	}
	s, ok := frame.(*SFrame)
	if !ok {
		t.Fatalf("DecodeAPDU() = %T, want *SFrame", frame)
	}
	if s.RecvSN != 5183 {
		t.Errorf("RecvSN = %d, want 5183", s.RecvSN)
	}
}

func TestEncodeDecodeAPDU_iFrame(t *testing.T) {
	want := &IFrame{SendSN: 5, RecvSN: 9, ASDU: []byte{0x01, 0x02, 0x03}}
	data, err := EncodeAPDU(want)
	if err != nil {
		t.Fatalf("EncodeAPDU() error = %v", err)
	}
	frame, err := DecodeAPDU(data)
	if err != nil {
		t.Fatalf("DecodeAPDU() error = %v", err)
	}
	got, ok := frame.(*IFrame)
	if !ok {
		t.Fatalf("DecodeAPDU() = %T, want *IFrame", frame)
	}
	if got.SendSN != want.SendSN || got.RecvSN != want.RecvSN || !bytes.Equal(got.ASDU, want.ASDU) {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

// decodeIFrame on control-field bytes 5A 14 ... (SendSN half only) yields
// SendSN = 0x14<<8 | (0x5A>>1) = 5165.
func TestDecodeIFrame_sendSNFixture(t *testing.T) {
	f := decodeIFrame([]byte{0x5A, 0x14, 0x00, 0x00})
	if f.SendSN != 5165 {
		t.Errorf("SendSN = %d, want 5165", f.SendSN)
	}
}

// Sequence numbers with bit 7 set do not round-trip: controlField only
// preserves seq&0x7F in the low byte, so bit 7 is lost on encode.
func TestEncodeDecodeAPDU_iFrame_bit7Lost(t *testing.T) {
	want := &IFrame{SendSN: 0x0080, RecvSN: 0, ASDU: []byte{0x01}}
	data, err := EncodeAPDU(want)
	if err != nil {
		t.Fatalf("EncodeAPDU() error = %v", err)
	}
	frame, err := DecodeAPDU(data)
	if err != nil {
		t.Fatalf("DecodeAPDU() error = %v", err)
	}
	got := frame.(*IFrame)
	if got.SendSN == want.SendSN {
		t.Fatalf("expected bit 7 of SendSN to be lost on roundtrip, got %d unchanged", got.SendSN)
	}
	if got.SendSN != 0 {
		t.Errorf("SendSN = %d, want 0 (bit 7 dropped)", got.SendSN)
	}
}

func TestEncodeDecodeAPDU_uFrame(t *testing.T) {
	for _, fn := range []UFunction{UStartDTAct, UStartDTCon, UStopDTAct, UStopDTCon, UTestFRAct, UTestFRCon} {
		data, err := EncodeAPDU(&UFrame{Function: fn})
		if err != nil {
			t.Fatalf("EncodeAPDU(%v) error = %v", fn, err)
		}
		frame, err := DecodeAPDU(data)
		if err != nil {
			t.Fatalf("DecodeAPDU() error = %v", err)
		}
		u, ok := frame.(*UFrame)
		if !ok || u.Function != fn {
			t.Errorf("roundtrip(%v) = %+v", fn, frame)
		}
	}
}

func TestDecodeAPDU_invalidStart(t *testing.T) {
	_, err := DecodeAPDU([]byte{0x00, 0x04, 0x01, 0x00, 0x00, 0x00})
	if !IsErrInvalidStart(err) {
		t.Errorf("DecodeAPDU() error = %v, want ErrInvalidStart", err)
	}
}

func TestDecodeAPDU_invalidControlField(t *testing.T) {
	_, err := DecodeAPDU([]byte{0x68, 0x04, 0xFF, 0x00, 0x00, 0x00})
	if !IsErrInvalidControlField(err) {
		t.Errorf("DecodeAPDU() error = %v, want ErrInvalidControlField", err)
	}
}

func TestReadWriteAPDU_roundtrip(t *testing.T) {
	var buf bytes.Buffer
	want := &SFrame{RecvSN: 42}
	if err := WriteAPDU(&buf, want); err != nil {
		t.Fatalf("WriteAPDU() error = %v", err)
	}
	frame, err := ReadAPDU(&buf)
	if err != nil {
		t.Fatalf("ReadAPDU() error = %v", err)
	}
	got, ok := frame.(*SFrame)
	if !ok || got.RecvSN != want.RecvSN {
		t.Errorf("ReadAPDU() = %+v, want %+v", frame, want)
	}
}
