package iec104

import "testing"

func TestDecodeIOA_roundtrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want IOA
	}{
		{"all bits are 1", []byte{0x11, 0x11, 0x11, 0xff}, IOA(0x111111)},
		{"all bits are 0", []byte{0x00, 0x00, 0x00, 0xff}, IOA(0x000000)},
		{"only first byte bits are 1", []byte{0x11, 0x00, 0x00, 0xff}, IOA(0x000011)},
		{"1024", []byte{0x00, 0x04, 0x00, 0xff}, IOA(1024)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeIOA(tt.data); got != tt.want {
				t.Errorf("decodeIOA() = %v, want %v", got, tt.want)
			}
			enc := tt.want.Encode()
			if len(enc) != 3 || enc[0] != tt.data[0] || enc[1] != tt.data[1] || enc[2] != tt.data[2] {
				t.Errorf("Encode() = %v, want first 3 bytes of %v", enc, tt.data)
			}
		})
	}
}

func TestDecodeASDU_sq0_singlePoint(t *testing.T) {
	data := []byte{
		byte(TypeMSpNa1),
		0x01,       // SQ=0, NOO=1
		byte(CotSpt), // T=0, Negative=0, Cause=spontaneous
		0x00,       // ORG
		0x01, 0x00, // COA = 1
		0x01, 0x00, 0x00, // IOA = 1
		0b0000_0001, // SIQ: on, no flags
	}
	a, err := DecodeASDU(data)
	if err != nil {
		t.Fatalf("DecodeASDU() error = %v", err)
	}
	if a.Type != TypeMSpNa1 || a.SQ || a.Test || a.Negative || a.Cause != CotSpt {
		t.Fatalf("unexpected header: %+v", a)
	}
	if a.CommonAddress != 1 || len(a.Objects) != 1 || a.Objects[0].Address != 1 {
		t.Fatalf("unexpected objects: %+v", a.Objects)
	}
	obj, ok := a.Objects[0].Value.(MSpNa1)
	if !ok || obj.Value.Value != SpiOn {
		t.Fatalf("unexpected value: %+v", a.Objects[0].Value)
	}
}

func TestASDU_encodeDecode_sq1(t *testing.T) {
	a := &ASDU{
		Type:          TypeMSpNa1,
		SQ:            true,
		Cause:         CotSpt,
		CommonAddress: 1,
		Objects: []ObjectEntry{
			{Address: 10, Value: MSpNa1{Value: SIQ{Value: SpiOn}}},
			{Address: 11, Value: MSpNa1{Value: SIQ{Value: SpiOff}}},
		},
	}
	data, err := a.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := DecodeASDU(data)
	if err != nil {
		t.Fatalf("DecodeASDU() error = %v", err)
	}
	if !got.SQ || len(got.Objects) != 2 {
		t.Fatalf("unexpected roundtrip: %+v", got)
	}
	if got.Objects[0].Address != 10 || got.Objects[1].Address != 11 {
		t.Fatalf("sequential addresses not reconstructed: %+v", got.Objects)
	}
}

func TestASDU_encode_tooManyObjects(t *testing.T) {
	objs := make([]ObjectEntry, 128)
	for i := range objs {
		objs[i] = ObjectEntry{Address: IOA(i), Value: MSpNa1{}}
	}
	a := &ASDU{Type: TypeMSpNa1, Objects: objs}
	if _, err := a.Encode(); !IsErrTooManyObjects(err) {
		t.Fatalf("Encode() error = %v, want ErrTooManyObjects", err)
	}
}

func TestDecodeASDU_unknownType(t *testing.T) {
	data := []byte{0xff, 0x00, byte(CotSpt), 0x00, 0x01, 0x00}
	_, err := DecodeASDU(data)
	if !IsErrUnknownType(err) {
		t.Fatalf("DecodeASDU() error = %v, want ErrUnknownType", err)
	}
}

func TestDecodeASDU_notEnoughBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	_, err := DecodeASDU(data)
	if !IsErrNotEnoughBytes(err) {
		t.Fatalf("DecodeASDU() error = %v, want ErrNotEnoughBytes", err)
	}
}

func TestDecodeASDU_sq0_trailingGarbage(t *testing.T) {
	data := []byte{
		byte(TypeMSpNa1),
		0x01, // SQ=0, NOO=1
		byte(CotSpt),
		0x00,
		0x01, 0x00, // COA = 1
		0x01, 0x00, 0x00, // IOA = 1
		0b0000_0001, // SIQ
		0xFF,        // trailing garbage, not accounted for by NOO=1
	}
	_, err := DecodeASDU(data)
	if !IsErrNumberOfObjectsMismatch(err) {
		t.Fatalf("DecodeASDU() error = %v, want ErrNumberOfObjectsMismatch", err)
	}
}

func TestDecodeASDU_sq1_trailingGarbage(t *testing.T) {
	data := []byte{
		byte(TypeMSpNa1),
		0b1000_0010, // SQ=1, NOO=2
		byte(CotSpt),
		0x00,
		0x01, 0x00, // COA = 1
		0x0A, 0x00, 0x00, // base IOA = 10
		0b0000_0001, // object 10
		0b0000_0000, // object 11
		0xFF,        // trailing garbage
	}
	_, err := DecodeASDU(data)
	if !IsErrNumberOfObjectsMismatch(err) {
		t.Fatalf("DecodeASDU() error = %v, want ErrNumberOfObjectsMismatch", err)
	}
}
