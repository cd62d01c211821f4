package iec104

import "testing"

func TestDecodeCP16Time2a(t *testing.T) {
	got, err := DecodeCP16Time2a([]byte{0xE8, 0x03})
	if err != nil {
		t.Fatalf("DecodeCP16Time2a() error = %v", err)
	}
	if got.Milliseconds != 1000 {
		t.Errorf("Milliseconds = %d, want 1000", got.Milliseconds)
	}
}

func TestCP24Time2a_encodeDecode(t *testing.T) {
	want := CP24Time2a{Milliseconds: 45000, Minutes: 30, Invalid: true}
	got, err := DecodeCP24Time2a(want.Encode())
	if err != nil {
		t.Fatalf("DecodeCP24Time2a() error = %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestDecodeCP24Time2a_invalidFields(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"milliseconds over 59999", []byte{0xFF, 0xFF, 0x00}},
		{"minutes over 59", []byte{0x00, 0x00, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCP24Time2a(tt.data); !IsErrInvalidTimeField(err) {
				t.Errorf("DecodeCP24Time2a() error = %v, want ErrInvalidTimeField", err)
			}
		})
	}
}

func TestCP56Time2a_encodeDecode(t *testing.T) {
	want := CP56Time2a{
		Milliseconds: 12345,
		Minutes:      59,
		Invalid:      false,
		Hours:        23,
		SummerTime:   true,
		Day:          31,
		Weekday:      7,
		Month:        12,
		Year:         99,
	}
	got, err := DecodeCP56Time2a(want.Encode())
	if err != nil {
		t.Fatalf("DecodeCP56Time2a() error = %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestDecodeCP56Time2a_invalidFields(t *testing.T) {
	base := func() []byte { return CP56Time2a{Day: 1, Month: 1}.Encode() }

	tests := []struct {
		name  string
		apply func([]byte)
	}{
		{"hours over 23", func(b []byte) { b[3] = 24 }},
		{"day zero", func(b []byte) { b[4] = 0 }},
		{"month zero", func(b []byte) { b[5] = 0 }},
		{"month over 12", func(b []byte) { b[5] = 13 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := base()
			tt.apply(data)
			if _, err := DecodeCP56Time2a(data); !IsErrInvalidTimeField(err) {
				t.Errorf("DecodeCP56Time2a() error = %v, want ErrInvalidTimeField", err)
			}
		})
	}
}

func TestDecodeCP56Time2a_notEnoughBytes(t *testing.T) {
	if _, err := DecodeCP56Time2a([]byte{0x00, 0x00}); !IsErrNotEnoughBytes(err) {
		t.Errorf("DecodeCP56Time2a() error = %v, want ErrNotEnoughBytes", err)
	}
}
