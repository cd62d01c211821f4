package iec104

import "testing"

func TestTypeID_Size(t *testing.T) {
	tests := []struct {
		name     string
		typeID   TypeID
		wantSize int
		wantOK   bool
	}{
		{"single point", TypeMSpNa1, 1, true},
		{"measured normalized with tag", TypeMMeTa1, 6, true},
		{"integrated totals", TypeMItNa1, 5, true},
		{"read command, zero-length payload", TypeCRdNa1, 0, true},
		{"unassigned code", TypeID(200), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, ok := tt.typeID.Size()
			if size != tt.wantSize || ok != tt.wantOK {
				t.Errorf("Size() = %d, %v, want %d, %v", size, ok, tt.wantSize, tt.wantOK)
			}
		})
	}
}

func TestTypeID_Standard(t *testing.T) {
	if !TypeMSpNa1.Standard() {
		t.Error("TypeMSpNa1.Standard() = false, want true")
	}
	if TypeID(255).Standard() {
		t.Error("TypeID(255).Standard() = true, want false")
	}
}

// File-transfer types are sized in the standard table but carry no value
// codec, per this module's non-goal of implementing file transfer.
func TestTypeID_HasValueCodec_fileTransferExcluded(t *testing.T) {
	if !TypeFFrNa1.Standard() {
		t.Error("TypeFFrNa1.Standard() = false, want true")
	}
	if TypeFFrNa1.HasValueCodec() {
		t.Error("TypeFFrNa1.HasValueCodec() = true, want false")
	}
	if !TypeMSpNa1.HasValueCodec() {
		t.Error("TypeMSpNa1.HasValueCodec() = false, want true")
	}
}

func TestDecodeASDU_fileTransferType_unknownType(t *testing.T) {
	data := []byte{byte(TypeFFrNa1), 0x01, byte(CotSpt), 0x00, 0x01, 0x00}
	_, err := DecodeASDU(data)
	if !IsErrUnknownType(err) {
		t.Fatalf("DecodeASDU() error = %v, want ErrUnknownType", err)
	}
}
