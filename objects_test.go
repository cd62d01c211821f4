package iec104

import (
	"bytes"
	"testing"
)

func TestDecodeObject_roundtrip(t *testing.T) {
	tests := []struct {
		name   string
		typeID TypeID
		value  InformationObject
	}{
		{"single point", TypeMSpNa1, MSpNa1{Value: SIQ{Value: SpiOn, Invalid: true}}},
		{"double point", TypeMDpNa1, MDpNa1{Value: DIQ{Value: DpiOn}}},
		{"measured short float", TypeMMeNc1, MMeNc1{Value: R32(3.5), Quality: QDS{Invalid: true}}},
		{"integrated totals", TypeMItNa1, MItNa1{Value: BCR{Value: -100, Quality: SeqQD{Sequence: 5}}}},
		{"single command", TypeCScNa1, CScNa1{Command: SCO{Qualifier: QOCShortPulse, State: SpiOn}}},
		{"setpoint short float", TypeCSeNc1, CSeNc1{Value: R32(-12.5), Qos: QOS{Qualifier: true}}},
		{"general interrogation", TypeCIcNa1, CIcNa1{Qualifier: QOIGlobal}},
		{"counter interrogation", TypeCCiNa1, CCiNa1{Qualifier: QCC{Request: RQTReqCoGen, Freeze: FRZFreeze}}},
		{"read command, zero length", TypeCRdNa1, CRdNa1{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.value.Encode()
			got, err := DecodeObject(tt.typeID, encoded)
			if err != nil {
				t.Fatalf("DecodeObject() error = %v", err)
			}
			if !bytes.Equal(got.Encode(), encoded) {
				t.Errorf("re-encode = %v, want %v", got.Encode(), encoded)
			}
		})
	}
}

func TestDecodeObject_unknownType(t *testing.T) {
	if _, err := DecodeObject(TypeID(0), []byte{0x00}); !IsErrUnknownType(err) {
		t.Errorf("DecodeObject() error = %v, want ErrUnknownType", err)
	}
}

func TestASDU_generalInterrogation_activation(t *testing.T) {
	a := &ASDU{
		Type:          TypeCIcNa1,
		Cause:         CotAct,
		CommonAddress: 1,
		Objects: []ObjectEntry{
			{Address: 0, Value: CIcNa1{Qualifier: QOIGlobal}},
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
	obj, ok := got.Objects[0].Value.(CIcNa1)
	if !ok || obj.Qualifier != QOIGlobal {
		t.Errorf("decoded qualifier = %+v, want QOIGlobal", got.Objects[0].Value)
	}
}

func TestQOI_Group(t *testing.T) {
	tests := []struct {
		name      string
		qoi       QOI
		wantGroup int
		wantOK    bool
	}{
		{"global is not a group", QOIGlobal, 0, false},
		{"group 1", QOIGroup(1), 1, true},
		{"group 16", QOIGroup(16), 16, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, ok := tt.qoi.Group()
			if group != tt.wantGroup || ok != tt.wantOK {
				t.Errorf("Group() = %d, %v, want %d, %v", group, ok, tt.wantGroup, tt.wantOK)
			}
		})
	}
}

func TestQCC_encodeDecode(t *testing.T) {
	want := QCC{Request: RQTReqCo3, Freeze: FRZFreezeAndReset}
	got := DecodeQCC(want.Encode())
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}
