package iec104

/*
ASDU (Application Service Data Unit).

The ASDU contains two main sections:
- the data unit identifier (fixed length of six bytes):
  - defining the specific type of data;
  - providing addressing to identify the specific data;
  - including information as cause of transmission.
- the data itself, made up of one or more information objects:
  - each ASDU can transmit a maximum of 127 objects;
  - the type identification applies to the entire ASDU, so every
    information object in an ASDU is of the same type.

Wire layout:

	| <-              8 bits              -> |
	| Type Identification                    |  --------------------
	| SQ | Number of objects                 |           |
	| T  | Negative | Cause of transmission  |           |
	| Original address (ORG)                 |  Data Unit Identifier
	| ASDU address fields                    |           |
	| ASDU address fields                    |  --------------------
	| Information object address (IOA)       |  --------------------
	| Information object address (IOA)       |           |
	| Information object address (IOA)       |  Information Object 1
	| Information Elements                   |           |
	| Time Tag                               |  --------------------
	| Information Object 2                   |
	| Information Object N                   |
*/
const asduHeaderLen = 6

// IOA is an information object address (3 bytes on the wire, held here as
// a plain uint32). It serves as destination address in control direction
// and source address in monitor direction.
type IOA uint32

func decodeIOA(b []byte) IOA {
	return IOA(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
}

func (i IOA) Encode() []byte {
	return []byte{byte(i), byte(i >> 8), byte(i >> 16)}
}

// ObjectEntry pairs a decoded InformationObject with its address.
type ObjectEntry struct {
	Address IOA
	Value   InformationObject
}

// ASDU is one application service data unit: a type identifier, routing
// and addressing fields, and the information objects carried for that
// type.
type ASDU struct {
	Type TypeID
	// SQ selects addressing mode: false addresses every object
	// individually, true addresses only the first and treats the rest as
	// a contiguous run starting at Address+1.
	SQ bool
	// Test marks an ASDU generated under test conditions, not intended to
	// affect the controlled process.
	Test bool
	// Negative is the bit historically labeled P/N: it reports whether a
	// mirrored control-direction confirmation is negative (command
	// rejected). false means a positive confirmation.
	Negative bool
	Cause    COT
	// OriginatorAddress identifies the controlling station that issued a
	// command, so its confirmation can be routed back to it. Zero when
	// the system has only one controlling station.
	OriginatorAddress uint8
	// CommonAddress is the station address this ASDU concerns. 0xFFFF is
	// the global address used for simultaneous general interrogation,
	// counter interrogation, and clock synchronization.
	CommonAddress uint16
	Objects       []ObjectEntry
}

// GlobalCommonAddress is the broadcast common address (0xFFFF).
const GlobalCommonAddress uint16 = 0xFFFF

// DecodeASDU parses a complete ASDU, including its information objects.
func DecodeASDU(data []byte) (*ASDU, error) {
	if len(data) < asduHeaderLen {
		return nil, &ErrNotEnoughBytes{Need: asduHeaderLen, Have: len(data)}
	}

	typeID := TypeID(data[0])
	sq := data[1]&0b1000_0000 != 0
	noo := int(data[1] & 0b0111_1111)
	test := data[2]&0b1000_0000 != 0
	negative := data[2]&0b0100_0000 != 0
	cause := COT(data[2] & 0b0011_1111)
	org := data[3]
	coa := parseLittleEndianUint16(data[4:6])
	body := data[6:]

	size, ok := typeID.Size()
	if !ok || !typeID.HasValueCodec() {
		return nil, &ErrUnknownType{TypeID: typeID}
	}

	objects, err := decodeObjects(typeID, size, sq, noo, body)
	if err != nil {
		return nil, err
	}

	return &ASDU{
		Type:              typeID,
		SQ:                sq,
		Test:              test,
		Negative:          negative,
		Cause:             cause,
		OriginatorAddress: org,
		CommonAddress:     coa,
		Objects:           objects,
	}, nil
}

func decodeObjects(typeID TypeID, size int, sq bool, noo int, body []byte) ([]ObjectEntry, error) {
	objects := make([]ObjectEntry, 0, noo)

	if sq {
		// Sequence mode: one leading IOA followed by noo contiguous values.
		expectedTotal := 3 + size*noo
		if len(body) != expectedTotal {
			return nil, &ErrNumberOfObjectsMismatch{ExpectedBytes: expectedTotal, RemainBytes: len(body)}
		}
		base := decodeIOA(body[0:3])
		rest := body[3:]
		for i := 0; i < noo; i++ {
			chunk := rest[i*size : i*size+size]
			value, err := DecodeObject(typeID, chunk)
			if err != nil {
				return nil, err
			}
			objects = append(objects, ObjectEntry{Address: base + IOA(i), Value: value})
		}
		return objects, nil
	}

	// Multi-object mode: an IOA precedes every value.
	expectedTotal := (size + 3) * noo
	if len(body) != expectedTotal {
		return nil, &ErrNumberOfObjectsMismatch{ExpectedBytes: expectedTotal, RemainBytes: len(body)}
	}
	rest := body
	for i := 0; i < noo; i++ {
		addr := decodeIOA(rest[0:3])
		rest = rest[3:]
		value, err := DecodeObject(typeID, rest[:size])
		if err != nil {
			return nil, err
		}
		rest = rest[size:]
		objects = append(objects, ObjectEntry{Address: addr, Value: value})
	}
	return objects, nil
}

// Encode serializes the ASDU back to wire bytes.
func (a *ASDU) Encode() ([]byte, error) {
	if len(a.Objects) > 127 {
		return nil, &ErrTooManyObjects{Count: len(a.Objects)}
	}

	data := make([]byte, 0, asduHeaderLen+len(a.Objects)*4)
	data = append(data, byte(a.Type))

	sqByte := byte(len(a.Objects))
	if a.SQ {
		sqByte |= 0b1000_0000
	}
	data = append(data, sqByte)

	thirdByte := byte(a.Cause) & 0b0011_1111
	if a.Test {
		thirdByte |= 0b1000_0000
	}
	if a.Negative {
		thirdByte |= 0b0100_0000
	}
	data = append(data, thirdByte, a.OriginatorAddress)
	data = append(data, serializeLittleEndianUint16(a.CommonAddress)...)

	if a.SQ {
		if len(a.Objects) > 0 {
			data = append(data, a.Objects[0].Address.Encode()...)
		}
		for _, obj := range a.Objects {
			data = append(data, obj.Value.Encode()...)
		}
		return data, nil
	}

	for _, obj := range a.Objects {
		data = append(data, obj.Address.Encode()...)
		data = append(data, obj.Value.Encode()...)
	}
	return data, nil
}
