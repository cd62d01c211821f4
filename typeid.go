package iec104

/*
TypeID (Type Identification, 1 byte) identifies the structure and meaning of
every information object carried by an ASDU.
- value range:
  - 0 is not used;
  - 1-127 is used for standard IEC 101/104 definitions;
  - 128-135 is reserved for message routing;
  - 136-255 for special use.

The catalog below is a pure static table: for every standard type it
records the fixed byte size of one object payload (excluding the 3-byte
information object address) and whether the code is part of the standard.
Non-standard codes, and standard codes for which no value codec is
registered (the file-transfer family, 120-126, per this module's
Non-goals), decode to ErrUnknownType.

Constants carry a Type prefix to keep the numeric identifier (TypeMSpNa1)
distinct from the decoded value struct of the same standard name (MSpNa1,
defined in objects.go).
*/
type TypeID uint8

const (
	// Process information in monitor direction.

	// TypeMSpNa1 indicates single point information.
	// InformationElement Format: SIQ
	TypeMSpNa1 TypeID = 1
	// TypeMSpTa1 indicates single point information with time tag CP24Time2a.
	// InformationElement Format: SIQ + CP24Time2a
	TypeMSpTa1 TypeID = 2
	// TypeMDpNa1 indicates double point information.
	// InformationElement Format: DIQ
	TypeMDpNa1 TypeID = 3
	// TypeMDpTa1 indicates double point information with time tag CP24Time2a.
	// InformationElement Format: DIQ + CP24Time2a
	TypeMDpTa1 TypeID = 4
	// TypeMStNa1 indicates step position information.
	// InformationElement Format: VTI
	TypeMStNa1 TypeID = 5
	// TypeMStTa1 indicates step position information with time tag CP24Time2a.
	TypeMStTa1 TypeID = 6
	// TypeMBoNa1 indicates bitstring of 32 bit.
	// InformationElement Format: BSI + QDS
	TypeMBoNa1 TypeID = 7
	// TypeMBoTa1 indicates bitstring of 32 bit with time tag CP24Time2a.
	TypeMBoTa1 TypeID = 8
	// TypeMMeNa1 indicates measured value, normalized value.
	// InformationElement Format: NVA + QDS
	TypeMMeNa1 TypeID = 9
	// TypeMMeTa1 indicates measured value, normalized value with time tag CP24Time2a.
	TypeMMeTa1 TypeID = 10
	// TypeMMeNb1 indicates measured value, scaled value.
	// InformationElement Format: SVA + QDS
	TypeMMeNb1 TypeID = 11
	// TypeMMeTb1 indicates measured value, scaled value with time tag CP24Time2a.
	TypeMMeTb1 TypeID = 12
	// TypeMMeNc1 indicates measured value, short floating point number.
	// InformationElement Format: R32 + QDS
	TypeMMeNc1 TypeID = 13
	// TypeMMeTc1 indicates measured value, short floating point with time tag CP24Time2a.
	TypeMMeTc1 TypeID = 14
	// TypeMItNa1 indicates integrated totals.
	// InformationElement Format: BCR
	TypeMItNa1 TypeID = 15
	// TypeMItTa1 indicates integrated totals with time tag CP24Time2a.
	TypeMItTa1 TypeID = 16
	// TypeMEpTa1 indicates event of protection equipment with time tag CP24Time2a.
	// InformationElement Format: SEP + CP16Time2a + CP24Time2a
	TypeMEpTa1 TypeID = 17
	// TypeMEpTb1 indicates packed start events of protection equipment with time tag CP24Time2a.
	TypeMEpTb1 TypeID = 18
	// TypeMEpTc1 indicates packed output circuit info of protection equipment with time tag CP24Time2a.
	TypeMEpTc1 TypeID = 19
	// TypeMPsNa1 indicates packed single point info with status change detection.
	// InformationElement Format: SCD
	TypeMPsNa1 TypeID = 20
	// TypeMMeNd1 indicates measured value, normalized value without quality descriptor.
	// InformationElement Format: NVA
	TypeMMeNd1 TypeID = 21

	// Process telegrams with long time tag (CP56Time2a, 7 bytes).

	TypeMSpTb1 TypeID = 30
	TypeMDpTb1 TypeID = 31
	TypeMStTb1 TypeID = 32
	TypeMBoTb1 TypeID = 33
	TypeMMeTd1 TypeID = 34
	TypeMMeTe1 TypeID = 35
	TypeMMeTf1 TypeID = 36
	TypeMItTb1 TypeID = 37
	TypeMEpTd1 TypeID = 38
	TypeMEpTe1 TypeID = 39
	TypeMEpTf1 TypeID = 40

	// Process information in control direction.

	// TypeCScNa1 indicates single command.
	// InformationElement Format: SCO
	TypeCScNa1 TypeID = 45
	// TypeCDcNa1 indicates double command.
	// InformationElement Format: DCO
	TypeCDcNa1 TypeID = 46
	// TypeCRcNa1 indicates regulating step command.
	// InformationElement Format: RCO
	TypeCRcNa1 TypeID = 47
	// TypeCSeNa1 indicates set point command, normalized value.
	// InformationElement Format: NVA + QOS
	TypeCSeNa1 TypeID = 48
	// TypeCSeNb1 indicates set point command, scaled value.
	// InformationElement Format: SVA + QOS
	TypeCSeNb1 TypeID = 49
	// TypeCSeNc1 indicates set point command, short floating point number.
	// InformationElement Format: R32 + QOS
	TypeCSeNc1 TypeID = 50
	// TypeCBoNa1 indicates bitstring of 32 bit command.
	TypeCBoNa1 TypeID = 51

	TypeCScTa1 TypeID = 58
	TypeCDcTa1 TypeID = 59
	TypeCRcTa1 TypeID = 60
	TypeCSeTa1 TypeID = 61
	TypeCSeTb1 TypeID = 62
	TypeCSeTc1 TypeID = 63
	TypeCBoTa1 TypeID = 64

	// System information in monitor direction.

	// TypeMEiNa1 indicates end of initialization.
	// InformationElement Format: COI
	TypeMEiNa1 TypeID = 70

	// System information in control direction.

	// TypeCIcNa1 indicates general interrogation command.
	// InformationElement Format: QOI
	TypeCIcNa1 TypeID = 100
	// TypeCCiNa1 indicates counter interrogation command.
	// InformationElement Format: QCC
	TypeCCiNa1 TypeID = 101
	// TypeCRdNa1 indicates read command.
	TypeCRdNa1 TypeID = 102
	// TypeCCsNa1 indicates clock synchronization command.
	// InformationElement Format: CP56Time2a
	TypeCCsNa1 TypeID = 103
	// TypeCTsNa1 indicates test command.
	TypeCTsNa1 TypeID = 104
	// TypeCRpNa1 indicates reset process command.
	// InformationElement Format: QRP
	TypeCRpNa1 TypeID = 105
	// TypeCCdNa1 indicates delay acquisition command.
	// InformationElement Format: CP16Time2a
	TypeCCdNa1 TypeID = 106
	// TypeCTsTa1 indicates test command with time tag CP56Time2a.
	TypeCTsTa1 TypeID = 107

	// Parameter in control direction.

	// TypePMeNa1 indicates parameter of measured value, normalized value.
	// InformationElement Format: NVA + QPM
	TypePMeNa1 TypeID = 110
	// TypePMeNb1 indicates parameter of measured value, scaled value.
	// InformationElement Format: SVA + QPM
	TypePMeNb1 TypeID = 111
	// TypePMeNc1 indicates parameter of measured value, short floating point number.
	// InformationElement Format: R32 + QPM
	TypePMeNc1 TypeID = 112
	// TypePAcNa1 indicates parameter activation.
	// InformationElement Format: QPA
	TypePAcNa1 TypeID = 113

	// File transfer. Size-only entries: no value codec is registered for
	// these per this module's Non-goals, so decoding one of these types
	// always yields ErrUnknownType.
	TypeFFrNa1 TypeID = 120
	TypeFSrNa1 TypeID = 121
	TypeFScNa1 TypeID = 122
	TypeFLsNa1 TypeID = 123
	TypeFAfNa1 TypeID = 124
	TypeFSgNa1 TypeID = 125
	TypeFDrTa1 TypeID = 126
)

// typeSize maps every standard type to the fixed byte size of one object
// payload, excluding the 3-byte address.
var typeSize = map[TypeID]int{
	TypeMSpNa1: 1,
	TypeMSpTa1: 4,
	TypeMDpNa1: 1,
	TypeMDpTa1: 4,
	TypeMStNa1: 2,
	TypeMStTa1: 5,
	TypeMBoNa1: 5,
	TypeMBoTa1: 8,
	TypeMMeNa1: 3,
	TypeMMeTa1: 6,
	TypeMMeNb1: 3,
	TypeMMeTb1: 6,
	TypeMMeNc1: 5,
	TypeMMeTc1: 8,
	TypeMItNa1: 5,
	TypeMItTa1: 8,
	TypeMEpTa1: 6,
	TypeMEpTb1: 7,
	TypeMEpTc1: 7,
	TypeMPsNa1: 5,
	TypeMMeNd1: 2,

	TypeMSpTb1: 8,
	TypeMDpTb1: 8,
	TypeMStTb1: 9,
	TypeMBoTb1: 12,
	TypeMMeTd1: 10,
	TypeMMeTe1: 10,
	TypeMMeTf1: 12,
	TypeMItTb1: 12,
	TypeMEpTd1: 10,
	TypeMEpTe1: 11,
	TypeMEpTf1: 11,

	TypeCScNa1: 1,
	TypeCDcNa1: 1,
	TypeCRcNa1: 1,
	TypeCSeNa1: 3,
	TypeCSeNb1: 3,
	TypeCSeNc1: 5,
	TypeCBoNa1: 4,

	TypeCScTa1: 8,
	TypeCDcTa1: 8,
	TypeCRcTa1: 8,
	TypeCSeTa1: 10,
	TypeCSeTb1: 10,
	TypeCSeTc1: 12,
	TypeCBoTa1: 11,

	TypeMEiNa1: 1,

	TypeCIcNa1: 1,
	TypeCCiNa1: 1,
	TypeCRdNa1: 0,
	TypeCCsNa1: 7,
	TypeCTsNa1: 2,
	TypeCRpNa1: 1,
	TypeCCdNa1: 2,
	TypeCTsTa1: 9,

	TypePMeNa1: 3,
	TypePMeNb1: 3,
	TypePMeNc1: 5,
	TypePAcNa1: 1,

	// File-transfer sizes, per the standard, recorded for completeness even
	// though no value codec exists for them.
	TypeFFrNa1: 6,
	TypeFSrNa1: 7,
	TypeFScNa1: 4,
	TypeFLsNa1: 5,
	TypeFAfNa1: 4,
	TypeFSgNa1: 4,
	TypeFDrTa1: 13,
}

// Size returns the fixed per-object payload size (excluding the 3-byte
// address) for a standard type, and whether the type is recognized at all.
func (t TypeID) Size() (int, bool) {
	size, ok := typeSize[t]
	return size, ok
}

// Standard reports whether t is one of the codes defined by IEC 60870-5-101/104.
func (t TypeID) Standard() bool {
	_, ok := typeSize[t]
	return ok
}

// HasValueCodec reports whether objects.go registers an encode/decode
// implementation for t. File-transfer types are Standard() but have no
// codec, per this module's Non-goals.
func (t TypeID) HasValueCodec() bool {
	_, ok := objectFactories[t]
	return ok
}
