package iec104

// Information elements: the typed values information objects are built
// from. Each decodes from (and encodes back to) the raw byte(s) defined by
// IEC 60870-5-101/104; quality/status flags live alongside the value they
// qualify, matching the standard's packed-byte layout rather than
// splitting flags and value into separate wire fields.

// Spi is single point information (a single on/off bit).
type Spi uint8

const (
	SpiOff Spi = 0
	SpiOn  Spi = 1
)

func DecodeSpi(b byte) Spi {
	if b&0b0000_0001 != 0 {
		return SpiOn
	}
	return SpiOff
}

func (s Spi) Encode() byte { return byte(s) & 0b0000_0001 }

// Dpi is double point information: two bits distinguishing a genuine
// off/on state from a transitional or invalid one.
type Dpi uint8

const (
	DpiIndeterminate Dpi = 0
	DpiOff           Dpi = 1
	DpiOn            Dpi = 2
	DpiInvalid       Dpi = 3
)

func DecodeDpi(b byte) Dpi { return Dpi(b & 0b0000_0011) }

func (d Dpi) Encode() byte { return byte(d) & 0b0000_0011 }

// SIQ is single-point information with quality descriptor (1 byte).
type SIQ struct {
	Invalid     bool
	NotTopical  bool
	Substituted bool
	Blocked     bool
	Value       Spi
}

func DecodeSIQ(b byte) SIQ {
	return SIQ{
		Invalid:     b&0b1000_0000 != 0,
		NotTopical:  b&0b0100_0000 != 0,
		Substituted: b&0b0010_0000 != 0,
		Blocked:     b&0b0001_0000 != 0,
		Value:       DecodeSpi(b),
	}
}

func (s SIQ) Encode() byte {
	b := s.Value.Encode()
	if s.Invalid {
		b |= 0b1000_0000
	}
	if s.NotTopical {
		b |= 0b0100_0000
	}
	if s.Substituted {
		b |= 0b0010_0000
	}
	if s.Blocked {
		b |= 0b0001_0000
	}
	return b
}

// DIQ is double-point information with quality descriptor (1 byte).
type DIQ struct {
	Invalid     bool
	NotTopical  bool
	Substituted bool
	Blocked     bool
	Value       Dpi
}

func DecodeDIQ(b byte) DIQ {
	return DIQ{
		Invalid:     b&0b1000_0000 != 0,
		NotTopical:  b&0b0100_0000 != 0,
		Substituted: b&0b0010_0000 != 0,
		Blocked:     b&0b0001_0000 != 0,
		Value:       DecodeDpi(b),
	}
}

func (d DIQ) Encode() byte {
	b := d.Value.Encode()
	if d.Invalid {
		b |= 0b1000_0000
	}
	if d.NotTopical {
		b |= 0b0100_0000
	}
	if d.Substituted {
		b |= 0b0010_0000
	}
	if d.Blocked {
		b |= 0b0001_0000
	}
	return b
}

// VTI is a value with transient state indication: a 7-bit two's complement
// step position plus a transient-movement flag, followed on the wire by a
// QDS byte.
type VTI struct {
	Value     int8
	Transient bool
	Quality   QDS
}

func DecodeVTI(b []byte) (VTI, error) {
	if len(b) < 2 {
		return VTI{}, &ErrNotEnoughBytes{Need: 2, Have: len(b)}
	}
	raw := b[0] & 0b0111_1111
	if raw&0b0100_0000 != 0 {
		raw |= 0b1000_0000 // sign-extend the 7-bit two's complement value
	}
	return VTI{
		Value:     int8(raw),
		Transient: b[0]&0b1000_0000 != 0,
		Quality:   DecodeQDS(b[1]),
	}, nil
}

func (v VTI) Encode() []byte {
	out := make([]byte, 2)
	out[0] = uint8(v.Value) & 0b0111_1111
	if v.Transient {
		out[0] |= 0b1000_0000
	}
	out[1] = v.Quality.Encode()
	return out
}

// NVA is a normalized measured value: a raw 16-bit two's complement
// fraction, nominally spanning [-1, 1 - 2^-15].
type NVA int16

func DecodeNVA(b []byte) (NVA, error) {
	if len(b) < 2 {
		return 0, &ErrNotEnoughBytes{Need: 2, Have: len(b)}
	}
	return NVA(parseLittleEndianInt16(b)), nil
}

func (n NVA) Encode() []byte { return serializeLittleEndianUint16(uint16(n)) }

// Float64 returns the normalized value scaled to [-1, 1).
func (n NVA) Float64() float64 { return float64(n) / 32768.0 }

// SVA is a scaled measured value: a raw 16-bit two's complement integer,
// application-specific scale.
type SVA int16

func DecodeSVA(b []byte) (SVA, error) {
	if len(b) < 2 {
		return 0, &ErrNotEnoughBytes{Need: 2, Have: len(b)}
	}
	return SVA(parseLittleEndianInt16(b)), nil
}

func (s SVA) Encode() []byte { return serializeLittleEndianUint16(uint16(s)) }

// R32 is a short (IEEE-754 single precision) floating point measured value.
type R32 float32

func DecodeR32(b []byte) (R32, error) {
	if len(b) < 4 {
		return 0, &ErrNotEnoughBytes{Need: 4, Have: len(b)}
	}
	return R32(parseLittleEndianFloat32(b)), nil
}

func (r R32) Encode() []byte { return serializeLittleEndianFloat32(float32(r)) }

// BSI is a 32-bit bitstring, carried without further interpretation.
type BSI uint32

func DecodeBSI(b []byte) (BSI, error) {
	if len(b) < 4 {
		return 0, &ErrNotEnoughBytes{Need: 4, Have: len(b)}
	}
	return BSI(parseLittleEndianUint32(b)), nil
}

func (b BSI) Encode() []byte { return serializeLittleEndianUint32(uint32(b)) }

// BCR is a binary counter reading: a 32-bit signed counter value plus the
// trailing sequence/quality byte (SeqQD).
type BCR struct {
	Value   int32
	Quality SeqQD
}

func DecodeBCR(b []byte) (BCR, error) {
	if len(b) < 5 {
		return BCR{}, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	return BCR{
		Value:   parseLittleEndianInt32(b[0:4]),
		Quality: DecodeSeqQD(b[4]),
	}, nil
}

func (c BCR) Encode() []byte {
	out := make([]byte, 5)
	copy(out[0:4], serializeLittleEndianUint32(uint32(c.Value)))
	out[4] = c.Quality.Encode()
	return out
}

// SCD is status with change detection: 16 current-status bits (ST) paired
// with 16 change-since-last-report bits (CD), one pair per monitored point.
type SCD struct {
	Status  uint16
	Changed uint16
}

func DecodeSCD(b []byte) (SCD, error) {
	if len(b) < 4 {
		return SCD{}, &ErrNotEnoughBytes{Need: 4, Have: len(b)}
	}
	return SCD{
		Status:  parseLittleEndianUint16(b[0:2]),
		Changed: parseLittleEndianUint16(b[2:4]),
	}, nil
}

func (s SCD) Encode() []byte {
	out := make([]byte, 4)
	copy(out[0:2], serializeLittleEndianUint16(s.Status))
	copy(out[2:4], serializeLittleEndianUint16(s.Changed))
	return out
}

// EventState is the state field of a protection-equipment event (SEP).
type EventState uint8

const (
	EventIndeterminate EventState = 0
	EventOff           EventState = 1
	EventOn            EventState = 2
	EventInvalid       EventState = 3
)

func DecodeEventState(b byte) EventState { return EventState(b & 0b0000_0011) }

// SEP is a single event of protection equipment (1 byte).
type SEP struct {
	Invalid     bool
	NotTopical  bool
	Substituted bool
	Blocked     bool
	Elapsed     bool
	State       EventState
}

func DecodeSEP(b byte) SEP {
	return SEP{
		Invalid:     b&0b1000_0000 != 0,
		NotTopical:  b&0b0100_0000 != 0,
		Substituted: b&0b0010_0000 != 0,
		Blocked:     b&0b0001_0000 != 0,
		Elapsed:     b&0b0000_1000 != 0,
		State:       DecodeEventState(b),
	}
}

func (s SEP) Encode() byte {
	b := byte(s.State) & 0b0000_0011
	if s.Invalid {
		b |= 0b1000_0000
	}
	if s.NotTopical {
		b |= 0b0100_0000
	}
	if s.Substituted {
		b |= 0b0010_0000
	}
	if s.Blocked {
		b |= 0b0001_0000
	}
	if s.Elapsed {
		b |= 0b0000_1000
	}
	return b
}

// StartEp is the set of start events of protection equipment (1 byte):
// general start, three phase starts, an earth-current/IE start, and a
// reverse-direction start.
type StartEp struct {
	Reverse bool // SRD
	IE      bool // SIE
	L3      bool // SL3
	L2      bool // SL2
	L1      bool // SL1
	General bool // GS
}

func DecodeStartEp(b byte) StartEp {
	return StartEp{
		Reverse: b&0b0010_0000 != 0,
		IE:      b&0b0001_0000 != 0,
		L3:      b&0b0000_1000 != 0,
		L2:      b&0b0000_0100 != 0,
		L1:      b&0b0000_0010 != 0,
		General: b&0b0000_0001 != 0,
	}
}

func (s StartEp) Encode() byte {
	var b byte
	if s.Reverse {
		b |= 0b0010_0000
	}
	if s.IE {
		b |= 0b0001_0000
	}
	if s.L3 {
		b |= 0b0000_1000
	}
	if s.L2 {
		b |= 0b0000_0100
	}
	if s.L1 {
		b |= 0b0000_0010
	}
	if s.General {
		b |= 0b0000_0001
	}
	return b
}

// OCI is output circuit information of protection equipment (1 byte).
type OCI struct {
	L3      bool
	L2      bool
	L1      bool
	General bool
}

func DecodeOCI(b byte) OCI {
	return OCI{
		L3:      b&0b0000_1000 != 0,
		L2:      b&0b0000_0100 != 0,
		L1:      b&0b0000_0010 != 0,
		General: b&0b0000_0001 != 0,
	}
}

func (o OCI) Encode() byte {
	var b byte
	if o.L3 {
		b |= 0b0000_1000
	}
	if o.L2 {
		b |= 0b0000_0100
	}
	if o.L1 {
		b |= 0b0000_0010
	}
	if o.General {
		b |= 0b0000_0001
	}
	return b
}

// COI is the cause of initialization (1 byte): the low 7 bits name the
// cause, the top bit (BS) marks whether initialization followed a local
// parameter change.
type COI struct {
	LocalChange bool
	Cause       uint8
}

const (
	CoiLocalPowerOn     uint8 = 0
	CoiLocalManualReset uint8 = 1
	CoiRemoteReset      uint8 = 2
)

func DecodeCOI(b byte) COI {
	return COI{
		LocalChange: b&0b1000_0000 != 0,
		Cause:       b & 0b0111_1111,
	}
}

func (c COI) Encode() byte {
	b := c.Cause & 0b0111_1111
	if c.LocalChange {
		b |= 0b1000_0000
	}
	return b
}

// SelectExecute distinguishes a select step from an execute step in a
// direct/select-execute command sequence.
type SelectExecute bool

const (
	Execute SelectExecute = false
	Select  SelectExecute = true
)

// LPC reports whether a parameter was changed locally since the last
// report.
type LPC bool

const (
	NoLocalChange LPC = false
	LocalChange   LPC = true
)

// QOC is the qualifier of a single/double/regulating-step command: how the
// output should be driven (short pulse, long pulse, persistent).
type QOC uint8

const (
	QOCUnspecified QOC = 0
	QOCShortPulse  QOC = 1
	QOCLongPulse   QOC = 2
	QOCPersistent  QOC = 3
)

// SCO is a single command (1 byte): select/execute, qualifier, and the
// commanded on/off state.
type SCO struct {
	SelectExecute SelectExecute
	Qualifier     QOC
	State         Spi
}

func DecodeSCO(b byte) SCO {
	return SCO{
		SelectExecute: SelectExecute(b&0b1000_0000 != 0),
		Qualifier:     QOC((b & 0b0111_1100) >> 2),
		State:         DecodeSpi(b),
	}
}

func (s SCO) Encode() byte {
	b := s.State.Encode()
	b |= byte(s.Qualifier) << 2
	if s.SelectExecute {
		b |= 0b1000_0000
	}
	return b
}

// DCO is a double command (1 byte).
type DCO struct {
	SelectExecute SelectExecute
	Qualifier     QOC
	State         Dpi
}

func DecodeDCO(b byte) DCO {
	return DCO{
		SelectExecute: SelectExecute(b&0b1000_0000 != 0),
		Qualifier:     QOC((b & 0b0111_1100) >> 2),
		State:         DecodeDpi(b),
	}
}

func (d DCO) Encode() byte {
	b := d.State.Encode()
	b |= byte(d.Qualifier) << 2
	if d.SelectExecute {
		b |= 0b1000_0000
	}
	return b
}

// RCS is the regulating-step command's direction: decrement, increment, or
// one of the two reserved "not permitted" codes.
type RCS uint8

const (
	RCSNotPermitted0 RCS = 0
	RCSDecrement     RCS = 1
	RCSIncrement     RCS = 2
	RCSNotPermitted3 RCS = 3
)

func DecodeRCS(b byte) RCS { return RCS(b & 0b0000_0011) }

// RCO is a regulating step command (1 byte).
type RCO struct {
	SelectExecute SelectExecute
	Qualifier     QOC
	State         RCS
}

func DecodeRCO(b byte) RCO {
	return RCO{
		SelectExecute: SelectExecute(b&0b1000_0000 != 0),
		Qualifier:     QOC((b & 0b0111_1100) >> 2),
		State:         DecodeRCS(b),
	}
}

func (r RCO) Encode() byte {
	b := byte(r.State) & 0b0000_0011
	b |= byte(r.Qualifier) << 2
	if r.SelectExecute {
		b |= 0b1000_0000
	}
	return b
}

// QOS is the qualifier of a set-point command: select/execute plus a
// single application-defined qualifier bit.
type QOS struct {
	SelectExecute SelectExecute
	Qualifier     bool
}

func DecodeQOS(b byte) QOS {
	return QOS{
		SelectExecute: SelectExecute(b&0b1000_0000 != 0),
		Qualifier:     b&0b0000_0001 != 0,
	}
}

func (q QOS) Encode() byte {
	var b byte
	if q.Qualifier {
		b |= 0b0000_0001
	}
	if q.SelectExecute {
		b |= 0b1000_0000
	}
	return b
}

// QOI is the qualifier of a general interrogation command: unused, global,
// or one of 16 interrogation groups.
type QOI uint8

const (
	QOIUnused QOI = 0
	QOIGlobal QOI = 20
)

// QOIGroup returns the QOI value for interrogation group n (1-16).
func QOIGroup(n int) QOI { return QOI(20 + n) }

// Group returns the interrogation group number (1-16) this QOI selects,
// and whether it names a group at all (as opposed to Unused, Global, or a
// private/reserved value).
func (q QOI) Group() (int, bool) {
	if q < 21 || q > 36 {
		return 0, false
	}
	return int(q) - 20, true
}

// FRZ is the freeze/reset qualifier of a counter interrogation command.
type FRZ uint8

const (
	FRZRead           FRZ = 0
	FRZFreeze         FRZ = 1
	FRZFreezeAndReset FRZ = 2
	FRZReset          FRZ = 3
)

// RQT is the request qualifier of a counter interrogation command: which
// counter group to report, or general.
type RQT uint8

const (
	RQTNone     RQT = 0
	RQTReqCo1   RQT = 1
	RQTReqCo2   RQT = 2
	RQTReqCo3   RQT = 3
	RQTReqCo4   RQT = 4
	RQTReqCoGen RQT = 5
)

// QCC is the qualifier of a counter interrogation command (1 byte): a
// request qualifier in the low 6 bits and a freeze/reset qualifier in the
// top 2.
type QCC struct {
	Request RQT
	Freeze  FRZ
}

func DecodeQCC(b byte) QCC {
	return QCC{
		Request: RQT(b & 0b0011_1111),
		Freeze:  FRZ(b >> 6),
	}
}

func (q QCC) Encode() byte {
	return (byte(q.Request) & 0b0011_1111) | (byte(q.Freeze) << 6)
}

// QRP is the qualifier of a reset-process command.
type QRP uint8

const (
	QRPUnused   QRP = 0
	QRPGeneral  QRP = 1
	QRPTtEvents QRP = 2
)

// KPA is the kind of parameter carried by a measured-value parameter
// object.
type KPA uint8

const (
	KPAUnused  KPA = 0
	KPAThresh  KPA = 1
	KPAFilter  KPA = 2
	KPALoLimit KPA = 3
	KPAHiLimit KPA = 4
)

// QPM is the qualifier of a measured-value parameter (1 byte). Per the
// standard layout, KPA occupies the low 6 bits; POP and LPC each take one
// of the top two bits, with no overlap between the two fields.
type QPM struct {
	Kind    KPA
	POP     bool
	Changed LPC
}

func DecodeQPM(b byte) QPM {
	return QPM{
		Kind:    KPA(b & 0b0011_1111),
		POP:     b&0b0100_0000 != 0,
		Changed: LPC(b&0b1000_0000 != 0),
	}
}

func (q QPM) Encode() byte {
	b := byte(q.Kind) & 0b0011_1111
	if q.POP {
		b |= 0b0100_0000
	}
	if q.Changed {
		b |= 0b1000_0000
	}
	return b
}

// QPA is the qualifier of a parameter activation command.
type QPA uint8

const (
	QPAUnused       QPA = 0
	QPAGeneral      QPA = 1
	QPAObject       QPA = 2
	QPATransmission QPA = 3
)
