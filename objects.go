package iec104

// Information objects: one struct per standard TypeID, each holding the
// typed information elements that make up its fixed-size payload (the
// 3-byte information object address is handled by ASDU, not here).
//
// Every object implements InformationObject (Encode() []byte back to
// wire bytes); objectFactories maps a TypeID to the decoder that turns a
// byte slice into one. File-transfer types (120-126) are deliberately
// absent from the map — decoding one always yields ErrUnknownType.

type InformationObject interface {
	Encode() []byte
}

type objectFactory func([]byte) (InformationObject, error)

// MSpNa1 is single-point information.
type MSpNa1 struct{ Value SIQ }

func decodeMSpNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return MSpNa1{Value: DecodeSIQ(b[0])}, nil
}
func (o MSpNa1) Encode() []byte { return []byte{o.Value.Encode()} }

// MSpTa1 is single-point information with a CP24Time2a time tag.
type MSpTa1 struct {
	Value SIQ
	Time  CP24Time2a
}

func decodeMSpTa1(b []byte) (InformationObject, error) {
	if len(b) < 4 {
		return nil, &ErrNotEnoughBytes{Need: 4, Have: len(b)}
	}
	t, err := DecodeCP24Time2a(b[1:4])
	if err != nil {
		return nil, err
	}
	return MSpTa1{Value: DecodeSIQ(b[0]), Time: t}, nil
}
func (o MSpTa1) Encode() []byte { return append([]byte{o.Value.Encode()}, o.Time.Encode()...) }

// MDpNa1 is double-point information.
type MDpNa1 struct{ Value DIQ }

func decodeMDpNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return MDpNa1{Value: DecodeDIQ(b[0])}, nil
}
func (o MDpNa1) Encode() []byte { return []byte{o.Value.Encode()} }

// MDpTa1 is double-point information with a CP24Time2a time tag.
type MDpTa1 struct {
	Value DIQ
	Time  CP24Time2a
}

func decodeMDpTa1(b []byte) (InformationObject, error) {
	if len(b) < 4 {
		return nil, &ErrNotEnoughBytes{Need: 4, Have: len(b)}
	}
	t, err := DecodeCP24Time2a(b[1:4])
	if err != nil {
		return nil, err
	}
	return MDpTa1{Value: DecodeDIQ(b[0]), Time: t}, nil
}
func (o MDpTa1) Encode() []byte { return append([]byte{o.Value.Encode()}, o.Time.Encode()...) }

// MStNa1 is step position information.
type MStNa1 struct{ Value VTI }

func decodeMStNa1(b []byte) (InformationObject, error) {
	v, err := DecodeVTI(b)
	if err != nil {
		return nil, err
	}
	return MStNa1{Value: v}, nil
}
func (o MStNa1) Encode() []byte { return o.Value.Encode() }

// MStTa1 is step position information with a CP24Time2a time tag.
type MStTa1 struct {
	Value VTI
	Time  CP24Time2a
}

func decodeMStTa1(b []byte) (InformationObject, error) {
	if len(b) < 5 {
		return nil, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	v, err := DecodeVTI(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[2:5])
	if err != nil {
		return nil, err
	}
	return MStTa1{Value: v, Time: t}, nil
}
func (o MStTa1) Encode() []byte { return append(o.Value.Encode(), o.Time.Encode()...) }

// MBoNa1 is a 32-bit bitstring with quality descriptor.
type MBoNa1 struct {
	Value   BSI
	Quality QDS
}

func decodeMBoNa1(b []byte) (InformationObject, error) {
	if len(b) < 5 {
		return nil, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	v, err := DecodeBSI(b[0:4])
	if err != nil {
		return nil, err
	}
	return MBoNa1{Value: v, Quality: DecodeQDS(b[4])}, nil
}
func (o MBoNa1) Encode() []byte { return append(o.Value.Encode(), o.Quality.Encode()) }

// MBoTa1 is a 32-bit bitstring with quality descriptor and CP24Time2a tag.
type MBoTa1 struct {
	Value   BSI
	Quality QDS
	Time    CP24Time2a
}

func decodeMBoTa1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	v, err := DecodeBSI(b[0:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[5:8])
	if err != nil {
		return nil, err
	}
	return MBoTa1{Value: v, Quality: DecodeQDS(b[4]), Time: t}, nil
}
func (o MBoTa1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

// MMeNa1 is a normalized measured value with quality descriptor.
type MMeNa1 struct {
	Value   NVA
	Quality QDS
}

func decodeMMeNa1(b []byte) (InformationObject, error) {
	if len(b) < 3 {
		return nil, &ErrNotEnoughBytes{Need: 3, Have: len(b)}
	}
	v, err := DecodeNVA(b[0:2])
	if err != nil {
		return nil, err
	}
	return MMeNa1{Value: v, Quality: DecodeQDS(b[2])}, nil
}
func (o MMeNa1) Encode() []byte { return append(o.Value.Encode(), o.Quality.Encode()) }

// MMeTa1 is a normalized measured value with quality descriptor and
// CP24Time2a tag.
type MMeTa1 struct {
	Value   NVA
	Quality QDS
	Time    CP24Time2a
}

func decodeMMeTa1(b []byte) (InformationObject, error) {
	if len(b) < 6 {
		return nil, &ErrNotEnoughBytes{Need: 6, Have: len(b)}
	}
	v, err := DecodeNVA(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[3:6])
	if err != nil {
		return nil, err
	}
	return MMeTa1{Value: v, Quality: DecodeQDS(b[2]), Time: t}, nil
}
func (o MMeTa1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

// MMeNb1 is a scaled measured value with quality descriptor.
type MMeNb1 struct {
	Value   SVA
	Quality QDS
}

func decodeMMeNb1(b []byte) (InformationObject, error) {
	if len(b) < 3 {
		return nil, &ErrNotEnoughBytes{Need: 3, Have: len(b)}
	}
	v, err := DecodeSVA(b[0:2])
	if err != nil {
		return nil, err
	}
	return MMeNb1{Value: v, Quality: DecodeQDS(b[2])}, nil
}
func (o MMeNb1) Encode() []byte { return append(o.Value.Encode(), o.Quality.Encode()) }

// MMeTb1 is a scaled measured value with quality descriptor and
// CP24Time2a tag.
type MMeTb1 struct {
	Value   SVA
	Quality QDS
	Time    CP24Time2a
}

func decodeMMeTb1(b []byte) (InformationObject, error) {
	if len(b) < 6 {
		return nil, &ErrNotEnoughBytes{Need: 6, Have: len(b)}
	}
	v, err := DecodeSVA(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[3:6])
	if err != nil {
		return nil, err
	}
	return MMeTb1{Value: v, Quality: DecodeQDS(b[2]), Time: t}, nil
}
func (o MMeTb1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

// MMeNc1 is a short-floating-point measured value with quality descriptor.
type MMeNc1 struct {
	Value   R32
	Quality QDS
}

func decodeMMeNc1(b []byte) (InformationObject, error) {
	if len(b) < 5 {
		return nil, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	v, err := DecodeR32(b[0:4])
	if err != nil {
		return nil, err
	}
	return MMeNc1{Value: v, Quality: DecodeQDS(b[4])}, nil
}
func (o MMeNc1) Encode() []byte { return append(o.Value.Encode(), o.Quality.Encode()) }

// MMeTc1 is a short-floating-point measured value with quality descriptor
// and CP24Time2a tag.
type MMeTc1 struct {
	Value   R32
	Quality QDS
	Time    CP24Time2a
}

func decodeMMeTc1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	v, err := DecodeR32(b[0:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[5:8])
	if err != nil {
		return nil, err
	}
	return MMeTc1{Value: v, Quality: DecodeQDS(b[4]), Time: t}, nil
}
func (o MMeTc1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

// MItNa1 is an integrated total (binary counter reading).
type MItNa1 struct{ Value BCR }

func decodeMItNa1(b []byte) (InformationObject, error) {
	v, err := DecodeBCR(b)
	if err != nil {
		return nil, err
	}
	return MItNa1{Value: v}, nil
}
func (o MItNa1) Encode() []byte { return o.Value.Encode() }

// MItTa1 is an integrated total with a CP24Time2a tag.
type MItTa1 struct {
	Value BCR
	Time  CP24Time2a
}

func decodeMItTa1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	v, err := DecodeBCR(b[0:5])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[5:8])
	if err != nil {
		return nil, err
	}
	return MItTa1{Value: v, Time: t}, nil
}
func (o MItTa1) Encode() []byte { return append(o.Value.Encode(), o.Time.Encode()...) }

// MEpTa1 is a protection-equipment event with a CP16Time2a elapsed-time
// and CP24Time2a tag.
type MEpTa1 struct {
	Value   SEP
	Elapsed CP16Time2a
	Time    CP24Time2a
}

func decodeMEpTa1(b []byte) (InformationObject, error) {
	if len(b) < 6 {
		return nil, &ErrNotEnoughBytes{Need: 6, Have: len(b)}
	}
	e, err := DecodeCP16Time2a(b[1:3])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[3:6])
	if err != nil {
		return nil, err
	}
	return MEpTa1{Value: DecodeSEP(b[0]), Elapsed: e, Time: t}, nil
}
func (o MEpTa1) Encode() []byte {
	out := append([]byte{o.Value.Encode()}, o.Elapsed.Encode()...)
	return append(out, o.Time.Encode()...)
}

// MEpTb1 is packed start events of protection equipment.
type MEpTb1 struct {
	Value         StartEp
	Quality       QDP
	RelayDuration CP16Time2a
	Time          CP24Time2a
}

func decodeMEpTb1(b []byte) (InformationObject, error) {
	if len(b) < 7 {
		return nil, &ErrNotEnoughBytes{Need: 7, Have: len(b)}
	}
	d, err := DecodeCP16Time2a(b[2:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[4:7])
	if err != nil {
		return nil, err
	}
	return MEpTb1{Value: DecodeStartEp(b[0]), Quality: DecodeQDP(b[1]), RelayDuration: d, Time: t}, nil
}
func (o MEpTb1) Encode() []byte {
	out := append([]byte{o.Value.Encode(), o.Quality.Encode()}, o.RelayDuration.Encode()...)
	return append(out, o.Time.Encode()...)
}

// MEpTc1 is packed output-circuit information of protection equipment.
type MEpTc1 struct {
	Value          OCI
	Quality        QDP
	RelayOperation CP16Time2a
	Time           CP24Time2a
}

func decodeMEpTc1(b []byte) (InformationObject, error) {
	if len(b) < 7 {
		return nil, &ErrNotEnoughBytes{Need: 7, Have: len(b)}
	}
	d, err := DecodeCP16Time2a(b[2:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP24Time2a(b[4:7])
	if err != nil {
		return nil, err
	}
	return MEpTc1{Value: DecodeOCI(b[0]), Quality: DecodeQDP(b[1]), RelayOperation: d, Time: t}, nil
}
func (o MEpTc1) Encode() []byte {
	out := append([]byte{o.Value.Encode(), o.Quality.Encode()}, o.RelayOperation.Encode()...)
	return append(out, o.Time.Encode()...)
}

// MPsNa1 is packed single-point information with status change detection.
type MPsNa1 struct {
	Value   SCD
	Quality QDS
}

func decodeMPsNa1(b []byte) (InformationObject, error) {
	if len(b) < 5 {
		return nil, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	v, err := DecodeSCD(b[0:4])
	if err != nil {
		return nil, err
	}
	return MPsNa1{Value: v, Quality: DecodeQDS(b[4])}, nil
}
func (o MPsNa1) Encode() []byte { return append(o.Value.Encode(), o.Quality.Encode()) }

// MMeNd1 is a normalized measured value without a quality descriptor.
type MMeNd1 struct{ Value NVA }

func decodeMMeNd1(b []byte) (InformationObject, error) {
	v, err := DecodeNVA(b)
	if err != nil {
		return nil, err
	}
	return MMeNd1{Value: v}, nil
}
func (o MMeNd1) Encode() []byte { return o.Value.Encode() }

// Long time-tag (CP56Time2a) monitor-direction objects.

type MSpTb1 struct {
	Value SIQ
	Time  CP56Time2a
}

func decodeMSpTb1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	t, err := DecodeCP56Time2a(b[1:8])
	if err != nil {
		return nil, err
	}
	return MSpTb1{Value: DecodeSIQ(b[0]), Time: t}, nil
}
func (o MSpTb1) Encode() []byte { return append([]byte{o.Value.Encode()}, o.Time.Encode()...) }

type MDpTb1 struct {
	Value DIQ
	Time  CP56Time2a
}

func decodeMDpTb1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	t, err := DecodeCP56Time2a(b[1:8])
	if err != nil {
		return nil, err
	}
	return MDpTb1{Value: DecodeDIQ(b[0]), Time: t}, nil
}
func (o MDpTb1) Encode() []byte { return append([]byte{o.Value.Encode()}, o.Time.Encode()...) }

type MStTb1 struct {
	Value VTI
	Time  CP56Time2a
}

func decodeMStTb1(b []byte) (InformationObject, error) {
	if len(b) < 9 {
		return nil, &ErrNotEnoughBytes{Need: 9, Have: len(b)}
	}
	v, err := DecodeVTI(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[2:9])
	if err != nil {
		return nil, err
	}
	return MStTb1{Value: v, Time: t}, nil
}
func (o MStTb1) Encode() []byte { return append(o.Value.Encode(), o.Time.Encode()...) }

type MBoTb1 struct {
	Value   BSI
	Quality QDS
	Time    CP56Time2a
}

func decodeMBoTb1(b []byte) (InformationObject, error) {
	if len(b) < 12 {
		return nil, &ErrNotEnoughBytes{Need: 12, Have: len(b)}
	}
	v, err := DecodeBSI(b[0:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[5:12])
	if err != nil {
		return nil, err
	}
	return MBoTb1{Value: v, Quality: DecodeQDS(b[4]), Time: t}, nil
}
func (o MBoTb1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

type MMeTd1 struct {
	Value   NVA
	Quality QDS
	Time    CP56Time2a
}

func decodeMMeTd1(b []byte) (InformationObject, error) {
	if len(b) < 10 {
		return nil, &ErrNotEnoughBytes{Need: 10, Have: len(b)}
	}
	v, err := DecodeNVA(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[3:10])
	if err != nil {
		return nil, err
	}
	return MMeTd1{Value: v, Quality: DecodeQDS(b[2]), Time: t}, nil
}
func (o MMeTd1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

type MMeTe1 struct {
	Value   SVA
	Quality QDS
	Time    CP56Time2a
}

func decodeMMeTe1(b []byte) (InformationObject, error) {
	if len(b) < 10 {
		return nil, &ErrNotEnoughBytes{Need: 10, Have: len(b)}
	}
	v, err := DecodeSVA(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[3:10])
	if err != nil {
		return nil, err
	}
	return MMeTe1{Value: v, Quality: DecodeQDS(b[2]), Time: t}, nil
}
func (o MMeTe1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

type MMeTf1 struct {
	Value   R32
	Quality QDS
	Time    CP56Time2a
}

func decodeMMeTf1(b []byte) (InformationObject, error) {
	if len(b) < 12 {
		return nil, &ErrNotEnoughBytes{Need: 12, Have: len(b)}
	}
	v, err := DecodeR32(b[0:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[5:12])
	if err != nil {
		return nil, err
	}
	return MMeTf1{Value: v, Quality: DecodeQDS(b[4]), Time: t}, nil
}
func (o MMeTf1) Encode() []byte {
	out := append(o.Value.Encode(), o.Quality.Encode())
	return append(out, o.Time.Encode()...)
}

type MItTb1 struct {
	Value BCR
	Time  CP56Time2a
}

func decodeMItTb1(b []byte) (InformationObject, error) {
	if len(b) < 12 {
		return nil, &ErrNotEnoughBytes{Need: 12, Have: len(b)}
	}
	v, err := DecodeBCR(b[0:5])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[5:12])
	if err != nil {
		return nil, err
	}
	return MItTb1{Value: v, Time: t}, nil
}
func (o MItTb1) Encode() []byte { return append(o.Value.Encode(), o.Time.Encode()...) }

type MEpTd1 struct {
	Value   SEP
	Elapsed CP16Time2a
	Time    CP56Time2a
}

func decodeMEpTd1(b []byte) (InformationObject, error) {
	if len(b) < 10 {
		return nil, &ErrNotEnoughBytes{Need: 10, Have: len(b)}
	}
	e, err := DecodeCP16Time2a(b[1:3])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[3:10])
	if err != nil {
		return nil, err
	}
	return MEpTd1{Value: DecodeSEP(b[0]), Elapsed: e, Time: t}, nil
}
func (o MEpTd1) Encode() []byte {
	out := append([]byte{o.Value.Encode()}, o.Elapsed.Encode()...)
	return append(out, o.Time.Encode()...)
}

type MEpTe1 struct {
	Value         StartEp
	Quality       QDP
	RelayDuration CP16Time2a
	Time          CP56Time2a
}

func decodeMEpTe1(b []byte) (InformationObject, error) {
	if len(b) < 11 {
		return nil, &ErrNotEnoughBytes{Need: 11, Have: len(b)}
	}
	d, err := DecodeCP16Time2a(b[2:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[4:11])
	if err != nil {
		return nil, err
	}
	return MEpTe1{Value: DecodeStartEp(b[0]), Quality: DecodeQDP(b[1]), RelayDuration: d, Time: t}, nil
}
func (o MEpTe1) Encode() []byte {
	out := append([]byte{o.Value.Encode(), o.Quality.Encode()}, o.RelayDuration.Encode()...)
	return append(out, o.Time.Encode()...)
}

type MEpTf1 struct {
	Value          OCI
	Quality        QDP
	RelayOperation CP16Time2a
	Time           CP56Time2a
}

func decodeMEpTf1(b []byte) (InformationObject, error) {
	if len(b) < 11 {
		return nil, &ErrNotEnoughBytes{Need: 11, Have: len(b)}
	}
	d, err := DecodeCP16Time2a(b[2:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[4:11])
	if err != nil {
		return nil, err
	}
	return MEpTf1{Value: DecodeOCI(b[0]), Quality: DecodeQDP(b[1]), RelayOperation: d, Time: t}, nil
}
func (o MEpTf1) Encode() []byte {
	out := append([]byte{o.Value.Encode(), o.Quality.Encode()}, o.RelayOperation.Encode()...)
	return append(out, o.Time.Encode()...)
}

// Process information in control direction.

type CScNa1 struct{ Command SCO }

func decodeCScNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return CScNa1{Command: DecodeSCO(b[0])}, nil
}
func (o CScNa1) Encode() []byte { return []byte{o.Command.Encode()} }

type CDcNa1 struct{ Command DCO }

func decodeCDcNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return CDcNa1{Command: DecodeDCO(b[0])}, nil
}
func (o CDcNa1) Encode() []byte { return []byte{o.Command.Encode()} }

type CRcNa1 struct{ Command RCO }

func decodeCRcNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return CRcNa1{Command: DecodeRCO(b[0])}, nil
}
func (o CRcNa1) Encode() []byte { return []byte{o.Command.Encode()} }

type CSeNa1 struct {
	Value NVA
	Qos   QOS
}

func decodeCSeNa1(b []byte) (InformationObject, error) {
	if len(b) < 3 {
		return nil, &ErrNotEnoughBytes{Need: 3, Have: len(b)}
	}
	v, err := DecodeNVA(b[0:2])
	if err != nil {
		return nil, err
	}
	return CSeNa1{Value: v, Qos: DecodeQOS(b[2])}, nil
}
func (o CSeNa1) Encode() []byte { return append(o.Value.Encode(), o.Qos.Encode()) }

type CSeNb1 struct {
	Value SVA
	Qos   QOS
}

func decodeCSeNb1(b []byte) (InformationObject, error) {
	if len(b) < 3 {
		return nil, &ErrNotEnoughBytes{Need: 3, Have: len(b)}
	}
	v, err := DecodeSVA(b[0:2])
	if err != nil {
		return nil, err
	}
	return CSeNb1{Value: v, Qos: DecodeQOS(b[2])}, nil
}
func (o CSeNb1) Encode() []byte { return append(o.Value.Encode(), o.Qos.Encode()) }

type CSeNc1 struct {
	Value R32
	Qos   QOS
}

func decodeCSeNc1(b []byte) (InformationObject, error) {
	if len(b) < 5 {
		return nil, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	v, err := DecodeR32(b[0:4])
	if err != nil {
		return nil, err
	}
	return CSeNc1{Value: v, Qos: DecodeQOS(b[4])}, nil
}
func (o CSeNc1) Encode() []byte { return append(o.Value.Encode(), o.Qos.Encode()) }

type CBoNa1 struct{ Value BSI }

func decodeCBoNa1(b []byte) (InformationObject, error) {
	v, err := DecodeBSI(b)
	if err != nil {
		return nil, err
	}
	return CBoNa1{Value: v}, nil
}
func (o CBoNa1) Encode() []byte { return o.Value.Encode() }

// Process information in control direction with CP56Time2a time tag.

type CScTa1 struct {
	Command SCO
	Time    CP56Time2a
}

func decodeCScTa1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	t, err := DecodeCP56Time2a(b[1:8])
	if err != nil {
		return nil, err
	}
	return CScTa1{Command: DecodeSCO(b[0]), Time: t}, nil
}
func (o CScTa1) Encode() []byte { return append([]byte{o.Command.Encode()}, o.Time.Encode()...) }

type CDcTa1 struct {
	Command DCO
	Time    CP56Time2a
}

func decodeCDcTa1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	t, err := DecodeCP56Time2a(b[1:8])
	if err != nil {
		return nil, err
	}
	return CDcTa1{Command: DecodeDCO(b[0]), Time: t}, nil
}
func (o CDcTa1) Encode() []byte { return append([]byte{o.Command.Encode()}, o.Time.Encode()...) }

type CRcTa1 struct {
	Command RCO
	Time    CP56Time2a
}

func decodeCRcTa1(b []byte) (InformationObject, error) {
	if len(b) < 8 {
		return nil, &ErrNotEnoughBytes{Need: 8, Have: len(b)}
	}
	t, err := DecodeCP56Time2a(b[1:8])
	if err != nil {
		return nil, err
	}
	return CRcTa1{Command: DecodeRCO(b[0]), Time: t}, nil
}
func (o CRcTa1) Encode() []byte { return append([]byte{o.Command.Encode()}, o.Time.Encode()...) }

type CSeTa1 struct {
	Value NVA
	Qos   QOS
	Time  CP56Time2a
}

func decodeCSeTa1(b []byte) (InformationObject, error) {
	if len(b) < 10 {
		return nil, &ErrNotEnoughBytes{Need: 10, Have: len(b)}
	}
	v, err := DecodeNVA(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[3:10])
	if err != nil {
		return nil, err
	}
	return CSeTa1{Value: v, Qos: DecodeQOS(b[2]), Time: t}, nil
}
func (o CSeTa1) Encode() []byte {
	out := append(o.Value.Encode(), o.Qos.Encode())
	return append(out, o.Time.Encode()...)
}

type CSeTb1 struct {
	Value SVA
	Qos   QOS
	Time  CP56Time2a
}

func decodeCSeTb1(b []byte) (InformationObject, error) {
	if len(b) < 10 {
		return nil, &ErrNotEnoughBytes{Need: 10, Have: len(b)}
	}
	v, err := DecodeSVA(b[0:2])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[3:10])
	if err != nil {
		return nil, err
	}
	return CSeTb1{Value: v, Qos: DecodeQOS(b[2]), Time: t}, nil
}
func (o CSeTb1) Encode() []byte {
	out := append(o.Value.Encode(), o.Qos.Encode())
	return append(out, o.Time.Encode()...)
}

type CSeTc1 struct {
	Value R32
	Qos   QOS
	Time  CP56Time2a
}

func decodeCSeTc1(b []byte) (InformationObject, error) {
	if len(b) < 12 {
		return nil, &ErrNotEnoughBytes{Need: 12, Have: len(b)}
	}
	v, err := DecodeR32(b[0:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[5:12])
	if err != nil {
		return nil, err
	}
	return CSeTc1{Value: v, Qos: DecodeQOS(b[4]), Time: t}, nil
}
func (o CSeTc1) Encode() []byte {
	out := append(o.Value.Encode(), o.Qos.Encode())
	return append(out, o.Time.Encode()...)
}

type CBoTa1 struct {
	Value BSI
	Time  CP56Time2a
}

func decodeCBoTa1(b []byte) (InformationObject, error) {
	if len(b) < 11 {
		return nil, &ErrNotEnoughBytes{Need: 11, Have: len(b)}
	}
	v, err := DecodeBSI(b[0:4])
	if err != nil {
		return nil, err
	}
	t, err := DecodeCP56Time2a(b[4:11])
	if err != nil {
		return nil, err
	}
	return CBoTa1{Value: v, Time: t}, nil
}
func (o CBoTa1) Encode() []byte { return append(o.Value.Encode(), o.Time.Encode()...) }

// System information.

type MEiNa1 struct{ Value COI }

func decodeMEiNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return MEiNa1{Value: DecodeCOI(b[0])}, nil
}
func (o MEiNa1) Encode() []byte { return []byte{o.Value.Encode()} }

type CIcNa1 struct{ Qualifier QOI }

func decodeCIcNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return CIcNa1{Qualifier: QOI(b[0])}, nil
}
func (o CIcNa1) Encode() []byte { return []byte{byte(o.Qualifier)} }

type CCiNa1 struct{ Qualifier QCC }

func decodeCCiNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return CCiNa1{Qualifier: DecodeQCC(b[0])}, nil
}
func (o CCiNa1) Encode() []byte { return []byte{o.Qualifier.Encode()} }

type CRdNa1 struct{}

func decodeCRdNa1(b []byte) (InformationObject, error) { return CRdNa1{}, nil }
func (o CRdNa1) Encode() []byte                        { return nil }

type CCsNa1 struct{ Time CP56Time2a }

func decodeCCsNa1(b []byte) (InformationObject, error) {
	t, err := DecodeCP56Time2a(b)
	if err != nil {
		return nil, err
	}
	return CCsNa1{Time: t}, nil
}
func (o CCsNa1) Encode() []byte { return o.Time.Encode() }

// testFramePattern is the fixed verification pattern for CTsNa1/CTsTa1.
const testFramePattern uint16 = 0xAA55

type CTsNa1 struct{ Pattern uint16 }

func decodeCTsNa1(b []byte) (InformationObject, error) {
	if len(b) < 2 {
		return nil, &ErrNotEnoughBytes{Need: 2, Have: len(b)}
	}
	return CTsNa1{Pattern: parseLittleEndianUint16(b[0:2])}, nil
}
func (o CTsNa1) Encode() []byte { return serializeLittleEndianUint16(o.Pattern) }

// NewCTsNa1 builds a test command carrying the standard verification
// pattern.
func NewCTsNa1() CTsNa1 { return CTsNa1{Pattern: testFramePattern} }

type CRpNa1 struct{ Qualifier QRP }

func decodeCRpNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return CRpNa1{Qualifier: QRP(b[0])}, nil
}
func (o CRpNa1) Encode() []byte { return []byte{byte(o.Qualifier)} }

type CCdNa1 struct{ Delay CP16Time2a }

func decodeCCdNa1(b []byte) (InformationObject, error) {
	d, err := DecodeCP16Time2a(b)
	if err != nil {
		return nil, err
	}
	return CCdNa1{Delay: d}, nil
}
func (o CCdNa1) Encode() []byte { return o.Delay.Encode() }

type CTsTa1 struct {
	Pattern uint16
	Time    CP56Time2a
}

func decodeCTsTa1(b []byte) (InformationObject, error) {
	if len(b) < 9 {
		return nil, &ErrNotEnoughBytes{Need: 9, Have: len(b)}
	}
	t, err := DecodeCP56Time2a(b[2:9])
	if err != nil {
		return nil, err
	}
	return CTsTa1{Pattern: parseLittleEndianUint16(b[0:2]), Time: t}, nil
}
func (o CTsTa1) Encode() []byte {
	return append(serializeLittleEndianUint16(o.Pattern), o.Time.Encode()...)
}

// Parameters in control direction.

type PMeNa1 struct {
	Value NVA
	Qpm   QPM
}

func decodePMeNa1(b []byte) (InformationObject, error) {
	if len(b) < 3 {
		return nil, &ErrNotEnoughBytes{Need: 3, Have: len(b)}
	}
	v, err := DecodeNVA(b[0:2])
	if err != nil {
		return nil, err
	}
	return PMeNa1{Value: v, Qpm: DecodeQPM(b[2])}, nil
}
func (o PMeNa1) Encode() []byte { return append(o.Value.Encode(), o.Qpm.Encode()) }

type PMeNb1 struct {
	Value SVA
	Qpm   QPM
}

func decodePMeNb1(b []byte) (InformationObject, error) {
	if len(b) < 3 {
		return nil, &ErrNotEnoughBytes{Need: 3, Have: len(b)}
	}
	v, err := DecodeSVA(b[0:2])
	if err != nil {
		return nil, err
	}
	return PMeNb1{Value: v, Qpm: DecodeQPM(b[2])}, nil
}
func (o PMeNb1) Encode() []byte { return append(o.Value.Encode(), o.Qpm.Encode()) }

type PMeNc1 struct {
	Value R32
	Qpm   QPM
}

func decodePMeNc1(b []byte) (InformationObject, error) {
	if len(b) < 5 {
		return nil, &ErrNotEnoughBytes{Need: 5, Have: len(b)}
	}
	v, err := DecodeR32(b[0:4])
	if err != nil {
		return nil, err
	}
	return PMeNc1{Value: v, Qpm: DecodeQPM(b[4])}, nil
}
func (o PMeNc1) Encode() []byte { return append(o.Value.Encode(), o.Qpm.Encode()) }

type PAcNa1 struct{ Qualifier QPA }

func decodePAcNa1(b []byte) (InformationObject, error) {
	if len(b) < 1 {
		return nil, &ErrNotEnoughBytes{Need: 1, Have: len(b)}
	}
	return PAcNa1{Qualifier: QPA(b[0])}, nil
}
func (o PAcNa1) Encode() []byte { return []byte{byte(o.Qualifier)} }

var objectFactories = map[TypeID]objectFactory{
	TypeMSpNa1: decodeMSpNa1,
	TypeMSpTa1: decodeMSpTa1,
	TypeMDpNa1: decodeMDpNa1,
	TypeMDpTa1: decodeMDpTa1,
	TypeMStNa1: decodeMStNa1,
	TypeMStTa1: decodeMStTa1,
	TypeMBoNa1: decodeMBoNa1,
	TypeMBoTa1: decodeMBoTa1,
	TypeMMeNa1: decodeMMeNa1,
	TypeMMeTa1: decodeMMeTa1,
	TypeMMeNb1: decodeMMeNb1,
	TypeMMeTb1: decodeMMeTb1,
	TypeMMeNc1: decodeMMeNc1,
	TypeMMeTc1: decodeMMeTc1,
	TypeMItNa1: decodeMItNa1,
	TypeMItTa1: decodeMItTa1,
	TypeMEpTa1: decodeMEpTa1,
	TypeMEpTb1: decodeMEpTb1,
	TypeMEpTc1: decodeMEpTc1,
	TypeMPsNa1: decodeMPsNa1,
	TypeMMeNd1: decodeMMeNd1,

	TypeMSpTb1: decodeMSpTb1,
	TypeMDpTb1: decodeMDpTb1,
	TypeMStTb1: decodeMStTb1,
	TypeMBoTb1: decodeMBoTb1,
	TypeMMeTd1: decodeMMeTd1,
	TypeMMeTe1: decodeMMeTe1,
	TypeMMeTf1: decodeMMeTf1,
	TypeMItTb1: decodeMItTb1,
	TypeMEpTd1: decodeMEpTd1,
	TypeMEpTe1: decodeMEpTe1,
	TypeMEpTf1: decodeMEpTf1,

	TypeCScNa1: decodeCScNa1,
	TypeCDcNa1: decodeCDcNa1,
	TypeCRcNa1: decodeCRcNa1,
	TypeCSeNa1: decodeCSeNa1,
	TypeCSeNb1: decodeCSeNb1,
	TypeCSeNc1: decodeCSeNc1,
	TypeCBoNa1: decodeCBoNa1,

	TypeCScTa1: decodeCScTa1,
	TypeCDcTa1: decodeCDcTa1,
	TypeCRcTa1: decodeCRcTa1,
	TypeCSeTa1: decodeCSeTa1,
	TypeCSeTb1: decodeCSeTb1,
	TypeCSeTc1: decodeCSeTc1,
	TypeCBoTa1: decodeCBoTa1,

	TypeMEiNa1: decodeMEiNa1,

	TypeCIcNa1: decodeCIcNa1,
	TypeCCiNa1: decodeCCiNa1,
	TypeCRdNa1: decodeCRdNa1,
	TypeCCsNa1: decodeCCsNa1,
	TypeCTsNa1: decodeCTsNa1,
	TypeCRpNa1: decodeCRpNa1,
	TypeCCdNa1: decodeCCdNa1,
	TypeCTsTa1: decodeCTsTa1,

	TypePMeNa1: decodePMeNa1,
	TypePMeNb1: decodePMeNb1,
	TypePMeNc1: decodePMeNc1,
	TypePAcNa1: decodePAcNa1,
}

// DecodeObject decodes the value portion (excluding the information object
// address) of a single object of type t.
func DecodeObject(t TypeID, data []byte) (InformationObject, error) {
	factory, ok := objectFactories[t]
	if !ok {
		return nil, &ErrUnknownType{TypeID: t}
	}
	return factory(data)
}
