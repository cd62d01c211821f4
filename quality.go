package iec104

// QDS is the quality descriptor attached to most monitor-direction
// measured values. Every flag is a single bit; OV additionally needs two
// bits cleared to be considered "good" on the wire, but only bit 0 is
// defined standard (the other is reserved and ignored on decode).
type QDS struct {
	Invalid      bool // IV
	NotTopical   bool // NT
	Substituted  bool // SB
	Blocked      bool // BL
	Overflow     bool // OV
}

func DecodeQDS(b byte) QDS {
	return QDS{
		Invalid:     b&0b1000_0000 != 0,
		NotTopical:  b&0b0100_0000 != 0,
		Substituted: b&0b0010_0000 != 0,
		Blocked:     b&0b0001_0000 != 0,
		Overflow:    b&0b0000_0001 != 0,
	}
}

func (q QDS) Encode() byte {
	var b byte
	if q.Invalid {
		b |= 0b1000_0000
	}
	if q.NotTopical {
		b |= 0b0100_0000
	}
	if q.Substituted {
		b |= 0b0010_0000
	}
	if q.Blocked {
		b |= 0b0001_0000
	}
	if q.Overflow {
		b |= 0b0000_0001
	}
	return b
}

// QDP is the quality descriptor for protection-equipment events: the same
// four status bits as QDS, plus EI (elapsed time invalid) in place of OV.
type QDP struct {
	Invalid     bool
	NotTopical  bool
	Substituted bool
	Blocked     bool
	Elapsed     bool // EI
}

func DecodeQDP(b byte) QDP {
	return QDP{
		Invalid:     b&0b1000_0000 != 0,
		NotTopical:  b&0b0100_0000 != 0,
		Substituted: b&0b0010_0000 != 0,
		Blocked:     b&0b0001_0000 != 0,
		Elapsed:     b&0b0000_1000 != 0,
	}
}

func (q QDP) Encode() byte {
	var b byte
	if q.Invalid {
		b |= 0b1000_0000
	}
	if q.NotTopical {
		b |= 0b0100_0000
	}
	if q.Substituted {
		b |= 0b0010_0000
	}
	if q.Blocked {
		b |= 0b0001_0000
	}
	if q.Elapsed {
		b |= 0b0000_1000
	}
	return b
}

// SeqQD is the sequence/quality byte trailing a binary counter reading
// (BCR): IV (invalid), CA (counter was adjusted), CY (counter overflowed
// and wrapped), and a 5-bit sequence number.
type SeqQD struct {
	Invalid  bool
	Adjusted bool
	Carry    bool
	Sequence uint8
}

func DecodeSeqQD(b byte) SeqQD {
	return SeqQD{
		Invalid:  b&0b1000_0000 != 0,
		Adjusted: b&0b0100_0000 != 0,
		Carry:    b&0b0010_0000 != 0,
		Sequence: b & 0b0001_1111,
	}
}

func (q SeqQD) Encode() byte {
	var b byte
	if q.Invalid {
		b |= 0b1000_0000
	}
	if q.Adjusted {
		b |= 0b0100_0000
	}
	if q.Carry {
		b |= 0b0010_0000
	}
	b |= q.Sequence & 0b0001_1111
	return b
}
