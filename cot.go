package iec104

import "fmt"

/*
COT (Cause of Transmission, 6 bits) is used to control message routing.
- value range:
  - 0 is not defined;
  - 1-47 is used for standard IEC 101/104 definitions;
  - 48-63 is for special (private) use.

Decoding a COT byte never fails: values outside the named set below are
still valid COT values (the spec calls this the "Reserved(n)" case) and are
represented as-is; only String() treats them specially.
*/
type COT uint8

const (
	CotPer, CotCyc COT = 1, 1 // periodic, cyclic
	CotBack        COT = 2    // background scan
	CotSpt         COT = 3    // spontaneous
	CotInit        COT = 4    // initialized
	CotReq         COT = 5    // request or requested
	CotAct         COT = 6    // activation
	CotActCon      COT = 7    // activation confirmation
	CotDeact       COT = 8    // deactivation
	CotDeactCon    COT = 9    // deactivation confirmation
	CotActTerm     COT = 10   // activation termination
	CotRetRem      COT = 11   // return information caused by a remote command
	CotRetLoc      COT = 12   // return information caused by a local command
	CotFile        COT = 13   // file transfer
	// 14-19 reserved for further compatible definitions
	CotInrogen  COT = 20 // interrogated by general interrogation
	CotInro1    COT = 21
	CotInro2    COT = 22
	CotInro3    COT = 23
	CotInro4    COT = 24
	CotInro5    COT = 25
	CotInro6    COT = 26
	CotInro7    COT = 27
	CotInro8    COT = 28
	CotInro9    COT = 29
	CotInro10   COT = 30
	CotInro11   COT = 31
	CotInro12   COT = 32
	CotInro13   COT = 33
	CotInro14   COT = 34
	CotInro15   COT = 35
	CotInro16   COT = 36
	CotReqcogen COT = 37 // interrogated by counter general interrogation
	CotReqco1   COT = 38
	CotReqco2   COT = 39
	CotReqco3   COT = 40
	CotReqco4   COT = 41
	// 42-43 reserved
	CotUnType     COT = 44 // unknown type
	CotUnCause    COT = 45 // unknown cause
	CotUnAsduAddr COT = 46 // unknown asdu address
	CotUnObjAddr  COT = 47 // unknown object address
	// 48-63 reserved for special use
)

var cotNames = map[COT]string{
	CotPer: "periodic/cyclic", CotBack: "background-scan", CotSpt: "spontaneous",
	CotInit: "initialized", CotReq: "request", CotAct: "activation",
	CotActCon: "activation-confirmation", CotDeact: "deactivation",
	CotDeactCon: "deactivation-confirmation", CotActTerm: "activation-termination",
	CotRetRem: "return-info-remote", CotRetLoc: "return-info-local", CotFile: "file-transfer",
	CotInrogen: "interrogated-general", CotInro1: "interrogated-group1", CotInro2: "interrogated-group2",
	CotInro3: "interrogated-group3", CotInro4: "interrogated-group4", CotInro5: "interrogated-group5",
	CotInro6: "interrogated-group6", CotInro7: "interrogated-group7", CotInro8: "interrogated-group8",
	CotInro9: "interrogated-group9", CotInro10: "interrogated-group10", CotInro11: "interrogated-group11",
	CotInro12: "interrogated-group12", CotInro13: "interrogated-group13", CotInro14: "interrogated-group14",
	CotInro15: "interrogated-group15", CotInro16: "interrogated-group16",
	CotReqcogen: "counter-interrogated-general", CotReqco1: "counter-interrogated-group1",
	CotReqco2: "counter-interrogated-group2", CotReqco3: "counter-interrogated-group3",
	CotReqco4: "counter-interrogated-group4",
	CotUnType: "unknown-type", CotUnCause: "unknown-cause",
	CotUnAsduAddr: "unknown-asdu-address", CotUnObjAddr: "unknown-object-address",
}

// Known reports whether c has a named standard meaning. Unknown values are
// still perfectly valid COT bytes ("Reserved(n)" per spec §4.3) — the
// catalog only labels them.
func (c COT) Known() bool {
	_, ok := cotNames[c]
	return ok
}

func (c COT) String() string {
	if name, ok := cotNames[c]; ok {
		return name
	}
	if c == 0 {
		return "undefined(0)"
	}
	if c >= 48 {
		return fmt.Sprintf("private(%d)", uint8(c))
	}
	return fmt.Sprintf("reserved(%d)", uint8(c))
}
