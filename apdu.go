package iec104

import (
	"fmt"
	"io"
)

/*
APDU (Application Protocol Data Unit): a 2-byte header (start byte 0x68,
length of everything that follows) wrapping one Frame.

	| Start Byte (0x68) |  -----
	| Length of APDU    |    |
	| Control Field 1   |   APCI
	| Control Field 2   |    |
	| Control Field 3   |    |
	| Control Field 4   |  -----
	| ASDU (I-frame only)    |

Length counts everything after itself: 4 for S/U frames, 4+len(ASDU) for
I-frames, and must not exceed 253.
*/

func decodeFrameBody(body []byte) (Frame, error) {
	if len(body) < 4 {
		return nil, &ErrNotEnoughBytes{Need: 4, Have: len(body)}
	}
	cf := body[:4]
	switch frameTypeOf(cf[0]) {
	case FrameTypeI:
		if len(body) == 4 {
			return nil, &ErrInvalidControlField{Got: cf[0]}
		}
		f := decodeIFrame(cf)
		f.ASDU = body[4:]
		return f, nil
	case FrameTypeS:
		return decodeSFrame(cf), nil
	default:
		return decodeUFrame(cf)
	}
}

// DecodeAPDU parses one complete APDU, header included, from an
// already-buffered byte slice.
func DecodeAPDU(data []byte) (Frame, error) {
	if len(data) < 2 {
		return nil, &ErrNotEnoughBytes{Need: 2, Have: len(data)}
	}
	if data[0] != startByte {
		return nil, &ErrInvalidStart{Got: data[0]}
	}
	apduLen := int(data[1])
	if apduLen > maxApduLen {
		return nil, &ErrInvalidLength{Got: apduLen}
	}
	rest := data[2:]
	if len(rest) < apduLen {
		return nil, &ErrNotEnoughBytes{Need: apduLen, Have: len(rest)}
	}
	return decodeFrameBody(rest[:apduLen])
}

// ReadAPDU reads one complete APDU off r: the 2-byte header, then exactly
// the number of bytes the length byte declares.
func ReadAPDU(r io.Reader) (Frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if header[0] != startByte {
		return nil, &ErrInvalidStart{Got: header[0]}
	}
	apduLen := int(header[1])
	if apduLen > maxApduLen {
		return nil, &ErrInvalidLength{Got: apduLen}
	}
	body := make([]byte, apduLen)
	if apduLen > 0 {
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, err
		}
	}
	return decodeFrameBody(body)
}

// EncodeAPDU serializes a frame to wire bytes, 0x68 header included.
func EncodeAPDU(f Frame) ([]byte, error) {
	cf := f.controlField()
	var payload []byte
	if i, ok := f.(*IFrame); ok {
		payload = i.ASDU
	}

	total := len(cf) + len(payload)
	if total > maxApduLen {
		return nil, &ErrInvalidLength{Got: total}
	}

	out := make([]byte, 0, 2+total)
	out = append(out, startByte, byte(total))
	out = append(out, cf...)
	out = append(out, payload...)
	return out, nil
}

// WriteAPDU encodes f and writes it to w in a single call.
func WriteAPDU(w io.Writer, f Frame) error {
	data, err := EncodeAPDU(f)
	if err != nil {
		return err
	}
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("iec104: short write: wrote %d of %d bytes", n, len(data))
	}
	return nil
}
