// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"math/big"

	"github.com/pkg/errors"
)

// MaxVarIntBytes is the largest payload a one byte length prefix can announce.
// Integers needing more than 2039 bits plus sign can't be encoded.
const MaxVarIntBytes = 255

// VarIntLen returns the minimal number of bytes holding n in two's-complement, sign bit included.
func VarIntLen(n *big.Int) int {
	bits := n.BitLen()
	if n.Sign() < 0 {
		// the length of -n-1 is the length of n's two's-complement without the sign
		bits = new(big.Int).Not(n).BitLen()
	}
	return bits/8 + 1
}

// AppendVarInt appends the length prefixed two's-complement form of n to dst.
func AppendVarInt(dst []byte, n *big.Int) ([]byte, error) {
	k := VarIntLen(n)
	if k > MaxVarIntBytes {
		return dst, errors.Wrapf(ErrUnencodable, "objpack: integer needs %d bytes", k)
	}

	if n.IsInt64() {
		v := n.Int64()
		dst = append(dst, byte(k))
		for i := k - 1; i >= 0; i-- {
			// arithmetic shift keeps the sign bits for negative values
			dst = append(dst, byte(v>>(8*uint(i))))
		}
		return dst, nil
	}

	m := n
	if n.Sign() < 0 {
		m = new(big.Int).Lsh(big.NewInt(1), uint(8*k))
		m.Add(m, n)
	}
	start := len(dst) + 1
	dst = append(dst, byte(k))
	dst = append(dst, make([]byte, k)...)
	m.FillBytes(dst[start:])
	return dst, nil
}

// WriteVarInt writes n as a one byte length k followed by k big-endian bytes.
func (enc *Encoder) WriteVarInt(n *big.Int) error {
	var scratch [16]byte
	buf, err := AppendVarInt(scratch[:0], n)
	if err != nil {
		return err
	}
	return enc.WriteBytes(buf)
}

// ReadVarInt reads an integer written by WriteVarInt.
func (dec *Decoder) ReadVarInt() (*big.Int, error) {
	k, err := dec.ReadByte()
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, errors.Wrap(ErrMalformedVarInt, "objpack: zero length prefix")
	}
	buf, err := dec.ReadBytes(int(k))
	if err != nil {
		return nil, err
	}

	if k <= 8 {
		// seed with the sign extended first byte, then shift in the rest
		acc := int64(int8(buf[0]))
		for _, b := range buf[1:] {
			acc = acc<<8 | int64(b)
		}
		return big.NewInt(acc), nil
	}

	n := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(buf))))
	}
	return n, nil
}

// ReadLength reads a VarInt that is used as a byte count, element count or dimension.
func (dec *Decoder) ReadLength() (int, error) {
	n, err := dec.ReadVarInt()
	if err != nil {
		return 0, err
	}
	if n.Sign() < 0 || !n.IsInt64() || n.Int64() > int64(maxInt) {
		return 0, errors.Wrapf(ErrBadLength, "objpack: length %s", n)
	}
	return int(n.Int64()), nil
}
