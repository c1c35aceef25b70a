// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import "math"

// WriteFloat32 writes the IEEE-754 bit pattern of f as four big-endian bytes.
func (enc *Encoder) WriteFloat32(f float32) error {
	return enc.WriteU32(math.Float32bits(f))
}

// ReadFloat32 reads a float written by WriteFloat32.
func (dec *Decoder) ReadFloat32() (float32, error) {
	bits, err := dec.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// WriteFloat64 writes the bit pattern of f as two 32 bit words, the high word
// (sign, exponent, top of the mantissa) first.
func (enc *Encoder) WriteFloat64(f float64) error {
	bits := math.Float64bits(f)
	if err := enc.WriteU32(uint32(bits >> 32)); err != nil {
		return err
	}
	return enc.WriteU32(uint32(bits))
}

// ReadFloat64 reads a float written by WriteFloat64.
func (dec *Decoder) ReadFloat64() (float64, error) {
	high, err := dec.ReadI32()
	if err != nil {
		return 0, err
	}
	low, err := dec.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(uint32(high))<<32 | uint64(low)), nil
}
