// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Fixed size fields are big-endian and carry neither tag nor length.

// WriteByte writes a single raw byte.
func (enc *Encoder) WriteByte(b byte) error {
	return errors.Wrap(enc.w.WriteByte(b), "objpack: write failed")
}

// WriteBytes writes p verbatim.
func (enc *Encoder) WriteBytes(p []byte) error {
	_, err := enc.w.Write(p)
	return errors.Wrap(err, "objpack: write failed")
}

// WriteU16 writes v as two big-endian bytes.
func (enc *Encoder) WriteU16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return enc.WriteBytes(buf[:])
}

// WriteU32 writes v as four big-endian bytes.
func (enc *Encoder) WriteU32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return enc.WriteBytes(buf[:])
}

// ReadByte reads a single raw byte.
func (dec *Decoder) ReadByte() (byte, error) {
	b, err := dec.r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(eos(err), "objpack: read failed")
	}
	return b, nil
}

// chunk bounds how much ReadBytes allocates before the bytes actually arrived.
const chunk = 64 << 10

// ReadBytes reads exactly n raw bytes.
func (dec *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadLength, "objpack: negative read %d", n)
	}
	if n <= chunk {
		buf := make([]byte, n)
		if _, err := io.ReadFull(dec.r, buf); err != nil {
			return nil, errors.Wrapf(eos(err), "objpack: failed to read %d bytes", n)
		}
		return buf, nil
	}

	buf := make([]byte, 0, chunk)
	for len(buf) < n {
		step := n - len(buf)
		if step > chunk {
			step = chunk
		}
		start := len(buf)
		buf = append(buf, make([]byte, step)...)
		if _, err := io.ReadFull(dec.r, buf[start:]); err != nil {
			return nil, errors.Wrapf(eos(err), "objpack: failed to read %d bytes", n)
		}
	}
	return buf, nil
}

// ReadU16 reads two big-endian bytes.
func (dec *Decoder) ReadU16() (uint16, error) {
	buf, err := dec.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadU32 reads four big-endian bytes.
func (dec *Decoder) ReadU32() (uint32, error) {
	buf, err := dec.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadI32 reads four big-endian bytes as a two's-complement integer.
func (dec *Decoder) ReadI32() (int32, error) {
	u, err := dec.ReadU32()
	return int32(u), err
}
