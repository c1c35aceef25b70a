// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

type byteSink interface {
	io.Writer
	io.ByteWriter
}

// byteWriter adds WriteByte to writers that lack it. It does no buffering.
type byteWriter struct {
	io.Writer
	one [1]byte
}

func (bw *byteWriter) WriteByte(b byte) error {
	bw.one[0] = b
	_, err := bw.Write(bw.one[:])
	return err
}

// Encoder writes tagged values to a byte sink.
// It is not safe for concurrent use, independent encoders share nothing.
type Encoder struct {
	w byteSink

	exts     *Extensions
	maxDepth int
	depth    int
}

// NewEncoder returns an encoder writing to w. Writers implementing
// io.ByteWriter (bytes.Buffer, bufio.Writer) are used as is, everything else
// receives one Write call per byte of fixed fields.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	o := newOptions(opts)
	bs, ok := w.(byteSink)
	if !ok {
		bs = &byteWriter{Writer: w}
	}
	return &Encoder{
		w:        bs,
		exts:     o.exts,
		maxDepth: o.maxDepth,
	}
}

// Encode writes the tag of v followed by its payload.
func (enc *Encoder) Encode(v Value) error {
	tag, ext, err := enc.classify(v)
	if err != nil {
		return err
	}
	if err := enc.WriteByte(byte(tag)); err != nil {
		return err
	}
	return enc.encodePayload(tag, ext, v)
}

// EncodeUntagged writes only the payload of v and returns the tag Encode would have written.
func (enc *Encoder) EncodeUntagged(v Value) (Tag, error) {
	tag, ext, err := enc.classify(v)
	if err != nil {
		return 0, err
	}
	return tag, enc.encodePayload(tag, ext, v)
}

// Classify returns the tag v is encoded with.
func (enc *Encoder) Classify(v Value) (Tag, error) {
	tag, _, err := enc.classify(v)
	return tag, err
}

// classify picks exactly one wire type for v. The order of the cases is the
// precedence: integer, ratio, symbol, character, string, list, array,
// hash-table, single-float, double-float, extensions. Nil is a symbol here
// and never reaches the list case.
func (enc *Encoder) classify(v Value) (Tag, Extension, error) {
	switch tv := normalize(v).(type) {
	case Integer:
		if tv.Int == nil {
			return 0, nil, errors.Wrap(ErrUnencodable, "objpack: nil integer")
		}
		return TagInteger, nil, nil
	case Ratio:
		if tv.Rat == nil {
			return 0, nil, errors.Wrap(ErrUnencodable, "objpack: nil ratio")
		}
		return TagRatio, nil, nil
	case Symbol, Nil:
		return TagSymbol, nil, nil
	case Char:
		return TagChar, nil, nil
	case String:
		return TagString, nil, nil
	case *Cons:
		return TagList, nil, nil
	case *Array:
		return TagArray, nil, nil
	case *HashTable:
		return TagHashTable, nil, nil
	case Float32:
		return TagFloat32, nil, nil
	case Float64:
		return TagFloat64, nil, nil
	}
	if ext := enc.exts.match(v); ext != nil {
		return ext.Tag(), ext, nil
	}
	return 0, nil, errors.Wrapf(ErrUnencodable, "objpack: no encoding for %T", v)
}

func (enc *Encoder) encodePayload(tag Tag, ext Extension, v Value) error {
	enc.depth++
	defer func() { enc.depth-- }()
	if enc.maxDepth > 0 && enc.depth > enc.maxDepth {
		return errors.Wrapf(ErrTooDeep, "objpack: depth %d", enc.depth)
	}

	if ext != nil {
		err := ext.EncodePayload(enc, v)
		return errors.Wrapf(err, "objpack: extension %s", tag)
	}

	switch tv := normalize(v).(type) {
	case Integer:
		return enc.WriteVarInt(tv.Int)
	case Ratio:
		return enc.WriteRatio(tv.Rat)
	case Nil:
		return enc.WriteSymbol(tv.Symbol())
	case Symbol:
		return enc.WriteSymbol(tv)
	case Char:
		return enc.WriteChar(tv)
	case String:
		return enc.WriteString(string(tv))
	case *Cons:
		return enc.WriteList(tv)
	case *Array:
		return enc.WriteArray(tv)
	case *HashTable:
		return enc.WriteHashTable(tv)
	case Float32:
		return enc.WriteFloat32(float32(tv))
	case Float64:
		return enc.WriteFloat64(float64(tv))
	}
	panic(fmt.Sprintf("objpack: classified %T as %s without payload encoder", v, tag))
}

// writeLength writes a non-negative count as a VarInt.
func (enc *Encoder) writeLength(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrBadLength, "objpack: negative length %d", n)
	}
	return enc.WriteVarInt(big.NewInt(int64(n)))
}
