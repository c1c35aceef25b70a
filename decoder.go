// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"io"

	"github.com/pkg/errors"
)

type byteSource interface {
	io.Reader
	io.ByteReader
}

// byteReader adds ReadByte to readers that lack it.
// It never reads ahead so the underlying reader is left right after the last decoded value.
type byteReader struct {
	io.Reader
	one [1]byte
}

func (br *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(br.Reader, br.one[:])
	return br.one[0], err
}

// Decoder reads tagged values from a byte source.
// It is not safe for concurrent use. Decoders on independent streams only
// share the namespace resolver.
type Decoder struct {
	r byteSource

	resolver NamespaceResolver
	exts     *Extensions
	maxDepth int
	depth    int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := newOptions(opts)
	bs, ok := r.(byteSource)
	if !ok {
		bs = &byteReader{Reader: r}
	}
	return &Decoder{
		r:        bs,
		resolver: o.resolver,
		exts:     o.exts,
		maxDepth: o.maxDepth,
	}
}

// Decode reads the next tagged value.
//
// If the source is exhausted before the first byte of a top-level value,
// Decode returns io.EOF. Running out of bytes anywhere else is ErrEndOfStream.
func (dec *Decoder) Decode() (Value, error) {
	b, err := dec.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(eos(err), "objpack: failed to read tag")
	}
	return dec.DecodeUntagged(Tag(b))
}

// next decodes a value nested inside another one, where running out of bytes is never clean.
func (dec *Decoder) next() (Value, error) {
	v, err := dec.Decode()
	if err == io.EOF {
		return nil, errors.Wrap(ErrEndOfStream, "objpack: stream ended inside a value")
	}
	return v, err
}

// DecodeUntagged reads the payload of a value whose tag is already known.
func (dec *Decoder) DecodeUntagged(tag Tag) (Value, error) {
	dec.depth++
	defer func() { dec.depth-- }()
	if dec.maxDepth > 0 && dec.depth > dec.maxDepth {
		return nil, errors.Wrapf(ErrTooDeep, "objpack: depth %d", dec.depth)
	}

	switch tag {
	case TagInteger:
		n, err := dec.ReadVarInt()
		if err != nil {
			return nil, err
		}
		return Integer{n}, nil
	case TagRatio:
		r, err := dec.ReadRatio()
		if err != nil {
			return nil, err
		}
		return Ratio{r}, nil
	case TagSymbol:
		sym, err := dec.ReadSymbol()
		if err != nil {
			return nil, err
		}
		if sym.IsNil() {
			return Nil{}, nil
		}
		return sym, nil
	case TagChar:
		c, err := dec.ReadChar()
		if err != nil {
			return nil, err
		}
		return c, nil
	case TagString:
		s, err := dec.ReadString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case TagList:
		return dec.ReadList()
	case TagArray:
		a, err := dec.ReadArray()
		if err != nil {
			return nil, err
		}
		return a, nil
	case TagHashTable:
		h, err := dec.ReadHashTable()
		if err != nil {
			return nil, err
		}
		return h, nil
	case TagFloat32:
		f, err := dec.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return Float32(f), nil
	case TagFloat64:
		f, err := dec.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return Float64(f), nil
	}

	ext, ok := dec.exts.Lookup(tag)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTag, "objpack: %s", tag)
	}
	v, err := ext.DecodePayload(dec)
	if err != nil {
		return nil, errors.Wrapf(err, "objpack: extension %s", tag)
	}
	return v, nil
}
