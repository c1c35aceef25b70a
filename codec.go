// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// NewCodecFunc returns a codec configured with opts.
type NewCodecFunc func(opts ...Option) Codec

// Codec is what storage layers use to turn values into bytes and back.
type Codec interface {
	// Marshal encodes a single value and returns the serialized byte slice.
	Marshal(value interface{}) ([]byte, error)

	// Unmarshal decodes and returns the value stored in data.
	Unmarshal(data []byte) (interface{}, error)

	NewDecoder(io.Reader) StreamDecoder
	NewEncoder(io.Writer) StreamEncoder
}

// StreamDecoder decodes consecutive values from a stream.
type StreamDecoder interface {
	Decode() (interface{}, error)
}

// StreamEncoder encodes consecutive values into a stream.
type StreamEncoder interface {
	Encode(v interface{}) error
}

var _ NewCodecFunc = NewCodec

// NewCodec returns a Codec writing tagged values.
func NewCodec(opts ...Option) Codec {
	return &codec{opts: opts}
}

type codec struct {
	opts []Option
}

func (c *codec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, c.opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *codec) Unmarshal(data []byte) (interface{}, error) {
	rd := bytes.NewReader(data)
	v, err := NewDecoder(rd, c.opts...).Decode()
	if err == io.EOF {
		return nil, errors.Wrap(ErrEndOfStream, "objpack: no data")
	} else if err != nil {
		return nil, err
	}
	if rd.Len() != 0 {
		return nil, errors.Wrapf(ErrBadLength, "objpack: %d trailing bytes", rd.Len())
	}
	return v, nil
}

func (c *codec) NewEncoder(w io.Writer) StreamEncoder {
	return NewEncoder(w, c.opts...)
}

func (c *codec) NewDecoder(r io.Reader) StreamDecoder {
	return NewDecoder(r, c.opts...)
}
