// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package json

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

func newHandle(indent int8) *codec.JsonHandle {
	var jh codec.JsonHandle
	jh.Canonical = true
	jh.Indent = indent
	jh.TermWhitespace = indent != 0
	return &jh
}

// Marshal returns the compact JSON form of v.
func Marshal(v interface{}) ([]byte, error) {
	var out []byte
	err := codec.NewEncoderBytes(&out, newHandle(0)).Encode(Plain(v))
	if err != nil {
		return nil, errors.Wrap(err, "json: encoding failed")
	}
	return bytes.TrimSpace(out), nil
}

// Encoder writes one indented JSON document per value.
type Encoder struct {
	w     *bufio.Writer
	enc   *codec.Encoder
	count int
}

// NewEncoder returns an encoder writing to w. Output is buffered until Flush.
func NewEncoder(w io.Writer) *Encoder {
	bw := bufio.NewWriter(w)
	return &Encoder{
		w:   bw,
		enc: codec.NewEncoder(bw, newHandle(2)),
	}
}

// Encode writes v.
func (e *Encoder) Encode(v interface{}) error {
	e.count++
	return errors.Wrap(e.enc.Encode(Plain(v)), "json: encoding failed")
}

// Count returns how many values were encoded.
func (e *Encoder) Count() int { return e.count }

// Flush writes buffered output.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}
