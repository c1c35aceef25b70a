// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package stream turns byte streams of concatenated objpack values into luigi sources and sinks.
package stream

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/ssbc/objpack"
)

// NewSource returns a source that decodes one value per call to Next.
// A stream ending between two values ends the source with luigi.EOS,
// ending anywhere else is an error.
func NewSource(r io.Reader, opts ...objpack.Option) luigi.Source {
	return &source{
		dec: objpack.NewDecoder(r, opts...),
	}
}

type source struct {
	mu  sync.Mutex
	dec *objpack.Decoder
	err error
}

func (src *source) Next(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src.mu.Lock()
	defer src.mu.Unlock()
	if src.err != nil {
		return nil, src.err
	}

	v, err := src.dec.Decode()
	if err == io.EOF {
		src.err = luigi.EOS{}
		return nil, src.err
	} else if err != nil {
		// the decoder lost its position, nothing after this can be trusted
		src.err = errors.Wrap(err, "stream: decode failed")
		return nil, src.err
	}
	return v, nil
}

// NewSink returns a sink that encodes every poured value.
// Close flushes and, if w is an io.Closer, closes w.
func NewSink(w io.Writer, opts ...objpack.Option) luigi.Sink {
	bw := bufio.NewWriter(w)
	return &sink{
		w:   w,
		buf: bw,
		enc: objpack.NewEncoder(bw, opts...),
	}
}

type sink struct {
	mu     sync.Mutex
	w      io.Writer
	buf    *bufio.Writer
	enc    *objpack.Encoder
	closed bool
}

func (snk *sink) Pour(ctx context.Context, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snk.mu.Lock()
	defer snk.mu.Unlock()
	if snk.closed {
		return errors.New("stream: pour on closed sink")
	}
	return errors.Wrap(snk.enc.Encode(v), "stream: encode failed")
}

func (snk *sink) Close() error {
	snk.mu.Lock()
	defer snk.mu.Unlock()
	if snk.closed {
		return nil
	}
	snk.closed = true

	if err := snk.buf.Flush(); err != nil {
		return errors.Wrap(err, "stream: flush failed")
	}
	if c, ok := snk.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
