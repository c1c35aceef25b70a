// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package stream

import (
	"bytes"
	"context"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/namespace"
)

type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (cb *closeBuffer) Close() error {
	cb.closed = true
	return nil
}

func TestSinkSource(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	vals := []objpack.Value{
		objpack.NewInteger(-5),
		objpack.String("two"),
		objpack.List(objpack.Char('x'), objpack.Float32(1)),
		objpack.Nil{},
	}

	var out closeBuffer
	snk := NewSink(&out)
	for _, v := range vals {
		r.NoError(snk.Pour(ctx, v))
	}
	r.Equal(0, out.Len(), "buffered until close")
	r.NoError(snk.Close())
	r.True(out.closed)
	r.Error(snk.Pour(ctx, objpack.Nil{}))

	src := NewSource(&out.Buffer, objpack.WithResolver(namespace.Default()))
	for _, want := range vals {
		got, err := src.Next(ctx)
		r.NoError(err)
		r.True(objpack.Equal(want, got), "got %#v", got)
	}
	_, err := src.Next(ctx)
	r.True(luigi.IsEOS(err), "got %v", err)
	_, err = src.Next(ctx)
	r.True(luigi.IsEOS(err))
}

func TestSourceTruncated(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	data := []byte{'i', 0x01, 0x07, 's', 0x01, 0x05, 'a', 'b'}
	src := NewSource(bytes.NewReader(data))

	v, err := src.Next(ctx)
	r.NoError(err)
	r.True(objpack.Equal(objpack.NewInteger(7), v))

	_, err = src.Next(ctx)
	r.True(objpack.IsEndOfStream(err), "got %v", err)
	r.False(luigi.IsEOS(err))

	_, err = src.Next(ctx)
	r.True(objpack.IsEndOfStream(err), "errors stick")
}

func TestPump(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	var in bytes.Buffer
	enc := objpack.NewEncoder(&in)
	for i := 0; i < 10; i++ {
		r.NoError(enc.Encode(objpack.NewInteger(int64(i))))
	}
	want := append([]byte(nil), in.Bytes()...)

	var out closeBuffer
	snk := NewSink(&out)
	r.NoError(luigi.Pump(ctx, snk, NewSource(&in)))
	r.NoError(snk.Close())
	r.Equal(want, out.Bytes())
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(bytes.NewReader(nil)).Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, NewSink(&bytes.Buffer{}).Pour(ctx, 1), context.Canceled)
}
