// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objstore

import (
	"bytes"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/internal/persist"
	"github.com/ssbc/objpack/internal/persist/mem"
	"github.com/ssbc/objpack/namespace"
)

func newMemStore(t *testing.T) *Store {
	s, err := New(mem.New(), WithResolver(namespace.Default()))
	require.NoError(t, err)
	return s
}

func TestRefExtension(t *testing.T) {
	r := require.New(t)

	exts, err := objpack.NewExtensions(RefExtension)
	r.NoError(err)

	var buf bytes.Buffer
	enc := objpack.NewEncoder(&buf, objpack.WithExtensions(exts))
	r.NoError(enc.Encode(Ref{ID: 300}))
	r.NoError(enc.Encode(&Ref{ID: 1}))
	r.Equal([]byte{'p', 0x02, 0x01, 0x2c, 'p', 0x01, 0x01}, buf.Bytes())

	dec := objpack.NewDecoder(&buf, objpack.WithExtensions(exts))
	v, err := dec.Decode()
	r.NoError(err)
	r.Equal(Ref{ID: 300}, v)
	v, err = dec.Decode()
	r.NoError(err)
	r.Equal(Ref{ID: 1}, v)

	// negative ids don't exist
	_, err = objpack.NewDecoder(bytes.NewReader([]byte{'p', 0x01, 0xff}), objpack.WithExtensions(exts)).Decode()
	r.ErrorIs(err, objpack.ErrBadLength)

	r.Equal("#<ref 300>", Ref{ID: 300}.String())
}

func TestStorePutGet(t *testing.T) {
	r := require.New(t)
	s := newMemStore(t)
	defer s.Close()

	leaf, err := s.Put(objpack.String("leaf"))
	r.NoError(err)
	r.Equal(Ref{ID: 1}, leaf)

	tree := objpack.List(objpack.NewInteger(1), leaf, objpack.NewVector(objpack.Symbol{Package: namespace.CommonLisp, Name: "T"}, leaf))
	root, err := s.Put(tree)
	r.NoError(err)
	r.Equal(Ref{ID: 2}, root)

	got, err := s.Get(root)
	r.NoError(err)
	r.True(objpack.Equal(tree, got), "got %#v", got)

	heads, _ := got.(*objpack.Cons).Slice()
	r.Equal(leaf, heads[1])
	v, err := s.Get(heads[1].(Ref))
	r.NoError(err)
	r.Equal(objpack.String("leaf"), v)

	r.True(s.Has(leaf))
	r.False(s.Has(Ref{ID: 99}))
	r.Equal([]Ref{leaf, root}, s.Refs())

	_, err = s.Get(Ref{ID: 99})
	r.True(IsNotFound(err))
}

func TestStoreUpdateDelete(t *testing.T) {
	r := require.New(t)
	s := newMemStore(t)
	defer s.Close()

	ref, err := s.Put(objpack.NewInteger(1))
	r.NoError(err)

	r.NoError(s.Update(ref, objpack.NewInteger(2)))
	v, err := s.Get(ref)
	r.NoError(err)
	r.True(objpack.Equal(objpack.NewInteger(2), v))

	r.True(IsNotFound(s.Update(Ref{ID: 42}, objpack.Nil{})))

	r.NoError(s.Delete(ref))
	r.False(s.Has(ref))
	_, err = s.Get(ref)
	r.True(IsNotFound(err))
	r.True(IsNotFound(s.Delete(ref)))

	// deleted ids are not reused
	next, err := s.Put(objpack.Nil{})
	r.NoError(err)
	r.Equal(Ref{ID: 2}, next)
}

func TestStoreUnencodable(t *testing.T) {
	r := require.New(t)
	s := newMemStore(t)
	defer s.Close()

	_, err := s.Put(struct{}{})
	r.ErrorIs(err, objpack.ErrUnencodable)
	r.Empty(s.Refs())
}

// flakySaver fails every write of failKey while armed.
type flakySaver struct {
	persist.Saver
	failKey persist.Key
	armed   bool
}

var errDiskFull = errors.New("disk full")

func (fs *flakySaver) Put(k persist.Key, data []byte) error {
	if fs.armed && bytes.Equal(k, fs.failKey) {
		return errDiskFull
	}
	return fs.Saver.Put(k, data)
}

func TestStorePutMetaFailure(t *testing.T) {
	r := require.New(t)

	saver := &flakySaver{Saver: mem.New(), failKey: seqKey}
	s, err := New(saver, WithResolver(namespace.Default()))
	r.NoError(err)
	defer s.Close()

	first, err := s.Put(objpack.String("kept"))
	r.NoError(err)

	saver.armed = true
	_, err = s.Put(objpack.String("lost"))
	r.ErrorIs(err, errDiskFull)

	r.Equal([]Ref{first}, s.Refs())
	r.False(s.Has(Ref{ID: 2}))
	_, err = saver.Saver.Get(objKey(2))
	r.ErrorIs(err, persist.ErrNotFound, "no orphan left behind")
	v, err := s.Seq().Value()
	r.NoError(err)
	r.Equal(uint64(1), v)

	saver.armed = false
	next, err := s.Put(objpack.String("again"))
	r.NoError(err)
	r.Equal(Ref{ID: 2}, next)

	// the persisted id set matches after reopening
	s2, err := New(saver.Saver, WithResolver(namespace.Default()))
	r.NoError(err)
	r.Equal([]Ref{first, next}, s2.Refs())
}

func TestStoreSeq(t *testing.T) {
	r := require.New(t)
	s := newMemStore(t)
	defer s.Close()

	v, err := s.Seq().Value()
	r.NoError(err)
	r.Equal(uint64(0), v)

	for i := 0; i < 3; i++ {
		_, err := s.Put(objpack.NewInteger(int64(i)))
		r.NoError(err)
	}
	v, err = s.Seq().Value()
	r.NoError(err)
	r.Equal(uint64(3), v)
}

func TestStoreWaitFor(t *testing.T) {
	r := require.New(t)
	s := newMemStore(t)
	defer s.Close()

	done := s.WaitFor(Ref{ID: 2})
	go func() {
		for i := 0; i < 2; i++ {
			s.Put(objpack.NewInteger(int64(i)))
		}
	}()
	<-done
	r.True(s.Has(Ref{ID: 2}))

	// already handed out
	<-s.WaitFor(Ref{ID: 1})
}

func TestStoreReopen(t *testing.T) {
	for _, backend := range []string{BackendBadger, BackendBadgerSmall, BackendSqlite, BackendMKV} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			r := require.New(t)

			dir, err := os.MkdirTemp("", "objstore-"+backend)
			r.NoError(err)
			defer os.RemoveAll(dir)

			s, err := Open(backend, dir, WithResolver(namespace.Default()))
			r.NoError(err)

			a, err := s.Put(objpack.String("a"))
			r.NoError(err)
			b, err := s.Put(objpack.List(a, objpack.Float64(0.25)))
			r.NoError(err)
			r.NoError(s.Delete(a))
			r.NoError(s.Close())

			s, err = Open(backend, dir, WithResolver(namespace.Default()))
			r.NoError(err)
			defer s.Close()

			r.Equal([]Ref{b}, s.Refs())
			v, err := s.Get(b)
			r.NoError(err)
			r.True(objpack.Equal(objpack.List(a, objpack.Float64(0.25)), v))

			c, err := s.Put(objpack.Nil{})
			r.NoError(err)
			r.Equal(Ref{ID: 3}, c)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("floppy", "")
	require.Error(t, err)
}
