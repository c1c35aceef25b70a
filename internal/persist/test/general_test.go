// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ssbc/objpack/internal/persist"
	"github.com/ssbc/objpack/internal/persist/badger"
	"github.com/ssbc/objpack/internal/persist/mem"
	"github.com/ssbc/objpack/internal/persist/mkv"
	"github.com/ssbc/objpack/internal/persist/sqlite"
)

type NewSaverFunc func(t *testing.T) persist.Saver

var savers = map[string]NewSaverFunc{
	"mem": func(*testing.T) persist.Saver { return mem.New() },
	"badger": func(t *testing.T) persist.Saver {
		s, err := badger.New(testPath(t))
		require.NoError(t, err)
		return s
	},
	"badger-small": func(t *testing.T) persist.Saver {
		s, err := badger.NewWithOptions(badger.SmallObjectOpts(testPath(t)))
		require.NoError(t, err)
		return s
	},
	"sqlite": func(t *testing.T) persist.Saver {
		s, err := sqlite.New(testPath(t))
		require.NoError(t, err)
		return s
	},
	"mkv": func(t *testing.T) persist.Saver {
		s, err := mkv.New(filepath.Join(testPath(t), "objects.kv"))
		require.NoError(t, err)
		return s
	},
}

func testPath(t *testing.T) string {
	base := filepath.Join("testrun", t.Name())
	os.RemoveAll(base)
	require.NoError(t, os.MkdirAll(base, 0700))
	return base
}

func TestSaver(t *testing.T) {
	for name, mk := range savers {
		mk := mk
		t.Run(name, func(t *testing.T) {
			t.Run("Simple", SimpleSaver(mk))
			t.Run("Overwrite", OverwriteSaver(mk))
			t.Run("Delete", DeleteSaver(mk))
		})
	}
}

func SimpleSaver(mk NewSaverFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)
		p := mk(t)
		defer p.Close()

		l, err := p.List()
		r.NoError(err)
		r.Len(l, 0, "%v", l)

		k := persist.Key{0, 0, 0, 1}
		d, err := p.Get(k)
		r.ErrorIs(err, persist.ErrNotFound)
		r.Nil(d)

		testData := []byte{'s', 1, 4, 'f', 'o', 'o', 'o'}

		err = p.Put(k, testData)
		r.NoError(err)

		l, err = p.List()
		r.NoError(err)
		r.Len(l, 1)
		r.Equal(k, l[0])

		d, err = p.Get(k)
		r.NoError(err)
		r.Equal(testData, d)
	}
}

func OverwriteSaver(mk NewSaverFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)
		p := mk(t)
		defer p.Close()

		k := persist.Key("obj:1")
		r.NoError(p.Put(k, []byte("first")))
		r.NoError(p.Put(k, []byte("second")))

		d, err := p.Get(k)
		r.NoError(err)
		r.Equal([]byte("second"), d)

		l, err := p.List()
		r.NoError(err)
		r.Len(l, 1)
	}
}

func DeleteSaver(mk NewSaverFunc) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)
		p := mk(t)
		defer p.Close()

		a, b := persist.Key("a"), persist.Key("b")
		r.NoError(p.Put(a, []byte{1}))
		r.NoError(p.Put(b, []byte{2}))

		r.NoError(p.Delete(a))

		_, err := p.Get(a)
		r.ErrorIs(err, persist.ErrNotFound)

		l, err := p.List()
		r.NoError(err)
		r.Equal([]persist.Key{b}, l)
	}
}
