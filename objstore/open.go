// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objstore

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ssbc/objpack/internal/persist"
	"github.com/ssbc/objpack/internal/persist/badger"
	"github.com/ssbc/objpack/internal/persist/mem"
	"github.com/ssbc/objpack/internal/persist/mkv"
	"github.com/ssbc/objpack/internal/persist/sqlite"
)

// Backends accepted by Open.
const (
	BackendBadger      = "badger"
	BackendBadgerSmall = "badger-small"
	BackendSqlite      = "sqlite"
	BackendMKV         = "mkv"
	BackendMem         = "mem"
)

// Open opens a store kept in the named backend below path. Path is ignored for BackendMem.
func Open(backend, path string, opts ...Option) (*Store, error) {
	var (
		saver persist.Saver
		err   error
	)
	switch backend {
	case BackendBadger:
		saver, err = badger.New(path)
	case BackendBadgerSmall:
		saver, err = badger.NewWithOptions(badger.SmallObjectOpts(path))
	case BackendSqlite:
		saver, err = sqlite.New(path)
	case BackendMKV:
		saver, err = mkv.New(filepath.Join(path, "objects.kv"))
	case BackendMem:
		saver = mem.New()
	default:
		return nil, errors.Errorf("objstore: unknown backend %q", backend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "objstore: failed to open %s backend", backend)
	}

	s, err := New(saver, opts...)
	if err != nil {
		saver.Close()
		return nil, err
	}
	return s, nil
}
