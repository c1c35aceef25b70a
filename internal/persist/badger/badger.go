// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/ssbc/objpack/internal/persist"
)

// BadgerSaver keeps all its keys under a prefix of a badger database.
type BadgerSaver struct {
	db *badger.DB

	keyPrefix []byte
	shared    bool
}

var _ persist.Saver = (*BadgerSaver)(nil)

// New opens (or creates) a badger database at path that is owned by the saver.
func New(path string) (*BadgerSaver, error) {
	return NewWithOptions(BadgerOpts(path))
}

// NewWithOptions opens a database owned by the saver with opts, see SmallObjectOpts.
func NewWithOptions(opts badger.Options) (*BadgerSaver, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "persist/badger: failed to open %s", opts.Dir)
	}
	return &BadgerSaver{db: db}, nil
}

// NewShared uses an already opened database. All keys are stored below keyPrefix
// so multiple savers can share one database. Closing a shared saver doesn't close db.
func NewShared(db *badger.DB, keyPrefix []byte) (*BadgerSaver, error) {
	if len(keyPrefix) == 0 {
		return nil, errors.New("persist/badger: shared saver needs a key prefix")
	}
	return &BadgerSaver{
		db:        db,
		keyPrefix: keyPrefix,
		shared:    true,
	}, nil
}

func (s *BadgerSaver) Close() error {
	if s.shared {
		return nil
	}
	return s.db.Close()
}

func (s *BadgerSaver) fullKey(k persist.Key) []byte {
	fk := make([]byte, 0, len(s.keyPrefix)+len(k))
	fk = append(fk, s.keyPrefix...)
	return append(fk, k...)
}
