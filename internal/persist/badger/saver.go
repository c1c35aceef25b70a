// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/ssbc/objpack/internal/persist"
)

func (s *BadgerSaver) Put(key persist.Key, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.fullKey(key), data)
	})
	return errors.Wrap(err, "persist/badger: put failed")
}

func (s *BadgerSaver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		it, err := txn.Get(s.fullKey(key))
		if err != nil {
			return err
		}
		data, err = it.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, persist.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "persist/badger: get failed")
	}

	if len(data) == 0 {
		return nil, persist.ErrNotFound
	}
	return data, nil
}

func (s *BadgerSaver) List() ([]persist.Key, error) {
	var keys []persist.Key

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = s.keyPrefix
		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			k := iter.Item().KeyCopy(nil)
			keys = append(keys, persist.Key(k[len(s.keyPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "persist/badger: list failed")
	}
	return keys, nil
}

func (s *BadgerSaver) Delete(rm persist.Key) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.fullKey(rm))
	})
	return errors.Wrap(err, "persist/badger: delete failed")
}
