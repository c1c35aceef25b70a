// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package mkv

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/ssbc/objpack/internal/persist"
	"modernc.org/kv"
)

type ModernSaver struct {
	db *kv.DB
}

var _ persist.Saver = (*ModernSaver)(nil)

// New opens the kv file at path, creating it if it doesn't exist.
func New(path string) (*ModernSaver, error) {
	var ms ModernSaver

	opts := &kv.Options{}
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, errors.Wrap(err, "persist/mkv: failed to create parent directory")
		}
		ms.db, err = kv.Create(path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "persist/mkv: failed to create KV")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "persist/mkv: failed to stat path location")
	} else {
		ms.db, err = kv.Open(path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "persist/mkv: failed to open KV")
		}
	}

	return &ms, nil
}

func (s *ModernSaver) Close() error {
	return s.db.Close()
}

func (s *ModernSaver) Put(key persist.Key, data []byte) error {
	return errors.Wrap(s.db.Set(key, data), "persist/mkv: put failed")
}

func (s *ModernSaver) Get(key persist.Key) ([]byte, error) {
	data, err := s.db.Get(nil, key)
	if err != nil {
		return nil, errors.Wrap(err, "persist/mkv: get failed")
	}
	if data == nil {
		return nil, persist.ErrNotFound
	}
	return data, nil
}

func (s *ModernSaver) Delete(key persist.Key) error {
	return errors.Wrap(s.db.Delete(key), "persist/mkv: delete failed")
}

func (s *ModernSaver) List() ([]persist.Key, error) {
	var keys []persist.Key
	iter, err := s.db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return keys, nil
		}
		return nil, err
	}
	for {
		k, _, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		keys = append(keys, k)
	}
	return keys, nil
}
