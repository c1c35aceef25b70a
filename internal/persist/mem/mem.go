// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package mem is a Saver that only lives as long as the process.
package mem

import (
	"sort"
	"sync"

	"github.com/ssbc/objpack/internal/persist"
)

type Saver struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ persist.Saver = (*Saver)(nil)

func New() *Saver {
	return &Saver{data: make(map[string][]byte)}
}

func (s *Saver) Put(key persist.Key, data []byte) error {
	cpy := make([]byte, len(data))
	copy(cpy, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[string(key)] = cpy
	return nil
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, has := s.data[string(key)]
	if !has || len(data) == 0 {
		return nil, persist.ErrNotFound
	}
	cpy := make([]byte, len(data))
	copy(cpy, data)
	return cpy, nil
}

func (s *Saver) Delete(key persist.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, string(key))
	return nil
}

func (s *Saver) List() ([]persist.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.data))
	for k := range s.data {
		names = append(names, k)
	}
	sort.Strings(names)

	keys := make([]persist.Key, len(names))
	for i, n := range names {
		keys[i] = persist.Key(n)
	}
	return keys, nil
}

func (s *Saver) Close() error { return nil }
