// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package persist is the key/value seam the object store keeps encoded values in.
package persist

import "github.com/pkg/errors"

type Key []byte

var ErrNotFound = errors.New("persist: item not found")

// Saver stores opaque blobs under keys.
type Saver interface {
	Put(Key, []byte) error
	Get(Key) ([]byte, error)
	Delete(Key) error

	List() ([]Key, error)

	Close() error
}
