// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
)

// BadgerOpts returns the options New opens a database with.
func BadgerOpts(dbPath string) badger.Options {
	return badger.DefaultOptions(dbPath).
		WithLogger(nil)
}

// SmallObjectOpts sizes a database for many encoded values of a few hundred bytes.
// Values up to 1KiB stay in the LSM tree next to their keys, so reading an
// object never touches the value log, and the memtables and caches are a
// fraction of the defaults.
func SmallObjectOpts(dbPath string) badger.Options {
	return BadgerOpts(dbPath).
		WithValueThreshold(1 << 10).
		WithMemTableSize(8 << 20).
		WithNumMemtables(2).
		WithNumLevelZeroTables(2).
		WithNumLevelZeroTablesStall(4).
		WithValueLogFileSize(16 << 20).
		WithBlockCacheSize(16 << 20).
		WithIndexCacheSize(8 << 20)
}
