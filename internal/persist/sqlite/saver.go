// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/ssbc/objpack/internal/persist"
)

const schemaVersion1 = `
CREATE TABLE IF NOT EXISTS persisted_objects (
	key blob PRIMARY KEY,
	data blob
);
PRAGMA user_version = 1;
`

type SqliteSaver struct {
	db *sql.DB
}

var _ persist.Saver = (*SqliteSaver)(nil)

// New opens the database file at path. If path is a directory the file is called objects.db.
func New(path string) (*SqliteSaver, error) {
	s, err := os.Stat(path)
	if os.IsNotExist(err) {
		if filepath.Ext(path) == "" {
			if err := os.MkdirAll(path, 0700); err != nil {
				return nil, errors.Wrap(err, "persist/sqlite: failed to create path location")
			}
			path = filepath.Join(path, "objects.db")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "persist/sqlite: failed to stat path location")
	} else if s.IsDir() {
		path = filepath.Join(path, "objects.db")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist/sqlite: failed to open sqlite file: %s", path)
	}

	var version int
	err = db.QueryRow(`PRAGMA user_version`).Scan(&version)
	if err == sql.ErrNoRows || (err == nil && version == 0) {
		if _, err := db.Exec(schemaVersion1); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "persist/sqlite: failed to init schema v1")
		}
	} else if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "persist/sqlite: schema version lookup failed %s", path)
	}

	return &SqliteSaver{db: db}, nil
}

func (s *SqliteSaver) Close() error {
	return s.db.Close()
}

func (s *SqliteSaver) Put(key persist.Key, data []byte) error {
	_, err := squirrel.Replace("persisted_objects").
		Columns("key", "data").
		Values([]byte(key), data).
		RunWith(s.db).
		Exec()
	return errors.Wrap(err, "persist/sqlite/put: failed to replace value")
}

func (s *SqliteSaver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	err := squirrel.Select("data").
		From("persisted_objects").
		Where(squirrel.Eq{"key": []byte(key)}).
		RunWith(s.db).
		QueryRow().
		Scan(&data)
	if err == sql.ErrNoRows {
		return nil, persist.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "persist/sqlite/get(%x): failed to execute query", []byte(key))
	}
	if len(data) == 0 {
		return nil, persist.ErrNotFound
	}
	return data, nil
}

func (s *SqliteSaver) Delete(key persist.Key) error {
	_, err := squirrel.Delete("persisted_objects").
		Where(squirrel.Eq{"key": []byte(key)}).
		RunWith(s.db).
		Exec()
	return errors.Wrapf(err, "persist/sqlite/delete(%x): failed to execute query", []byte(key))
}

func (s *SqliteSaver) List() ([]persist.Key, error) {
	rows, err := squirrel.Select("key").
		From("persisted_objects").
		OrderBy("key").
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(err, "persist/sqlite/list: failed to execute rows query")
	}
	defer rows.Close()

	var keys []persist.Key
	for rows.Next() {
		var k []byte
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Wrap(err, "persist/sqlite/list: failed to scan row result")
		}
		keys = append(keys, persist.Key(k))
	}
	return keys, rows.Err()
}
