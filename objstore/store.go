// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package objstore persists values encoded with objpack and hands out
// numeric references to them. References are themselves encodable through
// RefExtension, so stored objects may point at each other.
package objstore

import (
	"encoding/binary"
	"sync"

	"github.com/dgraph-io/sroar"
	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"go.mindeco.de/log"
	"go.mindeco.de/log/level"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/internal/persist"
	"github.com/ssbc/objpack/internal/seqobsv"
)

// ErrNotFound is returned for references that don't name a stored object.
var ErrNotFound = errors.New("objstore: no such object")

// IsNotFound returns whether err was caused by a dangling reference.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

var (
	objPrefix = []byte("obj:")
	idsKey    = persist.Key("meta:ids")
	seqKey    = persist.Key("meta:seq")
)

func objKey(id uint64) persist.Key {
	k := make([]byte, len(objPrefix)+8)
	copy(k, objPrefix)
	binary.BigEndian.PutUint64(k[len(objPrefix):], id)
	return k
}

// Store keeps objects in a persist.Saver. It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	saver persist.Saver
	codec objpack.Codec

	ids     *sroar.Bitmap
	last    uint64
	seq     luigi.Observable
	written *seqobsv.Observable

	log      log.Logger
	resolver objpack.NamespaceResolver
	exts     []objpack.Extension
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(s *Store) error {
		s.log = l
		return nil
	}
}

// WithResolver sets the namespace registry symbols of stored objects are resolved against.
func WithResolver(r objpack.NamespaceResolver) Option {
	return func(s *Store) error {
		s.resolver = r
		return nil
	}
}

// WithExtensions installs additional tagged types next to RefExtension.
func WithExtensions(exts ...objpack.Extension) Option {
	return func(s *Store) error {
		s.exts = append(s.exts, exts...)
		return nil
	}
}

// New opens a store on top of saver, picking up ids issued by earlier stores on the same saver.
func New(saver persist.Saver, opts ...Option) (*Store, error) {
	s := &Store{
		saver: saver,
		log:   log.NewNopLogger(),
	}
	for i, o := range opts {
		if err := o(s); err != nil {
			return nil, errors.Wrapf(err, "objstore: option %d failed", i)
		}
	}

	exts, err := objpack.NewExtensions(append([]objpack.Extension{RefExtension}, s.exts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "objstore: failed to set up extensions")
	}
	s.codec = objpack.NewCodec(
		objpack.WithResolver(s.resolver),
		objpack.WithExtensions(exts),
	)

	if err := s.load(); err != nil {
		return nil, err
	}
	s.seq = luigi.NewObservable(s.last)
	s.written = seqobsv.New(s.last)

	level.Debug(s.log).Log("event", "store opened", "objects", s.ids.GetCardinality(), "last", s.last)
	return s, nil
}

func (s *Store) load() error {
	data, err := s.saver.Get(idsKey)
	if errors.Is(err, persist.ErrNotFound) {
		s.ids = sroar.NewBitmap()
	} else if err != nil {
		return errors.Wrap(err, "objstore: failed to load id set")
	} else {
		s.ids = sroar.FromBufferWithCopy(data)
	}

	data, err = s.saver.Get(seqKey)
	if errors.Is(err, persist.ErrNotFound) {
		// no counter yet, fall back to the highest known id
		if all := s.ids.ToArray(); len(all) > 0 {
			s.last = all[len(all)-1]
		}
		return nil
	} else if err != nil {
		return errors.Wrap(err, "objstore: failed to load sequence")
	}
	if len(data) != 8 {
		return errors.Errorf("objstore: corrupt sequence of %d bytes", len(data))
	}
	s.last = binary.BigEndian.Uint64(data)
	return nil
}

// saveMeta persists the id set and the counter. Callers hold s.mu.
func (s *Store) saveMeta() error {
	if err := s.saver.Put(idsKey, s.ids.ToBuffer()); err != nil {
		return errors.Wrap(err, "objstore: failed to save id set")
	}
	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], s.last)
	return errors.Wrap(s.saver.Put(seqKey, seq[:]), "objstore: failed to save sequence")
}

// Codec returns the codec objects are stored with. It knows about RefExtension.
func (s *Store) Codec() objpack.Codec { return s.codec }

// Extension returns the extension encoding references to objects of this store.
func (s *Store) Extension() objpack.Extension { return RefExtension }

// Seq returns an observable holding the id of the most recently stored object.
func (s *Store) Seq() luigi.Observable { return s.seq }

// Put stores v under a fresh reference.
func (s *Store) Put(v objpack.Value) (Ref, error) {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return Ref{}, errors.Wrap(err, "objstore: failed to encode object")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.last + 1
	if err := s.saver.Put(objKey(id), data); err != nil {
		return Ref{}, errors.Wrapf(err, "objstore: failed to save object %d", id)
	}
	s.ids.Set(id)
	s.last = id
	if err := s.saveMeta(); err != nil {
		s.ids.Remove(id)
		s.last = id - 1
		if delErr := s.saver.Delete(objKey(id)); delErr != nil {
			level.Warn(s.log).Log("event", "orphaned object", "ref", id, "err", delErr)
		}
		if metaErr := s.saveMeta(); metaErr != nil {
			level.Warn(s.log).Log("event", "metadata restore failed", "ref", id, "err", metaErr)
		}
		return Ref{}, err
	}
	level.Debug(s.log).Log("event", "put", "ref", id, "size", len(data))
	s.written.Set(id)
	return Ref{ID: id}, s.seq.Set(id)
}

// WaitFor returns a channel that is closed once the id of r was handed out.
// The object may have been deleted again by then.
func (s *Store) WaitFor(r Ref) <-chan struct{} {
	return s.written.WaitFor(r.ID)
}

// Update replaces the object behind r.
func (s *Store) Update(r Ref, v objpack.Value) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "objstore: failed to encode object")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids.Contains(r.ID) {
		return errors.Wrapf(ErrNotFound, "objstore: update %d", r.ID)
	}
	return errors.Wrapf(s.saver.Put(objKey(r.ID), data), "objstore: failed to save object %d", r.ID)
}

// Get decodes the object behind r. References inside it are returned as Ref values.
func (s *Store) Get(r Ref) (objpack.Value, error) {
	data, err := s.saver.Get(objKey(r.ID))
	if errors.Is(err, persist.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "objstore: get %d", r.ID)
	} else if err != nil {
		return nil, errors.Wrapf(err, "objstore: failed to load object %d", r.ID)
	}

	v, err := s.codec.Unmarshal(data)
	if err != nil {
		level.Warn(s.log).Log("event", "decode failed", "ref", r.ID, "err", err)
		return nil, errors.Wrapf(err, "objstore: failed to decode object %d", r.ID)
	}
	return v, nil
}

// Delete removes the object behind r. Its id is never handed out again.
func (s *Store) Delete(r Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids.Contains(r.ID) {
		return errors.Wrapf(ErrNotFound, "objstore: delete %d", r.ID)
	}
	if err := s.saver.Delete(objKey(r.ID)); err != nil {
		return errors.Wrapf(err, "objstore: failed to delete object %d", r.ID)
	}
	s.ids.Remove(r.ID)
	return s.saveMeta()
}

// Has reports whether r names a stored object.
func (s *Store) Has(r Ref) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.Contains(r.ID)
}

// Refs returns references to all stored objects in ascending order.
func (s *Store) Refs() []Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.ids.ToArray()
	refs := make([]Ref, len(ids))
	for i, id := range ids {
		refs[i] = Ref{ID: id}
	}
	return refs
}

// Close closes the underlying saver.
func (s *Store) Close() error {
	return s.saver.Close()
}
