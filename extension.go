// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"sync"

	"github.com/pkg/errors"
)

// Extension adds a tagged type to the codec.
//
// The encoder asks Handles for values none of the built-in types claim and,
// if it agrees, writes Tag followed by whatever EncodePayload writes.
// DecodePayload is called after the tag byte was consumed and must read
// exactly the bytes EncodePayload produced.
type Extension interface {
	Tag() Tag
	Handles(v Value) bool
	EncodePayload(enc *Encoder, v Value) error
	DecodePayload(dec *Decoder) (Value, error)
}

// Extensions is a table of extensions keyed by tag.
// A nil *Extensions is an empty table.
type Extensions struct {
	mu    sync.RWMutex
	byTag map[Tag]Extension
	order []Extension
}

// NewExtensions returns a table holding exts.
func NewExtensions(exts ...Extension) (*Extensions, error) {
	x := &Extensions{byTag: make(map[Tag]Extension)}
	for _, ext := range exts {
		if err := x.Register(ext); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Register adds ext. Built-in tags and tags registered before are rejected with ErrTagInUse.
func (x *Extensions) Register(ext Extension) error {
	tag := ext.Tag()
	if tag.Builtin() {
		return errors.Wrapf(ErrTagInUse, "extensions: %s is built-in", tag)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.byTag == nil {
		x.byTag = make(map[Tag]Extension)
	}
	if _, has := x.byTag[tag]; has {
		return errors.Wrapf(ErrTagInUse, "extensions: %s already registered", tag)
	}
	x.byTag[tag] = ext
	x.order = append(x.order, ext)
	return nil
}

// Lookup returns the extension registered for tag.
func (x *Extensions) Lookup(tag Tag) (Extension, bool) {
	if x == nil {
		return nil, false
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	ext, ok := x.byTag[tag]
	return ext, ok
}

// match returns the first extension, in registration order, that handles v.
func (x *Extensions) match(v Value) Extension {
	if x == nil {
		return nil
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, ext := range x.order {
		if ext.Handles(v) {
			return ext
		}
	}
	return nil
}
