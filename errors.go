// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrEndOfStream is returned when the source runs dry in the middle of a value.
	// There is no framing to recover from, so it is always fatal.
	ErrEndOfStream = errors.New("objpack: unexpected end of stream")

	// ErrUnknownNamespace is returned when a decoded symbol names a namespace the resolver doesn't know.
	ErrUnknownNamespace = errors.New("objpack: unknown namespace")

	// ErrUnknownTag is returned for tag bytes that are neither built-in nor registered as an extension.
	ErrUnknownTag = errors.New("objpack: unknown tag")

	// ErrMalformedVarInt is returned for a zero length prefix, which the encoder never produces.
	ErrMalformedVarInt = errors.New("objpack: malformed varint")

	// ErrUnencodable is returned when a value has no wire representation.
	ErrUnencodable = errors.New("objpack: value can not be encoded")

	// ErrBadLength is returned when a length, count or dimension can't be used.
	ErrBadLength = errors.New("objpack: bad length")

	// ErrTooDeep is returned when nesting exceeds the limit set with WithMaxDepth.
	ErrTooDeep = errors.New("objpack: nesting too deep")

	// ErrTagInUse is returned when an extension claims a tag that is already taken.
	ErrTagInUse = errors.New("objpack: tag already in use")
)

// IsEndOfStream returns whether err was caused by a truncated stream.
func IsEndOfStream(err error) bool {
	return errors.Is(err, ErrEndOfStream)
}

// IsUnknownNamespace returns whether err was caused by an unresolvable namespace.
func IsUnknownNamespace(err error) bool {
	return errors.Is(err, ErrUnknownNamespace)
}

// IsUnknownTag returns whether err was caused by an unrecognized tag byte.
func IsUnknownTag(err error) bool {
	return errors.Is(err, ErrUnknownTag)
}

// eos maps the io package's notion of a short read to ErrEndOfStream.
func eos(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrEndOfStream
	}
	return err
}
