// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import "fmt"

// Tag is the first byte of every encoded value.
type Tag byte

// Built-in tags. Every other byte value is free for extensions.
const (
	TagInteger   Tag = 'i'
	TagRatio     Tag = 'r'
	TagSymbol    Tag = 'y'
	TagChar      Tag = 'c'
	TagString    Tag = 's'
	TagList      Tag = 'l'
	TagArray     Tag = 'a'
	TagHashTable Tag = 'h'
	TagFloat32   Tag = 'f'
	TagFloat64   Tag = 'd'
)

var tagNames = map[Tag]string{
	TagInteger:   "integer",
	TagRatio:     "ratio",
	TagSymbol:    "symbol",
	TagChar:      "character",
	TagString:    "string",
	TagList:      "list",
	TagArray:     "array",
	TagHashTable: "hash-table",
	TagFloat32:   "single-float",
	TagFloat64:   "double-float",
}

// Builtin reports whether t is handled by the core codec.
func (t Tag) Builtin() bool {
	_, ok := tagNames[t]
	return ok
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%#02x)", byte(t))
}
