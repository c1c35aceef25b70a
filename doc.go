// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

/*
Package objpack is a self-describing binary codec for a dynamically typed
object model: arbitrary precision integers and ratios, namespace qualified
symbols, characters, strings, pair lists (proper or not), multi-dimensional
arrays, hash tables and IEEE-754 floats.

Every value starts with a one byte Tag:

	'i' integer       VarInt
	'r' ratio         numerator VarInt, denominator VarInt
	'y' symbol        namespace String, name String
	'c' character     1 raw byte
	's' string        VarInt byte count, raw bytes
	'l' list          VarInt n, n tagged heads, tagged tail iff n>0
	'a' array         element type symbol, flags, shape, [fill pointer], tagged elements
	'h' hash-table    test symbol, rehash size Float64, VarInt n, n tagged key/value pairs
	'f' single-float  4 bytes
	'd' double-float  high word, low word

A VarInt is a length byte k followed by the k byte big-endian two's-complement
form of the integer, with k as small as possible. Zero is [0x01 0x00].

The empty-list marker Nil is written as the symbol COMMON-LISP:NIL, never as a
list of length zero. Decoding symbols goes through a NamespaceResolver, which
is also where interning happens.

Values are not checked for cycles. Encoding a cyclic structure recurses until
the stack runs out unless WithMaxDepth is set.

Hosts add their own tagged types with Extensions, see the objstore package for
references to persisted objects.
*/
package objpack
