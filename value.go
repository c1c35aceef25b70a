// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"fmt"
	"math/big"
)

// Value is anything the codec can classify. Decoding always produces one of
// the concrete types below or a value returned by an extension.
type Value = interface{}

// Integer is an arbitrary precision integer.
type Integer struct{ *big.Int }

// NewInteger returns an Integer holding n.
func NewInteger(n int64) Integer { return Integer{big.NewInt(n)} }

// Ratio is an arbitrary precision rational.
type Ratio struct{ *big.Rat }

// NewRatio returns the Ratio a/b. It panics if b is zero, like big.NewRat.
func NewRatio(a, b int64) Ratio { return Ratio{big.NewRat(a, b)} }

// Symbol is a namespace qualified atom.
type Symbol struct {
	Package string
	Name    string
}

func (s Symbol) String() string { return s.Package + "::" + s.Name }

// Namespace and name of the empty-list marker on the wire.
const (
	NilPackage = "COMMON-LISP"
	NilName    = "NIL"
)

// IsNil reports whether s is the wire spelling of the empty-list marker.
func (s Symbol) IsNil() bool { return s.Package == NilPackage && s.Name == NilName }

// Nil is the empty-list marker. It terminates proper lists and is encoded as the symbol COMMON-LISP:NIL, never as a list.
type Nil struct{}

func (Nil) String() string { return "NIL" }

// Symbol returns the symbol Nil is written as.
func (Nil) Symbol() Symbol { return Symbol{Package: NilPackage, Name: NilName} }

// Char is a character. Only code points up to 255 can be encoded.
type Char rune

// String is a byte string.
type String string

// Float32 is an IEEE-754 single float.
type Float32 float32

// Float64 is an IEEE-754 double float.
type Float64 float64

// Cons is one link of a pair list.
type Cons struct {
	Car Value
	Cdr Value
}

// List builds a proper list of vs. An empty vs returns Nil.
func List(vs ...Value) Value {
	return ListStar(Nil{}, vs...)
}

// ListStar builds a list of vs terminated by tail instead of Nil.
func ListStar(tail Value, vs ...Value) Value {
	var l Value = tail
	for i := len(vs) - 1; i >= 0; i-- {
		l = &Cons{Car: vs[i], Cdr: l}
	}
	return l
}

// Slice returns the heads of the chain starting at c and the value terminating it.
func (c *Cons) Slice() ([]Value, Value) {
	var heads []Value
	var cur Value = c
	for {
		link, ok := cur.(*Cons)
		if !ok || link == nil {
			break
		}
		heads = append(heads, link.Car)
		cur = link.Cdr
	}
	if link, ok := cur.(*Cons); cur == nil || ok && link == nil {
		cur = Nil{}
	}
	return heads, cur
}

const (
	flagVector      = 1 << 0
	flagAdjustable  = 1 << 1
	flagFillPointer = 1 << 2
)

// Array is a multi-dimensional array. Data holds Size() elements in row-major order.
// Rank one arrays are vectors.
type Array struct {
	ElementType    Symbol
	Dims           []int
	Adjustable     bool
	HasFillPointer bool
	FillPointer    int
	Data           []Value
}

// NewArray returns an array of the given shape. data must hold exactly the product of dims elements.
func NewArray(elemType Symbol, dims []int, data ...Value) *Array {
	return &Array{
		ElementType: elemType,
		Dims:        dims,
		Data:        data,
	}
}

// NewVector returns a rank one array holding data.
func NewVector(elemType Symbol, data ...Value) *Array {
	return NewArray(elemType, []int{len(data)}, data...)
}

// IsVector reports whether a has rank one.
func (a *Array) IsVector() bool { return len(a.Dims) == 1 }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.Dims) }

// Size returns the total number of elements, the product of all dimensions.
func (a *Array) Size() (int, error) {
	return arraySize(a.Dims)
}

func (a *Array) flags() byte {
	var f byte
	if a.IsVector() {
		f |= flagVector
	}
	if a.Adjustable {
		f |= flagAdjustable
	}
	if a.HasFillPointer {
		f |= flagFillPointer
	}
	return f
}

const maxInt = int(^uint(0) >> 1)

func arraySize(dims []int) (int, error) {
	size := 1
	for _, d := range dims {
		if d < 0 {
			return 0, fmt.Errorf("negative dimension %d", d)
		}
		if d != 0 && size > maxInt/d {
			return 0, fmt.Errorf("dimensions %v overflow", dims)
		}
		size *= d
	}
	return size, nil
}

// MapEntry is a key/value pair of a HashTable.
type MapEntry struct {
	Key   Value
	Value Value
}

// HashTable maps keys to values. Keys are compared with Equal regardless of
// Test, which is carried along so the host can rebuild a table with the same predicate.
type HashTable struct {
	Test       Symbol
	RehashSize float64

	entries []MapEntry
	index   map[string]int
}

// Default values of NewHashTable.
var (
	TestEQL           = Symbol{Package: "COMMON-LISP", Name: "EQL"}
	DefaultRehashSize = 1.5
)

// NewHashTable returns an empty table using test.
func NewHashTable(test Symbol) *HashTable {
	return &HashTable{
		Test:       test,
		RehashSize: DefaultRehashSize,
	}
}

// Len returns the number of entries.
func (h *HashTable) Len() int { return len(h.entries) }

// Entries returns the entries in insertion order.
func (h *HashTable) Entries() []MapEntry { return h.entries }

// Set stores v under k, replacing an existing Equal key.
func (h *HashTable) Set(k, v Value) {
	if i, ok := h.find(k); ok {
		h.entries[i].Value = v
		return
	}
	h.entries = append(h.entries, MapEntry{Key: k, Value: v})
	if hk, ok := hashKey(k); ok {
		if h.index == nil {
			h.index = make(map[string]int)
		}
		h.index[hk] = len(h.entries) - 1
	}
}

// Get returns the value stored under k.
func (h *HashTable) Get(k Value) (Value, bool) {
	i, ok := h.find(k)
	if !ok {
		return nil, false
	}
	return h.entries[i].Value, true
}

func (h *HashTable) find(k Value) (int, bool) {
	if hk, ok := hashKey(k); ok {
		i, found := h.index[hk]
		return i, found
	}
	// containers can't be indexed
	for i, e := range h.entries {
		if Equal(e.Key, k) {
			return i, true
		}
	}
	return -1, false
}
