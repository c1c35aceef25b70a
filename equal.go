// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
)

// normalize maps the native Go types the encoder accepts onto the value model.
func normalize(v Value) Value {
	switch tv := v.(type) {
	case nil:
		return Nil{}
	case *Cons:
		if tv == nil {
			return Nil{}
		}
	case Symbol:
		if tv.IsNil() {
			return Nil{}
		}
	case int:
		return Integer{big.NewInt(int64(tv))}
	case int64:
		return Integer{big.NewInt(tv)}
	case *big.Int:
		if tv != nil {
			return Integer{tv}
		}
	case *big.Rat:
		if tv != nil {
			return Ratio{tv}
		}
	case string:
		return String(tv)
	case float32:
		return Float32(tv)
	case float64:
		return Float64(tv)
	}
	return v
}

// Equal reports whether a and b are structurally equal.
// Floats are compared by bit pattern, so -0.0 and 0.0 differ and NaNs with the same payload are equal.
func Equal(a, b Value) bool {
	a, b = normalize(a), normalize(b)
	switch ta := a.(type) {
	case Integer:
		tb, ok := b.(Integer)
		return ok && ta.Int != nil && tb.Int != nil && ta.Cmp(tb.Int) == 0
	case Ratio:
		tb, ok := b.(Ratio)
		return ok && ta.Rat != nil && tb.Rat != nil && ta.Cmp(tb.Rat) == 0
	case Nil, Symbol, Char, String:
		return a == b
	case Float32:
		tb, ok := b.(Float32)
		return ok && math.Float32bits(float32(ta)) == math.Float32bits(float32(tb))
	case Float64:
		tb, ok := b.(Float64)
		return ok && math.Float64bits(float64(ta)) == math.Float64bits(float64(tb))
	case *Cons:
		tb, ok := b.(*Cons)
		if !ok {
			return false
		}
		ha, taila := ta.Slice()
		hb, tailb := tb.Slice()
		if len(ha) != len(hb) {
			return false
		}
		for i := range ha {
			if !Equal(ha[i], hb[i]) {
				return false
			}
		}
		return Equal(taila, tailb)
	case *Array:
		tb, ok := b.(*Array)
		return ok && equalArray(ta, tb)
	case *HashTable:
		tb, ok := b.(*HashTable)
		return ok && equalHashTable(ta, tb)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func equalArray(a, b *Array) bool {
	if a.ElementType != b.ElementType ||
		a.Adjustable != b.Adjustable ||
		a.HasFillPointer != b.HasFillPointer ||
		len(a.Dims) != len(b.Dims) ||
		len(a.Data) != len(b.Data) {
		return false
	}
	if a.HasFillPointer && a.FillPointer != b.FillPointer {
		return false
	}
	for i := range a.Dims {
		if a.Dims[i] != b.Dims[i] {
			return false
		}
	}
	for i := range a.Data {
		if !Equal(a.Data[i], b.Data[i]) {
			return false
		}
	}
	return true
}

func equalHashTable(a, b *HashTable) bool {
	if a.Test != b.Test || a.RehashSize != b.RehashSize || a.Len() != b.Len() {
		return false
	}
	for _, e := range a.entries {
		v, ok := b.Get(e.Key)
		if !ok || !Equal(e.Value, v) {
			return false
		}
	}
	return true
}

// hashKey returns a string that is equal for Equal scalars.
func hashKey(v Value) (string, bool) {
	switch tv := normalize(v).(type) {
	case Integer:
		if tv.Int == nil {
			return "", false
		}
		return "i" + tv.Text(16), true
	case Ratio:
		if tv.Rat == nil {
			return "", false
		}
		return "r" + tv.String(), true
	case Nil:
		return "n", true
	case Symbol:
		return "y" + tv.Package + "\x00" + tv.Name, true
	case Char:
		return "c" + strconv.FormatInt(int64(tv), 16), true
	case String:
		return "s" + string(tv), true
	case Float32:
		return "f" + strconv.FormatUint(uint64(math.Float32bits(float32(tv))), 16), true
	case Float64:
		return "d" + strconv.FormatUint(math.Float64bits(float64(tv)), 16), true
	}
	return "", false
}
