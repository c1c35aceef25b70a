// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package json renders decoded objpack values as JSON for people to read.
// The output is lossy, it can't be decoded back into the same values.
package json

import (
	"math"
	"strconv"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/objstore"
)

// Plain converts decoded values into maps, slices and scalars JSON can express.
func Plain(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(tv))
		for k, e := range tv {
			out[k] = Plain(e)
		}
		return out
	case objpack.Integer:
		if tv.IsInt64() {
			return tv.Int64()
		}
		return tv.String()
	case objpack.Ratio:
		return tv.RatString()
	case objpack.Nil:
		return nil
	case objpack.Symbol:
		return tv.String()
	case objpack.Char:
		return string(rune(tv))
	case objpack.String:
		return string(tv)
	case objpack.Float32:
		return plainFloat(float64(tv))
	case objpack.Float64:
		return plainFloat(float64(tv))
	case *objpack.Cons:
		heads, tail := tv.Slice()
		items := make([]interface{}, len(heads))
		for i, h := range heads {
			items[i] = Plain(h)
		}
		if _, proper := tail.(objpack.Nil); proper {
			return items
		}
		return map[string]interface{}{"items": items, "tail": Plain(tail)}
	case *objpack.Array:
		data := make([]interface{}, len(tv.Data))
		for i, e := range tv.Data {
			data[i] = Plain(e)
		}
		out := map[string]interface{}{
			"element-type": tv.ElementType.String(),
			"dimensions":   tv.Dims,
			"adjustable":   tv.Adjustable,
			"data":         data,
		}
		if tv.HasFillPointer {
			out["fill-pointer"] = tv.FillPointer
		}
		return out
	case *objpack.HashTable:
		entries := make([][2]interface{}, 0, tv.Len())
		for _, e := range tv.Entries() {
			entries = append(entries, [2]interface{}{Plain(e.Key), Plain(e.Value)})
		}
		return map[string]interface{}{
			"test":        tv.Test.String(),
			"rehash-size": tv.RehashSize,
			"entries":     entries,
		}
	case objstore.Ref:
		return map[string]interface{}{"ref": tv.ID}
	}
	return v
}

func plainFloat(f float64) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}
