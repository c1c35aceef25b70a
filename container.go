// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"github.com/pkg/errors"
)

// preallocation cap for counts read off the wire
const maxPrealloc = 1024

func capHint(n int) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return n
}

// WriteList writes the number of links in the chain starting at c, every head
// and then the value terminating the chain. A nil c writes just the zero count.
func (enc *Encoder) WriteList(c *Cons) error {
	var (
		n   int
		cur Value = c
	)
	for {
		link, ok := cur.(*Cons)
		if !ok || link == nil {
			break
		}
		n++
		cur = link.Cdr
	}
	tail := cur

	if err := enc.writeLength(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	for link := c; n > 0; n-- {
		if err := enc.Encode(link.Car); err != nil {
			return errors.Wrap(err, "objpack: failed to encode list element")
		}
		link, _ = link.Cdr.(*Cons)
	}
	return errors.Wrap(enc.Encode(tail), "objpack: failed to encode list tail")
}

// ReadList reads a chain written by WriteList. A zero count yields Nil.
func (dec *Decoder) ReadList() (Value, error) {
	n, err := dec.ReadLength()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return Nil{}, nil
	}

	heads := make([]Value, 0, capHint(n))
	for i := 0; i < n; i++ {
		v, err := dec.next()
		if err != nil {
			return nil, errors.Wrapf(err, "objpack: failed to decode list element %d", i)
		}
		heads = append(heads, v)
	}
	tail, err := dec.next()
	if err != nil {
		return nil, errors.Wrap(err, "objpack: failed to decode list tail")
	}
	return ListStar(tail, heads...), nil
}

// WriteArray writes element type, flags, shape, the optional fill pointer and
// all elements in row-major order. Displacement is not representable.
func (enc *Encoder) WriteArray(a *Array) error {
	size, err := a.Size()
	if err != nil {
		return errors.Wrap(ErrUnencodable, err.Error())
	}
	if len(a.Data) != size {
		return errors.Wrapf(ErrUnencodable, "objpack: array of shape %v holds %d elements", a.Dims, len(a.Data))
	}

	if err := enc.WriteSymbol(a.ElementType); err != nil {
		return err
	}
	if err := enc.WriteByte(a.flags()); err != nil {
		return err
	}

	if a.IsVector() {
		err = enc.writeLength(a.Dims[0])
	} else {
		err = enc.writeLength(len(a.Dims))
		for _, d := range a.Dims {
			if err != nil {
				break
			}
			err = enc.writeLength(d)
		}
	}
	if err != nil {
		return err
	}

	if a.HasFillPointer {
		if err := enc.writeLength(a.FillPointer); err != nil {
			return errors.Wrap(err, "objpack: fill pointer")
		}
	}

	for i, v := range a.Data {
		if err := enc.Encode(v); err != nil {
			return errors.Wrapf(err, "objpack: failed to encode array element %d", i)
		}
	}
	return nil
}

// ReadArray reads an array written by WriteArray. The result never shares storage with anything.
func (dec *Decoder) ReadArray() (*Array, error) {
	elemType, err := dec.ReadSymbol()
	if err != nil {
		return nil, errors.Wrap(err, "objpack: array element type")
	}
	flags, err := dec.ReadByte()
	if err != nil {
		return nil, err
	}

	a := &Array{
		ElementType:    elemType,
		Adjustable:     flags&flagAdjustable != 0,
		HasFillPointer: flags&flagFillPointer != 0,
	}

	if flags&flagVector != 0 {
		n, err := dec.ReadLength()
		if err != nil {
			return nil, err
		}
		a.Dims = []int{n}
	} else {
		rank, err := dec.ReadLength()
		if err != nil {
			return nil, err
		}
		if rank == 1 {
			return nil, errors.Wrap(ErrBadLength, "objpack: rank one array without vector flag")
		}
		a.Dims = make([]int, 0, capHint(rank))
		for i := 0; i < rank; i++ {
			d, err := dec.ReadLength()
			if err != nil {
				return nil, err
			}
			a.Dims = append(a.Dims, d)
		}
	}

	if a.HasFillPointer {
		if a.FillPointer, err = dec.ReadLength(); err != nil {
			return nil, errors.Wrap(err, "objpack: fill pointer")
		}
	}

	size, err := a.Size()
	if err != nil {
		return nil, errors.Wrap(ErrBadLength, err.Error())
	}
	a.Data = make([]Value, 0, capHint(size))
	for i := 0; i < size; i++ {
		v, err := dec.next()
		if err != nil {
			return nil, errors.Wrapf(err, "objpack: failed to decode array element %d", i)
		}
		a.Data = append(a.Data, v)
	}
	return a, nil
}

// WriteHashTable writes the test symbol, the rehash size as an untagged
// double, the entry count and every key followed by its value.
func (enc *Encoder) WriteHashTable(h *HashTable) error {
	if err := enc.WriteSymbol(h.Test); err != nil {
		return err
	}
	if err := enc.WriteFloat64(h.RehashSize); err != nil {
		return err
	}
	if err := enc.writeLength(h.Len()); err != nil {
		return err
	}
	for _, e := range h.entries {
		if err := enc.Encode(e.Key); err != nil {
			return errors.Wrap(err, "objpack: failed to encode hash-table key")
		}
		if err := enc.Encode(e.Value); err != nil {
			return errors.Wrap(err, "objpack: failed to encode hash-table value")
		}
	}
	return nil
}

// ReadHashTable reads a table written by WriteHashTable.
func (dec *Decoder) ReadHashTable() (*HashTable, error) {
	test, err := dec.ReadSymbol()
	if err != nil {
		return nil, errors.Wrap(err, "objpack: hash-table test")
	}
	rehash, err := dec.ReadFloat64()
	if err != nil {
		return nil, err
	}
	n, err := dec.ReadLength()
	if err != nil {
		return nil, err
	}

	h := &HashTable{
		Test:       test,
		RehashSize: rehash,
		entries:    make([]MapEntry, 0, capHint(n)),
	}
	for i := 0; i < n; i++ {
		k, err := dec.next()
		if err != nil {
			return nil, errors.Wrapf(err, "objpack: failed to decode hash-table key %d", i)
		}
		v, err := dec.next()
		if err != nil {
			return nil, errors.Wrapf(err, "objpack: failed to decode hash-table value %d", i)
		}
		h.Set(k, v)
	}
	return h, nil
}
