// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objstore

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/ssbc/objpack"
)

// RefTag is the tag references are written with.
const RefTag objpack.Tag = 'p'

// Ref names an object persisted in a Store. The zero Ref names nothing.
type Ref struct {
	ID uint64
}

func (r Ref) String() string { return fmt.Sprintf("#<ref %d>", r.ID) }

// RefExtension encodes Ref values as RefTag followed by the id as a VarInt.
// It only round-trips the id, turning it back into an object is up to Store.Get.
var RefExtension objpack.Extension = refExtension{}

type refExtension struct{}

func (refExtension) Tag() objpack.Tag { return RefTag }

func (refExtension) Handles(v objpack.Value) bool {
	switch v.(type) {
	case Ref, *Ref:
		return true
	}
	return false
}

func (refExtension) EncodePayload(enc *objpack.Encoder, v objpack.Value) error {
	var r Ref
	switch tv := v.(type) {
	case Ref:
		r = tv
	case *Ref:
		if tv == nil {
			return errors.Wrap(objpack.ErrUnencodable, "objstore: nil ref")
		}
		r = *tv
	default:
		return errors.Wrapf(objpack.ErrUnencodable, "objstore: %T is not a ref", v)
	}
	return enc.WriteVarInt(new(big.Int).SetUint64(r.ID))
}

func (refExtension) DecodePayload(dec *objpack.Decoder) (objpack.Value, error) {
	n, err := dec.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 || !n.IsUint64() {
		return nil, errors.Wrapf(objpack.ErrBadLength, "objstore: ref id %s", n)
	}
	return Ref{ID: n.Uint64()}, nil
}
