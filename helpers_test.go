// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/namespace"
)

var (
	symT         = objpack.Symbol{Package: namespace.CommonLisp, Name: "T"}
	symCharacter = objpack.Symbol{Package: namespace.CommonLisp, Name: "CHARACTER"}
	symEqual     = objpack.Symbol{Package: namespace.CommonLisp, Name: "EQUAL"}
)

func encode(t *testing.T, v objpack.Value, opts ...objpack.Option) []byte {
	var buf bytes.Buffer
	err := objpack.NewEncoder(&buf, opts...).Encode(v)
	require.NoError(t, err, "encode %v", v)
	return buf.Bytes()
}

func decode(t *testing.T, data []byte, opts ...objpack.Option) objpack.Value {
	opts = append([]objpack.Option{objpack.WithResolver(namespace.Default())}, opts...)
	rd := bytes.NewReader(data)
	v, err := objpack.NewDecoder(rd, opts...).Decode()
	require.NoError(t, err, "decode %x", data)
	require.Equal(t, 0, rd.Len(), "decoder left bytes behind")
	return v
}

func roundtrip(t *testing.T, v objpack.Value) objpack.Value {
	return decode(t, encode(t, v))
}

func bigInt(t *testing.T, s string) objpack.Integer {
	n, ok := new(big.Int).SetString(s, 0)
	require.True(t, ok, "bad number %q", s)
	return objpack.Integer{Int: n}
}

func bigRatio(t *testing.T, s string) objpack.Ratio {
	q, ok := new(big.Rat).SetString(s)
	require.True(t, ok, "bad ratio %q", s)
	return objpack.Ratio{Rat: q}
}

// wireString is a VarInt length followed by s, for strings shorter than 128 bytes.
func wireString(s string) []byte {
	return append([]byte{1, byte(len(s))}, s...)
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
