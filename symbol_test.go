// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/namespace"
	"github.com/ssbc/objpack/objpackfakes"
)

func TestSymbolResolution(t *testing.T) {
	r := require.New(t)

	data := encode(t, objpack.Symbol{Package: "APP", Name: "WIDGET"})
	r.Equal(cat([]byte{'y'}, wireString("APP"), wireString("WIDGET")), data)

	fakeNS := new(objpackfakes.FakeNamespace)
	fakeNS.InternReturns(objpack.Symbol{Package: "APP-CORE", Name: "WIDGET"})

	fakeRes := new(objpackfakes.FakeNamespaceResolver)
	fakeRes.ResolveNamespaceReturns(fakeNS, true)

	dec := objpack.NewDecoder(bytes.NewReader(data), objpack.WithResolver(fakeRes))
	v, err := dec.Decode()
	r.NoError(err)
	r.Equal(objpack.Symbol{Package: "APP-CORE", Name: "WIDGET"}, v, "interning decides the identity")

	r.Equal(1, fakeRes.ResolveNamespaceCallCount())
	r.Equal("APP", fakeRes.ResolveNamespaceArgsForCall(0))
	r.Equal(1, fakeNS.InternCallCount())
	r.Equal("WIDGET", fakeNS.InternArgsForCall(0))
}

func TestSymbolUnknownNamespace(t *testing.T) {
	r := require.New(t)

	data := encode(t, objpack.Symbol{Package: "NOWHERE", Name: "X"})

	fakeRes := new(objpackfakes.FakeNamespaceResolver)
	fakeRes.ResolveNamespaceReturns(nil, false)
	_, err := objpack.NewDecoder(bytes.NewReader(data), objpack.WithResolver(fakeRes)).Decode()
	r.True(objpack.IsUnknownNamespace(err), "got %v", err)

	_, err = objpack.NewDecoder(bytes.NewReader(data), objpack.WithResolver(namespace.Default())).Decode()
	r.True(objpack.IsUnknownNamespace(err), "got %v", err)

	// no resolver at all
	_, err = objpack.NewDecoder(bytes.NewReader(data)).Decode()
	r.True(objpack.IsUnknownNamespace(err), "got %v", err)
}

func TestSymbolInheritance(t *testing.T) {
	r := require.New(t)

	reg := namespace.Default()
	data := encode(t, objpack.Symbol{Package: namespace.CommonLispUser, Name: "EQUAL"})

	v := decode(t, data, objpack.WithResolver(reg))
	r.Equal(symEqual, v)

	v = decode(t, encode(t, objpack.Symbol{Package: namespace.CommonLispUser, Name: "MY-FUN"}), objpack.WithResolver(reg))
	r.Equal(objpack.Symbol{Package: namespace.CommonLispUser, Name: "MY-FUN"}, v)

	cluser, ok := reg.Lookup(namespace.CommonLispUser)
	r.True(ok)
	r.Contains(cluser.Symbols(), "MY-FUN")
}

func TestNilDecodesAsMarker(t *testing.T) {
	r := require.New(t)

	data := cat([]byte{'y'}, wireString("COMMON-LISP"), wireString("NIL"))
	r.Equal(objpack.Nil{}, decode(t, data))

	// the untagged symbol reader hands out the plain symbol
	dec := objpack.NewDecoder(bytes.NewReader(data[1:]), objpack.WithResolver(namespace.Default()))
	sym, err := dec.ReadSymbol()
	r.NoError(err)
	r.True(sym.IsNil())
	r.Equal("COMMON-LISP::NIL", sym.String())
}
