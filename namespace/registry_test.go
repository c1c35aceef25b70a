// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package namespace

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/objpack"
)

func TestDefault(t *testing.T) {
	r := require.New(t)

	reg := Default()
	r.Equal([]string{CommonLisp, CommonLispUser, Keyword}, reg.Names())

	ns, ok := reg.ResolveNamespace(CommonLisp)
	r.True(ok)
	r.Equal(CommonLisp, ns.Name())
	r.Equal(objpack.Nil{}.Symbol(), ns.Intern(objpack.NilName))

	_, ok = reg.ResolveNamespace("NOPE")
	r.False(ok)
}

func TestDefine(t *testing.T) {
	r := require.New(t)

	reg := New()
	app, err := reg.Define("APP")
	r.NoError(err)
	r.Equal("APP", app.Name())

	_, err = reg.Define("APP")
	r.ErrorIs(err, ErrExists)

	_, ok := app.Find("X")
	r.False(ok)
	r.Equal(objpack.Symbol{Package: "APP", Name: "X"}, app.Intern("X"))
	sym, ok := app.Find("X")
	r.True(ok)
	r.Equal("APP::X", sym.String())
	r.Equal([]string{"X"}, app.Symbols())
}

func TestUses(t *testing.T) {
	r := require.New(t)

	reg := Default()
	user, ok := reg.Lookup(CommonLispUser)
	r.True(ok)

	r.Equal(objpack.Symbol{Package: CommonLisp, Name: "T"}, user.Intern("T"))
	r.Empty(user.Symbols(), "inherited symbols are not copied")

	r.Equal(objpack.Symbol{Package: CommonLispUser, Name: "FOO"}, user.Intern("FOO"))
	r.Equal([]string{"FOO"}, user.Symbols())
}

func TestConcurrentIntern(t *testing.T) {
	reg := Default()
	kw, ok := reg.Lookup(Keyword)
	require.True(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				kw.Intern(fmt.Sprintf("K%d", j))
			}
		}()
	}
	wg.Wait()
	require.Len(t, kw.Symbols(), 100)
}
