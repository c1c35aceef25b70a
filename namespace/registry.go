// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// Package namespace is an in-memory registry of namespaces that symbols are interned in.
package namespace

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/objpack"
)

// Well known namespaces.
const (
	CommonLisp     = "COMMON-LISP"
	Keyword        = "KEYWORD"
	CommonLispUser = "COMMON-LISP-USER"
)

// ErrExists is returned by Define for names that are already taken.
var ErrExists = errors.New("namespace: already defined")

// Registry maps names to namespaces. It is safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	nss map[string]*Namespace
}

var _ objpack.NamespaceResolver = (*Registry)(nil)

// New returns a registry holding empty namespaces called names.
func New(names ...string) *Registry {
	r := &Registry{nss: make(map[string]*Namespace)}
	for _, n := range names {
		r.nss[n] = newNamespace(n)
	}
	return r
}

// Default returns a registry with the COMMON-LISP, KEYWORD and COMMON-LISP-USER namespaces.
// Symbols of COMMON-LISP-USER that are already interned in COMMON-LISP resolve to those.
func Default() *Registry {
	r := New(CommonLisp, Keyword, CommonLispUser)
	cl := r.nss[CommonLisp]
	for _, name := range []string{objpack.NilName, "T", "EQ", "EQL", "EQUAL", "EQUALP", "CHARACTER", "BASE-CHAR", "FIXNUM", "SINGLE-FLOAT", "DOUBLE-FLOAT"} {
		cl.Intern(name)
	}
	r.nss[CommonLispUser].uses = []*Namespace{cl}
	return r
}

// Define adds an empty namespace.
func (r *Registry) Define(name string) (*Namespace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, has := r.nss[name]; has {
		return nil, errors.Wrapf(ErrExists, "namespace %q", name)
	}
	ns := newNamespace(name)
	r.nss[name] = ns
	return ns, nil
}

// Lookup returns the namespace called name.
func (r *Registry) Lookup(name string) (*Namespace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns, ok := r.nss[name]
	return ns, ok
}

// ResolveNamespace implements objpack.NamespaceResolver.
func (r *Registry) ResolveNamespace(name string) (objpack.Namespace, bool) {
	ns, ok := r.Lookup(name)
	if !ok {
		// a typed nil would not compare equal to nil
		return nil, false
	}
	return ns, true
}

// Names returns the sorted names of all namespaces.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.nss))
	for n := range r.nss {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Namespace holds interned symbol names.
type Namespace struct {
	name string
	uses []*Namespace

	mu      sync.RWMutex
	symbols map[string]struct{}
}

var _ objpack.Namespace = (*Namespace)(nil)

func newNamespace(name string) *Namespace {
	return &Namespace{
		name:    name,
		symbols: make(map[string]struct{}),
	}
}

// Name returns the name of the namespace.
func (ns *Namespace) Name() string { return ns.name }

// Find returns the symbol called name if it is accessible without interning it.
func (ns *Namespace) Find(name string) (objpack.Symbol, bool) {
	ns.mu.RLock()
	_, has := ns.symbols[name]
	ns.mu.RUnlock()
	if has {
		return objpack.Symbol{Package: ns.name, Name: name}, true
	}
	for _, used := range ns.uses {
		if sym, ok := used.Find(name); ok {
			return sym, true
		}
	}
	return objpack.Symbol{}, false
}

// Intern implements objpack.Namespace.
func (ns *Namespace) Intern(name string) objpack.Symbol {
	if sym, ok := ns.Find(name); ok {
		return sym
	}
	ns.mu.Lock()
	ns.symbols[name] = struct{}{}
	ns.mu.Unlock()
	return objpack.Symbol{Package: ns.name, Name: name}
}

// Symbols returns the sorted names interned directly in ns.
func (ns *Namespace) Symbols() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	names := make([]string, 0, len(ns.symbols))
	for n := range ns.symbols {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
