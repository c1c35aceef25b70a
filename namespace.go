// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

// Namespace is a live namespace of a host registry.
type Namespace interface {
	Name() string

	// Intern returns the symbol called name in this namespace, creating it if needed.
	// The returned symbol may live in another namespace if the host resolves it through inheritance.
	Intern(name string) Symbol
}

//go:generate counterfeiter -o objpackfakes/fake_namespace_resolver.go . NamespaceResolver
//go:generate counterfeiter -o objpackfakes/fake_namespace.go . Namespace

// NamespaceResolver looks up namespaces by name. Decoding symbols goes through it.
// Implementations must be safe for the concurrency the host decodes with, the codec does no locking of its own.
type NamespaceResolver interface {
	ResolveNamespace(name string) (Namespace, bool)
}
