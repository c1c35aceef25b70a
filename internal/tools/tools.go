// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

//go:build tools
// +build tools

// Package tools pins the generators behind the go:generate lines of objpack,
// so the fakes in objpackfakes are rebuilt with the version in go.mod.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
