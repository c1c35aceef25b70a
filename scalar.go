// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

package objpack

import (
	"math/big"

	"github.com/pkg/errors"
)

// WriteRatio writes numerator and denominator as two VarInts.
func (enc *Encoder) WriteRatio(r *big.Rat) error {
	if err := enc.WriteVarInt(r.Num()); err != nil {
		return err
	}
	return enc.WriteVarInt(r.Denom())
}

// ReadRatio reads a ratio written by WriteRatio.
func (dec *Decoder) ReadRatio() (*big.Rat, error) {
	num, err := dec.ReadVarInt()
	if err != nil {
		return nil, err
	}
	den, err := dec.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if den.Sign() == 0 {
		return nil, errors.Wrap(ErrMalformedVarInt, "objpack: zero denominator")
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// WriteChar writes c as one raw byte.
func (enc *Encoder) WriteChar(c Char) error {
	if c < 0 || c > 0xff {
		return errors.Wrapf(ErrUnencodable, "objpack: character %U wider than a byte", rune(c))
	}
	return enc.WriteByte(byte(c))
}

// ReadChar reads one raw byte as a character.
func (dec *Decoder) ReadChar() (Char, error) {
	b, err := dec.ReadByte()
	return Char(b), err
}

// WriteString writes the byte length of s as a VarInt followed by the bytes.
func (enc *Encoder) WriteString(s string) error {
	if err := enc.writeLength(len(s)); err != nil {
		return err
	}
	_, err := enc.w.Write([]byte(s))
	return errors.Wrap(err, "objpack: write failed")
}

// ReadString reads a string written by WriteString.
func (dec *Decoder) ReadString() (string, error) {
	n, err := dec.ReadLength()
	if err != nil {
		return "", err
	}
	buf, err := dec.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteSymbol writes the namespace name and then the symbol name as strings.
func (enc *Encoder) WriteSymbol(s Symbol) error {
	if err := enc.WriteString(s.Package); err != nil {
		return err
	}
	return enc.WriteString(s.Name)
}

// ReadSymbol reads a symbol and interns it in its namespace.
// The empty-list marker comes back as the plain symbol COMMON-LISP:NIL here,
// only Decode turns it into Nil.
func (dec *Decoder) ReadSymbol() (Symbol, error) {
	pkg, err := dec.ReadString()
	if err != nil {
		return Symbol{}, err
	}
	name, err := dec.ReadString()
	if err != nil {
		return Symbol{}, err
	}
	if dec.resolver == nil {
		return Symbol{}, errors.Wrapf(ErrUnknownNamespace, "objpack: no resolver for %q", pkg)
	}
	ns, ok := dec.resolver.ResolveNamespace(pkg)
	if !ok {
		return Symbol{}, errors.Wrapf(ErrUnknownNamespace, "objpack: %q", pkg)
	}
	return ns.Intern(name), nil
}
