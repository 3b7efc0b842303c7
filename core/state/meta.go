// Copyright 2024 The address-lookup-table Authors
// This file is part of the address-lookup-table library.
//
// The address-lookup-table library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The address-lookup-table library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the address-lookup-table library. If not, see <http://www.gnu.org/licenses/>.

// Package state implements the lookup-table account model: the fixed-size
// meta region, the tagged-union account-buffer encoding, and the pure
// activation-status function derived from slot arithmetic.
package state

import (
	"math"

	"github.com/solana-program/address-lookup-table/pubkey"
)

// MaxDeactivationSlot is the sentinel value of DeactivationSlot meaning the
// table has never been deactivated.
const MaxDeactivationSlot = math.MaxUint64

// Meta is the fixed-size prefix of every initialized lookup table account.
type Meta struct {
	// DeactivationSlot is MaxDeactivationSlot until Deactivate runs.
	DeactivationSlot uint64
	// LastExtendedSlot is the slot of the most recent successful extend.
	LastExtendedSlot uint64
	// LastExtendedSlotStartIndex is the first address index added during
	// LastExtendedSlot.
	LastExtendedSlotStartIndex uint8
	// Authority is the identity permitted to mutate the table. A nil
	// Authority means the table is frozen.
	Authority *pubkey.Pubkey
}

// NewMeta returns the meta for a freshly created table: authority set,
// never deactivated, every other field zero.
func NewMeta(authority pubkey.Pubkey) Meta {
	a := authority
	return Meta{
		DeactivationSlot: MaxDeactivationSlot,
		Authority:        &a,
	}
}

// IsFrozen reports whether the table has no authority and can never be mutated again.
func (m Meta) IsFrozen() bool {
	return m.Authority == nil
}

// HasAuthority reports whether candidate is the table's mutating authority.
func (m Meta) HasAuthority(candidate pubkey.Pubkey) bool {
	return m.Authority != nil && *m.Authority == candidate
}
