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

// Package params collects the protocol-level constants governing the
// address lookup table account layout, instruction size, and deactivation
// cool-down. These numbers are load-bearing: they are consumed by
// transaction-loading code outside this program and must not drift.
package params

const (
	// PubkeyLen is the width in bytes of a single address.
	PubkeyLen = 32

	// MetaSize is the fixed size, in bytes, of the LookupTableMeta region
	// at the start of every initialized table account (spec.md §3, §6).
	MetaSize = 56

	// MaxAddresses is the maximum number of addresses a single table may hold.
	MaxAddresses = 256

	// MaxInstructionBytes is the maximum length the instruction decoder
	// accepts for raw instruction data.
	MaxInstructionBytes = 1232

	// MaxExtendAddresses is the maximum number of addresses accepted by a
	// single ExtendLookupTable instruction: (1232 - 4 - 8) / 32.
	MaxExtendAddresses = (MaxInstructionBytes - 4 - 8) / PubkeyLen

	// DeactivationCooldownSlots is the remaining-blocks count reported for a
	// table whose deactivation slot is the current slot: the full 512-slot
	// slot-hashes window plus the deactivation slot itself. A deactivated
	// table may be closed once the current slot is SlotHashesWindow slots
	// past its deactivation slot.
	DeactivationCooldownSlots = 513

	// SlotHashesWindow is the width of the slot-hashes history the runtime
	// maintains; position computations beyond this are undefined and
	// treated as fully deactivated.
	SlotHashesWindow = 512
)

// StateTag identifies which variant of ProgramState an account buffer holds.
// It is serialized as a 4-byte little-endian integer (spec.md §3, §6).
type StateTag uint32

const (
	// StateUninitialized marks an account that has not yet been initialized
	// as a lookup table.
	StateUninitialized StateTag = 0
	// StateLookupTable marks an account holding a LookupTableMeta followed
	// by its address list.
	StateLookupTable StateTag = 1
)
