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

// Package runtime defines the interfaces the processor depends on for
// everything explicitly out of scope in spec.md §1: the host runtime's
// account handles, signer/writable flags, the rent/clock/slot-hashes
// sysvars, and cross-program invocation of the system program. No
// implementation lives here — see package memstate for an in-memory one
// used by tests — mirroring the way go-ethereum's core/vm package depends
// only on the vm.StateDB interface and never a concrete state
// implementation.
package runtime

import "github.com/solana-program/address-lookup-table/pubkey"

// AccountInfo is a single account handle as the host runtime presents it to
// an instruction. Exactly one handle exists per account per instruction; the
// runtime enforces exclusive write-borrows on anything marked writable.
type AccountInfo interface {
	Key() pubkey.Pubkey
	Owner() pubkey.Pubkey
	SetOwner(pubkey.Pubkey)
	Lamports() uint64
	SetLamports(uint64)
	// Data returns the account's buffer. Mutations through the returned
	// slice are visible to the runtime immediately; Realloc must be used to
	// change its length.
	Data() []byte
	// Realloc resizes the account's data buffer in place. If zeroInit is
	// true and the buffer grows, the new tail is zero-filled.
	Realloc(newLen int, zeroInit bool) error
	IsSigner() bool
	IsWritable() bool
	Executable() bool
}

// Clock is the clock sysvar: the current slot.
type Clock interface {
	Slot() uint64
}

// SlotHashes is the slot-hashes sysvar, consulted in create to verify
// recent_slot is within the recent-slot window.
type SlotHashes interface {
	// Position reports slot's position in the slot-hashes history (0 being
	// the most recent slot) and whether slot is present at all.
	Position(slot uint64) (position int, ok bool)
}

// Rent is the rent sysvar: minimum lamport balance for persistence.
type Rent interface {
	MinimumBalance(dataLen int) uint64
}

// SystemProgram is the CPI surface of the system program the create and
// extend handlers depend on.
type SystemProgram interface {
	Transfer(from, to AccountInfo, lamports uint64) error
	Allocate(account AccountInfo, size uint64, signerSeeds [][]byte) error
	Assign(account AccountInfo, owner pubkey.Pubkey, signerSeeds [][]byte) error
}

// Context bundles the program id and every external collaborator a handler
// may need, so handler signatures stay stable as new sysvars are added.
type Context struct {
	ProgramID  pubkey.Pubkey
	Clock      Clock
	SlotHashes SlotHashes
	Rent       Rent
	System     SystemProgram
}

// ClockOnlySlotHashes is the fallback SlotHashes adapter spec.md's Sysvars
// section calls for: "Implementations unable to access SlotHashes must
// derive slot position as current − deactivation bounded by 512." It
// approximates slot-hashes presence using only the clock, treating any slot
// within the last window as present.
type ClockOnlySlotHashes struct {
	Clock  Clock
	Window int
}

// Position implements SlotHashes using only the current slot: a candidate
// slot is "present" iff it is fewer than Window slots in the past and not
// in the future.
func (c ClockOnlySlotHashes) Position(slot uint64) (int, bool) {
	current := c.Clock.Slot()
	if slot > current {
		return 0, false
	}
	position := current - slot
	if int(position) >= c.Window {
		return 0, false
	}
	return int(position), true
}
