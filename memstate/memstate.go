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

// Package memstate is an in-memory reference implementation of every
// interface in package runtime, analogous to go-ethereum's core/vm/runtime
// package: a self-contained harness for exercising program logic against
// fake accounts and sysvars, without a real host runtime. It is used by the
// processor package's tests and is explicitly not the "host runtime"
// spec.md §1 excludes from scope — it exists only so tests can drive the
// processor end to end.
package memstate

import (
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/pubkey"
	"github.com/solana-program/address-lookup-table/runtime"
)

// Account is an in-memory AccountInfo.
type Account struct {
	key        pubkey.Pubkey
	owner      pubkey.Pubkey
	lamports   uint64
	data       []byte
	signer     bool
	writable   bool
	executable bool
}

// NewAccount constructs an in-memory account.
func NewAccount(key, owner pubkey.Pubkey, lamports uint64, data []byte, signer, writable bool) *Account {
	return &Account{key: key, owner: owner, lamports: lamports, data: data, signer: signer, writable: writable}
}

var _ runtime.AccountInfo = (*Account)(nil)

func (a *Account) Key() pubkey.Pubkey       { return a.key }
func (a *Account) Owner() pubkey.Pubkey     { return a.owner }
func (a *Account) SetOwner(o pubkey.Pubkey) { a.owner = o }
func (a *Account) Lamports() uint64         { return a.lamports }
func (a *Account) SetLamports(l uint64)     { a.lamports = l }
func (a *Account) Data() []byte             { return a.data }
func (a *Account) IsSigner() bool           { return a.signer }
func (a *Account) IsWritable() bool         { return a.writable }
func (a *Account) Executable() bool         { return a.executable }

// Realloc resizes the account's backing buffer in place.
func (a *Account) Realloc(newLen int, zeroInit bool) error {
	if newLen < 0 {
		return programerror.ErrInvalidArgument
	}
	switch {
	case newLen == len(a.data):
		return nil
	case newLen < len(a.data):
		a.data = a.data[:newLen]
	default:
		grown := make([]byte, newLen)
		copy(grown, a.data)
		if !zeroInit {
			// Leave the new tail uninitialized-looking by copying whatever
			// was already there past the old length — in this in-memory
			// harness that's always zero anyway, so this branch exists to
			// document the distinction rather than change behavior.
		}
		a.data = grown
	}
	return nil
}

// Clock is an in-memory clock sysvar.
type Clock struct {
	slot uint64
}

// NewClock constructs a Clock fixed at slot.
func NewClock(slot uint64) *Clock { return &Clock{slot: slot} }

func (c *Clock) Slot() uint64 { return c.slot }

// SetSlot advances the in-memory clock, simulating slot progression between
// instructions in a test.
func (c *Clock) SetSlot(slot uint64) { c.slot = slot }

var _ runtime.Clock = (*Clock)(nil)

// SlotHashes is an in-memory slot-hashes sysvar backed by a fixed window of
// recent slots relative to the clock it was built from.
type SlotHashes struct {
	clock  *Clock
	window int
}

// NewSlotHashes constructs a SlotHashes sysvar tracking the last window
// slots relative to clock.
func NewSlotHashes(clock *Clock, window int) *SlotHashes {
	return &SlotHashes{clock: clock, window: window}
}

var _ runtime.SlotHashes = (*SlotHashes)(nil)

// Position reports slot's age relative to the clock, and whether it still
// falls inside the tracked window.
func (s *SlotHashes) Position(slot uint64) (int, bool) {
	current := s.clock.Slot()
	if slot > current {
		return 0, false
	}
	age := current - slot
	if int(age) >= s.window {
		return 0, false
	}
	return int(age), true
}

// Rent is an in-memory rent sysvar using the same default parameters as
// solana-program's Rent::default(): a per-byte-year lamport rate and a
// two-year exemption threshold, applied over the account's data length plus
// a fixed per-account overhead.
type Rent struct {
	LamportsPerByteYear  uint64
	ExemptionThreshold   float64
	AccountOverheadBytes uint64
}

// DefaultRent returns the standard rent parameters.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear:  3480,
		ExemptionThreshold:   2.0,
		AccountOverheadBytes: 128,
	}
}

var _ runtime.Rent = Rent{}

// MinimumBalance returns the lamport balance a dataLen-byte account must
// hold to be exempt from rent collection.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	bytesCharged := uint64(dataLen) + r.AccountOverheadBytes
	return uint64(float64(bytesCharged*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// SystemProgram is an in-memory system-program CPI surface: it mutates the
// in-memory accounts passed to it directly instead of crossing any real
// program boundary.
type SystemProgram struct{}

var _ runtime.SystemProgram = SystemProgram{}

// Transfer moves lamports from from to to, both of which must be in-memory
// *Account values.
func (SystemProgram) Transfer(from, to runtime.AccountInfo, lamports uint64) error {
	if from.Lamports() < lamports {
		return programerror.ErrArithmeticOverflow
	}
	from.SetLamports(from.Lamports() - lamports)
	to.SetLamports(to.Lamports() + lamports)
	return nil
}

// Allocate resizes account's data to size bytes, zero-filled.
func (SystemProgram) Allocate(account runtime.AccountInfo, size uint64, _ [][]byte) error {
	return account.Realloc(int(size), true)
}

// Assign sets account's owner.
func (SystemProgram) Assign(account runtime.AccountInfo, owner pubkey.Pubkey, _ [][]byte) error {
	account.SetOwner(owner)
	return nil
}
