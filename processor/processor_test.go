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

package processor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solana-program/address-lookup-table/core/state"
	"github.com/solana-program/address-lookup-table/memstate"
	"github.com/solana-program/address-lookup-table/params"
	"github.com/solana-program/address-lookup-table/processor"
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/pubkey"
	"github.com/solana-program/address-lookup-table/runtime"
)

var systemProgramID = pubkey.Pubkey{0xff}

func keyFor(b byte) pubkey.Pubkey {
	var k pubkey.Pubkey
	k[0] = b
	return k
}

type harness struct {
	programID pubkey.Pubkey
	clock     *memstate.Clock
	ctx       runtime.Context
}

func newHarness(slot uint64) *harness {
	clock := memstate.NewClock(slot)
	rent := memstate.DefaultRent()
	return &harness{
		programID: keyFor(1),
		clock:     clock,
		ctx: runtime.Context{
			ProgramID:  keyFor(1),
			Clock:      clock,
			SlotHashes: memstate.NewSlotHashes(clock, params.SlotHashesWindow),
			Rent:       rent,
			System:     memstate.SystemProgram{},
		},
	}
}

// createTable derives and creates a fresh table at recentSlot, returning the
// table account and its authority key.
func createTable(t *testing.T, h *harness, recentSlot uint64) (*memstate.Account, pubkey.Pubkey) {
	t.Helper()
	authority := keyFor(42)
	seeds := [][]byte{authority.Bytes(), pubkey.RecentSlotSeed(recentSlot)}
	tableKey, bump, err := pubkey.FindProgramAddress(seeds, h.programID)
	require.NoError(t, err)

	table := memstate.NewAccount(tableKey, systemProgramID, 0, nil, false, true)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	payer := memstate.NewAccount(keyFor(7), systemProgramID, 10_000_000_000, nil, true, true)
	sysProg := memstate.NewAccount(systemProgramID, systemProgramID, 0, nil, false, false)

	err = processor.CreateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, payer, sysProg}, recentSlot, bump)
	require.NoError(t, err)
	require.Equal(t, h.programID, table.Owner())

	return table, authority
}

// extendAccounts returns the account list for an ExtendLookupTable call with
// a funded payer and system program present, so a rent top-up (almost always
// required when growing past the bare 56-byte meta) never fails for lack of
// accounts.
func extendAccounts(table *memstate.Account, authorityAcc runtime.AccountInfo) []runtime.AccountInfo {
	payer := memstate.NewAccount(keyFor(7), systemProgramID, 10_000_000_000, nil, true, true)
	sysProg := memstate.NewAccount(systemProgramID, systemProgramID, 0, nil, false, false)
	return []runtime.AccountInfo{table, authorityAcc, payer, sysProg}
}

func TestCreateLookupTableIdempotent(t *testing.T) {
	h := newHarness(100)
	table, authority := createTable(t, h, 1)

	before := append([]byte(nil), table.Data()...)

	seeds := [][]byte{authority.Bytes(), pubkey.RecentSlotSeed(1)}
	_, bump, err := pubkey.FindProgramAddress(seeds, h.programID)
	require.NoError(t, err)

	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	payer := memstate.NewAccount(keyFor(7), systemProgramID, 10_000_000_000, nil, true, true)
	sysProg := memstate.NewAccount(systemProgramID, systemProgramID, 0, nil, false, false)

	err = processor.CreateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, payer, sysProg}, 1, bump)
	require.NoError(t, err)
	require.Equal(t, before, table.Data())
}

func TestCreateLookupTableRejectsNonSignerPayer(t *testing.T) {
	h := newHarness(100)
	authority := keyFor(42)
	seeds := [][]byte{authority.Bytes(), pubkey.RecentSlotSeed(1)}
	tableKey, bump, err := pubkey.FindProgramAddress(seeds, h.programID)
	require.NoError(t, err)

	table := memstate.NewAccount(tableKey, systemProgramID, 0, nil, false, true)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	payer := memstate.NewAccount(keyFor(7), systemProgramID, 10_000_000_000, nil, false, true)
	sysProg := memstate.NewAccount(systemProgramID, systemProgramID, 0, nil, false, false)

	err = processor.CreateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, payer, sysProg}, 1, bump)
	require.ErrorIs(t, err, programerror.ErrMissingRequiredSignature)
}

func TestExtendLookupTableUpToMaxCapacity(t *testing.T) {
	h := newHarness(100)
	table, authority := createTable(t, h, 1)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)

	newAddrs := make([]pubkey.Pubkey, params.MaxAddresses)
	for i := range newAddrs {
		newAddrs[i] = keyFor(byte(i + 1))
	}

	err := processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), newAddrs)
	require.NoError(t, err)

	alt, err := state.Deserialize(table.Data())
	require.NoError(t, err)
	require.Len(t, alt.Addresses, params.MaxAddresses)

	// One more address must now be rejected.
	err = processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(250)})
	require.ErrorIs(t, err, programerror.ErrInvalidArgument)
}

func TestExtendLookupTableSameSlotKeepsStartIndex(t *testing.T) {
	h := newHarness(100)
	table, authority := createTable(t, h, 1)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)

	err := processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(2)})
	require.NoError(t, err)
	alt, err := state.Deserialize(table.Data())
	require.NoError(t, err)
	require.EqualValues(t, 0, alt.Meta.LastExtendedSlotStartIndex)

	err = processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(3)})
	require.NoError(t, err)
	alt, err = state.Deserialize(table.Data())
	require.NoError(t, err)
	// Still 0: a second extend within the same slot does not move the
	// active-address boundary forward.
	require.EqualValues(t, 0, alt.Meta.LastExtendedSlotStartIndex)
	require.Len(t, alt.Addresses, 2)

	h.clock.SetSlot(101)
	err = processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(4)})
	require.NoError(t, err)
	alt, err = state.Deserialize(table.Data())
	require.NoError(t, err)
	require.EqualValues(t, 2, alt.Meta.LastExtendedSlotStartIndex)
}

func TestExtendLookupTableReadonlyRejection(t *testing.T) {
	h := newHarness(100)
	authority := keyFor(42)
	seeds := [][]byte{authority.Bytes(), pubkey.RecentSlotSeed(1)}
	tableKey, bump, err := pubkey.FindProgramAddress(seeds, h.programID)
	require.NoError(t, err)

	table := memstate.NewAccount(tableKey, systemProgramID, 0, nil, false, true)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	payer := memstate.NewAccount(keyFor(7), systemProgramID, 10_000_000_000, nil, true, true)
	sysProg := memstate.NewAccount(systemProgramID, systemProgramID, 0, nil, false, false)
	require.NoError(t, processor.CreateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, payer, sysProg}, 1, bump))

	readonlyTable := memstate.NewAccount(tableKey, h.programID, table.Lamports(), table.Data(), false, false)
	err = processor.ExtendLookupTable(h.ctx, []runtime.AccountInfo{readonlyTable, authorityAcc}, []pubkey.Pubkey{keyFor(2)})
	require.ErrorIs(t, err, programerror.ErrReadonlyDataModified)
	require.EqualValues(t, programerror.CodeReadonlyDataModified, err.(programerror.Error).Code())
}

func TestFreezePreconditions(t *testing.T) {
	h := newHarness(100)

	t.Run("empty table cannot be frozen", func(t *testing.T) {
		table, authority := createTable(t, h, 1)
		authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
		err := processor.FreezeLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc})
		require.ErrorIs(t, err, programerror.ErrInvalidInstructionData)
	})

	t.Run("deactivated table cannot be frozen", func(t *testing.T) {
		table, authority := createTable(t, h, 2)
		authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
		require.NoError(t, processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(9)}))
		require.NoError(t, processor.DeactivateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc}))

		err := processor.FreezeLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc})
		require.ErrorIs(t, err, programerror.ErrInvalidArgument)
	})

	t.Run("already frozen table cannot be frozen again", func(t *testing.T) {
		table, authority := createTable(t, h, 3)
		authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
		require.NoError(t, processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(9)}))
		require.NoError(t, processor.FreezeLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc}))

		err := processor.FreezeLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc})
		require.ErrorIs(t, err, programerror.ErrImmutable)
	})
}

func TestDeactivateThenCloseCooldown(t *testing.T) {
	h := newHarness(100)
	table, authority := createTable(t, h, 1)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	require.NoError(t, processor.ExtendLookupTable(h.ctx, extendAccounts(table, authorityAcc), []pubkey.Pubkey{keyFor(9)}))

	h.clock.SetSlot(200)
	require.NoError(t, processor.DeactivateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc}))

	recipient := memstate.NewAccount(keyFor(55), systemProgramID, 0, nil, false, true)

	cases := []struct {
		slot      uint64
		expectErr bool
	}{
		{201, true},  // 1 slot elapsed
		{240, true},  // 40 slots elapsed
		{711, true},  // 511 slots elapsed, still inside the cooldown window
		{712, false}, // 512 slots elapsed: fully deactivated
	}
	for _, tc := range cases {
		h.clock.SetSlot(tc.slot)
		err := processor.CloseLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, recipient})
		if tc.expectErr {
			require.ErrorIsf(t, err, programerror.ErrInvalidArgument, "slot %d", tc.slot)
		} else {
			require.NoErrorf(t, err, "slot %d", tc.slot)
		}
	}
}

func TestCloseLookupTableReadonlyRecipient(t *testing.T) {
	h := newHarness(100)
	table, authority := createTable(t, h, 1)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	require.NoError(t, processor.DeactivateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc}))
	h.clock.SetSlot(100 + params.DeactivationCooldownSlots)

	recipient := memstate.NewAccount(keyFor(55), systemProgramID, 0, nil, false, false)
	err := processor.CloseLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, recipient})
	require.ErrorIs(t, err, programerror.ErrReadonlyLamportsChanged)
}

func TestCloseLookupTableRejectsSelfRecipient(t *testing.T) {
	h := newHarness(100)
	table, authority := createTable(t, h, 1)
	authorityAcc := memstate.NewAccount(authority, systemProgramID, 0, nil, true, false)
	require.NoError(t, processor.DeactivateLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc}))
	h.clock.SetSlot(100 + params.DeactivationCooldownSlots)

	selfRecipient := memstate.NewAccount(table.Key(), h.programID, table.Lamports(), table.Data(), false, true)
	err := processor.CloseLookupTable(h.ctx, []runtime.AccountInfo{table, authorityAcc, selfRecipient})
	require.ErrorIs(t, err, programerror.ErrInvalidArgument)
}
