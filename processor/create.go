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

package processor

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/solana-program/address-lookup-table/core/state"
	"github.com/solana-program/address-lookup-table/params"
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/pubkey"
	"github.com/solana-program/address-lookup-table/runtime"
)

// CreateLookupTable implements spec.md §4.4. Accounts (ordered): [writable
// uninitialized] table, [signer] authority, [writable signer] payer,
// [] system_program. Remaining accounts are permitted but ignored.
func CreateLookupTable(ctx runtime.Context, accounts []runtime.AccountInfo, recentSlot uint64, bumpSeed uint8) error {
	table, err := nextAccount(accounts, 0)
	if err != nil {
		return err
	}
	authority, err := nextAccount(accounts, 1)
	if err != nil {
		return err
	}
	payer, err := nextAccount(accounts, 2)
	if err != nil {
		return err
	}
	if _, err := nextAccount(accounts, 3); err != nil {
		return err
	}

	if !payer.IsSigner() {
		log.Debug("Payer account must be a signer")
		return programerror.ErrMissingRequiredSignature
	}

	if _, ok := ctx.SlotHashes.Position(recentSlot); !ok {
		log.Debug("not a recent slot", "slot", recentSlot)
		return programerror.ErrInvalidInstructionData
	}

	seeds := [][]byte{authority.Key().Bytes(), pubkey.RecentSlotSeed(recentSlot), {bumpSeed}}
	derived, err := pubkey.CreateProgramAddress(seeds, ctx.ProgramID)
	if err != nil {
		return err
	}
	if table.Key() != derived {
		log.Debug("table address must match derived address", "derived", derived)
		return programerror.ErrInvalidArgument
	}

	// Idempotence: a table already owned by this program at its one legal
	// derived address has already been created. Succeed without mutation.
	if table.Owner() == ctx.ProgramID {
		return nil
	}

	required := ctx.Rent.MinimumBalance(params.MetaSize)
	if required == 0 {
		required = 1
	}
	if required > table.Lamports() {
		if err := ctx.System.Transfer(payer, table, required-table.Lamports()); err != nil {
			return err
		}
	}

	if err := ctx.System.Allocate(table, uint64(params.MetaSize), seeds); err != nil {
		return err
	}
	if err := ctx.System.Assign(table, ctx.ProgramID, seeds); err != nil {
		return err
	}

	return state.SerializeNewLookupTable(table.Data(), authority.Key())
}
