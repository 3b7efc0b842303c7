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

// ExtendLookupTable implements spec.md §4.6. Accounts: [writable] table,
// [signer] authority, optional [writable signer] payer, optional
// [] system_program. The payer and system_program accounts are read only if
// a rent top-up is required.
func ExtendLookupTable(ctx runtime.Context, accounts []runtime.AccountInfo, newAddresses []pubkey.Pubkey) error {
	table, err := nextAccount(accounts, 0)
	if err != nil {
		return err
	}
	authority, err := nextAccount(accounts, 1)
	if err != nil {
		return err
	}

	if table.Owner() != ctx.ProgramID {
		return programerror.ErrInvalidAccountOwner
	}
	if !authority.IsSigner() {
		log.Debug("Authority account must be a signer")
		return programerror.ErrMissingRequiredSignature
	}

	alt, err := state.Deserialize(table.Data())
	if err != nil {
		return err
	}
	if alt.Meta.IsFrozen() {
		log.Debug("Lookup table is frozen")
		return programerror.ErrImmutable
	}
	if !alt.Meta.HasAuthority(authority.Key()) {
		return programerror.ErrIncorrectAuthority
	}
	if alt.Meta.DeactivationSlot != state.MaxDeactivationSlot {
		log.Debug("Deactivated tables cannot be extended")
		return programerror.ErrInvalidArgument
	}
	if len(alt.Addresses) >= params.MaxAddresses {
		log.Debug("Lookup table is full and cannot contain more addresses")
		return programerror.ErrInvalidArgument
	}
	if len(newAddresses) == 0 {
		log.Debug("Must extend with at least one address")
		return programerror.ErrInvalidInstructionData
	}

	oldLen := len(alt.Addresses)
	newLen := oldLen + len(newAddresses)
	if newLen > params.MaxAddresses {
		log.Debug("extended lookup table length would exceed max capacity", "new_len", newLen, "max", params.MaxAddresses)
		return programerror.ErrInvalidInstructionData
	}

	meta := alt.Meta
	if ctx.Clock.Slot() != meta.LastExtendedSlot {
		meta.LastExtendedSlot = ctx.Clock.Slot()
		meta.LastExtendedSlotStartIndex = uint8(oldLen)
	}

	newDataLen := params.MetaSize + newLen*params.PubkeyLen
	if newDataLen < params.MetaSize {
		return programerror.ErrArithmeticOverflow
	}

	// Checked before the rent top-up so the failure mode matches the
	// runtime's account-modification rules even when other preconditions
	// (missing payer, etc.) are also violated.
	if !table.IsWritable() {
		return programerror.ErrReadonlyDataModified
	}

	if err := state.OverwriteMetaData(table.Data(), meta); err != nil {
		return err
	}
	if err := table.Realloc(newDataLen, false); err != nil {
		return err
	}

	uninitialized, err := state.AddressesFromIndexMut(table.Data(), oldLen)
	if err != nil {
		return err
	}
	copy(uninitialized, newAddresses)

	required := ctx.Rent.MinimumBalance(newDataLen)
	if required == 0 {
		required = 1
	}
	if required > table.Lamports() {
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
		if err := ctx.System.Transfer(payer, table, required-table.Lamports()); err != nil {
			return err
		}
	}

	return nil
}
