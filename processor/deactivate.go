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
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/runtime"
)

// DeactivateLookupTable implements spec.md §4.7. Accounts: [writable] table,
// [signer] authority.
func DeactivateLookupTable(ctx runtime.Context, accounts []runtime.AccountInfo) error {
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
		log.Debug("Lookup table is already deactivated")
		return programerror.ErrInvalidArgument
	}

	meta := alt.Meta
	meta.DeactivationSlot = ctx.Clock.Slot()
	return state.OverwriteMetaData(table.Data(), meta)
}
