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

// Package processor implements the five address lookup table instruction
// handlers and the top-level dispatch between them, the way go-ethereum's
// core/vm dispatches EVM opcodes to individual execution functions through a
// lookup keyed by the decoded instruction.
package processor

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/solana-program/address-lookup-table/core/instruction"
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/runtime"
)

// Process decodes input and dispatches it to the matching handler. accounts
// must be ordered exactly as each handler's doc comment describes; handlers
// read only as many accounts as they need and ignore any remainder.
func Process(ctx runtime.Context, accounts []runtime.AccountInfo, input []byte) error {
	ix, err := instruction.Decode(input)
	if err != nil {
		return err
	}

	switch ix.Tag {
	case instruction.TagCreateLookupTable:
		log.Debug("Instruction: CreateLookupTable")
		return CreateLookupTable(ctx, accounts, ix.Create.RecentSlot, ix.Create.BumpSeed)
	case instruction.TagFreezeLookupTable:
		log.Debug("Instruction: FreezeLookupTable")
		return FreezeLookupTable(ctx, accounts)
	case instruction.TagExtendLookupTable:
		log.Debug("Instruction: ExtendLookupTable")
		return ExtendLookupTable(ctx, accounts, ix.Extend.NewAddresses)
	case instruction.TagDeactivateLookupTable:
		log.Debug("Instruction: DeactivateLookupTable")
		return DeactivateLookupTable(ctx, accounts)
	case instruction.TagCloseLookupTable:
		log.Debug("Instruction: CloseLookupTable")
		return CloseLookupTable(ctx, accounts)
	default:
		return programerror.ErrInvalidInstructionData
	}
}

// nextAccount returns accounts[i], failing with NotEnoughAccountKeys if the
// slice is too short, mirroring the role of Solana's next_account_info.
func nextAccount(accounts []runtime.AccountInfo, i int) (runtime.AccountInfo, error) {
	if i >= len(accounts) {
		return nil, programerror.ErrNotEnoughAccountKeys
	}
	return accounts[i], nil
}
