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

package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solana-program/address-lookup-table/core/instruction"
	"github.com/solana-program/address-lookup-table/core/instruction/builder"
	"github.com/solana-program/address-lookup-table/params"
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/pubkey"
)

func TestDecodeCreateLookupTable(t *testing.T) {
	payload := builder.CreateLookupTable(12345, 254)
	ix, err := instruction.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, instruction.TagCreateLookupTable, ix.Tag)
	require.EqualValues(t, 12345, ix.Create.RecentSlot)
	require.EqualValues(t, 254, ix.Create.BumpSeed)
}

func TestDecodeTagOnlyVariants(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		wantTag instruction.Tag
	}{
		{"freeze", builder.FreezeLookupTable(), instruction.TagFreezeLookupTable},
		{"deactivate", builder.DeactivateLookupTable(), instruction.TagDeactivateLookupTable},
		{"close", builder.CloseLookupTable(), instruction.TagCloseLookupTable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix, err := instruction.Decode(tc.payload)
			require.NoError(t, err)
			require.Equal(t, tc.wantTag, ix.Tag)
		})
	}
}

func TestDecodeExtendLookupTable(t *testing.T) {
	addrs := []pubkey.Pubkey{{1}, {2}, {3}}
	ix, err := instruction.Decode(builder.ExtendLookupTable(addrs))
	require.NoError(t, err)
	require.Equal(t, instruction.TagExtendLookupTable, ix.Tag)
	require.Equal(t, addrs, ix.Extend.NewAddresses)
}

func TestDecodeExtendRejectsOversizeLengthBeforeAllocating(t *testing.T) {
	// The length prefix claims far more addresses than params.MaxExtendAddresses
	// allows, and the trailing bytes don't even back that many — if Decode
	// allocated based on the untrusted length first, this would panic or OOM
	// instead of returning a clean error.
	payload := builder.ExtendLookupTableWithRawLength(1<<32, []byte{1, 2, 3})
	_, err := instruction.Decode(payload)
	require.ErrorIs(t, err, programerror.ErrInvalidInstructionData)
}

func TestDecodeExtendRejectsLengthLongerThanRemainingData(t *testing.T) {
	payload := builder.ExtendLookupTableWithRawLength(2, make([]byte, params.PubkeyLen))
	_, err := instruction.Decode(payload)
	require.ErrorIs(t, err, programerror.ErrInvalidInstructionData)
}

func TestDecodeRejectsOversizeInstruction(t *testing.T) {
	_, err := instruction.Decode(make([]byte, params.MaxInstructionBytes+1))
	require.ErrorIs(t, err, programerror.ErrInvalidInstructionData)
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	_, err := instruction.Decode([]byte{0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, programerror.ErrInvalidInstructionData)
}
