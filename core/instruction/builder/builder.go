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

// Package builder assembles well-formed instruction wire payloads for
// tests. It is explicitly out of scope as a general client library
// (spec.md §1 excludes "an instruction-builder client library" and
// "generated per-instruction builders") — this package exists only to give
// the test suite a readable way to construct fixtures, using the same
// bincode-style codec (github.com/gagliardetto/binary) the rest of the
// Solana Go ecosystem in the retrieved pack standardizes on for wire data.
package builder

import (
	"bytes"
	"encoding/binary"

	bin "github.com/gagliardetto/binary"

	"github.com/solana-program/address-lookup-table/core/instruction"
	"github.com/solana-program/address-lookup-table/pubkey"
)

// CreateLookupTable encodes a CreateLookupTable instruction payload.
func CreateLookupTable(recentSlot uint64, bumpSeed uint8) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteUint32(uint32(instruction.TagCreateLookupTable), binary.LittleEndian)
	_ = enc.WriteUint64(recentSlot, binary.LittleEndian)
	_ = enc.WriteUint8(bumpSeed)
	return buf.Bytes()
}

// FreezeLookupTable encodes a FreezeLookupTable instruction payload.
func FreezeLookupTable() []byte {
	return tagOnly(instruction.TagFreezeLookupTable)
}

// DeactivateLookupTable encodes a DeactivateLookupTable instruction payload.
func DeactivateLookupTable() []byte {
	return tagOnly(instruction.TagDeactivateLookupTable)
}

// CloseLookupTable encodes a CloseLookupTable instruction payload.
func CloseLookupTable() []byte {
	return tagOnly(instruction.TagCloseLookupTable)
}

// ExtendLookupTable encodes an ExtendLookupTable instruction payload
// carrying newAddresses.
func ExtendLookupTable(newAddresses []pubkey.Pubkey) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteUint32(uint32(instruction.TagExtendLookupTable), binary.LittleEndian)
	_ = enc.WriteUint64(uint64(len(newAddresses)), binary.LittleEndian)
	for _, addr := range newAddresses {
		_ = enc.WriteBytes(addr[:], false)
	}
	return buf.Bytes()
}

// ExtendLookupTableWithRawLength encodes an ExtendLookupTable payload with
// an attacker-controlled length prefix that does not match len(addressBytes)
// — used by decoder tests exercising the peek-before-allocate guard.
func ExtendLookupTableWithRawLength(length uint64, addressBytes []byte) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteUint32(uint32(instruction.TagExtendLookupTable), binary.LittleEndian)
	_ = enc.WriteUint64(length, binary.LittleEndian)
	_ = enc.WriteBytes(addressBytes, false)
	return buf.Bytes()
}

func tagOnly(tag instruction.Tag) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteUint32(uint32(tag), binary.LittleEndian)
	return buf.Bytes()
}
