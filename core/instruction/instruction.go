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

// Package instruction decodes the bincode-compatible wire format for the
// five address lookup table instructions. The decoder is written by hand
// rather than through a reflection-based codec because the extend variant
// must have its vector length inspected and bounds-checked before any
// allocation happens (spec.md §4.3) — the same peek-before-read discipline
// go-ethereum's rlp.Stream applies to list/string headers.
package instruction

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/solana-program/address-lookup-table/params"
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/pubkey"
)

// Tag identifies which of the five instructions a payload encodes. It is
// serialized as a 4-byte little-endian integer (spec.md §3, §6).
type Tag uint32

const (
	TagCreateLookupTable Tag = iota
	TagFreezeLookupTable
	TagExtendLookupTable
	TagDeactivateLookupTable
	TagCloseLookupTable
)

func (t Tag) String() string {
	switch t {
	case TagCreateLookupTable:
		return "CreateLookupTable"
	case TagFreezeLookupTable:
		return "FreezeLookupTable"
	case TagExtendLookupTable:
		return "ExtendLookupTable"
	case TagDeactivateLookupTable:
		return "DeactivateLookupTable"
	case TagCloseLookupTable:
		return "CloseLookupTable"
	default:
		return fmt.Sprintf("Tag(%d)", uint32(t))
	}
}

// CreateLookupTableParams is the payload of a CreateLookupTable instruction.
type CreateLookupTableParams struct {
	RecentSlot uint64
	BumpSeed   uint8
}

// ExtendLookupTableParams is the payload of an ExtendLookupTable instruction.
type ExtendLookupTableParams struct {
	NewAddresses []pubkey.Pubkey
}

// Instruction is a decoded instruction: exactly one of the payload fields is
// meaningful, selected by Tag.
type Instruction struct {
	Tag     Tag
	Create  CreateLookupTableParams
	Extend  ExtendLookupTableParams
}

// Decode parses a raw instruction payload. data must be no longer than
// params.MaxInstructionBytes. For ExtendLookupTable, the 8-byte vector
// length is inspected before any address bytes are read or allocated; a
// length over params.MaxExtendAddresses fails immediately, preventing heap
// exhaustion from an adversarial length prefix.
func Decode(data []byte) (Instruction, error) {
	if len(data) > params.MaxInstructionBytes {
		return Instruction{}, programerror.ErrInvalidInstructionData
	}
	if len(data) < 4 {
		return Instruction{}, programerror.ErrInvalidInstructionData
	}
	r := bytes.NewReader(data)

	var rawTag uint32
	if err := binary.Read(r, binary.LittleEndian, &rawTag); err != nil {
		return Instruction{}, programerror.ErrInvalidInstructionData
	}

	switch Tag(rawTag) {
	case TagCreateLookupTable:
		var p CreateLookupTableParams
		if err := binary.Read(r, binary.LittleEndian, &p.RecentSlot); err != nil {
			return Instruction{}, programerror.ErrInvalidInstructionData
		}
		if err := binary.Read(r, binary.LittleEndian, &p.BumpSeed); err != nil {
			return Instruction{}, programerror.ErrInvalidInstructionData
		}
		return Instruction{Tag: TagCreateLookupTable, Create: p}, nil

	case TagFreezeLookupTable:
		return Instruction{Tag: TagFreezeLookupTable}, nil

	case TagExtendLookupTable:
		var count uint64
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return Instruction{}, programerror.ErrInvalidInstructionData
		}
		// Peek-before-allocate: reject an oversized length prefix before
		// touching the heap.
		if count > params.MaxExtendAddresses {
			return Instruction{}, programerror.ErrInvalidInstructionData
		}
		want := int(count) * params.PubkeyLen
		if r.Len() < want {
			return Instruction{}, programerror.ErrInvalidInstructionData
		}
		addrs := make([]pubkey.Pubkey, count)
		for i := range addrs {
			if _, err := r.Read(addrs[i][:]); err != nil {
				return Instruction{}, programerror.ErrInvalidInstructionData
			}
		}
		return Instruction{Tag: TagExtendLookupTable, Extend: ExtendLookupTableParams{NewAddresses: addrs}}, nil

	case TagDeactivateLookupTable:
		return Instruction{Tag: TagDeactivateLookupTable}, nil

	case TagCloseLookupTable:
		return Instruction{Tag: TagCloseLookupTable}, nil

	default:
		return Instruction{}, programerror.ErrInvalidInstructionData
	}
}
