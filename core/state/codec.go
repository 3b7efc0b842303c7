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

package state

import (
	"encoding/binary"
	"unsafe"

	"github.com/solana-program/address-lookup-table/params"
	"github.com/solana-program/address-lookup-table/programerror"
	"github.com/solana-program/address-lookup-table/pubkey"
)

// AddressLookupTable is the logical (meta, addresses) view of a table
// account's buffer.
type AddressLookupTable struct {
	Meta      Meta
	Addresses []pubkey.Pubkey
}

// Deserialize reads an account buffer into its meta and a borrowed address
// slice, per spec.md §4.1(a). The address slice aliases buf[params.MetaSize:]
// without copying.
func Deserialize(buf []byte) (AddressLookupTable, error) {
	meta, err := decodeMeta(buf)
	if err != nil {
		return AddressLookupTable{}, err
	}
	addrBytes := buf[params.MetaSize:]
	if len(addrBytes)%params.PubkeyLen != 0 {
		return AddressLookupTable{}, programerror.ErrInvalidAccountData
	}
	return AddressLookupTable{
		Meta:      meta,
		Addresses: bytesToPubkeys(addrBytes),
	}, nil
}

// decodeMeta decodes the tag + fixed-size meta region at buf[0:params.MetaSize].
func decodeMeta(buf []byte) (Meta, error) {
	if len(buf) < params.MetaSize {
		return Meta{}, programerror.ErrInvalidAccountData
	}
	tag := params.StateTag(binary.LittleEndian.Uint32(buf[0:4]))
	switch tag {
	case params.StateUninitialized:
		return Meta{}, programerror.ErrUninitializedAccount
	case params.StateLookupTable:
		// fall through
	default:
		return Meta{}, programerror.ErrInvalidAccountData
	}

	var m Meta
	m.DeactivationSlot = binary.LittleEndian.Uint64(buf[4:12])
	m.LastExtendedSlot = binary.LittleEndian.Uint64(buf[12:20])
	m.LastExtendedSlotStartIndex = buf[20]
	switch buf[21] {
	case 0:
		m.Authority = nil
	case 1:
		var a pubkey.Pubkey
		copy(a[:], buf[22:22+params.PubkeyLen])
		m.Authority = &a
	default:
		return Meta{}, programerror.ErrInvalidAccountData
	}
	return m, nil
}

// OverwriteMetaData zero-fills buf[0:params.MetaSize] and serializes meta
// into it, per spec.md §4.1(b). It never touches bytes beyond the meta
// region.
func OverwriteMetaData(buf []byte, meta Meta) error {
	if len(buf) < params.MetaSize {
		return programerror.ErrInvalidAccountData
	}
	region := buf[0:params.MetaSize]
	for i := range region {
		region[i] = 0
	}
	encodeMeta(region, meta)
	return nil
}

// SerializeNewLookupTable writes a freshly initialized meta (deactivation
// slot at the sentinel, authority present, all other fields zero) into an
// uninitialized buffer, per spec.md §4.1(c).
func SerializeNewLookupTable(buf []byte, authority pubkey.Pubkey) error {
	if len(buf) < params.MetaSize {
		return programerror.ErrAccountDataTooSmall
	}
	encodeMeta(buf[0:params.MetaSize], NewMeta(authority))
	return nil
}

// encodeMeta writes the tag + meta fields into region, which must be exactly
// params.MetaSize bytes and is assumed already zeroed for the padding tail.
func encodeMeta(region []byte, meta Meta) {
	binary.LittleEndian.PutUint32(region[0:4], uint32(params.StateLookupTable))
	binary.LittleEndian.PutUint64(region[4:12], meta.DeactivationSlot)
	binary.LittleEndian.PutUint64(region[12:20], meta.LastExtendedSlot)
	region[20] = meta.LastExtendedSlotStartIndex
	if meta.Authority != nil {
		region[21] = 1
		copy(region[22:22+params.PubkeyLen], meta.Authority[:])
	} else {
		region[21] = 0
	}
	// region[54:56] stays zero: explicit padding.
}

// AddressesFromIndexMut returns a mutable view of the address region
// starting at byte offset params.MetaSize + params.PubkeyLen*index. Writes
// through the returned slice are writes through to buf. Per spec.md §4.1(d):
// fails InvalidArgument if that offset is >= len(buf) (including index==0 on
// a bare 56-byte buffer), ArithmeticOverflow on overflow, InvalidAccountData
// on misalignment.
func AddressesFromIndexMut(buf []byte, index int) ([]pubkey.Pubkey, error) {
	if index < 0 {
		return nil, programerror.ErrInvalidArgument
	}
	offset64 := uint64(params.MetaSize) + uint64(index)*uint64(params.PubkeyLen)
	if offset64 > uint64(^uint(0)>>1) {
		return nil, programerror.ErrArithmeticOverflow
	}
	offset := int(offset64)
	if offset >= len(buf) {
		return nil, programerror.ErrInvalidArgument
	}
	region := buf[offset:]
	if len(region)%params.PubkeyLen != 0 {
		return nil, programerror.ErrInvalidAccountData
	}
	return bytesToPubkeys(region), nil
}

// bytesToPubkeys reinterprets b (whose length must already be a multiple of
// params.PubkeyLen) as a slice of Pubkey sharing the same backing array, so
// writes to the result are writes through to b. Pubkey is a plain byte
// array with alignment 1, so this reinterpretation is always valid; no
// allocation or copy occurs.
func bytesToPubkeys(b []byte) []pubkey.Pubkey {
	if len(b) == 0 {
		return nil
	}
	n := len(b) / params.PubkeyLen
	return unsafe.Slice((*pubkey.Pubkey)(unsafe.Pointer(&b[0])), n)
}
