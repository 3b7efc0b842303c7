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

import "github.com/solana-program/address-lookup-table/params"

// Serialize produces a full account buffer for alt: the tagged meta region
// followed by its addresses, back to back. It is the inverse of Deserialize
// and is used by callers (tests, and any harness constructing fixtures) that
// need a ready-made buffer rather than an empty one to initialize in place.
func Serialize(alt AddressLookupTable) []byte {
	buf := make([]byte, params.MetaSize+len(alt.Addresses)*params.PubkeyLen)
	encodeMeta(buf[0:params.MetaSize], alt.Meta)
	for i, addr := range alt.Addresses {
		copy(buf[params.MetaSize+i*params.PubkeyLen:], addr[:])
	}
	return buf
}
