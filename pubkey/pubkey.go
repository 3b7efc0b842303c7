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

// Package pubkey implements the 32-byte address type used throughout the
// address lookup table program, and the program-derived-address (PDA)
// derivation scheme used to compute a table's own address.
package pubkey

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Len is the size in bytes of a Pubkey.
const Len = 32

// MaxSeeds is the maximum number of seed slices accepted by CreateProgramAddress.
const MaxSeeds = 16

// MaxSeedLen is the maximum length in bytes of a single seed.
const MaxSeedLen = 32

// pdaMarker is appended to the hash preimage so a derived address can never
// collide with an address produced by any other hashing scheme.
var pdaMarker = []byte("ProgramDerivedAddress")

// Pubkey is a 32-byte Solana-style address.
type Pubkey [Len]byte

// Zero is the all-zero Pubkey.
var Zero = Pubkey{}

// Bytes returns the raw bytes of k.
func (k Pubkey) Bytes() []byte { return k[:] }

// String returns the base58 encoding of k, the conventional Solana address form.
func (k Pubkey) String() string {
	return base58.Encode(k[:])
}

// MarshalText implements encoding.TextMarshaler using the base58 form.
func (k Pubkey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the base58 form.
func (k *Pubkey) UnmarshalText(text []byte) error {
	decoded, err := base58.Decode(string(text))
	if err != nil {
		return err
	}
	if len(decoded) != Len {
		return errors.New("pubkey: invalid base58 length")
	}
	copy(k[:], decoded)
	return nil
}

// FromString parses a base58-encoded address.
func FromString(s string) (Pubkey, error) {
	var k Pubkey
	err := k.UnmarshalText([]byte(s))
	return k, err
}

// Errors returned by address derivation, numbered to match the stable codes
// in spec.md §6 ("0..=2 map the three pubkey-derivation failure modes").
var (
	ErrMaxSeedLengthExceeded = &derivationError{code: 0, msg: "pubkey: seed or total seed length exceeded"}
	ErrInvalidSeeds          = &derivationError{code: 1, msg: "pubkey: invalid seeds, address must fall off the curve"}
	ErrIllegalOwner          = &derivationError{code: 2, msg: "pubkey: illegal owner"}
)

type derivationError struct {
	code uint32
	msg  string
}

func (e *derivationError) Error() string { return e.msg }

// Code returns the stable numeric code for this derivation failure.
func (e *derivationError) Code() uint32 { return e.code }

// CreateProgramAddress derives a program address from a fixed set of seeds,
// the program id, and a final marker so the result is indistinguishable from
// random and (crucially) is checked to fall off the ed25519 curve: if the
// derived point is a valid curve point, it is rejected, because that would
// mean a private key could exist for it.
func CreateProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, error) {
	if len(seeds) > MaxSeeds {
		return Pubkey{}, ErrMaxSeedLengthExceeded
	}
	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return Pubkey{}, ErrMaxSeedLengthExceeded
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write(pdaMarker)
	sum := h.Sum(nil)

	if isOnCurve(sum) {
		return Pubkey{}, ErrInvalidSeeds
	}
	var out Pubkey
	copy(out[:], sum)
	return out, nil
}

// isOnCurve reports whether b, interpreted as a compressed edwards25519
// point, decodes to a valid curve point. PDAs are only valid when this is
// false.
func isOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// FindProgramAddress appends a bump seed (starting at 255, counting down) to seeds until CreateProgramAddress succeeds, returning the
// address and the bump that produced it. This mirrors the client-side search
// a caller performs before submitting CreateLookupTable; the program itself
// only ever calls CreateProgramAddress with the already-known bump (see
// processor.CreateLookupTable).
func FindProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		candidate := append(append([][]byte{}, seeds...), []byte{byte(bump)})
		addr, err := CreateProgramAddress(candidate, programID)
		if err == nil {
			return addr, uint8(bump), nil
		}
	}
	return Pubkey{}, 0, ErrInvalidSeeds
}

// RecentSlotSeed encodes a slot number as the little-endian 8-byte seed used
// to derive a lookup table's address (spec.md §3, Creation).
func RecentSlotSeed(slot uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, slot)
	return buf
}
