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

// Package programerror defines the stable numeric error taxonomy returned by
// the address lookup table program, in the spirit of go-ethereum's rpc.Error
// pair (error plus an ErrorCode() method) so callers that switch on a code
// keep working across refactors.
package programerror

// Error is implemented by every error this program returns. Code is stable
// across releases; spec.md §6/§7 call out which values are load-bearing for
// off-chain tooling (0..2 and 10, 11).
type Error interface {
	error
	Code() uint32
}

type codedError struct {
	code uint32
	msg  string
}

func (e *codedError) Error() string { return e.msg }
func (e *codedError) Code() uint32  { return e.code }

func newError(code uint32, msg string) *codedError {
	return &codedError{code: code, msg: msg}
}

// Stable, bit-exact-compatibility codes (spec.md §6, §7).
const (
	CodeReadonlyDataModified    uint32 = 10
	CodeReadonlyLamportsChanged uint32 = 11
)

// The host error taxonomy (spec.md §6). Numbering beyond the two custom
// codes above is local to this program; nothing outside it inspects these
// particular values, only their identity via errors.Is.
var (
	ErrInvalidArgument          = newError(100, "invalid argument")
	ErrInvalidInstructionData   = newError(101, "invalid instruction data")
	ErrInvalidAccountOwner      = newError(102, "invalid account owner")
	ErrMissingRequiredSignature = newError(103, "missing required signature")
	ErrImmutable                = newError(104, "account is immutable")
	ErrIncorrectAuthority       = newError(105, "incorrect authority")
	ErrInvalidAccountData       = newError(106, "invalid account data")
	ErrAccountDataTooSmall      = newError(107, "account data too small")
	ErrUninitializedAccount     = newError(108, "uninitialized account")
	ErrArithmeticOverflow       = newError(109, "arithmetic overflow")
	ErrNotEnoughAccountKeys     = newError(110, "not enough account keys")
	ErrReadonlyDataModified     = newError(CodeReadonlyDataModified, "instruction modified data of a read-only account")
	ErrReadonlyLamportsChanged  = newError(CodeReadonlyLamportsChanged, "instruction changed the lamports of a read-only account")
)
