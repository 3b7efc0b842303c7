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

// Lifecycle is the activation status of a table, a pure function of
// (deactivation_slot, current_slot).
type Lifecycle int

const (
	// Activated means deactivation_slot is the sentinel MaxDeactivationSlot.
	Activated Lifecycle = iota
	// Deactivating means the cool-down window is still running.
	Deactivating
	// Deactivated means the cool-down has fully elapsed; the table may be closed.
	Deactivated
)

func (l Lifecycle) String() string {
	switch l {
	case Activated:
		return "activated"
	case Deactivating:
		return "deactivating"
	case Deactivated:
		return "deactivated"
	default:
		return "unknown"
	}
}

// ActivationStatus is the full lifecycle verdict for a table at a given slot.
type ActivationStatus struct {
	Lifecycle Lifecycle
	// RemainingBlocks is only meaningful when Lifecycle == Deactivating.
	RemainingBlocks uint64
}

// IsActive reports whether addresses in the table may still be resolved by
// a transaction loader (true for Activated or Deactivating).
func (s ActivationStatus) IsActive() bool {
	return s.Lifecycle == Activated || s.Lifecycle == Deactivating
}

// Status computes the activation status of a table from its deactivation
// slot and the current slot, per spec.md §4.2:
//
//	deactivation_slot == MAX            -> Activated
//	deactivation_slot == current_slot   -> Deactivating{513}
//	position = current-deactivation < 512 -> Deactivating{512-position}
//	otherwise                           -> Deactivated
//
// The same-slot case intentionally reports 513, not 512: the deactivation
// slot itself counts as a full slot of the cool-down window, on top of the
// 512-slot recent-slot-hashes window a loader might still be consulting.
func Status(deactivationSlot, currentSlot uint64) ActivationStatus {
	if deactivationSlot == MaxDeactivationSlot {
		return ActivationStatus{Lifecycle: Activated}
	}
	if currentSlot == deactivationSlot {
		return ActivationStatus{Lifecycle: Deactivating, RemainingBlocks: params.DeactivationCooldownSlots}
	}
	if currentSlot > deactivationSlot {
		position := currentSlot - deactivationSlot
		if position < params.SlotHashesWindow {
			return ActivationStatus{
				Lifecycle:       Deactivating,
				RemainingBlocks: params.SlotHashesWindow - position,
			}
		}
	}
	return ActivationStatus{Lifecycle: Deactivated}
}

// Status computes m's activation status at currentSlot.
func (m Meta) Status(currentSlot uint64) ActivationStatus {
	return Status(m.DeactivationSlot, currentSlot)
}

// IsActive reports whether m's addresses may still be resolved at currentSlot.
func (m Meta) IsActive(currentSlot uint64) bool {
	return m.Status(currentSlot).IsActive()
}
