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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solana-program/address-lookup-table/pubkey"
)

func pubkeyForTest(b byte) pubkey.Pubkey {
	var k pubkey.Pubkey
	k[0] = b
	return k
}

func TestStatusActivated(t *testing.T) {
	s := Status(MaxDeactivationSlot, 100)
	require.Equal(t, Activated, s.Lifecycle)
	require.True(t, s.IsActive())
}

func TestStatusSameSlotDeactivation(t *testing.T) {
	s := Status(100, 100)
	require.Equal(t, Deactivating, s.Lifecycle)
	require.EqualValues(t, 513, s.RemainingBlocks)
	require.True(t, s.IsActive())
}

func TestStatusCooldownProgression(t *testing.T) {
	cases := []struct {
		name          string
		currentSlot   uint64
		wantLifecycle Lifecycle
		wantRemaining uint64
	}{
		{"one slot elapsed", 101, Deactivating, 511},
		{"forty slots elapsed", 140, Deactivating, 472},
		{"at the edge of the window", 611, Deactivating, 1},
		{"window fully elapsed", 612, Deactivated},
		{"well past the window", 1000, Deactivated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Status(100, tc.currentSlot)
			require.Equal(t, tc.wantLifecycle, s.Lifecycle)
			if tc.wantLifecycle == Deactivating {
				require.EqualValues(t, tc.wantRemaining, s.RemainingBlocks)
			}
		})
	}
}

func TestMetaIsActiveWrapsStatus(t *testing.T) {
	m := NewMeta(pubkeyForTest(1))
	require.True(t, m.IsActive(0))

	m.DeactivationSlot = 50
	require.True(t, m.IsActive(50))
	require.False(t, m.IsActive(613))
}
