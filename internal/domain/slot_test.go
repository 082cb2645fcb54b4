package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSlotID(t *testing.T) {
	t.Parallel()

	valid := []string{"LU-B1", "MA-B2", "ME-B3", "JE-B1", "VE-B3"}
	for _, raw := range valid {
		id, err := ParseSlotID(raw)
		require.NoError(t, err, raw)
		require.Equal(t, raw, id.String())
	}

	invalid := []string{"", "LU", "B1", "LU-B4", "SA-B1", "lu-b1", "LU-B1 ", "LU_B1", "LUB1", "DI-B2"}
	for _, raw := range invalid {
		_, err := ParseSlotID(raw)
		require.ErrorIs(t, err, ErrInvalidSlotID, raw)
	}
}

func TestSlotIDParts(t *testing.T) {
	t.Parallel()

	id := NewSlotID(Wednesday, Block2)
	require.Equal(t, SlotID("ME-B2"), id)
	require.Equal(t, Wednesday, id.Day())
	require.Equal(t, Block2, id.Block())
	require.True(t, id.Valid())

	bad := SlotID("XX-B9")
	require.False(t, bad.Valid())
	require.Equal(t, Weekday(""), bad.Day())
	require.Equal(t, Block(""), bad.Block())
}

func TestAllSlotIDs(t *testing.T) {
	t.Parallel()

	ids := AllSlotIDs()
	require.Len(t, ids, 15)

	// day-then-block order is the stable tie-break of the scorer
	require.Equal(t, SlotID("LU-B1"), ids[0])
	require.Equal(t, SlotID("LU-B3"), ids[2])
	require.Equal(t, SlotID("MA-B1"), ids[3])
	require.Equal(t, SlotID("VE-B3"), ids[14])

	seen := make(map[SlotID]bool, len(ids))
	for _, id := range ids {
		require.True(t, id.Valid())
		require.False(t, seen[id], "duplicate slot id %s", id)
		seen[id] = true
	}
}

func TestBlockOrder(t *testing.T) {
	t.Parallel()

	next, ok := Block1.Next()
	require.True(t, ok)
	require.Equal(t, Block2, next)

	next, ok = Block2.Next()
	require.True(t, ok)
	require.Equal(t, Block3, next)

	_, ok = Block3.Next()
	require.False(t, ok)

	prev, ok := Block3.Prev()
	require.True(t, ok)
	require.Equal(t, Block2, prev)

	_, ok = Block1.Prev()
	require.False(t, ok)

	require.Equal(t, 0, Block1.Index())
	require.Equal(t, 2, Block3.Index())
	require.Equal(t, -1, Block("B9").Index())
}

func TestWeekdayOffset(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Monday.Offset())
	require.Equal(t, 4, Friday.Offset())
	require.Equal(t, -1, Weekday("SA").Offset())

	require.True(t, Thursday.Valid())
	require.False(t, Weekday("DI").Valid())
}

func TestSlotTemplateTotalMinutes(t *testing.T) {
	t.Parallel()

	tpl := SlotTemplate{PickupMinutes: 30, WalkMinutes: 60, ReturnMinutes: 30}
	require.Equal(t, 120, tpl.TotalMinutes())
}
