package tileset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 20, m.Len())

	door, ok := m.At(33)
	require.True(t, ok)
	assert.Equal(t, "Door", door.Name)
	assert.Equal(t, 'D', door.Char)
	assert.True(t, door.Tags.Has(Walkable|Interactive))
	assert.False(t, door.Tags.Has(Solid))

	lava, ok := m.At(51)
	require.True(t, ok)
	assert.Equal(t, "Lava_f2", lava.Name)
	assert.Equal(t, Tile{Family: Lava, Frame: 2}, lava.Tile)
	assert.Equal(t, "Animated, damages (frame 2 of 4)", lava.Properties)
	assert.True(t, lava.Tags.Has(Animated|Damaging))
}

func TestDefaultManifestGaps(t *testing.T) {
	m, err := DefaultManifest(DefaultConfig())
	require.NoError(t, err)

	populated := map[int]bool{}
	for _, i := range []int{1, 2, 3, 4, 17, 33, 37, 41} {
		populated[i] = true
	}
	for i := 45; i <= 56; i++ {
		populated[i] = true
	}

	for i := 0; i < 256; i++ {
		_, ok := m.At(i)
		assert.Equal(t, populated[i], ok, "index %d", i)
	}
}

func TestNewManifestConflict(t *testing.T) {
	_, err := NewManifest(DefaultConfig(), []Entry{
		Static(1, "Floor", '.', Walkable, "Walkable", Floor),
		Static(1, "Grass", 'g', Walkable, "Walkable", Grass),
	})

	var conflict *ManifestConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 1, conflict.Index)
	assert.Equal(t, "Floor", conflict.First)
	assert.Equal(t, "Grass", conflict.Second)
}

func TestNewManifestOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 256, 1000} {
		_, err := NewManifest(DefaultConfig(), []Entry{
			Static(idx, "Floor", '.', Walkable, "Walkable", Floor),
		})

		var oor *OutOfRangeIndexError
		require.True(t, errors.As(err, &oor), "index %d", idx)
		assert.Equal(t, idx, oor.Index)
		assert.Equal(t, 256, oor.Limit)
	}
}

func TestManifestIsImmutable(t *testing.T) {
	entries := DefaultEntries()
	m, err := NewManifest(DefaultConfig(), entries)
	require.NoError(t, err)

	entries[0].Name = "changed"
	got := m.Entries()
	got[1].Name = "changed"

	first, _ := m.At(1)
	second, _ := m.At(2)
	assert.Equal(t, "Floor", first.Name)
	assert.Equal(t, "Grass", second.Name)
}

func TestAnimations(t *testing.T) {
	m, err := DefaultManifest(DefaultConfig())
	require.NoError(t, err)

	anims := m.Animations()

	assert.Equal(t, map[int][]int{
		45: {45, 46, 47, 48},
		49: {49, 50, 51, 52},
		53: {53, 54, 55, 56},
	}, anims)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "walkable|interactive", (Walkable | Interactive).String())
	assert.Equal(t, "", Tag(0).String())
}

func TestAnimationsSeparateRuns(t *testing.T) {
	entries := AnimatedEntries(45, "Water", '~', 0, "Animated", Water)
	entries = append(entries, Static(60, "Floor", '.', Walkable, "Walkable", Floor))
	entries = append(entries, AnimatedEntries(100, "Water", '~', 0, "Animated", Water)...)

	m, err := NewManifest(DefaultConfig(), entries)
	require.NoError(t, err)

	assert.Equal(t, map[int][]int{
		45:  {45, 46, 47, 48},
		100: {100, 101, 102, 103},
	}, m.Animations())
}

func TestAnimationsBackToBackRuns(t *testing.T) {
	entries := AnimatedEntries(45, "Water", '~', 0, "Animated", Water)
	entries = append(entries, AnimatedEntries(49, "Water", '~', 0, "Animated", Water)...)

	m, err := NewManifest(DefaultConfig(), entries)
	require.NoError(t, err)

	assert.Equal(t, map[int][]int{
		45: {45, 46, 47, 48},
		49: {49, 50, 51, 52},
	}, m.Animations())
}
