package tileset

import (
	"fmt"
	"strings"
)

// Tag is a semantic property of a tile.
type Tag uint8

const (
	Walkable Tag = 1 << iota
	Solid
	Interactive
	Damaging
	Animated
)

var tagNames = []struct {
	tag  Tag
	name string
}{
	{Walkable, "walkable"},
	{Solid, "solid"},
	{Interactive, "interactive"},
	{Damaging, "damaging"},
	{Animated, "animated"},
}

// Has returns if all of `o` are set.
func (t Tag) Has(o Tag) bool {
	return t&o == o
}

func (t Tag) String() string {
	names := []string{}
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			names = append(names, tn.name)
		}
	}
	return strings.Join(names, "|")
}

// Entry is one populated slot of the atlas.
type Entry struct {
	Index int
	Name  string
	Char  rune

	Tags Tag

	// Properties is the human readable description written to the mapping
	// table, eg. "Walkable, Interactive".
	Properties string

	Tile Tile
}

// Manifest is the ordered, validated table of entries. It's immutable once
// built.
type Manifest struct {
	entries []Entry
	byIndex map[int]int
}

// NewManifest validates `entries` against the grid in cfg.
// Every index must be unique & inside the grid.
func NewManifest(cfg *Config, entries []Entry) (*Manifest, error) {
	m := &Manifest{
		entries: make([]Entry, len(entries)),
		byIndex: map[int]int{},
	}
	copy(m.entries, entries)

	for i, e := range m.entries {
		if !cfg.InRange(e.Index) {
			return nil, &OutOfRangeIndexError{Index: e.Index, Name: e.Name, Limit: cfg.Tiles()}
		}
		if j, ok := m.byIndex[e.Index]; ok {
			return nil, &ManifestConflictError{Index: e.Index, First: m.entries[j].Name, Second: e.Name}
		}
		m.byIndex[e.Index] = i
	}

	return m, nil
}

// DefaultManifest returns the standard tileset manifest.
func DefaultManifest(cfg *Config) (*Manifest, error) {
	return NewManifest(cfg, DefaultEntries())
}

// Entries in manifest order. The slice is a copy.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len is the number of populated slots.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// At returns the entry at `index` (if any).
func (m *Manifest) At(index int) (Entry, bool) {
	i, ok := m.byIndex[index]
	if !ok {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Animations maps the index of each animation's first frame to the indices
// of all its frames, in frame order. An animation is a run of consecutive
// entries of one family & char starting at frame 0, each the next frame.
func (m *Manifest) Animations() map[int][]int {
	result := map[int][]int{}

	var run []int
	var prev Entry
	for _, e := range m.entries {
		if !e.Tags.Has(Animated) {
			run = nil
			continue
		}
		if run != nil && e.Tile.Family == prev.Tile.Family && e.Char == prev.Char && e.Tile.Frame == prev.Tile.Frame+1 {
			run = append(run, e.Index)
			result[run[0]] = run
		} else if e.Tile.Frame == 0 {
			run = []int{e.Index}
			result[e.Index] = run
		} else {
			run = nil
		}
		prev = e
	}

	return result
}

// Static returns a single-frame entry.
func Static(index int, name string, char rune, tags Tag, props string, f Family) Entry {
	return Entry{Index: index, Name: name, Char: char, Tags: tags, Properties: props, Tile: Tile{Family: f}}
}

// AnimatedEntries returns AnimationFrames consecutive entries starting at
// `base`, one per frame, named <name>_f<frame>.
// `props` is prefixed to the frame description, eg "Animated, damages".
func AnimatedEntries(base int, name string, char rune, tags Tag, props string, f Family) []Entry {
	out := make([]Entry, AnimationFrames)
	for k := 0; k < AnimationFrames; k++ {
		out[k] = Entry{
			Index:      base + k,
			Name:       fmt.Sprintf("%s_f%d", name, k),
			Char:       char,
			Tags:       tags | Animated,
			Properties: fmt.Sprintf("%s (frame %d of %d)", props, k, AnimationFrames),
			Tile:       Tile{Family: f, Frame: k},
		}
	}
	return out
}

// DefaultEntries is the standard tileset layout.
// Index 0 & every slot not listed here are left transparent (unused).
func DefaultEntries() []Entry {
	entries := []Entry{
		Static(1, "Floor", '.', Walkable, "Walkable", Floor),
		Static(2, "Grass", 'g', Walkable, "Walkable", Grass),
		Static(3, "Stone", 's', Walkable, "Walkable", Stone),
		Static(4, "Wood", 'w', Walkable, "Walkable", Wood),
		Static(17, "Wall", '#', Solid, "Solid collision", Wall),
		Static(33, "Door", 'D', Walkable|Interactive, "Walkable, Interactive", Door),
		Static(37, "Chest", 'C', Solid|Interactive, "Not walkable, Interactive", Chest),
		Static(41, "Spike", '^', Walkable|Damaging, "Walkable but damages", Spike),
	}
	entries = append(entries, AnimatedEntries(45, "Water", '~', 0, "Animated", Water)...)
	entries = append(entries, AnimatedEntries(49, "Lava", 'L', Damaging, "Animated, damages", Lava)...)
	entries = append(entries, AnimatedEntries(53, "Portal", 'P', Walkable|Interactive, "Animated, Interactive", Portal)...)
	return entries
}
