package tileset

import (
	"fmt"
	"time"
)

// Family is a kind of tile with its own painter.
type Family int

const (
	Floor Family = iota
	Grass
	Stone
	Wood
	Wall
	Door
	Chest
	Spike
	Water
	Lava
	Portal
)

var familyNames = map[Family]string{
	Floor:  "floor",
	Grass:  "grass",
	Stone:  "stone",
	Wood:   "wood",
	Wall:   "wall",
	Door:   "door",
	Chest:  "chest",
	Spike:  "spike",
	Water:  "water",
	Lava:   "lava",
	Portal: "portal",
}

func (f Family) String() string {
	name, ok := familyNames[f]
	if !ok {
		return fmt.Sprintf("family(%d)", int(f))
	}
	return name
}

// Animated returns if the family is baked as AnimationFrames frames.
func (f Family) Animated() bool {
	switch f {
	case Water, Lava, Portal:
		return true
	}
	return false
}

// FrameDuration is how long the consumer should show each frame.
// Zero for static families.
func (f Family) FrameDuration() time.Duration {
	switch f {
	case Water:
		return 500 * time.Millisecond
	case Lava:
		return 300 * time.Millisecond
	case Portal:
		return 200 * time.Millisecond
	}
	return 0
}

// Layer is the render layer the consumer places a tile on.
type Layer string

const (
	LayerBackground Layer = "background"
	LayerCollision  Layer = "collision"
	LayerDecoration Layer = "decoration"
)

// Layer the family belongs on.
func (f Family) Layer() Layer {
	switch f {
	case Wall, Door:
		return LayerCollision
	case Chest, Spike, Portal:
		return LayerDecoration
	}
	return LayerBackground
}

// Tile is what to paint into a slot: a family plus (for animated families)
// which frame.
type Tile struct {
	Family Family
	Frame  int
}

// normalFrame wraps the frame into [0, AnimationFrames).
func (t Tile) normalFrame() int {
	f := t.Frame % AnimationFrames
	if f < 0 {
		f += AnimationFrames
	}
	return f
}
