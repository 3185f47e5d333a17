package tileset

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

const (
	// Property types
	// see doc.mapeditor.org/en/stable/reference/tmx-map-format/#properties
	PropString = "string"
	PropInt    = "int"
	PropBool   = "bool"
)

// Properties is a typed key/value set describing one tile, as consumers
// (Tiled, the catalog) see it.
type Properties struct {
	ints    map[string]int
	strings map[string]string
	bools   map[string]bool
}

// NewProperties returns an empty properties
func NewProperties() *Properties {
	return &Properties{
		ints:    map[string]int{},
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

// EntryProperties returns the properties exported for a manifest entry.
func EntryProperties(e Entry) *Properties {
	p := NewProperties()
	p.SetString("name", e.Name)
	p.SetString("char", string(e.Char))
	p.SetString("family", e.Tile.Family.String())
	p.SetString("layer", string(e.Tile.Family.Layer()))
	for _, tn := range tagNames {
		p.SetBool(tn.name, e.Tags.Has(tn.tag))
	}
	if e.Tags.Has(Animated) {
		p.SetInt("frame", e.Tile.Frame)
		p.SetInt("frames", AnimationFrames)
	}
	return p
}

// toList turns properties into the XML property list, sorted by name so
// output is stable.
func (p *Properties) toList() []*Property {
	ps := []*Property{}
	for k, v := range p.ints {
		ps = append(ps, &Property{Name: k, Value: strconv.Itoa(v), Type: PropInt})
	}
	for k, v := range p.bools {
		ps = append(ps, &Property{Name: k, Value: fmt.Sprintf("%v", v), Type: PropBool})
	}
	for k, v := range p.strings {
		ps = append(ps, &Property{Name: k, Value: v, Type: PropString})
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	return ps
}

// newPropertiesFromList turns an XML []Property back into properties.
func newPropertiesFromList(in []*Property) *Properties {
	ps := NewProperties()
	for _, i := range in {
		switch i.Type {
		case PropInt:
			v, _ := strconv.ParseInt(i.Value, 10, 64)
			ps.SetInt(i.Name, int(v))
		case PropBool:
			ps.SetBool(i.Name, i.Value == "true")
		default:
			ps.SetString(i.Name, i.Value)
		}
	}
	return ps
}

// propBlock is how properties are stored in the catalog
type propBlock struct {
	I map[string]int    `json:"i,omitempty"`
	S map[string]string `json:"s,omitempty"`
	B map[string]bool   `json:"b,omitempty"`
}

func (p *Properties) marshal() (string, error) {
	data, err := json.Marshal(propBlock{I: p.ints, S: p.strings, B: p.bools})
	return string(data), err
}

func unmarshalProperties(data string) (*Properties, error) {
	blk := propBlock{}
	if err := json.Unmarshal([]byte(data), &blk); err != nil {
		return nil, err
	}
	p := NewProperties()
	for k, v := range blk.I {
		p.ints[k] = v
	}
	for k, v := range blk.S {
		p.strings[k] = v
	}
	for k, v := range blk.B {
		p.bools[k] = v
	}
	return p, nil
}

func (p *Properties) String(key string) (string, bool) {
	v, ok := p.strings[key]
	return v, ok
}

func (p *Properties) SetString(key, value string) {
	p.strings[key] = value
	delete(p.ints, key)
	delete(p.bools, key)
}

func (p *Properties) Int(key string) (int, bool) {
	v, ok := p.ints[key]
	return v, ok
}

func (p *Properties) SetInt(key string, value int) {
	p.ints[key] = value
	delete(p.strings, key)
	delete(p.bools, key)
}

func (p *Properties) Bool(key string) (bool, bool) {
	v, ok := p.bools[key]
	return v, ok
}

func (p *Properties) SetBool(key string, value bool) {
	p.bools[key] = value
	delete(p.strings, key)
	delete(p.ints, key)
}
