/* this file holds a minimal set of structs for writing (& reading back) Tiled
.tsx tilesets that describe our atlas.

We only need the parts of the format a level editor needs to interpret the
atlas: one image, per tile properties & tile animations.
*/
package tileset

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
)

// Tileset is a TSX file structure describing the whole atlas.
type Tileset struct {
	XMLName    xml.Name       `xml:"tileset"`
	Name       string         `xml:"name,attr"`
	TileWidth  int            `xml:"tilewidth,attr"`  // in pixels
	TileHeight int            `xml:"tileheight,attr"` // in pixels
	TileCount  int            `xml:"tilecount,attr"`
	Columns    int            `xml:"columns,attr"`
	Image      *Image         `xml:"image"`
	Tiles      []*TilesetTile `xml:"tile"`
}

// Property is a TSX file structure which holds a Tiled property.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Type  string `xml:"type,attr"` // string (default), int, bool
}

// Image is the atlas image the tileset slices
type Image struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

// TilesetTile is a TSX tile; only populated slots are written
type TilesetTile struct {
	ID         int         `xml:"id,attr"`
	Type       string      `xml:"type,attr,omitempty"`
	Properties []*Property `xml:"properties>property"`
	Animation  []*Frame    `xml:"animation>frame"`
}

// Frame of a tile animation
type Frame struct {
	TileID   int `xml:"tileid,attr"`
	Duration int `xml:"duration,attr"` // in milliseconds
}

// NewTileset describes the atlas built from `m`, where `source` is the path
// of the atlas image relative to the .tsx file.
func NewTileset(name, source string, cfg *Config, m *Manifest) *Tileset {
	ts := &Tileset{
		Name:       name,
		TileWidth:  cfg.TileSize,
		TileHeight: cfg.TileSize,
		TileCount:  cfg.Tiles(),
		Columns:    cfg.GridWidth,
		Image:      &Image{Source: source, Width: cfg.Width(), Height: cfg.Height()},
		Tiles:      []*TilesetTile{},
	}

	anims := m.Animations()
	for _, e := range m.entries {
		t := &TilesetTile{
			ID:         e.Index,
			Type:       e.Tile.Family.String(),
			Properties: EntryProperties(e).toList(),
		}

		frames, ok := anims[e.Index]
		if ok {
			ms := int(e.Tile.Family.FrameDuration().Milliseconds())
			for _, id := range frames {
				t.Animation = append(t.Animation, &Frame{TileID: id, Duration: ms})
			}
		}

		ts.Tiles = append(ts.Tiles, t)
	}

	// tiled expects tiles in id order
	sort.SliceStable(ts.Tiles, func(i, j int) bool { return ts.Tiles[i].ID < ts.Tiles[j].ID })

	return ts
}

// Properties of the tile with the given id, or nil if it isn't described.
func (t *Tileset) Properties(id int) *Properties {
	for _, tile := range t.Tiles {
		if tile.ID == id {
			return newPropertiesFromList(tile.Properties)
		}
	}
	return nil
}

// Encode the tileset as XML
func (t *Tileset) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(t); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DecodeTileset reads a .tsx tileset
func DecodeTileset(r io.Reader) (*Tileset, error) {
	t := &Tileset{}
	if err := xml.NewDecoder(r).Decode(t); err != nil {
		return nil, err
	}
	if t.Image == nil {
		return nil, fmt.Errorf("tileset %s has no image", t.Name)
	}
	return t, nil
}

// TSXExporter writes a .tsx tileset describing the atlas.
type TSXExporter struct {
	W io.Writer

	Config *Config

	// Name of the tileset
	Name string

	// Image is the atlas path as the .tsx should reference it
	Image string
}

// Export implements Exporter
func (e *TSXExporter) Export(m *Manifest) error {
	return NewTileset(e.Name, e.Image, e.Config, m).Encode(e.W)
}

// WriteTSX writes the tileset for `m` to fname
func WriteTSX(fname, name, image string, cfg *Config, m *Manifest) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	err = (&TSXExporter{W: f, Config: cfg, Name: name, Image: image}).Export(m)
	if err != nil {
		return err
	}
	return f.Close()
}
