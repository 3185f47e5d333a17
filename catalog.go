package tileset

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlInsertTile  = `INSERT INTO tiles (idx, ord, name, char, family, frame, layer, description) VALUES (:idx, :ord, :name, :char, :family, :frame, :layer, :description)`
	sqlInsertProps = `INSERT INTO properties (idx, data) VALUES (:idx, :data)`
)

// Catalog is a sqlite database holding the manifest, for tooling that would
// rather query than parse a CSV.
type Catalog struct {
	filename string
	db       *sqlx.DB
}

// OpenCatalog given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenCatalog(fname string) (*Catalog, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	c := &Catalog{db: db, filename: fname}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// Filename returns the path to the catalog on disk
func (c *Catalog) Filename() string {
	return c.filename
}

// Close the underlying database
func (c *Catalog) Close() error {
	return c.db.Close()
}

// CatalogTile is one manifest entry as stored in the catalog
type CatalogTile struct {
	Index       int    `db:"idx"`
	Order       int    `db:"ord"`
	Name        string `db:"name"`
	Char        string `db:"char"`
	Family      string `db:"family"`
	Frame       int    `db:"frame"`
	Layer       string `db:"layer"`
	Description string `db:"description"`
}

// dbProp object encodes properties for a single tile.
type dbProp struct {
	Index int    `db:"idx"`
	Data  string `db:"data"`
}

// Export replaces the catalog contents with `m`, implements Exporter
func (c *Catalog) Export(m *Manifest) error {
	tiles := []CatalogTile{}
	props := []dbProp{}
	for i, e := range m.entries {
		tiles = append(tiles, CatalogTile{
			Index:       e.Index,
			Order:       i,
			Name:        e.Name,
			Char:        string(e.Char),
			Family:      e.Tile.Family.String(),
			Frame:       e.Tile.Frame,
			Layer:       string(e.Tile.Family.Layer()),
			Description: e.Properties,
		})

		data, err := EntryProperties(e).marshal()
		if err != nil {
			return err
		}
		props = append(props, dbProp{Index: e.Index, Data: data})
	}

	txn, err := c.db.Beginx()
	if err != nil {
		return err
	}

	for _, q := range []string{"DELETE FROM tiles;", "DELETE FROM properties;"} {
		if _, err := txn.Exec(q); err != nil {
			txn.Rollback()
			return err
		}
	}

	if len(tiles) > 0 {
		if _, err := txn.NamedExec(sqlInsertTile, tiles); err != nil {
			txn.Rollback()
			return fmt.Errorf("failed to write tiles: %w", err)
		}
		if _, err := txn.NamedExec(sqlInsertProps, props); err != nil {
			txn.Rollback()
			return fmt.Errorf("failed to write properties: %w", err)
		}
	}

	return txn.Commit()
}

// Tiles returns every tile in manifest order
func (c *Catalog) Tiles() ([]CatalogTile, error) {
	tiles := []CatalogTile{}
	err := c.db.Select(&tiles, "SELECT idx, ord, name, char, family, frame, layer, description FROM tiles ORDER BY ord;")
	return tiles, err
}

// Tile returns the tile at `index`, or nil if the slot is undefined.
func (c *Catalog) Tile(index int) (*CatalogTile, error) {
	t := CatalogTile{}
	err := c.db.Get(&t, "SELECT idx, ord, name, char, family, frame, layer, description FROM tiles WHERE idx=? LIMIT 1;", index)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &t, nil
}

// Properties returns the properties stored for `index`, or nil if the slot
// is undefined.
func (c *Catalog) Properties(index int) (*Properties, error) {
	r := dbProp{}
	err := c.db.Get(&r, "SELECT idx, data FROM properties WHERE idx=? LIMIT 1;", index)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return unmarshalProperties(r.Data)
}

// init creates some DB tables for us if they don't exist
func (c *Catalog) init() error {
	createTiles := `CREATE TABLE IF NOT EXISTS tiles(
		idx INTEGER PRIMARY KEY,
		ord INTEGER NOT NULL,
		name TEXT NOT NULL,
		char TEXT NOT NULL,
		family TEXT NOT NULL,
		frame INTEGER NOT NULL,
		layer TEXT NOT NULL,
		description TEXT
	    );`
	_, err := c.db.Exec(createTiles)
	if err != nil {
		return err
	}

	createProps := `CREATE TABLE IF NOT EXISTS properties(
		idx INTEGER PRIMARY KEY,
		data TEXT
	    );`

	_, err = c.db.Exec(createProps)
	return err
}
