package tileset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExport(t *testing.T) {
	m, err := DefaultManifest(DefaultConfig())
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, (&CSVExporter{W: &buf}).Export(m))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, m.Len()+1)

	assert.Equal(t, "Index,Name,Char,Properties", lines[0])
	assert.Equal(t, "1,Floor,.,Walkable", lines[1])
	assert.Equal(t, "17,Wall,#,Solid collision", lines[5])
	assert.Equal(t, `33,Door,D,"Walkable, Interactive"`, lines[6])
	assert.Equal(t, "41,Spike,^,Walkable but damages", lines[8])
	assert.Equal(t, "45,Water_f0,~,Animated (frame 0 of 4)", lines[9])
	assert.Equal(t, `56,Portal_f3,P,"Animated, Interactive (frame 3 of 4)"`, lines[20])
}

func TestDecodeCSV(t *testing.T) {
	m, err := DefaultManifest(DefaultConfig())
	require.NoError(t, err)

	buf := bytes.Buffer{}
	require.NoError(t, (&CSVExporter{W: &buf}).Export(m))

	records, err := DecodeCSV(&buf)
	require.NoError(t, err)
	require.Len(t, records, m.Len())

	for i, e := range m.Entries() {
		assert.Equal(t, Record{Index: e.Index, Name: e.Name, Char: e.Char, Properties: e.Properties}, records[i])
	}
}

func TestDecodeCSVBadHeader(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("Idx,Name,Char,Properties\n1,Floor,.,Walkable\n"))
	assert.Error(t, err)

	_, err = DecodeCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDecodeCSVBadIndex(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("Index,Name,Char,Properties\none,Floor,.,Walkable\n"))
	assert.Error(t, err)
}
