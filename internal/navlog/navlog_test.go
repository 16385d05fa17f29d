package navlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avplan/route2pln/internal/route"
)

func TestWriteNavLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navlog.xlsx")

	r := route.Route{
		route.Named("KJFK"),
		route.Coordinate(40.7, -74.0),
		route.Named("KLAX"),
	}

	require.NoError(t, Write(path, r))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue(SheetName, ref)
		require.NoError(t, err, ref)
		return v
	}

	assert.Equal(t, "Seq", cell("A1"))
	assert.Equal(t, "Waypoint", cell("B1"))

	assert.Equal(t, "1", cell("A2"))
	assert.Equal(t, "KJFK", cell("B2"))
	assert.Equal(t, "Airport", cell("C2"))
	assert.Empty(t, cell("D2"))

	assert.Equal(t, "WP2", cell("B3"))
	assert.Equal(t, "User", cell("C3"))
	assert.Equal(t, "40.7", cell("D3"))
	assert.Equal(t, "-74", cell("E3"))

	assert.Equal(t, "KLAX", cell("B4"))
}

func TestWriteNavLogEmptyRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, Write(path, route.Route{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
