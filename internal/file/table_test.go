package file

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/table.csv", []byte(
		"id,name,vendor\n"+
			"ID-1,Windows 11 Pro,Microsoft\n"+
			"ID-2,\"Tomcat, embedded\"\n"+
			",,\n"), 0644))

	rows, err := ReadTable(fs, "/in/table.csv", 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Microsoft", rows[0].Cell(2))
	assert.Equal(t, "Tomcat, embedded", rows[1].Cell(1))
	assert.Equal(t, "", rows[1].Cell(2), "short rows are padded")
	assert.Equal(t, "", rows[1].Cell(42))
	assert.True(t, rows[2].Blank())
	assert.False(t, rows[0].Blank())
}

func TestReadTable_missingFile(t *testing.T) {
	_, err := ReadTable(afero.NewMemMapFs(), "/nope.csv", 1)
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0755))
	require.NoError(t, afero.WriteFile(fs, "/dir/file.csv", []byte("x"), 0644))

	assert.True(t, Exists(fs, "/dir/file.csv"))
	assert.False(t, Exists(fs, "/dir"))
	assert.False(t, Exists(fs, "/dir/missing.csv"))
}
