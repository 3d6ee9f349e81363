package iopopulate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	cfg := config.New().Import
	data := "dtxsid\tSID\tcid\n" +
		"DTXSID001\t100\t11\n" +
		"DTXSID001\t101\t12\n" +
		"DTXSID002\t102\tnot-a-number\n" +
		"\t103\t13\n" +
		"DTXSID003\t104\n" +
		"   \n" +
		"DTXSID004\t105\t 14 \n"

	rows, malformed, err := parseCatalog(strings.NewReader(data), "test", cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, malformed)
	assert.Equal(t, []mapping.CidMapping{
		{CatalogID: 11, Key: "DTXSID001"},
		{CatalogID: 12, Key: "DTXSID001"},
		{CatalogID: 14, Key: "DTXSID004"},
	}, rows)
}

func TestParseCatalogLayout(t *testing.T) {
	cfg := config.New().Import
	tests := []struct {
		msg, data string
	}{
		{"empty", ""},
		{"two columns", "SID\tCID\n1\t2\n"},
		{"four columns", "SID\tCID\tDTXSID\tX\n"},
		{"unknown header", "SID\tCID\tKEY\n"},
	}

	for _, v := range tests {
		_, _, err := parseCatalog(strings.NewReader(v.data), "test", cfg)
		require.Error(t, err, v.msg)
		var gnErr *gn.Error
		assert.ErrorAs(t, err, &gnErr, v.msg)
	}
}

func TestParseCatalogCustomHeaders(t *testing.T) {
	cfg := config.New().Import
	cfg.CatalogSID = "substance_id"
	cfg.CatalogCID = "compound_id"
	cfg.CatalogKey = "key"
	data := "compound_id\tkey\tsubstance_id\n42\tDTXSID001\t7\n"

	rows, malformed, err := parseCatalog(strings.NewReader(data), "test", cfg)
	require.NoError(t, err)
	assert.Zero(t, malformed)
	assert.Equal(t, []mapping.CidMapping{{CatalogID: 42, Key: "DTXSID001"}}, rows)
}

func TestReadCatalogMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.tsv")
	_, _, err := readCatalog(path, config.New().Import)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.ErrorIs(t, gnErr.Err, os.ErrNotExist)
}
