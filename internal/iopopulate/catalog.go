package iopopulate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/mapping"
)

// catalogColumns is the number of columns of the catalog mapping file.
const catalogColumns = 3

// catalogLayout keeps positions of used columns.
type catalogLayout struct {
	cid, key int
}

// readCatalog reads the tab-separated PubChem mapping file. Columns are
// found by their headers, case-insensitively. The secondary identifier
// column is required by the layout, but its values are dropped. Rows
// with a non-numeric catalog id or an empty key are malformed.
func readCatalog(
	path string,
	cfg config.ImportConfig,
) ([]mapping.CidMapping, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, SourceOpenError(path, err)
	}
	defer f.Close()
	return parseCatalog(f, path, cfg)
}

func parseCatalog(
	r io.Reader,
	path string,
	cfg config.ImportConfig,
) ([]mapping.CidMapping, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, SourceLayoutError(path, "catalog file is empty")
	}
	if err != nil {
		return nil, 0, SourceOpenError(path, err)
	}
	lt, err := newCatalogLayout(header, cfg)
	if err != nil {
		return nil, 0, SourceLayoutError(path, err.Error())
	}

	var res []mapping.CidMapping
	var malformed int
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, SourceOpenError(path, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) != catalogColumns {
			malformed++
			continue
		}

		key := strings.TrimSpace(row[lt.key])
		cid, err := strconv.ParseInt(strings.TrimSpace(row[lt.cid]), 10, 64)
		if err != nil || key == "" {
			malformed++
			continue
		}
		res = append(res, mapping.CidMapping{CatalogID: cid, Key: key})
	}
	return res, malformed, nil
}

func newCatalogLayout(
	header []string,
	cfg config.ImportConfig,
) (catalogLayout, error) {
	res := catalogLayout{cid: -1, key: -1}
	if len(header) != catalogColumns {
		return res, fmt.Errorf(
			"catalog file must have exactly %d columns, got %d",
			catalogColumns, len(header),
		)
	}

	sid := -1
	for i, v := range header {
		v = strings.TrimSpace(v)
		switch {
		case strings.EqualFold(v, cfg.CatalogSID):
			sid = i
		case strings.EqualFold(v, cfg.CatalogCID):
			res.cid = i
		case strings.EqualFold(v, cfg.CatalogKey):
			res.key = i
		}
	}
	if sid < 0 || res.cid < 0 || res.key < 0 {
		return res, fmt.Errorf(
			"catalog header must contain %s, %s and %s columns",
			cfg.CatalogSID, cfg.CatalogCID, cfg.CatalogKey,
		)
	}
	return res, nil
}
