package iopopulate

import (
	"strings"

	"github.com/gnames/chemdb/pkg/casrn"
	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/gnlib"
	"github.com/xuri/excelize/v2"
)

// registryColumns is the number of columns of the registry spreadsheet.
// They are CAS Registry Number, substance key and preferred name.
const registryColumns = 3

// readRegistry reads the first sheet of the DSSTox CASRN spreadsheet.
// The first row is a header, it must have exactly three columns, which
// are then used by position regardless of their names. Registry numbers
// are stored as given, only trimmed. Empty rows are skipped, rows without a key or a number are
// counted as malformed.
func readRegistry(path string) ([]mapping.CasrnMapping, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, SourceOpenError(path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, SourceLayoutError(path, "spreadsheet has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, 0, SourceOpenError(path, err)
	}
	defer func() { _ = rows.Close() }()

	var res []mapping.CasrnMapping
	var malformed int
	var header bool
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, 0, SourceOpenError(path, err)
		}
		cols = trimCells(cols)
		if len(cols) == 0 {
			continue
		}

		if !header {
			if len(cols) != registryColumns {
				return nil, 0, SourceLayoutError(path,
					"registry spreadsheet must have exactly 3 columns")
			}
			header = true
			continue
		}

		if len(cols) > registryColumns || cols[0] == "" ||
			len(cols) < 2 || cols[1] == "" {
			malformed++
			continue
		}
		row := mapping.CasrnMapping{
			RegistryNumber: cols[0],
			Key:            cols[1],
		}
		if len(cols) == registryColumns {
			row.DisplayName = gnlib.FixUtf8(cols[2])
		}
		res = append(res, row)
	}
	if err = rows.Error(); err != nil {
		return nil, 0, SourceOpenError(path, err)
	}
	if !header {
		return nil, 0, SourceLayoutError(path, "registry spreadsheet is empty")
	}
	return res, malformed, nil
}

// countSuspect counts values that are not registry numbers with a
// correct check digit.
func countSuspect(rows []mapping.CasrnMapping) int {
	var res int
	for _, v := range rows {
		if !casrn.IsValid(v.RegistryNumber) {
			res++
		}
	}
	return res
}

// trimCells trims spaces of every cell and drops trailing empty cells.
func trimCells(cols []string) []string {
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	for len(cols) > 0 && cols[len(cols)-1] == "" {
		cols = cols[:len(cols)-1]
	}
	return cols
}
