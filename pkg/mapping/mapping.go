// Package mapping keeps external identifier mappings of substances and
// filters them against the set of stored substance keys.
package mapping

import "github.com/gnames/chemdb/pkg/substance"

// Source names a mapping source in reports, logs and metrics.
type Source string

const (
	// Registry is the CAS Registry Number spreadsheet.
	Registry Source = "registry"

	// Catalog is the PubChem CID mapping file.
	Catalog Source = "catalog"
)

// Row is a mapping row that refers to a substance by its key. Two rows
// are duplicates when all their fields are equal.
type Row interface {
	comparable
	SubstanceKey() string
}

// CasrnMapping links a substance to its CAS Registry Number. The source
// assumes one registry number per substance, it is not checked here.
type CasrnMapping struct {
	RegistryNumber string
	Key            string
	DisplayName    string
}

// SubstanceKey implements Row.
func (m CasrnMapping) SubstanceKey() string {
	return m.Key
}

// CidMapping links a substance to a PubChem compound id. A substance may
// have several catalog ids.
type CidMapping struct {
	CatalogID int64
	Key       string
}

// SubstanceKey implements Row.
func (m CidMapping) SubstanceKey() string {
	return m.Key
}

// Result contains counts of one filtered mapping source.
type Result struct {
	Source Source

	// Total is the number of rows given to the filter.
	Total int

	// Duplicates is the number of exact duplicate rows that were removed.
	Duplicates int

	// Rejected is the number of unique rows that refer to a key absent
	// from the identity set.
	Rejected int

	// Accepted is the number of rows that passed the filter.
	Accepted int

	// Malformed is the number of source lines that could not be read
	// into rows. They never reach the filter.
	Malformed int

	// Suspect is the number of accepted registry numbers with a wrong
	// check digit. They are kept as given.
	Suspect int
}

// Dedup removes exact duplicate rows keeping the first occurrence and
// the original order. It returns unique rows and the number of removed
// duplicates.
func Dedup[T Row](rows []T) ([]T, int) {
	seen := make(map[T]struct{}, len(rows))
	res := make([]T, 0, len(rows))
	for _, v := range rows {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res, len(rows) - len(res)
}

// Filter removes duplicates from rows, and then keeps only rows whose
// substance key is in the identity set. Rows with absent keys are only
// counted, they are not an error. Every returned row refers to a key of
// the identity set. The onReject callback, if given, receives every
// rejected row.
func Filter[T Row](
	src Source,
	rows []T,
	ids substance.IdentitySet,
	onReject func(T),
) ([]T, Result) {
	res := Result{Source: src, Total: len(rows)}
	uniq, dups := Dedup(rows)
	res.Duplicates = dups

	accepted := make([]T, 0, len(uniq))
	for _, v := range uniq {
		if !ids.Has(v.SubstanceKey()) {
			res.Rejected++
			if onReject != nil {
				onReject(v)
			}
			continue
		}
		accepted = append(accepted, v)
	}
	res.Accepted = len(accepted)
	return accepted, res
}
