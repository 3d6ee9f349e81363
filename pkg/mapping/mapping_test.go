package mapping_test

import (
	"fmt"
	"testing"

	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/stretchr/testify/assert"
)

// survivors has 8 of 10 keys, DTXSID004 and DTXSID009 failed to parse.
func survivors() substance.IdentitySet {
	res := substance.NewIdentitySet()
	for i := 1; i <= 10; i++ {
		if i == 4 || i == 9 {
			continue
		}
		res.Add(fmt.Sprintf("DTXSID%03d", i))
	}
	return res
}

func TestDedup(t *testing.T) {
	rows := []mapping.CidMapping{
		{CatalogID: 3, Key: "A"},
		{CatalogID: 1, Key: "B"},
		{CatalogID: 3, Key: "A"},
		{CatalogID: 2, Key: "A"},
		{CatalogID: 1, Key: "B"},
	}
	res, dups := mapping.Dedup(rows)
	assert.Equal(t, 2, dups)
	assert.Equal(t, []mapping.CidMapping{
		{CatalogID: 3, Key: "A"},
		{CatalogID: 1, Key: "B"},
		{CatalogID: 2, Key: "A"},
	}, res)
}

func TestFilterRegistry(t *testing.T) {
	var rows []mapping.CasrnMapping
	// 9 rows for surviving substances, DTXSID001 has two numbers
	for i := 1; i <= 10; i++ {
		if i == 4 || i == 9 {
			continue
		}
		rows = append(rows, mapping.CasrnMapping{
			RegistryNumber: fmt.Sprintf("%d-00-0", i),
			Key:            fmt.Sprintf("DTXSID%03d", i),
			DisplayName:    fmt.Sprintf("substance %d", i),
		})
	}
	rows = append(rows, mapping.CasrnMapping{
		RegistryNumber: "7732-18-5", Key: "DTXSID001", DisplayName: "water",
	})
	// 3 rows for failed substances
	rows = append(rows,
		mapping.CasrnMapping{RegistryNumber: "50-00-0", Key: "DTXSID004"},
		mapping.CasrnMapping{RegistryNumber: "57-13-6", Key: "DTXSID004"},
		mapping.CasrnMapping{RegistryNumber: "64-17-5", Key: "DTXSID009"},
	)
	assert.Len(t, rows, 12)

	var rejected []string
	acc, res := mapping.Filter(mapping.Registry, rows, survivors(),
		func(r mapping.CasrnMapping) { rejected = append(rejected, r.Key) })

	assert.Equal(t, mapping.Result{
		Source:   mapping.Registry,
		Total:    12,
		Rejected: 3,
		Accepted: 9,
	}, res)
	assert.Len(t, acc, 9)
	assert.Equal(t, []string{"DTXSID004", "DTXSID004", "DTXSID009"}, rejected)

	ids := survivors()
	for _, v := range acc {
		assert.True(t, ids.Has(v.Key))
	}
}

func TestFilterCatalog(t *testing.T) {
	rows := []mapping.CidMapping{
		{CatalogID: 712, Key: "DTXSID001"},
		{CatalogID: 712, Key: "DTXSID001"},
		{CatalogID: 713, Key: "DTXSID001"},
		{CatalogID: 962, Key: "DTXSID002"},
		{CatalogID: 100, Key: "DTXSID004"},
		{CatalogID: 100, Key: "DTXSID004"},
		{CatalogID: 555, Key: "DTXSID999"},
	}
	acc, res := mapping.Filter(mapping.Catalog, rows, survivors(), nil)

	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 2, res.Duplicates)
	assert.Equal(t, 2, res.Rejected)
	assert.Equal(t, 3, res.Accepted)
	assert.Equal(t, []mapping.CidMapping{
		{CatalogID: 712, Key: "DTXSID001"},
		{CatalogID: 713, Key: "DTXSID001"},
		{CatalogID: 962, Key: "DTXSID002"},
	}, acc, "distinct catalog ids of one substance survive")
}

func TestFilterEmpty(t *testing.T) {
	acc, res := mapping.Filter[mapping.CidMapping](
		mapping.Catalog, nil, substance.NewIdentitySet(), nil,
	)
	assert.Empty(t, acc)
	assert.Equal(t, mapping.Result{Source: mapping.Catalog}, res)

	rows := []mapping.CidMapping{{CatalogID: 1, Key: "A"}}
	acc, res = mapping.Filter(mapping.Catalog, rows, substance.NewIdentitySet(), nil)
	assert.Empty(t, acc)
	assert.Equal(t, 1, res.Rejected)
}
