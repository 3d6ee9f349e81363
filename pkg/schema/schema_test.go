package schema_test

import (
	"testing"

	"github.com/gnames/chemdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "substances", schema.Substance{}.TableName())
	assert.Equal(t, "registry_mappings", schema.RegistryMapping{}.TableName())
	assert.Equal(t, "catalog_mappings", schema.CatalogMapping{}.TableName())
	assert.Equal(t, "load_runs", schema.LoadRun{}.TableName())
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 4)
	_, ok := models[0].(*schema.Substance)
	assert.True(t, ok, "substances go first, mapping tables refer to them")
}

func TestConstraintDDL(t *testing.T) {
	ddl := schema.ConstraintDDL()
	assert.Len(t, ddl, 2)
	assert.Contains(t, ddl[0], "ALTER TABLE registry_mappings")
	assert.Contains(t, ddl[0], "fk_registry_mappings_substance")
	assert.Contains(t, ddl[1], "REFERENCES substances (substance_key)")
}
