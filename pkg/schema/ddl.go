package schema

import "fmt"

// Table names.
const (
	SubstancesTable = "substances"
	RegistryTable   = "registry_mappings"
	CatalogTable    = "catalog_mappings"
	LoadRunsTable   = "load_runs"

	// CompoundsView is the denormalized materialized view.
	CompoundsView = "compounds"

	// StructureColumn is the database-native structural column.
	StructureColumn = "structure"

	// PayloadColumn keeps serialized structures before finalization.
	PayloadColumn = "payload"
)

func (Substance) TableName() string       { return SubstancesTable }
func (RegistryMapping) TableName() string { return RegistryTable }
func (CatalogMapping) TableName() string  { return CatalogTable }
func (LoadRun) TableName() string         { return LoadRunsTable }

// ConstraintDDL returns statements that add foreign keys from mapping
// tables to substances. Mapping rows are filtered before loading, so the
// constraints never reject a bulk copy.
func ConstraintDDL() []string {
	tpl := `ALTER TABLE %[1]s
  ADD CONSTRAINT fk_%[1]s_substance
  FOREIGN KEY (substance_key) REFERENCES %[2]s (substance_key)`
	return []string{
		fmt.Sprintf(tpl, RegistryTable, SubstancesTable),
		fmt.Sprintf(tpl, CatalogTable, SubstancesTable),
	}
}
