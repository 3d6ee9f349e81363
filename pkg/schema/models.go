// Package schema provides database models of chemdb.
//
// Models describe tables as they are created, before structures are
// ingested. The structural column of substances is not a model field,
// it is added and finalized by the materialization stages, and the
// payload column is dropped then.
package schema

import (
	"database/sql"
	"time"
)

// Substance is one chemical substance from the structures dump.
type Substance struct {
	// SubstanceKey is the DSSTox substance identifier (DTXSID).
	SubstanceKey string `gorm:"type:text;primaryKey"`

	// RawNotation is the InChI the structure was built from.
	RawNotation string `gorm:"type:text;not null"`

	// CanonicalKey is the InChIKey of the structure. Several substances
	// can share it. The length is not checked, dumps carry keys of
	// nonstandard InChIs too.
	CanonicalKey string `gorm:"type:text;index:idx_substances_canonical_key"`

	// Payload is the serialized structure. It exists only until the
	// structural column is finalized.
	Payload []byte `gorm:"type:bytea"`
}

// RegistryMapping links a substance to its CAS Registry Number.
type RegistryMapping struct {
	SubstanceKey   string `gorm:"type:text;primaryKey;autoIncrement:false"`
	// RegistryNumber is kept as given, NOCAS_ identifiers included.
	RegistryNumber string `gorm:"type:text;primaryKey;autoIncrement:false;index:idx_registry_mappings_number"`

	// DisplayName is the preferred name of the substance.
	DisplayName string `gorm:"type:text"`
}

// CatalogMapping links a substance to a PubChem compound id.
type CatalogMapping struct {
	SubstanceKey string `gorm:"type:text;primaryKey;autoIncrement:false"`
	CatalogID    int64  `gorm:"type:bigint;primaryKey;autoIncrement:false;index:idx_catalog_mappings_id"`
}

// LoadRun records one populate run. Its presence means the store was
// populated (or partially populated) and must be recreated before the
// next run.
type LoadRun struct {
	ID         string       `gorm:"type:uuid;primaryKey"`
	StartedAt  time.Time    `gorm:"type:timestamp without time zone;not null"`
	FinishedAt sql.NullTime `gorm:"type:timestamp without time zone"`

	// Stage is the last reached materialization stage.
	Stage string `gorm:"type:varchar(20);not null"`

	Attempted int
	Created   int
	Failed    int
	TimedOut  int

	RegistryAccepted int
	RegistryRejected int
	RegistrySuspect  int
	CatalogAccepted  int
	CatalogRejected  int
}
