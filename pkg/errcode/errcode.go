package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError
	DBColumnCheckError
	DBQueryViewsError
	DBDropViewError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaConstraintError
	SchemaExtensionError

	// Codec errors
	CodecNotFoundError
	CodecFailureError

	// Ingest errors
	IngestChunkSizeError
	IngestSourceReadError

	// Populate errors
	PopulateSourceMissingError
	PopulateSourceOpenError
	PopulateSourceLayoutError
	PopulateDestinationNotEmptyError
	PopulateAppendError
	PopulateCancelledError
	PopulateRunLogError
	PopulateStageError
	PopulateConversionError
	PopulateConsistencyError
	PopulateFinalizeError
	PopulateIdentitySetError
	PopulateMappingError
	PopulateJournalError
	PopulateMetricsError

	// Optimizer errors
	OptimizerStageError
	OptimizerViewCreationError
	OptimizerIndexError
	OptimizerVacuumError
)
