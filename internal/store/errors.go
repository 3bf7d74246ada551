package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMenuItemNotFound is returned when a lookup by id matches no row.
	ErrMenuItemNotFound = errors.New("menu item was not found")

	// ErrNoPendingUsageLogs is returned when the usage log queue is empty.
	ErrNoPendingUsageLogs = errors.New("no pending usage logs")

	// ErrMissingID is returned when a write is attempted without a primary key.
	ErrMissingID = errors.New("record has no id")

	// ErrUnknownTable is returned by probes given a table or column name
	// outside the catalog schema.
	ErrUnknownTable = errors.New("unknown table or column")

	// ErrBatchClosed is returned when writing through a closed [Batch].
	ErrBatchClosed = errors.New("batch is closed")

	// ErrSettingNotFound is returned by [SettingsStorage.Get] for absent keys.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrFeedNotFound is returned when the server has no feed file to serve.
	ErrFeedNotFound = errors.New("feed was not found")

	// ErrImageNotFound is returned when a requested image does not exist.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidImageID is returned for image ids that are not a plain file
	// name.
	ErrInvalidImageID = errors.New("invalid image id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// IsTransactionError reports whether err comes from beginning or committing
// a transaction. Such errors leave a [Batch] unusable and must abort a sync,
// unlike statement errors which only affect a single record.
func IsTransactionError(err error) bool {
	return errors.Is(err, ErrBeginningTransaction) || errors.Is(err, ErrCommitingTransaction)
}
