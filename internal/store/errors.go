package store

import "errors"

// Sentinel errors returned by [CredentialStore] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrCredentialsNotFound is returned when no credentials are stored for
	// the requested item.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrInvalidCredentials is returned by Set when the item name, license key
	// or instance id is empty.
	ErrInvalidCredentials = errors.New("incomplete credentials")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")
)
