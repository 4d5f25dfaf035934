package listtab

import "errors"

// Common errors returned by the listtab package.
var (
	// ErrNoColumns is returned when a tab is constructed without columns.
	ErrNoColumns = errors.New("no columns declared")

	// ErrNoDataSource is returned when a required data source is nil.
	ErrNoDataSource = errors.New("data source is nil")

	// ErrColumnCount is returned when a row's value count does not match
	// the declared column count.
	ErrColumnCount = errors.New("value count does not match column count")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrUnknownKey is returned when a row key is not present in the
	// data source.
	ErrUnknownKey = errors.New("unknown row key")
)
