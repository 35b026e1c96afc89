/*
Package set holds what the readers of training data in its subpackages
share: their errors and the handling of the identifier column every
source starts with.
*/
package set

// SetError represents an error reading a set of training data.
type SetError string

const (
	// ErrSourceNotFound is returned, possibly wrapped, when the source of
	// a set does not exist.
	ErrSourceNotFound = SetError("data source not found")
	// ErrEmptySource is returned, possibly wrapped, when a source has no
	// header record.
	ErrEmptySource = SetError("data source has no header")
)

func (se SetError) Error() string {
	return string(se)
}

/*
DropIdentifier takes a record as read from a source and returns the
record without its leading identifier column.
*/
func DropIdentifier(record []string) []string {
	if len(record) == 0 {
		return record
	}
	return record[1:]
}
