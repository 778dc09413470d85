package export

import "errors"

// ErrSerialization is wrapped by errors from encoding words that cannot be written as json.
var ErrSerialization = errors.New("serializing words")

// FileAccessError is returned when a file of words cannot be read or written.
type FileAccessError struct {
	// Op is the action being performed on the file, such as "opening" or "writing".
	Op string
	// Path is the name of the file.
	Path string
	// Err is the cause.
	Err error
}

// Error describes the action on the file that failed.
func (e *FileAccessError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the cause of the error.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}
