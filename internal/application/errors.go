package application

// UpstreamError marks a failed call to the price provider. The message is the
// cause's message so it can be shown to clients unchanged.
type UpstreamError struct{ Err error }

func (e *UpstreamError) Error() string { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// StorageError marks any failure of the quote store; sub-kinds are not classified.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
