package port

// Connection is one live client transport handle. Send must be safe for
// concurrent use; a non-nil error means the connection is dead and the
// session owning it should be evicted.
type Connection interface {
	// Send delivers one framed message to the client.
	Send(messageType string, data any) error

	// Close tears down the underlying transport.
	Close() error
}
