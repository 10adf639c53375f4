package events

// RequestRated is emitted after a client rates a completed request. The
// cleaner profile aggregate consumes it to update the derived stars average;
// the lifecycle engine never mutates Cleaner documents itself.
type RequestRated struct {
	RequestID string
	CleanerID string
	Rating    int
	Review    string
}
