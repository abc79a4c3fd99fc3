package queue

// stagedMessage is one message collected during delivery processing.
type stagedMessage struct {
	route   string
	payload any
}

// stagingOutbox buffers messages produced by a handler until the handler
// returns without error. One instance serves one delivery and is never shared
// between goroutines.
type stagingOutbox struct {
	staged []stagedMessage
}

// Stage records a message for publication after the handler succeeds.
func (o *stagingOutbox) Stage(route string, payload any) {
	o.staged = append(o.staged, stagedMessage{route: route, payload: payload})
}
