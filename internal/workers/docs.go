// Package workers contains the queue consumers of the order pipeline. Each
// worker decodes one route's payload, rebuilds the acting user context the
// producer captured, and drives the matching command handler.
//
// Follow-up messages a handler publishes during a delivery are staged on the
// delivery's outbox and only hit the broker after the handler succeeds, so a
// failed delivery never emits half of a cascade.
//
// Payloads that cannot be decoded are reported as invariant violations:
// redelivering a malformed message cannot fix it, so the bus sends it to the
// dead letter queue without burning the retry budget.
package workers
