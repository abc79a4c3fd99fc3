package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Processing ──> Created ──> Paid
//	      │    └─> Paid
//	      └──────> Cancelled <── (any non-terminal state)
//
// An order leaves Processing through the pricing rule: totals above the
// approval threshold land in Created (awaiting manual approval), everything
// else lands directly in Paid. Paid and Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the transient in-flight state used by the registration
	// worker between receiving a submitted order and finalizing its pricing.
	Processing

	// Created indicates the order exceeded the approval threshold and is
	// waiting for manual approval.
	Created

	// Paid indicates the order is priced and settled. Terminal.
	Paid

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Processing: "Processing",
		Created:    "Created",
		Paid:       "Paid",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "Processing",
		Created:    "Created",
		Paid:       "Paid",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Processing, Created, Paid, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
// Paid and Cancelled are the terminal states of the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// Approve transitions the status to Paid.
//
// Valid transitions:
//   - Created -> Paid (manual approval granted)
//
// Returns an error for every other source state; approvals of orders that
// never required one are caller errors and must be rejected before reaching
// this transition.
func (s Status) Approve() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled. Any state may be cancelled;
// cancelling an already-cancelled order is a no-op transition to the same
// state.
func (s Status) Cancel() Status {
	return Cancelled
}
