package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrRequestApprovalCommandIsNotConstructed = errors.New(
		"RequestApprovalCommand must be created via NewRequestApprovalCommand constructor",
	)

	// ErrOrderDoesNotRequireApproval is returned when approval is requested
	// for an order that is not held for manual approval. Distinct from
	// not-found so callers can report the two cases differently.
	ErrOrderDoesNotRequireApproval = errors.New("order does not require manual approval")
)

// RequestApprovalCommand represents a request to approve an order held for
// manual approval. The approval itself is processed asynchronously; this
// command only verifies eligibility and queues it.
type RequestApprovalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestApprovalCommand creates a command to request an order approval.
func NewRequestApprovalCommand(orderID kernel.UUID) (RequestApprovalCommand, error) {
	cmd := RequestApprovalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return RequestApprovalCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestApprovalCommandIsNotConstructed if validation fails.
func (c RequestApprovalCommand) Validate() error {
	return c.guard.Validate(ErrRequestApprovalCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to approve.
func (c RequestApprovalCommand) OrderID() kernel.UUID {
	return c.orderID
}
