package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/guard"
)

var ErrReconcileDeliveryTermsCommandIsNotConstructed = errors.New(
	"ReconcileDeliveryTermsCommand must be created via NewReconcileDeliveryTermsCommand constructor",
)

// ReconcileDeliveryTermsCommand represents a sweep for recorded orders that
// never received a delivery estimate, typically because the scheduling
// message was lost. Issued periodically by the reconciliation job.
type ReconcileDeliveryTermsCommand struct { //nolint:recvcheck //using for validation
	grace time.Duration

	guard guard.ConstructorGuard
}

// NewReconcileDeliveryTermsCommand creates a reconciliation command. grace is
// how old an order must be before its missing delivery term counts as lost
// rather than in flight.
func NewReconcileDeliveryTermsCommand(grace time.Duration) (ReconcileDeliveryTermsCommand, error) {
	cmd := ReconcileDeliveryTermsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if grace <= 0 {
		return ReconcileDeliveryTermsCommand{}, fmt.Errorf("grace %s is not greater than 0", grace)
	}
	cmd.grace = grace

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileDeliveryTermsCommandIsNotConstructed if validation fails.
func (c ReconcileDeliveryTermsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDeliveryTermsCommandIsNotConstructed)
}

// Grace returns the minimum age of orders the sweep considers.
func (c ReconcileDeliveryTermsCommand) Grace() time.Duration {
	return c.grace
}
