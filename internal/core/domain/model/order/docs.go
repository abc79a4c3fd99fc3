// Package order contains the commercial order aggregate.
//
// The aggregate root is Order, which owns its Items and its optional
// DeliveryTerm. Orders are created in the Processing state and finalized by
// the pricing rule: totals above ApprovalThresholdCents are held in Created
// until a manual approval moves them to Paid, anything else is paid
// immediately. Cancellation is allowed from any state.
//
// All types follow the constructor pattern: instances must be created through
// their New* factory (or Restore* when loading from persistence) and report
// ErrXxxIsNotConstructed from Validate otherwise.
package order
