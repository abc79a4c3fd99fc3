package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryReconciliationJob periodically sweeps for recorded orders that
// never received a delivery estimate and re-announces them to the scheduling
// worker. Runs once a minute.
type DeliveryReconciliationJob struct {
	handler commands.ReconcileDeliveryTermsCommandHandler
	grace   time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryReconciliationJob creates a new job for the reconciliation
// sweep. grace is how old an order must be before its missing estimate
// counts as lost rather than in flight.
func NewDeliveryReconciliationJob(handler commands.ReconcileDeliveryTermsCommandHandler,
	grace time.Duration, logger *slog.Logger) *DeliveryReconciliationJob {
	return &DeliveryReconciliationJob{
		handler: handler,
		grace:   grace,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run once a minute.
func (j *DeliveryReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileDeliveryTermsCommand(j.grace)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery reconciliation job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *DeliveryReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reconciliation job stopped")
}
