package worker

//go:generate mockgen -source=ports.go -destination=../testutil/mock/worker/worker.go -package=workermock

import (
	"context"

	"premium-reconciler/internal/domain/payment"
	"premium-reconciler/internal/usecase/shared"
)

// LedgerSource is the read side of the ledger the reconciler polls.
type LedgerSource interface {
	FetchRecent(ctx context.Context, destination string, limit int) ([]payment.Transaction, error)
}

// Sink delivers one notification. Errors are retried by the dispatcher.
type Sink interface {
	Send(ctx context.Context, job shared.NotificationJob) error
}
