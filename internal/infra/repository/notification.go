package repository

import (
	"context"
	"slices"
	"time"

	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"
	"premium-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error)
	LeaseDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.LeaseDueNotificationJobsParams) ([]sqlc.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NewNotificationJob) (uuid.UUID, error) {
	params := sqlc.CreateNotificationJobParams{
		Kind:      job.Kind,
		Topic:     job.Topic,
		Recipient: job.Recipient.Int64(),
		Payload:   job.Payload,
		Status:    string(shared.JobStatusQueued),
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
	}

	id, err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}

	return id, nil
}

// LeaseDue takes up to limit queued jobs due at now and pushes their run_at
// to leaseUntil, so no row lock is held while they are sent. Rows locked by
// another dispatcher are skipped. Jobs come back oldest first.
func (r *NotificationRepository) LeaseDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.LeaseDueNotificationJobs(ctx, tx, sqlc.LeaseDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		BatchLimit: limit,
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lease notification jobs", err)
	}
	// UPDATE ... RETURNING has no defined order.
	slices.SortStableFunc(rows, func(a, b sqlc.NotificationJob) int {
		return a.CreatedAt.Time.Compare(b.CreatedAt.Time)
	})

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Recipient: user.ID(row.Recipient),
			Payload:   row.Payload,
			Status:    shared.JobStatus(row.Status),
			Attempts:  row.Attempts,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob, now time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        job.ID,
		Status:    string(job.Status),
		Attempts:  job.Attempts,
		LastError: pgconv.StringPtrToPgtype(job.LastError),
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
