package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/domain/reward"
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/pkg/errs"
	"premium-reconciler/internal/usecase/shared"
)

var ErrEmptyBroadcast = errs.New("broadcast text is empty")

const maxBroadcastLength = 4096

// RewardPolicy carries the configured reward amounts.
type RewardPolicy struct {
	ClaimPoints int64
}

type ClaimResult struct {
	AlreadyClaimed bool
	Awarded        int64
	Points         int64
	Day            string
	Entitlement    entitlement.Status
}

type GrantPointsRequest struct {
	Target user.ID
	Delta  int64
	Reason string
}

type BroadcastResult struct {
	Enqueued int
}

type rewardCommandsImpl struct {
	uow    shared.UnitOfWork
	policy RewardPolicy
	clock  clock.Clock
}

func NewRewardCommands(uow shared.UnitOfWork, policy RewardPolicy, clk clock.Clock) RewardCommands {
	return &rewardCommandsImpl{uow: uow, policy: policy, clock: clk}
}

func (c *rewardCommandsImpl) Claim(ctx context.Context, owner user.ID) (*ClaimResult, error) {
	if _, err := user.NewID(owner.Int64()); err != nil {
		return nil, err
	}
	adj, err := reward.NewClaimAdjustment(c.policy.ClaimPoints)
	if err != nil {
		return nil, err
	}

	result := &ClaimResult{}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		day := reward.DayOf(now)
		result.Day = day.Key()

		if err := tx.Users().EnsureLocked(ctx, tx.DB(), owner, now); err != nil {
			return err
		}

		recorded, err := tx.Rewards().RecordClaim(ctx, tx.DB(), owner, day, now)
		if err != nil {
			return err
		}

		// Zero delta reads the balance without changing it.
		delta := int64(0)
		if recorded {
			if err := tx.Rewards().AppendLog(ctx, tx.DB(), owner, adj, now); err != nil {
				return err
			}
			delta = adj.Delta()
			result.Awarded = delta
		}
		result.AlreadyClaimed = !recorded

		total, err := tx.Users().AddPoints(ctx, tx.DB(), owner, delta)
		if err != nil {
			return err
		}
		result.Points = total

		ent, err := tx.Users().FindEntitlement(ctx, tx.DB(), owner)
		if err != nil {
			return err
		}
		result.Entitlement = ent.StatusAt(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *rewardCommandsImpl) GrantPoints(ctx context.Context, req GrantPointsRequest) (int64, error) {
	if _, err := user.NewID(req.Target.Int64()); err != nil {
		return 0, err
	}
	adj, err := reward.NewAdminAdjustment(req.Delta, req.Reason)
	if err != nil {
		return 0, err
	}

	var total int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		if err := tx.Users().EnsureLocked(ctx, tx.DB(), req.Target, now); err != nil {
			return err
		}
		if err := tx.Rewards().AppendLog(ctx, tx.DB(), req.Target, adj, now); err != nil {
			return err
		}
		var err error
		total, err = tx.Users().AddPoints(ctx, tx.DB(), req.Target, adj.Delta())
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Info("admin points adjustment",
		slog.Int64("owner_id", req.Target.Int64()),
		slog.Int64("delta", adj.Delta()),
		slog.String("reason", adj.Reason()),
	)
	return total, nil
}

func (c *rewardCommandsImpl) Broadcast(ctx context.Context, text string) (*BroadcastResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyBroadcast
	}
	if len([]rune(text)) > maxBroadcastLength {
		text = string([]rune(text)[:maxBroadcastLength])
	}

	payload, err := json.Marshal(shared.BroadcastPayload{Text: text})
	if err != nil {
		return nil, errs.Wrap(err, "encode broadcast payload")
	}

	result := &BroadcastResult{}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		ids, err := tx.Users().ListIDs(ctx, tx.DB())
		if err != nil {
			return err
		}
		for _, id := range ids {
			if _, err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.NewNotificationJob{
				Kind:      shared.NotificationKindBroadcast,
				Topic:     shared.NotificationTopicAdmin,
				Recipient: id,
				Payload:   payload,
				RunAt:     now,
			}); err != nil {
				return err
			}
		}
		result.Enqueued = len(ids)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
