package response

import (
	"premium-reconciler/internal/domain/entitlement"
	"premium-reconciler/internal/usecase/commands"
	"premium-reconciler/internal/usecase/queries"
	"premium-reconciler/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	JoinedAt     int64  `json:"joined_at"`
	PremiumUntil *int64 `json:"premium_until,omitempty"`
	Points       int64  `json:"points"`
}

type EntitlementResponse struct {
	State       string `json:"state"`
	ActiveUntil *int64 `json:"active_until,omitempty"`
}

type PointsResponse struct {
	UserID int64 `json:"user_id"`
	Points int64 `json:"points"`
}

type LeaderboardEntryResponse struct {
	Rank      int    `json:"rank"`
	Owner     int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Points    int64  `json:"points"`
}

type ClaimResponse struct {
	AlreadyClaimed bool                 `json:"already_claimed"`
	Awarded        int64                `json:"awarded"`
	Points         int64                `json:"points"`
	Day            string               `json:"day"`
	Entitlement    *EntitlementResponse `json:"entitlement"`
}

type ClaimStatusResponse struct {
	Owner        int64  `json:"user_id"`
	TotalClaims  int64  `json:"total_claims"`
	ClaimedToday bool   `json:"claimed_today"`
	Day          string `json:"day"`
}

type BroadcastResponse struct {
	Enqueued int `json:"enqueued"`
}

func FromUserSnapshot(s *shared.UserSnapshot) *UserResponse {
	res := &UserResponse{
		UserID:    s.ID.Int64(),
		Username:  s.Username,
		FirstName: s.FirstName,
		JoinedAt:  s.JoinedAt.Unix(),
		Points:    s.Points,
	}
	if s.PremiumUntil != nil {
		until := s.PremiumUntil.Unix()
		res.PremiumUntil = &until
	}
	return res
}

func FromEntitlementStatus(s entitlement.Status) *EntitlementResponse {
	res := &EntitlementResponse{State: s.State.String()}
	if s.ActiveUntil != nil {
		until := s.ActiveUntil.Unix()
		res.ActiveUntil = &until
	}
	return res
}

// FromLeaderboard copies entries field by field; names and types line up.
func FromLeaderboard(entries []*queries.LeaderboardEntry) ([]*LeaderboardEntryResponse, error) {
	res := make([]*LeaderboardEntryResponse, 0, len(entries))
	if err := copier.Copy(&res, &entries); err != nil {
		return nil, err
	}
	return res, nil
}

func FromClaimStatus(v *queries.ClaimStatusView) (*ClaimStatusResponse, error) {
	res := &ClaimStatusResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromClaimResult(r *commands.ClaimResult) *ClaimResponse {
	return &ClaimResponse{
		AlreadyClaimed: r.AlreadyClaimed,
		Awarded:        r.Awarded,
		Points:         r.Points,
		Day:            r.Day,
		Entitlement:    FromEntitlementStatus(r.Entitlement),
	}
}
