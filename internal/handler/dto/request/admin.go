package request

import (
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/usecase/commands"
)

type GrantPointsRequest struct {
	UserID int64  `json:"user_id" binding:"required,min=1"`
	Delta  int64  `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"max=200"`
}

func (r *GrantPointsRequest) ToCommand() (commands.GrantPointsRequest, error) {
	target, err := user.NewID(r.UserID)
	if err != nil {
		return commands.GrantPointsRequest{}, err
	}
	return commands.GrantPointsRequest{Target: target, Delta: r.Delta, Reason: r.Reason}, nil
}

type BroadcastRequest struct {
	Text string `json:"text" binding:"required,max=4096"`
}
