package request

import (
	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/usecase/commands"
)

type RegisterUserRequest struct {
	Username  string `json:"username" binding:"max=64"`
	FirstName string `json:"first_name" binding:"max=64"`
}

func (r *RegisterUserRequest) ToCommand(owner user.ID) commands.RegisterUserRequest {
	return commands.RegisterUserRequest{
		Owner:     owner,
		Username:  r.Username,
		FirstName: r.FirstName,
	}
}
