package dto

import (
	"github.com/utn-integrador-III/security-service/internal/access/domain"
)

// GrantOutput is the client-facing view of a grant. Codes, tokens and expiry
// timestamps never leave the service.
type GrantOutput struct {
	Role            string `json:"role"`
	App             string `json:"app"`
	Status          string `json:"status"`
	IsSessionActive bool   `json:"is_session_active"`
}

type UserOutput struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Apps  []GrantOutput `json:"apps"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	out := &UserOutput{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Apps:  make([]GrantOutput, 0, len(u.Apps)),
	}
	for _, g := range u.Apps {
		out.Apps = append(out.Apps, GrantOutput{
			Role:            g.Role.Hex(),
			App:             g.App.Hex(),
			Status:          string(g.Status),
			IsSessionActive: g.IsSessionActive,
		})
	}
	return out
}

func NewUserOutputs(users []domain.User) []*UserOutput {
	outs := make([]*UserOutput, 0, len(users))
	for i := range users {
		outs = append(outs, NewUserOutput(&users[i]))
	}
	return outs
}
