package response

import (
	"time"

	"estate-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeResponse struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	DisplayName          string    `json:"displayName"`
	Role                 string    `json:"role"`
	HasNotificationToken bool      `json:"hasNotificationToken"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	Created              bool      `json:"created,omitempty"`
}

func FromUserView(v *queries.UserView) (*MeResponse, error) {
	var res MeResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
