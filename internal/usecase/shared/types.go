package shared

import "github.com/google/uuid"

type ManagerSnapshot struct {
	ID                uuid.UUID
	Email             string
	DisplayName       string
	NotificationToken string
}
