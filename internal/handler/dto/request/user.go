package request

type NotificationTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// SyncProfileRequest optionally overrides the display name from the token.
type SyncProfileRequest struct {
	DisplayName string `json:"displayName" binding:"max=200"`
}
