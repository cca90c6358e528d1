package model

import "time"

type NotificationType string

const (
	NotifNewCampaign NotificationType = "new_campaign"
	NotifAlert       NotificationType = "alert"
)

// Notification is one entry in the bounded event feed. Metadata is
// free-form; campaign events carry {"campaignId": id}.
type Notification struct {
	ID        string            `json:"id"`
	Type      NotificationType  `json:"type"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Read      bool              `json:"read"`
}
