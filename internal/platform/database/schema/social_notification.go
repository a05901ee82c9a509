package schema

// SocialNotificationTable represents the 'social.notification' table
type SocialNotificationTable struct {
	Table       string
	ID          string
	ActorID     string
	RecipientID string
	IsRead      string
	Action      string
	Title       string
	Description string
	CreatedAt   string
}

// SocialNotification is the schema definition for social.notification
var SocialNotification = SocialNotificationTable{
	Table:       "social.notification",
	ID:          "id",
	ActorID:     "actorid",
	RecipientID: "recipientid",
	IsRead:      "isread",
	Action:      "action",
	Title:       "title",
	Description: "description",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t SocialNotificationTable) Columns() []string {
	return []string{
		t.ID, t.ActorID, t.RecipientID, t.IsRead, t.Action,
		t.Title, t.Description, t.CreatedAt,
	}
}
