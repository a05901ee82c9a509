package notification

import (
	"context"
	"time"
)

// Action classifies what a notification is about.
type Action string

const (
	ActionMessage Action = "messages"
	ActionLike    Action = "likes"
	ActionComment Action = "comments"
	ActionFollow  Action = "follows"
)

// Actions lists every valid action value.
func Actions() []string {
	return []string{
		string(ActionMessage), string(ActionLike),
		string(ActionComment), string(ActionFollow),
	}
}

// Notification is an in-app event delivered to a recipient.
type Notification struct {
	ID          string    `json:"id"`
	ActorID     string    `json:"actor_id"`
	RecipientID string    `json:"recipient_id"`
	IsRead      bool      `json:"is_read"`
	Action      Action    `json:"action"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldNotificationID = "notification_id"
	FieldActorID        = "actor_id"
	FieldRecipientID    = "recipient_id"
	FieldAction         = "action"
	FieldTitle          = "title"
)

// Field length limits
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// Repository defines the persistence contract for notifications.
type Repository interface {
	Create(context context.Context, n *Notification) error
	Delete(context context.Context, id string) error
	ListByRecipient(context context.Context, recipientID string) ([]*Notification, error)
	MarkRead(context context.Context, id string) error
}
