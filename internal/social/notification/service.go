package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/AGBR121/social-media-API/internal/platform/validate"
	"github.com/AGBR121/social-media-API/pkg/slice"
	"github.com/AGBR121/social-media-API/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateNotification validates and persists a new notification.
func (service *Service) CreateNotification(context context.Context, n *Notification) error {
	validator := &validate.Validator{}
	validator.Required(FieldActorID, n.ActorID).UUID(FieldActorID, n.ActorID)
	validator.Required(FieldRecipientID, n.RecipientID).UUID(FieldRecipientID, n.RecipientID)
	validator.Required(FieldAction, string(n.Action)).OneOf(FieldAction, string(n.Action), Actions()...)
	validator.Required(FieldTitle, n.Title).MaxLen(FieldTitle, n.Title, MaxTitleLen)
	validator.MaxLen("description", n.Description, MaxDescriptionLen)
	if err := validator.Err(); err != nil {
		return err
	}

	n.ID = uuidv7.New()
	n.IsRead = false
	n.CreatedAt = time.Now().UTC()

	if err := service.repo.Create(context, n); err != nil {
		return err
	}

	service.logger.Info("notification created",
		slog.String("notification_id", n.ID),
		slog.String("recipient_id", n.RecipientID),
		slog.String("action", string(n.Action)),
	)
	return nil
}

// DeleteNotification removes a notification permanently.
func (service *Service) DeleteNotification(context context.Context, id string) error {
	validator := &validate.Validator{}
	validator.Required(FieldNotificationID, id).UUID(FieldNotificationID, id)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.Delete(context, id)
}

// ListByRecipient returns a user's notifications, newest first. A non-empty
// actions slice narrows the result to those action kinds.
func (service *Service) ListByRecipient(context context.Context, recipientID string, actions []string) ([]*Notification, error) {
	validator := &validate.Validator{}
	validator.Required(FieldRecipientID, recipientID).UUID(FieldRecipientID, recipientID)
	for _, action := range actions {
		validator.OneOf(FieldAction, action, Actions()...)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	notifications, err := service.repo.ListByRecipient(context, recipientID)
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return notifications, nil
	}

	wanted := make(map[Action]bool, len(actions))
	for _, action := range actions {
		wanted[Action(action)] = true
	}
	return slice.Filter(notifications, func(n *Notification) bool {
		return wanted[n.Action]
	}), nil
}

// MarkRead flags a notification as read.
func (service *Service) MarkRead(context context.Context, id string) error {
	validator := &validate.Validator{}
	validator.Required(FieldNotificationID, id).UUID(FieldNotificationID, id)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.MarkRead(context, id)
}
