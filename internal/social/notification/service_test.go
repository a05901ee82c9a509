package notification_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGBR121/social-media-API/internal/platform/apperr"
	"github.com/AGBR121/social-media-API/internal/social/notification"
)

const (
	actorID     = "0191d2a0-0000-7000-8000-000000000001"
	recipientID = "0191d2a0-0000-7000-8000-000000000002"
)

type fakeRepository struct {
	stored []*notification.Notification
}

func (f *fakeRepository) Create(_ context.Context, n *notification.Notification) error {
	f.stored = append(f.stored, n)
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	for i, n := range f.stored {
		if n.ID == id {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Notification")
}

func (f *fakeRepository) ListByRecipient(_ context.Context, recipient string) ([]*notification.Notification, error) {
	result := make([]*notification.Notification, 0)
	for _, n := range f.stored {
		if n.RecipientID == recipient {
			result = append(result, n)
		}
	}
	return result, nil
}

func (f *fakeRepository) MarkRead(_ context.Context, id string) error {
	for _, n := range f.stored {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return apperr.NotFound("Notification")
}

func newService(repo notification.Repository) *notification.Service {
	return notification.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_CreateNotification(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	n := &notification.Notification{
		ActorID:     actorID,
		RecipientID: recipientID,
		Action:      notification.ActionFollow,
		Title:       "New follower",
	}

	require.NoError(t, service.CreateNotification(context.Background(), n))
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.IsRead)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestService_CreateNotification_RejectsUnknownAction(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	err := service.CreateNotification(context.Background(), &notification.Notification{
		ActorID:     actorID,
		RecipientID: recipientID,
		Action:      "pokes",
		Title:       "??",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, repo.stored)
}

func TestService_ListByRecipient_FiltersByAction(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	for _, action := range []notification.Action{
		notification.ActionLike, notification.ActionFollow, notification.ActionLike,
	} {
		require.NoError(t, service.CreateNotification(context.Background(), &notification.Notification{
			ActorID:     actorID,
			RecipientID: recipientID,
			Action:      action,
			Title:       "event",
		}))
	}

	all, err := service.ListByRecipient(context.Background(), recipientID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	likes, err := service.ListByRecipient(context.Background(), recipientID, []string{"likes"})
	require.NoError(t, err)
	require.Len(t, likes, 2)
	for _, n := range likes {
		assert.Equal(t, notification.ActionLike, n.Action)
	}

	_, err = service.ListByRecipient(context.Background(), recipientID, []string{"bogus"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_MarkRead(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	n := &notification.Notification{
		ActorID:     actorID,
		RecipientID: recipientID,
		Action:      notification.ActionMessage,
		Title:       "hello",
	}
	require.NoError(t, service.CreateNotification(context.Background(), n))

	require.NoError(t, service.MarkRead(context.Background(), n.ID))
	assert.True(t, repo.stored[0].IsRead)
}
