package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AGBR121/social-media-API/internal/platform/database/schema"
	"github.com/AGBR121/social-media-API/internal/platform/dberr"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed notification repository.
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func columnList() string {
	return strings.Join(schema.SocialNotification.Columns(), ", ")
}

func (repository *postgresRepository) Create(context context.Context, n *Notification) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.SocialNotification.Table, columnList(),
	)

	_, err := repository.db.Exec(context, query,
		n.ID, n.ActorID, n.RecipientID, n.IsRead, string(n.Action),
		n.Title, n.Description, n.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create notification")
	}
	return nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialNotification.Table, schema.SocialNotification.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete notification")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *postgresRepository) ListByRecipient(context context.Context, recipientID string) ([]*Notification, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		columnList(),
		schema.SocialNotification.Table,
		schema.SocialNotification.RecipientID,
		schema.SocialNotification.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, recipientID)
	if err != nil {
		return nil, dberr.Wrap(err, "list notifications")
	}
	defer rows.Close()

	notifications := make([]*Notification, 0)
	for rows.Next() {
		var n Notification
		var action string
		if err := rows.Scan(
			&n.ID, &n.ActorID, &n.RecipientID, &n.IsRead, &action,
			&n.Title, &n.Description, &n.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan notification")
		}
		n.Action = Action(action)
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate notifications")
	}
	return notifications, nil
}

func (repository *postgresRepository) MarkRead(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.SocialNotification.Table,
		schema.SocialNotification.IsRead,
		schema.SocialNotification.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "mark notification read")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
