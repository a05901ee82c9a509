package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AGBR121/social-media-API/internal/platform/database/schema"
	"github.com/AGBR121/social-media-API/internal/platform/dberr"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed like repository.
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (repository *postgresRepository) Create(context context.Context, l *Like) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)`,
		schema.SocialLike.Table,
		schema.SocialLike.ID, schema.SocialLike.PostID, schema.SocialLike.UserID, schema.SocialLike.CreatedAt,
	)
	if _, err := transaction.Exec(context, insert, l.ID, l.PostID, l.UserID, l.CreatedAt); err != nil {
		return dberr.Wrap(err, "create like")
	}

	bump := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.SocialPost.Table, schema.SocialPost.LikeCount, schema.SocialPost.LikeCount, schema.SocialPost.ID)
	tag, err := transaction.Exec(context, bump, l.PostID)
	if err != nil {
		return dberr.Wrap(err, "increment like count")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}
	return nil
}

func (repository *postgresRepository) DeleteByPostUser(context context.Context, postID, userID string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	remove := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialLike.Table, schema.SocialLike.PostID, schema.SocialLike.UserID)
	tag, err := transaction.Exec(context, remove, postID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete like")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	// The counter never drops below zero even if it has drifted.
	drop := fmt.Sprintf(`UPDATE %s SET %s = GREATEST(%s - 1, 0) WHERE %s = $1`,
		schema.SocialPost.Table, schema.SocialPost.LikeCount, schema.SocialPost.LikeCount, schema.SocialPost.ID)
	if _, err := transaction.Exec(context, drop, postID); err != nil {
		return dberr.Wrap(err, "decrement like count")
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}
	return nil
}

func (repository *postgresRepository) ListByPost(context context.Context, postID string) ([]*Like, error) {
	return repository.list(context, schema.SocialLike.PostID, postID)
}

func (repository *postgresRepository) ListByUser(context context.Context, userID string) ([]*Like, error) {
	return repository.list(context, schema.SocialLike.UserID, userID)
}

func (repository *postgresRepository) list(context context.Context, column, value string) ([]*Like, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		schema.SocialLike.ID, schema.SocialLike.PostID, schema.SocialLike.UserID, schema.SocialLike.CreatedAt,
		schema.SocialLike.Table,
		column,
		schema.SocialLike.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, value)
	if err != nil {
		return nil, dberr.Wrap(err, "list likes")
	}
	defer rows.Close()

	likes := make([]*Like, 0)
	for rows.Next() {
		var l Like
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID, &l.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan like")
		}
		likes = append(likes, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate likes")
	}
	return likes, nil
}
