package follow

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AGBR121/social-media-API/internal/platform/database/schema"
	"github.com/AGBR121/social-media-API/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, e *Edge) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		schema.SocialFollow.Table, schema.SocialFollow.ID,
		schema.SocialFollow.FollowerID, schema.SocialFollow.FollowingID,
		schema.SocialFollow.CreatedAt,
		schema.SocialFollow.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, e.ID, e.FollowerID, e.FollowingID).Scan(&e.CreatedAt)
	return dberr.Wrap(err, "create_follow")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialFollow.Table, schema.SocialFollow.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_follow")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, followerID, followingID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE %s = $1 AND %s = $2
		)
	`,
		schema.SocialFollow.Table, schema.SocialFollow.FollowerID, schema.SocialFollow.FollowingID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, followerID, followingID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "follow_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) ListFollowees(context context.Context, followerID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.SocialFollow.FollowingID, schema.SocialFollow.Table,
		schema.SocialFollow.FollowerID, schema.SocialFollow.CreatedAt,
	)

	return repository.queryIDs(context, query, "list_followees", followerID)
}

func (repository *PostgresRepository) ListFollowers(context context.Context, followingID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.SocialFollow.FollowerID, schema.SocialFollow.Table,
		schema.SocialFollow.FollowingID, schema.SocialFollow.CreatedAt,
	)

	return repository.queryIDs(context, query, "list_followers", followingID)
}

func (repository *PostgresRepository) queryIDs(context context.Context, query, action string, args ...any) ([]string, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_follow_id")
		}
		ids = append(ids, id)
	}

	return ids, nil
}
