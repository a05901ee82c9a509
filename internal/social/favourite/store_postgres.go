package favourite

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

// NewPostgresRepository creates a PostgreSQL-backed favourite repository.
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (repository *postgresRepository) Create(context context.Context, f *Favourite) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)`,
		schema.SocialFavourite.Table,
		schema.SocialFavourite.ID, schema.SocialFavourite.UserID, schema.SocialFavourite.PostID, schema.SocialFavourite.CreatedAt,
	)

	_, err := repository.db.Exec(context, query, f.ID, f.UserID, f.PostID, f.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create favourite")
	}
	return nil
}

func (repository *postgresRepository) DeleteByUserPost(context context.Context, userID, postID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialFavourite.Table, schema.SocialFavourite.UserID, schema.SocialFavourite.PostID)

	tag, err := repository.db.Exec(context, query, userID, postID)
	if err != nil {
		return dberr.Wrap(err, "delete favourite")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *postgresRepository) ListByUser(context context.Context, userID string) ([]*Favourite, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		schema.SocialFavourite.ID, schema.SocialFavourite.UserID, schema.SocialFavourite.PostID, schema.SocialFavourite.CreatedAt,
		schema.SocialFavourite.Table,
		schema.SocialFavourite.UserID,
		schema.SocialFavourite.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list favourites")
	}
	defer rows.Close()

	favourites := make([]*Favourite, 0)
	for rows.Next() {
		var f Favourite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PostID, &f.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan favourite")
		}
		favourites = append(favourites, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate favourites")
	}
	return favourites, nil
}
