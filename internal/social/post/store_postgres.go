package post

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

// columnList is the canonical SELECT list for hydrating a Post.
func columnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.SocialPost.ID, schema.SocialPost.OwnerID, schema.SocialPost.Title,
		schema.SocialPost.Description, schema.SocialPost.IsPublic, schema.SocialPost.LikeCount,
		schema.SocialPost.CreatedAt, schema.SocialPost.UpdatedAt,
	)
}

func scanPost(row interface{ Scan(dest ...any) error }) (*Post, error) {
	p := &Post{}
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.IsPublic,
		&p.LikeCount, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (repository *PostgresRepository) Create(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, 0, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.SocialPost.Table, schema.SocialPost.ID, schema.SocialPost.OwnerID,
		schema.SocialPost.Title, schema.SocialPost.Description, schema.SocialPost.IsPublic,
		schema.SocialPost.LikeCount, schema.SocialPost.CreatedAt, schema.SocialPost.UpdatedAt,
		schema.SocialPost.LikeCount, schema.SocialPost.CreatedAt, schema.SocialPost.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.OwnerID, p.Title, p.Description, p.IsPublic,
	).Scan(&p.LikeCount, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		columnList(), schema.SocialPost.Table, schema.SocialPost.ID,
	)

	p, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}
	return p, nil
}

func (repository *PostgresRepository) Update(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.SocialPost.Table,
		schema.SocialPost.Title, schema.SocialPost.Description, schema.SocialPost.IsPublic,
		schema.SocialPost.UpdatedAt,
		schema.SocialPost.ID,
		schema.SocialPost.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Title, p.Description, p.IsPublic).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SocialPost.Table, schema.SocialPost.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string) ([]*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		columnList(), schema.SocialPost.Table,
		schema.SocialPost.OwnerID, schema.SocialPost.UpdatedAt,
	)

	return repository.queryPosts(context, query, "list_posts_by_owner", ownerID)
}

func (repository *PostgresRepository) ListPublicByOwner(context context.Context, ownerID string, skip, take int) ([]*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = TRUE
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		columnList(), schema.SocialPost.Table,
		schema.SocialPost.OwnerID, schema.SocialPost.IsPublic,
		schema.SocialPost.UpdatedAt,
	)

	return repository.queryPosts(context, query, "list_public_posts", ownerID, take, skip)
}

func (repository *PostgresRepository) queryPosts(context context.Context, query, action string, args ...any) ([]*Post, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, nil
}
