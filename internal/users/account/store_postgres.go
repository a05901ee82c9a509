// Copyright (c) 2026 AGBR121. All rights reserved.

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AGBR121/social-media-API/internal/platform/database/schema"
	"github.com/AGBR121/social-media-API/internal/platform/dberr"
)

// PostgresRepository implements [Repository] against the users.account table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new account PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByID retrieves a user record by their unique ID.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.DisplayName,
		schema.UserAccount.AvatarURL, schema.UserAccount.Bio,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)
	u := &User{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&u.ID, &u.Username, &u.DisplayName, &u.AvatarURL, &u.Bio, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_account")
	}
	return u, nil
}

// DisplayName resolves the display identity of a user.
//
// COALESCE to the username so accounts that never set a display name still
// resolve to something presentable.
func (repository *PostgresRepository) DisplayName(context context.Context, id string) (string, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(NULLIF(%s, ''), %s)
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.UserAccount.DisplayName, schema.UserAccount.Username,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	var name string
	err := repository.db.QueryRow(context, query, id).Scan(&name)

	return name, dberr.Wrap(err, "get_display_name")
}
