package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/dbx"
	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db  dbx.DBTX
	obs dbx.Observer
}

func NewPostgresRepository(db dbx.DBTX, obs dbx.Observer) *PostgresRepository {
	if obs == nil {
		obs = dbx.NopObserver{}
	}
	return &PostgresRepository{db: db, obs: obs}
}

const selectUser = `SELECT id, email, password_hash, full_name, phone, created_at, updated_at FROM users`

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.obs.ObserveDB("users.find_by_email", func() error {
		var err error
		user, err = scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
		return err
	})
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user *models.User
	err := r.obs.ObserveDB("users.find_by_id", func() error {
		var err error
		user, err = scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
		return err
	})
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return user, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (email, password_hash, full_name, phone)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING id, created_at, updated_at
		 `

	created := models.User{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     models.OptionalString(deref(user.FullName)),
		Phone:        models.OptionalString(deref(user.Phone)),
	}
	err := r.obs.ObserveDB("users.insert", func() error {
		return r.db.QueryRowContext(ctx, query,
			user.Email, user.PasswordHash, deref(user.FullName), deref(user.Phone)).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

func (r *PostgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.obs.ObserveDB("users.exists_by_id", func() error {
		return r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		user     models.User
		fullName sql.NullString
		phone    sql.NullString
	)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &fullName, &phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if fullName.Valid {
		user.FullName = &fullName.String
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	return &user, nil
}

func mapLookupErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

// isUniqueViolation falls back to the server's "duplicate key" wording for
// errors that do not unwrap to a *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
