package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db, nil), mock, db
}

var userColumns = []string{"id", "email", "password_hash", "full_name", "phone", "created_at", "updated_at"}

const (
	qByEmail = `(?s)^SELECT\s+id,\s*email,\s*password_hash,\s*full_name,\s*phone,\s*created_at,\s*updated_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
	qByID    = `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
	qInsert  = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*password_hash,\s*full_name,\s*phone\)\s*VALUES\s*\(\$1,\s*\$2,\s*NULLIF\(\$3,\s*''\),\s*NULLIF\(\$4,\s*''\)\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`
	qExists  = `(?s)^SELECT\s+EXISTS\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\)$`
)

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(qByEmail).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "ana@example.com", "$2a$10$hash", "Ana Ivanova", nil, now, now))

	got, err := repo.FindByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != id || got.PasswordHash != "$2a$10$hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.FullName == nil || *got.FullName != "Ana Ivanova" {
		t.Fatalf("full name not scanned: %+v", got.FullName)
	}
	if got.Phone != nil {
		t.Fatalf("phone should be nil, got %q", *got.Phone)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qByEmail).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(qByID).WithArgs(id).WillReturnError(errors.New("db down"))

	_, err := repo.FindByID(context.Background(), id)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(qInsert).
		WithArgs("ana@example.com", "hash", "", "0888123456").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	u := &models.User{Email: "ana@example.com", PasswordHash: "hash", FullName: models.OptionalString(""), Phone: models.OptionalString("0888123456")}
	got, err := repo.Insert(context.Background(), u)
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got.ID != id || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.FullName != nil || got.Phone == nil {
		t.Fatalf("optional fields: full=%v phone=%v", got.FullName, got.Phone)
	}
	if got == u {
		t.Fatal("Insert returned the caller's user")
	}
	if u.ID != uuid.Nil || !u.CreatedAt.IsZero() {
		t.Fatalf("caller's user was modified: %+v", u)
	}
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs("ana@example.com", "hash", "", "").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Insert(context.Background(), &models.User{Email: "ana@example.com", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestInsert_DuplicateText(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs("ana@example.com", "hash", "", "").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key"`))

	_, err := repo.Insert(context.Background(), &models.User{Email: "ana@example.com", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestInsert_UnrelatedErrorMentioningUnique(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs("ana@example.com", "hash", "", "").
		WillReturnError(errors.New("could not create unique index scratch: out of disk space"))

	_, err := repo.Insert(context.Background(), &models.User{Email: "ana@example.com", PasswordHash: "hash"})
	if err == nil || errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected plain db error, got %v", err)
	}
}

func TestInsert_OtherPgError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs("ana@example.com", "hash", "", "").
		WillReturnError(&pgconn.PgError{Code: "23502", Message: "null value"})

	_, err := repo.Insert(context.Background(), &models.User{Email: "ana@example.com", PasswordHash: "hash"})
	if err == nil || errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected plain db error, got %v", err)
	}
}

func TestExistsByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(qExists).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByID(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("ExistsByID = %v, %v", ok, err)
	}
}

type countingObserver struct{ ops []string }

func (c *countingObserver) ObserveDB(op string, fn func() error) error {
	c.ops = append(c.ops, op)
	return fn()
}

func TestObserverReceivesOps(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	obs := &countingObserver{}
	repo := NewPostgresRepository(db, obs)

	id := uuid.New()
	mock.ExpectQuery(qExists).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	if _, err := repo.ExistsByID(context.Background(), id); err != nil {
		t.Fatalf("ExistsByID error: %v", err)
	}
	if len(obs.ops) != 1 || obs.ops[0] != "users.exists_by_id" {
		t.Fatalf("unexpected ops: %v", obs.ops)
	}
}
