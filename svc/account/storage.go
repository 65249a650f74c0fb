package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jobportal/pkg/pg"
)

// Unique constraint names from the users table migration.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

type newUser struct {
	ID           uuid.UUID
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
}

type credentials struct {
	ID           uuid.UUID
	PasswordHash string
	Role         Role
}

// Storage is the persistence the account service needs. q is an optional
// transaction handle; nil runs on the storage's own pool.
type Storage interface {
	Taken(ctx context.Context, q pg.Querier, username, email string) (usernameTaken, emailTaken bool, err error)
	InsertUser(ctx context.Context, q pg.Querier, u newUser) error
	InsertApplicant(ctx context.Context, q pg.Querier, userID uuid.UUID) error
	InsertEmployer(ctx context.Context, q pg.Querier, userID uuid.UUID) error
	CredentialsByEmail(ctx context.Context, q pg.Querier, email string) (credentials, error)
}

type pgStorage struct {
	db      pg.Querier
	timeout time.Duration
}

// NewStorage returns the PostgreSQL implementation of Storage.
func NewStorage(db pg.Querier, timeout time.Duration) Storage {
	return &pgStorage{db: db, timeout: timeout}
}

func (s *pgStorage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *pgStorage) Taken(ctx context.Context, q pg.Querier, username, email string) (bool, bool, error) {
	const query = `
	SELECT
		EXISTS (SELECT 1 FROM users WHERE username = $1),
		EXISTS (SELECT 1 FROM users WHERE email = $2)
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var usernameTaken, emailTaken bool
	err := pg.Pick(q, s.db).QueryRow(ctx, query, username, email).Scan(&usernameTaken, &emailTaken)
	return usernameTaken, emailTaken, err
}

func (s *pgStorage) InsertUser(ctx context.Context, q pg.Querier, u newUser) error {
	const query = `
	INSERT INTO users (id, name, username, email, password, role)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx, query, u.ID, u.Name, u.Username, u.Email, u.PasswordHash, string(u.Role))
	return err
}

func (s *pgStorage) InsertApplicant(ctx context.Context, q pg.Querier, userID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx, `INSERT INTO applicants (id) VALUES ($1)`, userID)
	return err
}

func (s *pgStorage) InsertEmployer(ctx context.Context, q pg.Querier, userID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx, `INSERT INTO employers (id) VALUES ($1)`, userID)
	return err
}

func (s *pgStorage) CredentialsByEmail(ctx context.Context, q pg.Querier, email string) (credentials, error) {
	const query = `
	SELECT id, password, role
	FROM users
	WHERE email = $1 AND deleted_at IS NULL
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var c credentials
	var role string
	if err := pg.Pick(q, s.db).QueryRow(ctx, query, email).Scan(&c.ID, &c.PasswordHash, &role); err != nil {
		return credentials{}, err
	}
	c.Role = Role(role)
	return c, nil
}
