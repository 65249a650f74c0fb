package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/jobportal/pkg/logger"
	"github.com/dmitrymomot/jobportal/pkg/pg"
	"github.com/dmitrymomot/jobportal/pkg/session"
)

// Result is what a successful registration or login hands back: the new
// session's raw token for the cookie and the user's role.
type Result struct {
	UserID uuid.UUID
	Role   Role
	Token  string
}

// Service registers users and logs them in.
type Service struct {
	db       pg.Pool
	storage  Storage
	sessions *session.Manager
	hasher   Hasher
	log      *slog.Logger
}

func NewService(db pg.Pool, storage Storage, sessions *session.Manager, hasher Hasher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		db:       db,
		storage:  storage,
		sessions: sessions,
		hasher:   hasher,
		log:      log.With(logger.Component("account")),
	}
}

// Register validates the input, creates the user with its role profile and
// opens a session, all in one transaction. The returned token is only
// meaningful once Register returns without error.
func (s *Service) Register(ctx context.Context, in RegisterInput, meta session.ClientMetadata) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	usernameTaken, emailTaken, err := s.storage.Taken(ctx, nil, in.Username, in.Email)
	if err != nil {
		return Result{}, errors.Join(ErrRegistration, err)
	}
	switch {
	case usernameTaken:
		return Result{}, ErrUsernameTaken
	case emailTaken:
		return Result{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Result{}, errors.Join(ErrRegistration, err)
	}

	res := Result{UserID: uuid.New(), Role: in.Role}
	err = pg.InTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.storage.InsertUser(ctx, tx, newUser{
			ID:           res.UserID,
			Name:         in.Name,
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         in.Role,
		}); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		var profileErr error
		switch in.Role {
		case RoleEmployer:
			profileErr = s.storage.InsertEmployer(ctx, tx, res.UserID)
		case RoleApplicant:
			profileErr = s.storage.InsertApplicant(ctx, tx, res.UserID)
		default:
			profileErr = ErrUnsupportedRole
		}
		if profileErr != nil {
			return fmt.Errorf("insert %s profile: %w", in.Role, profileErr)
		}

		raw, err := s.sessions.CreateTx(ctx, tx, res.UserID, meta)
		if err != nil {
			return err
		}
		res.Token = raw
		return nil
	})
	if err != nil {
		// A concurrent registration can still win the unique index.
		switch pg.ConstraintName(err) {
		case usernameConstraint:
			return Result{}, ErrUsernameTaken
		case emailConstraint:
			return Result{}, ErrEmailTaken
		}
		return Result{}, errors.Join(ErrRegistration, err)
	}

	s.log.InfoContext(ctx, "user registered", logger.UserID(res.UserID), logger.Role(res.Role))
	return res, nil
}

// Login checks the credentials and opens a new session.
func (s *Service) Login(ctx context.Context, in LoginInput, meta session.ClientMetadata) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	creds, err := s.storage.CredentialsByEmail(ctx, nil, in.Email)
	if err != nil && !pg.IsNotFoundError(err) {
		return Result{}, errors.Join(ErrLogin, err)
	}
	if err := s.hasher.Compare(creds.PasswordHash, in.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, errors.Join(ErrLogin, err)
	}

	raw, err := s.sessions.Create(ctx, creds.ID, meta)
	if err != nil {
		return Result{}, errors.Join(ErrLogin, err)
	}

	s.log.InfoContext(ctx, "user logged in", logger.UserID(creds.ID))
	return Result{UserID: creds.ID, Role: creds.Role, Token: raw}, nil
}
