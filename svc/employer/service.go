package employer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/jobportal/pkg/logger"
	"github.com/dmitrymomot/jobportal/pkg/pg"
	"github.com/dmitrymomot/jobportal/pkg/session"
	"github.com/dmitrymomot/jobportal/svc/account"
)

// Service manages the signed in employer's own profile.
type Service struct {
	db      pg.Pool
	storage Storage
	log     *slog.Logger
}

func NewService(db pg.Pool, storage Storage, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{db: db, storage: storage, log: log.With(logger.Component("employer"))}
}

// Profile returns the employer profile of u.
func (s *Service) Profile(ctx context.Context, u *session.AuthenticatedUser) (Details, error) {
	if !isEmployer(u) {
		return Details{}, ErrNotEmployer
	}

	p, avatar, err := s.storage.Find(ctx, nil, u.ID)
	if err != nil {
		return Details{}, err
	}
	return newDetails(p, avatar), nil
}

// Update validates in and writes the employer row and the user's avatar in
// one transaction.
func (s *Service) Update(ctx context.Context, u *session.AuthenticatedUser, in UpdateInput) error {
	if !isEmployer(u) {
		return ErrNotEmployer
	}
	if err := in.Validate(); err != nil {
		return err
	}

	err := pg.InTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.storage.Update(ctx, tx, u.ID, in); err != nil {
			return err
		}
		return s.storage.UpdateAvatar(ctx, tx, u.ID, nullable(in.AvatarURL))
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return err
		}
		return errors.Join(ErrUpdateFailed, err)
	}

	s.log.InfoContext(ctx, "employer profile updated", logger.UserID(u.ID))
	return nil
}

func isEmployer(u *session.AuthenticatedUser) bool {
	return u != nil && account.Role(u.Role) == account.RoleEmployer
}
