package employer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jobportal/pkg/pg"
)

// Storage reads and writes employer profiles. q is an optional transaction
// handle; nil runs on the storage's own pool.
type Storage interface {
	// Find returns the profile and the owner's avatar.
	Find(ctx context.Context, q pg.Querier, id uuid.UUID) (Profile, *string, error)
	Update(ctx context.Context, q pg.Querier, id uuid.UUID, in UpdateInput) error
	UpdateAvatar(ctx context.Context, q pg.Querier, id uuid.UUID, avatarURL *string) error
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

func (s *pgStorage) Find(ctx context.Context, q pg.Querier, id uuid.UUID) (Profile, *string, error) {
	const query = `
	SELECT
		e.id, e.name, e.description, e.banner_image_url, e.organization_type, e.team_size,
		e.year_of_establishment, e.website_url, e.location, e.created_at, e.updated_at,
		u.avatar_url
	FROM employers e
	INNER JOIN users u ON u.id = e.id
	WHERE e.id = $1 AND e.deleted_at IS NULL AND u.deleted_at IS NULL
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		p      Profile
		avatar *string
	)
	err := pg.Pick(q, s.db).QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.BannerImageURL, &p.OrganizationType, &p.TeamSize,
		&p.YearOfEstablishment, &p.WebsiteURL, &p.Location, &p.CreatedAt, &p.UpdatedAt,
		&avatar,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Profile{}, nil, ErrProfileNotFound
		}
		return Profile{}, nil, err
	}
	return p, avatar, nil
}

func (s *pgStorage) Update(ctx context.Context, q pg.Querier, id uuid.UUID, in UpdateInput) error {
	const query = `
	UPDATE employers SET
		name = $2,
		description = $3,
		organization_type = $4,
		team_size = $5,
		year_of_establishment = $6,
		website_url = $7,
		location = $8,
		banner_image_url = $9,
		updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := pg.Pick(q, s.db).Exec(ctx, query,
		id,
		in.Name,
		in.Description,
		nullable(in.OrganizationType),
		nullable(in.TeamSize),
		in.year(),
		nullable(in.WebsiteURL),
		nullable(in.Location),
		nullable(in.BannerImageURL),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (s *pgStorage) UpdateAvatar(ctx context.Context, q pg.Querier, id uuid.UUID, avatarURL *string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx,
		`UPDATE users SET avatar_url = $2, updated_at = now() WHERE id = $1`,
		id, avatarURL,
	)
	return err
}
