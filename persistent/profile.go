package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/uptrace/bun"
)

type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:pr"`

	Id        int64     `bun:",pk,autoincrement"`
	Name      string    `bun:",notnull"`
	Title     string    `bun:",notnull"`
	Bio       string    `bun:",nullzero"`
	Location  string    `bun:",nullzero"`
	AvatarUrl string    `bun:",nullzero"`
	ResumeUrl string    `bun:",nullzero"`
	Email     string    `bun:",nullzero"`
	Phone     string    `bun:",nullzero"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (p *Profile) ToDomain() folio.Profile {
	return folio.Profile{
		Id:        folio.ProfileId(p.Id),
		Name:      p.Name,
		Title:     p.Title,
		Bio:       p.Bio,
		Location:  p.Location,
		AvatarUrl: p.AvatarUrl,
		ResumeUrl: p.ResumeUrl,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type ProfileStore struct {
	DB *bun.DB
}

var _ folio.ProfileStore = (*ProfileStore)(nil)

func (s *ProfileStore) One(ctx context.Context) (folio.Profile, error) {
	row := new(Profile)
	err := s.DB.NewSelect().
		Model(row).
		Order("pr.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return folio.Profile{}, fmt.Errorf("select profile: %w", mapRowError(err))
	}

	profile := row.ToDomain()
	if err := folio.ValidateRow(folio.TableProfiles, profile); err != nil {
		return folio.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileStore) Create(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error) {
	row := &Profile{
		Name:      fields.Name,
		Title:     fields.Title,
		Bio:       fields.Bio,
		Location:  fields.Location,
		AvatarUrl: fields.AvatarUrl,
		ResumeUrl: fields.ResumeUrl,
		Email:     fields.Email,
		Phone:     fields.Phone,
	}
	_, err := s.DB.NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return folio.Profile{}, fmt.Errorf("insert profile: %w", mapError(err))
	}
	return row.ToDomain(), nil
}

func (s *ProfileStore) Update(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error) {
	row := new(Profile)
	q := s.DB.NewUpdate().
		Model(row).
		Set("updated_at = ?", patch.UpdatedAt).
		Where("pr.id = ?", id)
	q = setText(q, "name", patch.Name)
	q = setText(q, "title", patch.Title)
	q = setText(q, "bio", patch.Bio)
	q = setText(q, "location", patch.Location)
	q = setText(q, "avatar_url", patch.AvatarUrl)
	q = setText(q, "resume_url", patch.ResumeUrl)
	q = setText(q, "email", patch.Email)
	q = setText(q, "phone", patch.Phone)

	res, err := q.Returning("*").Exec(ctx)
	if err != nil {
		return folio.Profile{}, fmt.Errorf("update profile: %w", mapRowError(err))
	}
	if err := requireAffected(res); err != nil {
		return folio.Profile{}, fmt.Errorf("update profile %d: %w", id, err)
	}
	return row.ToDomain(), nil
}
