package folio

import (
	"context"
	"time"
)

const TableProfiles = "profiles"

type ProfileId int64

// Profile of the site owner. Only one row is ever treated as "the" profile.
type Profile struct {
	Id        ProfileId `validate:"gt=0"`
	Name      string    `validate:"required"`
	Title     string    `validate:"required"`
	Bio       string
	Location  string
	AvatarUrl string
	ResumeUrl string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProfileFields struct {
	Name      string `validate:"required"`
	Title     string `validate:"required"`
	Bio       string
	Location  string
	AvatarUrl string `validate:"omitempty,url"`
	ResumeUrl string `validate:"omitempty,url"`
	Email     string `validate:"omitempty,email"`
	Phone     string
}

// Partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name      *string
	Title     *string
	Bio       *string
	Location  *string
	AvatarUrl *string
	ResumeUrl *string
	Email     *string
	Phone     *string
	UpdatedAt time.Time
}

func (p ProfilePatch) Validate() error {
	if err := RequireText("name", p.Name); err != nil {
		return err
	}
	return RequireText("title", p.Title)
}

type ProfileStore interface {
	// Any single profile row, ErrNotFound when the table is empty.
	One(ctx context.Context) (Profile, error)

	Create(ctx context.Context, fields ProfileFields) (Profile, error)

	Update(ctx context.Context, id ProfileId, patch ProfilePatch) (Profile, error)
}

type ProfileRepository interface {
	// The profile or FallbackProfile.
	Get(ctx context.Context) Profile

	Create(ctx context.Context, fields ProfileFields) (Profile, error)

	Update(ctx context.Context, id ProfileId, patch ProfilePatch) (Profile, error)
}
