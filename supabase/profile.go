package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type Profile struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	AvatarUrl string    `json:"avatar_url"`
	ResumeUrl string    `json:"resume_url"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Profile) ToDomain() folio.Profile {
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
	Client *Client
}

var _ folio.ProfileStore = (*ProfileStore)(nil)

func (s *ProfileStore) One(ctx context.Context) (folio.Profile, error) {
	var rows []Profile
	query := url.Values{"select": {"*"}, "order": {"id.asc"}, "limit": {"1"}}
	if err := s.Client.rest(ctx, fiber.MethodGet, folio.TableProfiles, query, nil, &rows); err != nil {
		return folio.Profile{}, fmt.Errorf("select profile: %w", err)
	}
	return singleProfile(rows, folio.ErrNotFound)
}

func (s *ProfileStore) Create(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error) {
	type Insert struct {
		Name      string `json:"name"`
		Title     string `json:"title"`
		Bio       string `json:"bio,omitempty"`
		Location  string `json:"location,omitempty"`
		AvatarUrl string `json:"avatar_url,omitempty"`
		ResumeUrl string `json:"resume_url,omitempty"`
		Email     string `json:"email,omitempty"`
		Phone     string `json:"phone,omitempty"`
	}
	var rows []Profile
	err := s.Client.rest(ctx, fiber.MethodPost, folio.TableProfiles, nil, []Insert{{
		Name:      fields.Name,
		Title:     fields.Title,
		Bio:       fields.Bio,
		Location:  fields.Location,
		AvatarUrl: fields.AvatarUrl,
		ResumeUrl: fields.ResumeUrl,
		Email:     fields.Email,
		Phone:     fields.Phone,
	}}, &rows)
	if err != nil {
		return folio.Profile{}, fmt.Errorf("insert profile: %w", err)
	}
	return singleProfile(rows, errors.New("insert returned no row"))
}

func (s *ProfileStore) Update(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error) {
	set := map[string]interface{}{"updated_at": patch.UpdatedAt}
	putText(set, "name", patch.Name)
	putText(set, "title", patch.Title)
	putText(set, "bio", patch.Bio)
	putText(set, "location", patch.Location)
	putText(set, "avatar_url", patch.AvatarUrl)
	putText(set, "resume_url", patch.ResumeUrl)
	putText(set, "email", patch.Email)
	putText(set, "phone", patch.Phone)

	var rows []Profile
	query := url.Values{"id": {eq(int64(id))}}
	if err := s.Client.rest(ctx, fiber.MethodPatch, folio.TableProfiles, query, set, &rows); err != nil {
		return folio.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return singleProfile(rows, folio.ErrNotFound)
}

func singleProfile(rows []Profile, errEmpty error) (folio.Profile, error) {
	if len(rows) == 0 {
		return folio.Profile{}, errEmpty
	}
	profile := rows[0].ToDomain()
	if err := folio.ValidateRow(folio.TableProfiles, profile); err != nil {
		return folio.Profile{}, err
	}
	return profile, nil
}
