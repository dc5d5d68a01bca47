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

type Hobby struct {
	Id          int64     `json:"id"`
	ProfileId   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (h Hobby) ToDomain() folio.Hobby {
	return folio.Hobby{
		Id:          folio.HobbyId(h.Id),
		ProfileId:   folio.ProfileId(h.ProfileId),
		Name:        h.Name,
		Icon:        folio.HobbyIcon(h.Icon),
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

type HobbyStore struct {
	Client *Client
}

var _ folio.HobbyStore = (*HobbyStore)(nil)

func (s *HobbyStore) List(ctx context.Context, profileId folio.ProfileId) ([]folio.Hobby, error) {
	query := url.Values{"select": {"*"}, "order": {"created_at.asc"}}
	if profileId != 0 {
		query.Set("profile_id", eq(int64(profileId)))
	}
	var rows []Hobby
	if err := s.Client.rest(ctx, fiber.MethodGet, folio.TableHobbies, query, nil, &rows); err != nil {
		return nil, fmt.Errorf("select hobbies: %w", err)
	}
	return hobbiesToDomain(rows)
}

func (s *HobbyStore) Create(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error) {
	type Insert struct {
		ProfileId   int64  `json:"profile_id"`
		Name        string `json:"name"`
		Icon        string `json:"icon,omitempty"`
		Description string `json:"description,omitempty"`
	}
	var rows []Hobby
	err := s.Client.rest(ctx, fiber.MethodPost, folio.TableHobbies, nil, []Insert{{
		ProfileId:   int64(fields.ProfileId),
		Name:        fields.Name,
		Icon:        string(fields.Icon),
		Description: fields.Description,
	}}, &rows)
	if err != nil {
		return folio.Hobby{}, fmt.Errorf("insert hobby: %w", err)
	}
	return singleHobby(rows, errors.New("insert returned no row"))
}

func (s *HobbyStore) Update(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error) {
	set := map[string]interface{}{"updated_at": patch.UpdatedAt}
	putText(set, "name", patch.Name)
	if patch.Icon != nil {
		set["icon"] = string(*patch.Icon)
	}
	putText(set, "description", patch.Description)

	var rows []Hobby
	query := url.Values{"id": {eq(int64(id))}}
	if err := s.Client.rest(ctx, fiber.MethodPatch, folio.TableHobbies, query, set, &rows); err != nil {
		return folio.Hobby{}, fmt.Errorf("update hobby: %w", err)
	}
	return singleHobby(rows, folio.ErrNotFound)
}

func (s *HobbyStore) Delete(ctx context.Context, id folio.HobbyId) error {
	var rows []Hobby
	query := url.Values{"id": {eq(int64(id))}}
	if err := s.Client.rest(ctx, fiber.MethodDelete, folio.TableHobbies, query, nil, &rows); err != nil {
		return fmt.Errorf("delete hobby: %w", err)
	}
	if len(rows) == 0 {
		return folio.ErrNotFound
	}
	return nil
}

func hobbiesToDomain(rows []Hobby) ([]folio.Hobby, error) {
	hobbies := make([]folio.Hobby, len(rows))
	for i, row := range rows {
		hobbies[i] = row.ToDomain()
		if err := folio.ValidateRow(folio.TableHobbies, hobbies[i]); err != nil {
			return nil, err
		}
	}
	return hobbies, nil
}

func singleHobby(rows []Hobby, errEmpty error) (folio.Hobby, error) {
	if len(rows) == 0 {
		return folio.Hobby{}, errEmpty
	}
	hobbies, err := hobbiesToDomain(rows[:1])
	if err != nil {
		return folio.Hobby{}, err
	}
	return hobbies[0], nil
}
