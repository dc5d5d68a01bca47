package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/uptrace/bun"
)

type Hobby struct {
	bun.BaseModel `bun:"table:hobbies,alias:h"`

	Id          int64     `bun:",pk,autoincrement"`
	ProfileId   int64     `bun:",nullzero"`
	Name        string    `bun:",notnull"`
	Icon        string    `bun:",nullzero"`
	Description string    `bun:",nullzero"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (h *Hobby) ToDomain() folio.Hobby {
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
	DB *bun.DB
}

var _ folio.HobbyStore = (*HobbyStore)(nil)

func (s *HobbyStore) List(ctx context.Context, profileId folio.ProfileId) ([]folio.Hobby, error) {
	var rows []Hobby
	q := s.DB.NewSelect().
		Model(&rows).
		Order("h.created_at ASC", "h.id ASC")
	if profileId != 0 {
		q = q.Where("h.profile_id = ?", profileId)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("select hobbies: %w", mapError(err))
	}

	hobbies := make([]folio.Hobby, len(rows))
	for i := range rows {
		hobbies[i] = rows[i].ToDomain()
		if err := folio.ValidateRow(folio.TableHobbies, hobbies[i]); err != nil {
			return nil, err
		}
	}
	return hobbies, nil
}

func (s *HobbyStore) Create(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error) {
	row := &Hobby{
		ProfileId:   int64(fields.ProfileId),
		Name:        fields.Name,
		Icon:        string(fields.Icon),
		Description: fields.Description,
	}
	_, err := s.DB.NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return folio.Hobby{}, fmt.Errorf("insert hobby: %w", mapError(err))
	}
	return row.ToDomain(), nil
}

func (s *HobbyStore) Update(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error) {
	row := new(Hobby)
	q := s.DB.NewUpdate().
		Model(row).
		Set("updated_at = ?", patch.UpdatedAt).
		Where("h.id = ?", id)
	q = setText(q, "name", patch.Name)
	if patch.Icon != nil {
		q = q.Set("icon = ?", string(*patch.Icon))
	}
	q = setText(q, "description", patch.Description)

	res, err := q.Returning("*").Exec(ctx)
	if err != nil {
		return folio.Hobby{}, fmt.Errorf("update hobby: %w", mapRowError(err))
	}
	if err := requireAffected(res); err != nil {
		return folio.Hobby{}, fmt.Errorf("update hobby %d: %w", id, err)
	}
	return row.ToDomain(), nil
}

func (s *HobbyStore) Delete(ctx context.Context, id folio.HobbyId) error {
	res, err := s.DB.NewDelete().
		Model((*Hobby)(nil)).
		Where("h.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete hobby: %w", mapError(err))
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("delete hobby %d: %w", id, err)
	}
	return nil
}
