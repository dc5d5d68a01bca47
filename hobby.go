package folio

import (
	"context"
	"time"
)

const TableHobbies = "hobbies"

type HobbyId int64

// Symbolic icon name rendered next to a hobby.
type HobbyIcon string

const (
	IconCamera   HobbyIcon = "camera"
	IconBookOpen HobbyIcon = "book-open"
	IconMountain HobbyIcon = "mountain"
	IconCode     HobbyIcon = "code"
	IconMusic    HobbyIcon = "music"
	IconGamepad  HobbyIcon = "gamepad2"
	IconUtensils HobbyIcon = "utensils"
	IconPlane    HobbyIcon = "plane"
	IconFilm     HobbyIcon = "film"
	IconPalette  HobbyIcon = "palette"
	IconDumbbell HobbyIcon = "dumbbell"
	IconHeart    HobbyIcon = "heart"
	IconCoffee   HobbyIcon = "coffee"
	IconBike     HobbyIcon = "bike"
)

var HobbyIcons = []HobbyIcon{
	IconCamera, IconBookOpen, IconMountain, IconCode, IconMusic, IconGamepad, IconUtensils,
	IconPlane, IconFilm, IconPalette, IconDumbbell, IconHeart, IconCoffee, IconBike,
}

// Known reports whether the icon renders. Unknown names are kept as is but show no icon.
func (i HobbyIcon) Known() bool {
	for _, known := range HobbyIcons {
		if i == known {
			return true
		}
	}
	return false
}

type Hobby struct {
	Id          HobbyId   `validate:"gt=0"`
	ProfileId   ProfileId `validate:"gt=0"`
	Name        string    `validate:"required"`
	Icon        HobbyIcon
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type HobbyFields struct {
	ProfileId   ProfileId `validate:"gt=0"`
	Name        string    `validate:"required"`
	Icon        HobbyIcon
	Description string
}

// Partial hobby update. Nil fields are left untouched.
type HobbyPatch struct {
	Name        *string
	Icon        *HobbyIcon
	Description *string
	UpdatedAt   time.Time
}

func (p HobbyPatch) Validate() error {
	return RequireText("name", p.Name)
}

type HobbyStore interface {
	// Oldest first. Zero profileId lists hobbies of every profile.
	List(ctx context.Context, profileId ProfileId) ([]Hobby, error)

	Create(ctx context.Context, fields HobbyFields) (Hobby, error)

	Update(ctx context.Context, id HobbyId, patch HobbyPatch) (Hobby, error)

	// ErrNotFound when no hobby has the id.
	Delete(ctx context.Context, id HobbyId) error
}

type HobbyRepository interface {
	List(ctx context.Context, profileId ProfileId) []Hobby

	Create(ctx context.Context, fields HobbyFields) (Hobby, error)

	Update(ctx context.Context, id HobbyId, patch HobbyPatch) (Hobby, error)

	Delete(ctx context.Context, id HobbyId) error
}
