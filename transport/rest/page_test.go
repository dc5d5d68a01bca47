package rest

import (
	"context"
	"testing"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/buzkaaclicker/folio/inmem"
	"github.com/buzkaaclicker/folio/mock"
	"github.com/buzkaaclicker/folio/repository"
	"github.com/buzkaaclicker/folio/stats"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestPageControllerFreshEnvironment(t *testing.T) {
	assert := assert.New(t)

	projects := inmem.NewProjectStore()
	projects.Missing = true
	app := newTestApp()
	controller := PageController{
		Profiles: &repository.Profiles{Store: inmem.NewProfileStore()},
		Hobbies:  &repository.Hobbies{Store: inmem.NewHobbyStore()},
		Projects: &repository.Projects{Store: projects},
		Board:    &stats.Board{},
	}
	controller.InstallTo(app)

	resp, err := app.Test(jsonRequest("GET", "/page", ""))
	if !assert.NoError(err) {
		return
	}
	assert.Equal(fiber.StatusOK, resp.StatusCode)
	var page pageJson
	decodeResponse(t, resp, &page)
	assert.Equal(folio.FallbackProfile().Name, page.Profile.Name)
	assert.Len(page.Hobbies, len(folio.FallbackHobbies()))
	assert.Len(page.Projects, 3)
	assert.True(page.UsingFallbackProjects)
	assert.Len(page.Skills, len(folio.Skills()))
	assert.Equal(int64(1), page.Stats.SubscriberCount)
	assert.Equal(int64(1), page.Stats.MemberCount)
	assert.Zero(page.Stats.UpdatedAt)
}

func TestPageControllerStoredContent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	profiles := &repository.Profiles{Store: inmem.NewProfileStore()}
	hobbies := &repository.Hobbies{Store: inmem.NewHobbyStore()}
	projects := &repository.Projects{Store: inmem.NewProjectStore()}

	profile, err := profiles.Create(ctx, folio.ProfileFields{Name: "Ada", Title: "Editor"})
	if !assert.NoError(err) {
		return
	}
	_, err = hobbies.Create(ctx, folio.HobbyFields{ProfileId: profile.Id, Name: "Chess", Icon: folio.IconGamepad})
	assert.NoError(err)
	_, err = hobbies.Create(ctx, folio.HobbyFields{ProfileId: profile.Id + 1, Name: "Baking"})
	assert.NoError(err)
	_, err = projects.Create(ctx, folio.ProjectFields{Title: "Reel", Description: "Showreel", Link: "https://example.com/reel"})
	assert.NoError(err)

	board := &stats.Board{}
	polledAt := time.Unix(1700000000, 0)
	board.Record(folio.StatsSnapshot{Subscribers: 48213, Members: 1}, polledAt)

	app := newTestApp()
	controller := PageController{Profiles: profiles, Hobbies: hobbies, Projects: projects, Board: board}
	controller.InstallTo(app)

	resp, err := app.Test(jsonRequest("GET", "/page", ""))
	if !assert.NoError(err) {
		return
	}
	var page pageJson
	decodeResponse(t, resp, &page)
	assert.Equal("Ada", page.Profile.Name)
	if assert.Len(page.Hobbies, 1) {
		assert.Equal("Chess", page.Hobbies[0].Name)
	}
	if assert.Len(page.Projects, 1) {
		assert.Equal("Reel", page.Projects[0].Title)
	}
	assert.False(page.UsingFallbackProjects)
	assert.Equal(int64(48213), page.Stats.SubscriberCount)
	assert.Equal(polledAt.Unix(), page.Stats.UpdatedAt)
}

func TestPageControllerScopesHobbiesToProfile(t *testing.T) {
	assert := assert.New(t)

	var scopedTo folio.ProfileId
	app := newTestApp()
	controller := PageController{
		Profiles: mock.ProfileRepository{GetFn: func(ctx context.Context) folio.Profile {
			return folio.Profile{Id: 7, Name: "Ada", Title: "Editor"}
		}},
		Hobbies: mock.HobbyRepository{ListFn: func(ctx context.Context, profileId folio.ProfileId) []folio.Hobby {
			scopedTo = profileId
			return []folio.Hobby{{Id: 1, ProfileId: profileId, Name: "Chess"}}
		}},
		Projects: mock.ProjectRepository{ListFn: func(ctx context.Context) []folio.Project {
			return folio.FallbackProjects()
		}},
		Board: &stats.Board{},
	}
	controller.InstallTo(app)

	resp, err := app.Test(jsonRequest("GET", "/page", ""))
	if !assert.NoError(err) {
		return
	}
	var page pageJson
	decodeResponse(t, resp, &page)
	assert.Equal(folio.ProfileId(7), scopedTo)
	if assert.Len(page.Hobbies, 1) {
		assert.Equal(int64(7), page.Hobbies[0].ProfileId)
	}
	assert.True(page.UsingFallbackProjects)
}
