package rest

import (
	"context"
	"testing"

	"github.com/buzkaaclicker/folio/mock"
	"github.com/buzkaaclicker/folio/stats"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatsController(t *testing.T) {
	assert := assert.New(t)

	app := newTestApp()
	controller := StatsController{
		Subscribers: mock.StatCounter{CountFn: func(ctx context.Context) int64 { return 48213 }},
		Members:     stats.Telegram{},
	}
	controller.InstallTo(app)

	cases := []struct {
		target string
		body   string
	}{
		{"/stats/video-subscribers", `{"subscriberCount":48213}`},
		{"/stats/channel-members", `{"memberCount":1}`},
	}
	for _, tc := range cases {
		resp, err := app.Test(jsonRequest("GET", tc.target, ""))
		if !assert.NoError(err) {
			return
		}
		assert.Equal(fiber.StatusOK, resp.StatusCode)
		assert.Equal(tc.body, readBody(t, resp))
	}
}
