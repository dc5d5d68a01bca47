package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	YouTubeApi       = "https://www.googleapis.com/youtube/v3"
	DefaultChannelId = "UCseFEz1aC1qWq_YCAy7baAA"
	DefaultTimeout   = 10 * time.Second
)

var (
	ErrNoApiKey        = errors.New("youtube: api key not configured")
	ErrChannelNotFound = errors.New("youtube: channel not found or no statistics available")
	ErrCountHidden     = errors.New("youtube: subscriber count hidden")
)

type YouTube struct {
	ApiKey    string
	ChannelId string
	// Defaults to YouTubeApi.
	BaseUrl string
	// Bounds a fetch whose context carries no deadline. Zero means DefaultTimeout.
	Timeout time.Duration
}

var (
	_ Fetcher           = (*YouTube)(nil)
	_ folio.StatCounter = (*YouTube)(nil)
)

// Impl of youtube data api /channels?part=statistics
func (y *YouTube) Fetch(ctx context.Context) (int64, error) {
	if y.ApiKey == "" {
		return 0, ErrNoApiKey
	}
	baseUrl := y.BaseUrl
	if baseUrl == "" {
		baseUrl = YouTubeApi
	}
	channelId := y.ChannelId
	if channelId == "" {
		channelId = DefaultChannelId
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	query := url.Values{"part": {"statistics"}, "id": {channelId}, "key": {y.ApiKey}}
	req := agent.Request()
	req.Header.SetMethod(fiber.MethodGet)
	req.SetRequestURI(baseUrl + "/channels?" + query.Encode())
	timeout := y.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return 0, context.DeadlineExceeded
		}
	}
	agent.Timeout(timeout)

	if err := agent.Parse(); err != nil {
		return 0, fmt.Errorf("agent parse: %w", err)
	}
	statusCode, body, errs := agent.Bytes()
	if len(errs) != 0 {
		return 0, fmt.Errorf("agent bytes: %v", errs)
	}
	if statusCode != fiber.StatusOK {
		return 0, fmt.Errorf("invalid status code %d: %s", statusCode, string(body))
	}

	var response struct {
		Items []struct {
			Statistics struct {
				SubscriberCount string `json:"subscriberCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("unmarshal body: %w", err)
	}
	if len(response.Items) == 0 {
		return 0, ErrChannelNotFound
	}
	raw := response.Items[0].Statistics.SubscriberCount
	if raw == "" {
		return 0, ErrCountHidden
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse subscriber count: %w", err)
	}
	return count, nil
}

func (y *YouTube) Count(ctx context.Context) int64 {
	count, err := y.Fetch(ctx)
	if err != nil {
		logrus.WithError(err).Errorln("Could not fetch youtube subscribers.")
		return DefaultCount
	}
	return count
}
