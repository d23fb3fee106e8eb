package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/moonticket/backend/config"
	"github.com/moonticket/backend/pkg/api"
	"github.com/moonticket/backend/pkg/xcontext"
)

var ErrTweetNotFound = errors.New("tweet not found")

type Endpoint struct {
	apiGenerator api.Generator
	bearerToken  string
}

func New(cfg config.TwitterConfigs) *Endpoint {
	return &Endpoint{apiGenerator: api.NewGenerator(cfg.APIEndpoints...), bearerToken: cfg.BearerToken}
}

func (e *Endpoint) GetTweet(ctx context.Context, author, tweetID string) (Tweet, error) {
	client := e.apiGenerator.New("/get_tweet").
		Query(api.Parameter{"author": author, "tweet_id": tweetID})
	if e.bearerToken != "" {
		client = client.Header("Authorization", "Bearer "+e.bearerToken)
	}

	resp, err := client.GET(ctx)
	if err != nil {
		return Tweet{}, err
	}

	if resp.Code == http.StatusNotFound {
		return Tweet{}, ErrTweetNotFound
	}

	if resp.Code != http.StatusOK {
		xcontext.Logger(ctx).Errorf("Invalid status code: %v", resp.Body)
		return Tweet{}, fmt.Errorf("invalid status code %d", resp.Code)
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return Tweet{}, errors.New("invalid body format")
	}

	tweet := Tweet{}
	if err := mapstructure.Decode(body, &tweet); err != nil {
		return Tweet{}, err
	}

	if tweet.ID == "" {
		return Tweet{}, ErrTweetNotFound
	}

	return tweet, nil
}
