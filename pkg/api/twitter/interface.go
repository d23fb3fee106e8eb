package twitter

import "context"

type IEndpoint interface {
	GetTweet(ctx context.Context, author, tweetID string) (Tweet, error)
}
