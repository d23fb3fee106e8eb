package twitter

import (
	"errors"
	"net/url"
	"strings"
)

var statusHosts = map[string]bool{
	"twitter.com":        true,
	"www.twitter.com":    true,
	"mobile.twitter.com": true,
	"x.com":              true,
	"www.x.com":          true,
}

// ParseTweetURL accepts https://twitter.com/<user>/status/<id> and its x.com
// equivalents. Query strings and trailing slashes are ignored.
func ParseTweetURL(rawURL string) (TweetURL, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil {
		return TweetURL{}, err
	}

	if u.Scheme != "https" {
		return TweetURL{}, errors.New("invalid scheme")
	}

	if !statusHosts[strings.ToLower(u.Host)] {
		return TweetURL{}, errors.New("invalid domain")
	}

	// The expected path is <user>/status/<tweet_id>
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 3 || parts[1] != "status" || parts[0] == "" || !isDigits(parts[2]) {
		return TweetURL{}, errors.New("invalid path")
	}

	return TweetURL{TweetID: parts[2], UserScreenName: parts[0]}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
