package twitter

type Tweet struct {
	ID               string `mapstructure:"id"`
	AuthorScreenName string `mapstructure:"author_screen_name"`
	Text             string `mapstructure:"text"`
}

// TweetURL is the identity of a tweet parsed from its status URL.
type TweetURL struct {
	TweetID        string
	UserScreenName string
}
