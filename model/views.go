package model

// Aggregated views assembled by the crud package. These are plain payload
// structs, not mapped tables.

// Author is the id/name pair used for tweet authors and follow lists.
type Author struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// LikeInfo is one like on a tweet, with the liking user's name resolved.
type LikeInfo struct {
	UserId int    `json:"user_id"`
	Name   string `json:"name"`
}

// TweetInfo is one fully hydrated tweet of the feed.
type TweetInfo struct {
	Id          int        `json:"id"`
	Content     string     `json:"content"`
	Attachments []string   `json:"attachments"`
	Author      Author     `json:"author"`
	Likes       []LikeInfo `json:"likes"`
}

// UserInfo is a user profile with both directions of the follow graph.
type UserInfo struct {
	Id        int      `json:"id"`
	Name      string   `json:"name"`
	Followers []Author `json:"followers"`
	Following []Author `json:"following"`
}
