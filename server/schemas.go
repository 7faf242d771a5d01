package server

import "github.com/DanteA11/TweetsApi/model"

// Request and response envelopes of the HTTP surface.

type TweetIn struct {
	TweetData     string `json:"tweet_data" binding:"required"`
	TweetMediaIds []int  `json:"tweet_media_ids"`
}

type Result struct {
	Result bool `json:"result"`
}

type TweetResult struct {
	Result  bool `json:"result"`
	TweetId int  `json:"tweet_id"`
}

type MediaResult struct {
	Result  bool `json:"result"`
	MediaId int  `json:"media_id"`
}

type TweetsResult struct {
	Result bool               `json:"result"`
	Tweets []*model.TweetInfo `json:"tweets"`
}

type UserResult struct {
	Result bool            `json:"result"`
	User   *model.UserInfo `json:"user"`
}

type ErrorResult struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

func errorResult(errType, message string) ErrorResult {
	return ErrorResult{Result: false, ErrorType: errType, ErrorMessage: message}
}
