package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanteA11/TweetsApi/server/middlewares"
)

// getTweets answers the viewer's feed. Backend failures use the generic
// error envelope with status 400.
func (s *Server) getTweets(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tweets, err := s.ctrl.GetTweetsInfo(c.Request.Context(), user.Id, s.mediaBase(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, TweetsResult{Result: true, Tweets: tweets})
}

func (s *Server) createTweet(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	var in TweetIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResult("ValidationError", err.Error()))
		return
	}
	tweetId, ok, err := s.ctrl.AddTweet(c.Request.Context(), user.Id, in.TweetData, in.TweetMediaIds)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	if !ok {
		c.JSON(http.StatusOK, TweetResult{Result: false, TweetId: -1})
		return
	}
	c.JSON(http.StatusOK, TweetResult{Result: true, TweetId: tweetId})
}

func (s *Server) deleteTweet(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tweetId, ok := intParam(c, "id")
	if !ok {
		return
	}
	removed, err := s.ctrl.RemoveTweet(c.Request.Context(), user.Id, tweetId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, Result{Result: removed})
}

func (s *Server) addLike(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tweetId, ok := intParam(c, "id")
	if !ok {
		return
	}
	liked, err := s.ctrl.CreateLike(c.Request.Context(), user.Id, tweetId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, Result{Result: liked})
}

func (s *Server) dropLike(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tweetId, ok := intParam(c, "id")
	if !ok {
		return
	}
	removed, err := s.ctrl.RemoveLike(c.Request.Context(), user.Id, tweetId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, Result{Result: removed})
}
