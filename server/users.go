package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanteA11/TweetsApi/server/middlewares"
)

// getMe reuses the already-authenticated user to skip one lookup.
func (s *Server) getMe(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	info, err := s.ctrl.GetFullUserInfo(c.Request.Context(), user.Id, user)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, UserResult{Result: true, User: info})
}

func (s *Server) getUserById(c *gin.Context) {
	userId, ok := intParam(c, "id")
	if !ok {
		return
	}
	info, err := s.ctrl.GetFullUserInfo(c.Request.Context(), userId, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	// A miss is a result:false envelope, never a 404.
	c.JSON(http.StatusOK, UserResult{Result: info != nil, User: info})
}

func (s *Server) follow(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	authorId, ok := intParam(c, "id")
	if !ok {
		return
	}
	subscribed, err := s.ctrl.AddSubscribe(c.Request.Context(), user.Id, authorId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, Result{Result: subscribed})
}

func (s *Server) unfollow(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	authorId, ok := intParam(c, "id")
	if !ok {
		return
	}
	removed, err := s.ctrl.DropSubscribe(c.Request.Context(), user.Id, authorId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, Result{Result: removed})
}
