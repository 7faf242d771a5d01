package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanteA11/TweetsApi/config"
	"github.com/DanteA11/TweetsApi/crud"
	"github.com/DanteA11/TweetsApi/server/middlewares"
)

// Server is the HTTP boundary adapter: it translates requests into crud
// calls and crud results into response envelopes. All domain decisions
// live in the crud package.
type Server struct {
	cfg  *config.Config
	ctrl *crud.Controller

	// mediaDir, when non-empty, is served statically under /api/medias so
	// attachment URLs resolve. Empty for bucket-backed storage.
	mediaDir string
}

func New(cfg *config.Config, ctrl *crud.Controller, mediaDir string) *Server {
	return &Server{cfg: cfg, ctrl: ctrl, mediaDir: mediaDir}
}

// Router builds the gin engine with the full route table and middleware
// chain.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middlewares.RequestId(),
		middlewares.RequestLogging(),
		middlewares.Metrics(),
		cors.Default(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if s.mediaDir != "" {
		r.Static("/medias", s.mediaDir)
	}

	api := r.Group("", middlewares.ApiKeyAuth(s.ctrl))

	api.GET("/tweets", s.getTweets)
	api.POST("/tweets", s.createTweet)
	api.DELETE("/tweets/:id", s.deleteTweet)
	api.POST("/tweets/:id/likes", s.addLike)
	api.DELETE("/tweets/:id/likes", s.dropLike)

	api.POST("/medias", s.addMedia)

	api.GET("/users/me", s.getMe)
	api.GET("/users/:id", s.getUserById)
	api.POST("/users/:id/follow", s.follow)
	api.DELETE("/users/:id/follow", s.unfollow)

	return r
}

// mediaBase is the URL prefix attachment links are built from, derived
// from the incoming request so links stay valid behind any hostname.
func (s *Server) mediaBase(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/medias", scheme, c.Request.Host)
}

// intParam parses a numeric path parameter, answering 422 itself on
// malformed input.
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
			errorResult("ValidationError", fmt.Sprintf("%s must be an integer", name)))
		return 0, false
	}
	return value, true
}
