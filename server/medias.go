package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DanteA11/TweetsApi/server/middlewares"
)

// addMedia accepts a multipart upload, validates size and extension against
// the config and stores the file as an unattached media record. Validation
// failures never reach the data-access layer.
func (s *Server) addMedia(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResult("ValidationError", "file field required"))
		return
	}
	if header.Size > s.cfg.MaxImageSize {
		c.JSON(http.StatusUnprocessableEntity,
			errorResult("ValidationError",
				fmt.Sprintf("file exceeds maximum size of %d bytes", s.cfg.MaxImageSize)))
		return
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !s.cfg.ExtensionAllowed(ext) {
		c.JSON(http.StatusUnprocessableEntity,
			errorResult("ValidationError",
				fmt.Sprintf("file extension %q is not allowed", ext)))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}

	mediaId, err := s.ctrl.AddMedia(c.Request.Context(), user.Id, ext, content)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResult(fmt.Sprintf("%T", err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, MediaResult{Result: true, MediaId: mediaId})
}
