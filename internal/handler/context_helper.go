package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

// idParam parses the :id path segment as a record identifier.
func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, appErrors.Validation("id must be an integer")
	}
	return id, nil
}
