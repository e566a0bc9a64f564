package handler

import (
	"net/http"
	"strconv"
	"time"

	"loreforge/internal/apperr"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// respondErr maps a service error onto its HTTP status and a safe message body.
func respondErr(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"message": apperr.Message(err)})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}
