package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses a path parameter as a positive int64 ID
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseDate parses a request date field in the 2006-01-02 layout
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
