package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

// ParseIDParam parses a positive numeric id from a route parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
