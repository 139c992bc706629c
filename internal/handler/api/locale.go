package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// requestLocale picks the first tag from Accept-Language. The money
// formatter falls back to its default when the tag cannot be parsed.
func requestLocale(c *gin.Context) string {
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}
