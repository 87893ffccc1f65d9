package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwell/scheduler-api/internal/timezone"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// locationFromQuery resolves the timezone used to interpret date-only query
// params. Clients pass "tz" as an IANA name; anything unknown falls back to
// the server default.
func locationFromQuery(c *gin.Context) *time.Location {
	return timezone.Location(c.Query("tz"))
}

func parseDateQuery(c *gin.Context, name string, loc *time.Location) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
