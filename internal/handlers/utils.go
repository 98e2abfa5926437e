package handlers

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// timeNow is swapped out in tests for deterministic dates
var timeNow = time.Now

// getIntQueryParam reads an integer query parameter, falling back to the
// default when absent or malformed
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
