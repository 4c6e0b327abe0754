package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taxi-analytics-api/models"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000

	dateLayout = "2006-01-02"
)

// ParseTripQuery validates the trip-listing query parameters. On a
// validation failure it answers the request with 400 and returns false;
// nothing past this point sees malformed input.
func ParseTripQuery(c *gin.Context) (models.TripFilter, bool) {
	f := models.TripFilter{Page: 1, PageSize: DefaultPageSize}

	start, ok := requireDate(c, "start_date")
	if !ok {
		return f, false
	}
	end, ok := requireDate(c, "end_date")
	if !ok {
		return f, false
	}
	f.StartDate = start
	f.EndDate = end

	if st := c.Query("service_type"); st != "" {
		if !models.ServiceType(st).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service_type, expected yellow, green or fhv"})
			return f, false
		}
		f.ServiceType = st
	}

	f.Borough = c.Query("borough")

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
			return f, false
		}
		f.Page = page
	}

	if sizeStr := c.Query("page_size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > MaxPageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be between 1 and 1000"})
			return f, false
		}
		f.PageSize = size
	}

	return f, true
}

func requireDate(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return nil, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
