package models

import "time"

// ServiceType is a TLC service category.
type ServiceType string

const (
	ServiceYellow ServiceType = "yellow"
	ServiceGreen  ServiceType = "green"
	ServiceFHV    ServiceType = "fhv"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceYellow, ServiceGreen, ServiceFHV:
		return true
	}
	return false
}

// Trip is one trip record as served to the dashboard. Borough/zone fields
// are nullable; the sample variant synthesizes trips from daily aggregates
// and leaves them unset.
type Trip struct {
	TripID          int64     `json:"trip_id"`
	ServiceType     string    `json:"service_type"`
	PickupDatetime  time.Time `json:"pickup_datetime"`
	DropoffDatetime time.Time `json:"dropoff_datetime"`
	PickupBorough   *string   `json:"pickup_borough"`
	PickupZone      *string   `json:"pickup_zone"`
	DropoffBorough  *string   `json:"dropoff_borough"`
	DropoffZone     *string   `json:"dropoff_zone"`
	TripDistance    float64   `json:"trip_distance"`
	TotalAmount     float64   `json:"total_amount"`
	TripDurationSec int64     `json:"trip_duration_sec"`
}

// TripFilter carries one request's validated filters. Date filtering only
// takes effect when both ends of the range are present.
type TripFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	ServiceType string
	Borough     string
	Page        int
	PageSize    int
}

func (f TripFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Pagination struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalRecords int64 `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
}

// NewPagination computes page metadata from a validated page/page_size pair
// and the count-query total. A non-positive page_size yields zero pages.
func NewPagination(page, pageSize int, totalRecords int64) Pagination {
	p := Pagination{
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
	if pageSize > 0 {
		p.TotalPages = int((totalRecords + int64(pageSize) - 1) / int64(pageSize))
	}
	return p
}

type TripsResponse struct {
	Data       []Trip     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// EmptyTripsResponse is the fallback payload returned when a query fails:
// well-formed, zero totals, page/page_size echoed from the request.
func EmptyTripsResponse(page, pageSize int) TripsResponse {
	return TripsResponse{
		Data: []Trip{},
		Pagination: Pagination{
			Page:     page,
			PageSize: pageSize,
		},
	}
}
