package v1

import (
	ft_uuid "github.com/fintrack/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// The default number of resources returned by a list endpoint.
const defaultLimit = 50

type URIID struct {
	ID ft_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

type ListResponse[T any] struct {
	Data       []T         `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ObjectResponse[T any] struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *T      `json:"data"`                                                          // The resource
}

type CreateResponse[T any] struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ObjectResponse[T] `json:"data"`                                                          // List of created resources
}

func (r *CreateResponse[T]) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ObjectResponse[T]{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CountResponse struct {
	Count int `json:"count" example:"3"` // Number of affected resources
}

// paginate returns the requested page of items.
//
// The limit defaults to 50 if it is not part of setFields,
// a negative limit returns all items.
func paginate[T any](items []T, offset uint, limit int, setFields []string) ([]T, *Pagination) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	total := len(items)
	start := min(int(offset), total)

	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	page := items[start:end]
	if page == nil {
		page = []T{}
	}

	return page, &Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}
