package v1

import (
	"context"
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindID binds the resource ID from the URI. It writes the error
// response and returns false if that is not possible.
func bindID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return uuid.Nil, false
	}

	return uri.ID.UUID, true
}

// optionsDetail returns the allowed verbs for a single existing resource.
func optionsDetail[E any](c *gin.Context, get func(uuid.UUID) (E, error)) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := get(id); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// createMany creates all resources in the request body.
//
// Each resource is created on its own, the response contains either
// the created resource or the error for every element of the request.
func createMany[E, R any](c *gin.Context, create func(context.Context, E) (E, error), respond func(E) R) {
	var editables []E

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreateResponse[R]{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := CreateResponse[R]{}

	for _, editable := range editables {
		created, err := create(c.Request.Context(), editable)
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		// Transform for the API and append
		apiResource := respond(created)
		r.Data = append(r.Data, ObjectResponse[R]{Data: &apiResource})
	}

	c.JSON(s, r)
}

func getOne[E, R any](c *gin.Context, get func(uuid.UUID) (E, error), respond func(E) R) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	resource, err := get(id)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObjectResponse[R]{
			Error: &e,
		})
		return
	}

	apiResource := respond(resource)
	c.JSON(http.StatusOK, ObjectResponse[R]{Data: &apiResource})
}

// updateOne decodes the request body onto the existing resource, so
// fields not contained in the body keep their values.
func updateOne[E, R any](c *gin.Context, get func(uuid.UUID) (E, error), update func(context.Context, uuid.UUID, E) (E, error), respond func(E) R) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	resource, err := get(id)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObjectResponse[R]{
			Error: &e,
		})
		return
	}

	if err := httputil.BindData(c, &resource); err != nil {
		e := err.Error()
		c.JSON(status(err), ObjectResponse[R]{
			Error: &e,
		})
		return
	}

	updated, err := update(c.Request.Context(), id, resource)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObjectResponse[R]{
			Error: &e,
		})
		return
	}

	apiResource := respond(updated)
	c.JSON(http.StatusOK, ObjectResponse[R]{Data: &apiResource})
}

func deleteOne(c *gin.Context, del func(context.Context, uuid.UUID) error) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// filter is a query filter for resources of type E.
type filter[E any] interface {
	page() (offset uint, limit int)

	// matcher returns the function selecting the resources that match
	// the filter. queryFields are the equality fields set in the query,
	// setFields all fields set in the query.
	matcher(queryFields, setFields []string) (func(E) bool, error)
}

// list binds the query filter and returns the requested page of the
// matching items.
func list[F filter[E], E, R any](c *gin.Context, items func() []E, respond func(E) R) {
	var f F
	if err := c.ShouldBindQuery(&f); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ListResponse[R]{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, f)

	match, err := f.matcher(queryFields, setFields)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ListResponse[R]{
			Error: &s,
		})
		return
	}

	var matched []E
	for _, item := range items() {
		if match(item) {
			matched = append(matched, item)
		}
	}

	offset, limit := f.page()
	matched, pagination := paginate(matched, offset, limit, setFields)

	data := make([]R, 0, len(matched))
	for _, item := range matched {
		data = append(data, respond(item))
	}

	c.JSON(http.StatusOK, ListResponse[R]{
		Data:       data,
		Pagination: pagination,
	})
}
