package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter that are
// set in the query string of url.
//
// A field is matched by its "form" tag. Fields tagged with
// filterField:"false" are reported in setFields only, they are
// processed by explicit logic in the caller instead of being
// compared for equality. Fields of embedded structs are reported
// as if they were fields of filter.
func GetURLFields(url *url.URL, filter any) (queryFields []string, setFields []string) {
	return urlFields(url.Query(), reflect.Indirect(reflect.ValueOf(filter)).Type())
}

func urlFields(query url.Values, t reflect.Type) (queryFields []string, setFields []string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		param := field.Tag.Get("form")

		if field.Anonymous && param == "" && field.Type.Kind() == reflect.Struct {
			q, s := urlFields(query, field.Type)
			queryFields = append(queryFields, q...)
			setFields = append(setFields, s...)
			continue
		}

		if param == "" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}
