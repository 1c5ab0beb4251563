package local

import (
	"fmt"
	"reflect"

	"github.com/fintrack/backend/internal/storage"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Query().After("*").Register("fintrack:after_query_general", generalCallback); err != nil {
		return err
	}

	if err := cb.Create().After("*").Register("fintrack:after_create_general", generalCallback); err != nil {
		return err
	}

	if err := cb.Update().After("*").Register("fintrack:after_update_general", generalCallback); err != nil {
		return err
	}

	return cb.Delete().After("*").Register("fintrack:after_delete_general", generalCallback)
}

// generalCallback replaces errors of a closed or broken database with
// storage.ErrUnavailable so that the caller can switch backends.
//
// The original error is logged.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Str("backend", "local").Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = fmt.Errorf("%w: %s", storage.ErrUnavailable, db.Error.Error())
	}
}
