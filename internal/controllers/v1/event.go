package v1

import (
	"io"
	"net/http"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Changes are dropped for clients that do not keep up.
const eventBuffer = 64

func (co Controller) RegisterEventRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsEvents)
	r.GET("", co.GetEvents)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func OptionsEvents(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Stream changes
// @Description	Streams every write to the storage as server-sent event of type "change" until the client disconnects
// @Tags			Events
// @Produce		text/event-stream
// @Success		200	{object}	events.Change
// @Router			/v1/events [get]
func (co Controller) GetEvents(c *gin.Context) {
	changes := make(chan events.Change, eventBuffer)
	cancel := co.Bus.Subscribe(func(change events.Change) {
		select {
		case changes <- change:
		default:
			log.Warn().Str("request-id", requestid.Get(c)).Str("collection", change.Collection.String()).Msg("dropped change for slow event stream")
		}
	})
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case change := <-changes:
			c.SSEvent("change", change)
			return true
		}
	})
}
