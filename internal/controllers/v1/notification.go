package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsNotifications)
		r.GET("", co.GetNotifications)
		r.DELETE("", co.ClearNotifications)
	}
	{
		r.OPTIONS("/read", OptionsNotificationsRead)
		r.POST("/read", co.MarkAllNotificationsRead)
		r.OPTIONS("/checks", OptionsNotificationChecks)
		r.POST("/checks", co.RunChecks)
	}
	{
		r.OPTIONS("/:id", co.OptionsNotificationDetail)
		r.GET("/:id", co.GetNotification)
		r.PATCH("/:id", co.UpdateNotification)
		r.DELETE("/:id", co.DeleteNotification)
		r.OPTIONS("/:id/read", co.OptionsNotificationDetailRead)
		r.POST("/:id/read", co.MarkNotificationRead)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotifications(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications/read [options]
func OptionsNotificationsRead(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications/checks [options]
func OptionsNotificationChecks(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [options]
func (co Controller) OptionsNotificationDetail(c *gin.Context) {
	optionsDetail(c, co.Ledger.Notification)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id}/read [options]
func (co Controller) OptionsNotificationDetailRead(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if _, err := co.Ledger.Notification(id); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get notifications
// @Description	Returns a list of notifications, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	ListResponse[Notification]
// @Failure		400	{object}	ListResponse[Notification]
// @Router			/v1/notifications [get]
// @Param			read		query	bool	false	"Has the notification been read?"
// @Param			severity	query	string	false	"Filter by severity"
// @Param			rule		query	string	false	"Filter by the check that raised the notification"
// @Param			offset		query	uint	false	"The offset of the first notification returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of notifications to return. Defaults to 50."
func (co Controller) GetNotifications(c *gin.Context) {
	list[NotificationQueryFilter](c, co.Ledger.Notifications, co.notification(c))
}

// @Summary		Clear notifications
// @Description	Deletes all notifications
// @Tags			Notifications
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/notifications [delete]
func (co Controller) ClearNotifications(c *gin.Context) {
	if err := co.Ledger.ClearNotifications(c.Request.Context()); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Mark all as read
// @Description	Marks all notifications as read. Returns the number of notifications that were unread.
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	CountResponse
// @Failure		500	{object}	httpError
// @Router			/v1/notifications/read [post]
func (co Controller) MarkAllNotificationsRead(c *gin.Context) {
	count, err := co.Ledger.MarkAllRead(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// @Summary		Run checks
// @Description	Evaluates all checks against the current data and returns the notifications that were raised
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	ListResponse[Notification]
// @Failure		500	{object}	ListResponse[Notification]
// @Router			/v1/notifications/checks [post]
func (co Controller) RunChecks(c *gin.Context) {
	raised, err := co.Ledger.RunChecks(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ListResponse[Notification]{
			Error: &s,
		})
		return
	}

	data := make([]Notification, 0, len(raised))
	for _, n := range raised {
		data = append(data, newNotification(c, n))
	}

	c.JSON(http.StatusOK, ListResponse[Notification]{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Limit: len(data),
			Total: len(data),
		},
	})
}

// @Summary		Get notification
// @Description	Returns a specific notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	ObjectResponse[Notification]
// @Failure		400	{object}	ObjectResponse[Notification]
// @Failure		404	{object}	ObjectResponse[Notification]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/notifications/{id} [get]
func (co Controller) GetNotification(c *gin.Context) {
	getOne(c, co.Ledger.Notification, co.notification(c))
}

// @Summary		Update notification
// @Description	Updates an existing notification. Only values to be updated need to be specified.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	ObjectResponse[Notification]
// @Failure		400				{object}	ObjectResponse[Notification]
// @Failure		404				{object}	ObjectResponse[Notification]
// @Failure		500				{object}	ObjectResponse[Notification]
// @Param			id				path		URIID				true	"ID formatted as string"
// @Param			notification	body		models.Notification	true	"Notification"
// @Router			/v1/notifications/{id} [patch]
func (co Controller) UpdateNotification(c *gin.Context) {
	updateOne(c, co.Ledger.Notification, co.Ledger.UpdateNotification, co.notification(c))
}

// @Summary		Mark as read
// @Description	Marks a notification as read
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	ObjectResponse[Notification]
// @Failure		400	{object}	ObjectResponse[Notification]
// @Failure		404	{object}	ObjectResponse[Notification]
// @Failure		500	{object}	ObjectResponse[Notification]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/notifications/{id}/read [post]
func (co Controller) MarkNotificationRead(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	n, err := co.Ledger.MarkRead(c.Request.Context(), id)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObjectResponse[Notification]{
			Error: &e,
		})
		return
	}

	apiResource := newNotification(c, n)
	c.JSON(http.StatusOK, ObjectResponse[Notification]{Data: &apiResource})
}

// @Summary		Delete notification
// @Description	Deletes a notification
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/notifications/{id} [delete]
func (co Controller) DeleteNotification(c *gin.Context) {
	deleteOne(c, co.Ledger.DeleteNotification)
}

func (co Controller) notification(c *gin.Context) func(models.Notification) Notification {
	return func(n models.Notification) Notification {
		return newNotification(c, n)
	}
}
