package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MilesT98/Actify-2/schema"
	"github.com/MilesT98/Actify-2/store"
)

func (s *Server) listNotifications(c *gin.Context) {
	var params struct {
		UnreadOnly bool `form:"unread_only"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	notifications, err := s.mongoStore.ListNotifications(c.Param("userID"), params.UnreadOnly)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (s *Server) markNotificationRead(c *gin.Context) {
	err := s.mongoStore.MarkNotificationRead(c.Param("notificationID"))
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"result": "OK"})
	case store.ErrNotificationNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownNotification)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// notify stores a notification for a user and pushes it over the websocket
// hub. Delivery failures are logged but never fail the calling request.
func (s *Server) notify(userID, message string, notificationType schema.NotificationType, data map[string]interface{}) {
	notification, err := s.mongoStore.CreateNotification(userID, message, notificationType, data)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"type":    notificationType,
		}).Error("create notification")
		return
	}

	s.hub.BroadcastEvent(Event{
		Type:    "notification",
		UserID:  userID,
		Payload: notification,
	})
}

// notifyGroupMembers fans a notification out to every group member except
// excludedUserID. Runs in the background after join and leave requests.
func (s *Server) notifyGroupMembers(group *schema.Group, excludedUserID, message string, notificationType schema.NotificationType, data map[string]interface{}) {
	for _, memberID := range group.Members {
		if memberID == excludedUserID {
			continue
		}
		s.notify(memberID, message, notificationType, data)
	}
}
