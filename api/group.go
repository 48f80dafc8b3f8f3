package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MilesT98/Actify-2/schema"
	"github.com/MilesT98/Actify-2/store"
)

func (s *Server) createGroup(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("user_id not provided"))
		return
	}

	var params struct {
		Name             string `json:"name" binding:"required"`
		Description      string `json:"description"`
		CurrentChallenge string `json:"current_challenge" binding:"required"`
		IsPublic         *bool  `json:"is_public"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	isPublic := true
	if params.IsPublic != nil {
		isPublic = *params.IsPublic
	}

	group, err := s.mongoStore.CreateGroup(userID, params.Name, params.Description, params.CurrentChallenge, isPublic)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	message := s.localizedMessage(c, "notification.group_created", map[string]interface{}{
		"GroupName": group.Name,
	})
	s.notify(userID, message, schema.NotificationTypeAchievement, map[string]interface{}{
		"achievement": "group-creator",
		"group_id":    group.ID,
	})

	c.JSON(http.StatusOK, group)
}

func (s *Server) listGroups(c *gin.Context) {
	var params struct {
		UserID     string `form:"user_id"`
		PublicOnly *bool  `form:"public_only"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	publicOnly := true
	if params.PublicOnly != nil {
		publicOnly = *params.PublicOnly
	}

	groups, err := s.mongoStore.ListGroups(params.UserID, publicOnly)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (s *Server) getGroup(c *gin.Context) {
	group, err := s.mongoStore.GetGroup(c.Param("groupID"))
	switch err {
	case nil:
		c.JSON(http.StatusOK, group)
	case store.ErrGroupNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownGroup)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func (s *Server) joinGroup(c *gin.Context) {
	groupID := c.Param("groupID")
	userID := c.Query("user_id")
	if userID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("user_id not provided"))
		return
	}

	if err := s.mongoStore.JoinGroup(groupID, userID); err != nil {
		switch err {
		case store.ErrGroupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownGroup)
		case store.ErrAlreadyGroupMember:
			abortWithEncoding(c, http.StatusBadRequest, errorAlreadyGroupMember)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	group, err := s.mongoStore.GetGroup(groupID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	userName := s.lookupUserName(userID)

	joinedMessage := s.localizedMessage(c, "notification.group_joined", map[string]interface{}{
		"GroupName": group.Name,
	})
	s.notify(userID, joinedMessage, schema.NotificationTypeGroupJoin, map[string]interface{}{
		"group_id":   group.ID,
		"group_name": group.Name,
	})

	memberMessage := s.localizedMessage(c, "notification.member_join", map[string]interface{}{
		"UserName":  userName,
		"GroupName": group.Name,
	})
	go s.notifyGroupMembers(group, userID, memberMessage, schema.NotificationTypeMemberJoin, map[string]interface{}{
		"group_id":   group.ID,
		"group_name": group.Name,
		"new_member": userName,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Successfully joined group",
		"group_id": group.ID,
	})
}

func (s *Server) leaveGroup(c *gin.Context) {
	groupID := c.Param("groupID")
	userID := c.Query("user_id")
	if userID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("user_id not provided"))
		return
	}

	if err := s.mongoStore.LeaveGroup(groupID, userID); err != nil {
		switch err {
		case store.ErrGroupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownGroup)
		case store.ErrNotGroupMember:
			abortWithEncoding(c, http.StatusBadRequest, errorNotGroupMember)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	group, err := s.mongoStore.GetGroup(groupID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	userName := s.lookupUserName(userID)

	leftMessage := s.localizedMessage(c, "notification.member_leave", map[string]interface{}{
		"UserName":  userName,
		"GroupName": group.Name,
	})
	go s.notifyGroupMembers(group, userID, leftMessage, schema.NotificationTypeMemberLeave, map[string]interface{}{
		"group_id":    group.ID,
		"group_name":  group.Name,
		"left_member": userName,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully left group",
	})
}

func (s *Server) lookupUserName(userID string) string {
	user, err := s.mongoStore.GetUser(userID)
	if err != nil {
		return "Unknown User"
	}
	return user.Name
}
