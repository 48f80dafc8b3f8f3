package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MilesT98/Actify-2/schema"
	"github.com/MilesT98/Actify-2/store"
)

func (s *Server) createSubmission(c *gin.Context) {
	var params struct {
		UserID   string                  `json:"user_id" binding:"required"`
		UserName string                  `json:"user_name"`
		Kind     schema.SubmissionKind   `json:"type"`
		GroupID  string                  `json:"group_id"`
		Activity string                  `json:"activity" binding:"required"`
		Photos   schema.SubmissionPhotos `json:"photos"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Kind == "" {
		params.Kind = schema.SubmissionKindGlobal
	}

	switch params.Kind {
	case schema.SubmissionKindGlobal:
	case schema.SubmissionKindGroup:
		if params.GroupID == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
				fmt.Errorf("group_id required for group submissions"))
			return
		}
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("unknown submission type: %s", params.Kind))
		return
	}

	if !params.Photos.Complete() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("both front and back photos are required"))
		return
	}

	if params.Kind == schema.SubmissionKindGroup {
		group, err := s.mongoStore.GetGroup(params.GroupID)
		switch err {
		case nil:
			if !group.HasMember(params.UserID) {
				abortWithEncoding(c, http.StatusBadRequest, errorNotGroupMember)
				return
			}
		case store.ErrGroupNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownGroup)
			return
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	submission, err := s.mongoStore.CreateSubmission(schema.Submission{
		UserID:   params.UserID,
		UserName: params.UserName,
		Kind:     params.Kind,
		GroupID:  params.GroupID,
		Activity: params.Activity,
		Photos:   params.Photos,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.BroadcastEvent(Event{
		Type:    "submission_created",
		Payload: submission,
	})

	c.JSON(http.StatusOK, submission)
}

func (s *Server) listSubmissions(c *gin.Context) {
	var params struct {
		UserID  string `form:"user_id"`
		GroupID string `form:"group_id"`
		Limit   int64  `form:"limit"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	submissions, err := s.mongoStore.ListSubmissions(store.SubmissionFilter{
		UserID:  params.UserID,
		GroupID: params.GroupID,
		Limit:   params.Limit,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

func (s *Server) voteSubmission(c *gin.Context) {
	var params struct {
		UserID string `json:"user_id" binding:"required"`
		Rating int    `json:"rating" binding:"required,min=1,max=5"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	submissionID := c.Param("submissionID")
	err := s.mongoStore.VoteSubmission(submissionID, schema.Vote{
		UserID: params.UserID,
		Rating: params.Rating,
	})
	switch err {
	case nil:
	case store.ErrSubmissionNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownSubmission)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.BroadcastEvent(Event{
		Type: "vote",
		Payload: map[string]interface{}{
			"submission_id": submissionID,
			"user_id":       params.UserID,
			"rating":        params.Rating,
		},
	})

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) reactSubmission(c *gin.Context) {
	var params struct {
		UserID string `json:"user_id" binding:"required"`
		Emoji  string `json:"emoji" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	submissionID := c.Param("submissionID")
	err := s.mongoStore.ReactSubmission(submissionID, schema.Reaction{
		UserID: params.UserID,
		Emoji:  params.Emoji,
	})
	switch err {
	case nil:
	case store.ErrSubmissionNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownSubmission)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.hub.BroadcastEvent(Event{
		Type: "reaction",
		Payload: map[string]interface{}{
			"submission_id": submissionID,
			"user_id":       params.UserID,
			"emoji":         params.Emoji,
		},
	})

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
