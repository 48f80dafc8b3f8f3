package api

import "github.com/gin-gonic/gin"

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer      = errorResponse{1000, "internal server error"}
	errorInvalidParameters   = errorResponse{1001, "invalid parameters"}
	errorUnknownUser         = errorResponse{1100, "user not found"}
	errorUnknownGroup        = errorResponse{1200, "group not found"}
	errorAlreadyGroupMember  = errorResponse{1201, "user is already a member"}
	errorNotGroupMember      = errorResponse{1202, "user is not a member"}
	errorUnknownNotification = errorResponse{1300, "notification not found"}
	errorUnknownSubmission   = errorResponse{1400, "submission not found"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}
