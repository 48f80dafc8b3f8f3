package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MilesT98/Actify-2/store"
)

func (s *Server) createUser(c *gin.Context) {
	var params struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	user, err := s.mongoStore.CreateUser(params.Name, params.Email)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) getUser(c *gin.Context) {
	user, err := s.mongoStore.GetUser(c.Param("userID"))
	switch err {
	case nil:
		c.JSON(http.StatusOK, user)
	case store.ErrUserNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorUnknownUser)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
