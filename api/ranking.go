package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MilesT98/Actify-2/score"
	"github.com/MilesT98/Actify-2/store"
)

// rankingSubmissionLimit bounds how much history the leaderboards consider.
const rankingSubmissionLimit = 1000

func (s *Server) weeklyRankings(c *gin.Context) {
	s.rankings(c, true)
}

func (s *Server) allTimeRankings(c *gin.Context) {
	s.rankings(c, false)
}

func (s *Server) rankings(c *gin.Context, weekly bool) {
	var params struct {
		GroupID string `form:"group_id"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	submissions, err := s.mongoStore.ListSubmissions(store.SubmissionFilter{
		GroupID: params.GroupID,
		Limit:   rankingSubmissionLimit,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	rankings, err := score.Rank(submissions, s.now())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if weekly {
		c.JSON(http.StatusOK, gin.H{"rankings": rankings.Weekly})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rankings": rankings.AllTime})
}
