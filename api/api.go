package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bflow/db"
	"bflow/log"
)

// NewRouter builds the gin engine with every endpoint registered. Split from
// ListenAndServe so tests can drive the router directly.
func NewRouter() *gin.Engine {
	log.Debug("initializing gin router")
	router := gin.Default()
	log.Debug("gin router initialized")

	log.Debug("initializing endpoints")
	api := router.Group("/api")
	api.POST("/users", handleRegister)
	api.GET("/users", handleGetUserByEmail)
	api.GET("/users/:id", handleGetUser)
	api.PATCH("/users/:id", handleUpdateUser)
	api.DELETE("/users/:id", handleDeleteUser)
	api.GET("/players/:id/progress", handlePlayerProgress)
	api.PUT("/exercises/results", handleUpdateExercise)
	api.POST("/teams", handleCreateTeam)
	api.GET("/coaches/:id/team", handleTeamByCoach)
	api.POST("/teams/join", handleJoinTeam)
	api.POST("/parents/:id/children", handleLinkChild)
	log.Debug("endpoints initialized")

	return router
}

func ListenAndServe(addr string) {
	router := NewRouter()

	log.Debug("starting gin router")
	router.Run(addr)
	log.Debug("gin router started")
}

// abortWithError translates the db package's error kinds into HTTP statuses.
// Everything unrecognized is a 500 with the detail kept out of the response.
func abortWithError(ctx *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, db.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrConflict), errors.Is(err, db.ErrDuplicate):
		status = http.StatusConflict
	default:
		log.WithFields(log.Fields{
			"error": err,
		}).Error("unable to complete request")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func nullString(value sql.NullString) *string {
	if value.Valid {
		return &value.String
	}
	return nil
}

func nullInt(value sql.NullInt64) *int64 {
	if value.Valid {
		return &value.Int64
	}
	return nil
}
