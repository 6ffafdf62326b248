package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bflow/db"
)

type CreateTeamRequest struct {
	Name    string `json:"name" binding:"required"`
	CoachID int64  `json:"coachId" binding:"required"`
}

func handleCreateTeam(ctx *gin.Context) {
	var req CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teamID, err := db.CreateTeam(req.Name, req.CoachID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": teamID})
}

func handleTeamByCoach(ctx *gin.Context) {
	coachID, ok := pathID(ctx)
	if !ok {
		return
	}

	team, err := db.GetTeamByCoach(coachID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if team == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"teamName": team.Name})
}

type JoinTeamRequest struct {
	TeamName string `json:"teamName" binding:"required"`
	PlayerID int64  `json:"playerId" binding:"required"`
}

func handleJoinTeam(ctx *gin.Context) {
	var req JoinTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.JoinTeam(req.TeamName, req.PlayerID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "player joined team"})
}
