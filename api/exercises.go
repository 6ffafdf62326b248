package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bflow/db"
)

type exercisePayload struct {
	Exercise string  `json:"exercise"`
	Result   *string `json:"result"`
	Rating   *int64  `json:"rating"`
}

type categoryPayload struct {
	Category  string            `json:"category"`
	Exercises []exercisePayload `json:"exercises"`
}

func handlePlayerProgress(ctx *gin.Context) {
	playerID, ok := pathID(ctx)
	if !ok {
		return
	}

	progress, err := db.PlayerProgress(playerID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	payload := make([]categoryPayload, len(progress))
	for i, category := range progress {
		payload[i].Category = category.Category
		payload[i].Exercises = make([]exercisePayload, len(category.Exercises))
		for j, exercise := range category.Exercises {
			payload[i].Exercises[j] = exercisePayload{
				Exercise: exercise.Exercise,
				Result:   nullString(exercise.Result),
				Rating:   nullInt(exercise.Rating),
			}
		}
	}
	ctx.JSON(http.StatusOK, payload)
}

type UpdateExerciseRequest struct {
	Exercise string `json:"exercise"`
	PlayerID int64  `json:"playerId" binding:"required"`
	Result   string `json:"result"`
	Rating   int    `json:"rating"`
}

func handleUpdateExercise(ctx *gin.Context) {
	var req UpdateExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched, err := db.UpdateExerciseResult(db.ExerciseResult{
		Exercise: req.Exercise,
		PlayerID: req.PlayerID,
		Result:   req.Result,
		Rating:   req.Rating,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if !matched {
		ctx.JSON(http.StatusOK, gin.H{"error": "No matching exercise found for this player."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Exercise updated successfully."})
}
