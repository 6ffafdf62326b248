package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bflow/db"
)

type LinkChildRequest struct {
	ChildUsername string `json:"childUsername" binding:"required"`
}

func handleLinkChild(ctx *gin.Context) {
	parentID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req LinkChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.LinkChild(req.ChildUsername, parentID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "child linked"})
}
