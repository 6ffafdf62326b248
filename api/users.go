package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bflow/db"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	BirthYear int    `json:"birthYear" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Number    int    `json:"number"`
	TeamID    *int64 `json:"teamId"`
}

func handleRegister(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration := db.Registration{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Name:      req.Name,
		BirthYear: req.BirthYear,
		Country:   req.Country,
		Role:      db.Role(req.Role),
		Number:    req.Number,
	}
	if req.TeamID != nil {
		registration.TeamID = sql.NullInt64{Int64: *req.TeamID, Valid: true}
	}

	userID, err := db.AddUser(registration)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": userID})
}

func handleGetUser(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}

	user, err := db.GetUser(userID, db.Role(ctx.Query("role")))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	ctx.JSON(http.StatusOK, userPayload(user))
}

func handleGetUserByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := db.GetUserByEmail(email)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	ctx.JSON(http.StatusOK, userPayload(user))
}

type UpdateUserRequest struct {
	Password    *string `json:"password"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Name        *string `json:"name"`
	Picture     *string `json:"picture"`
	BirthYear   *int    `json:"birthYear"`
	Country     *string `json:"country"`
	Number      *int    `json:"number"`
	ShirtNumber *int    `json:"shirtNumber"`
}

func handleUpdateUser(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	switch db.Role(ctx.Query("role")) {
	case db.RolePlayer:
		err = db.UpdatePlayer(userID, db.PlayerUpdate{
			Password:    req.Password,
			Email:       req.Email,
			Name:        req.Name,
			Picture:     req.Picture,
			BirthYear:   req.BirthYear,
			Country:     req.Country,
			Number:      req.Number,
			ShirtNumber: req.ShirtNumber,
		})
	case db.RoleCoach:
		if req.Number != nil || req.ShirtNumber != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "field not valid for role coach"})
			return
		}
		err = db.UpdateCoach(userID, db.CoachUpdate{
			Password:  req.Password,
			Email:     req.Email,
			Name:      req.Name,
			Picture:   req.Picture,
			BirthYear: req.BirthYear,
			Country:   req.Country,
		})
	case db.RoleParent:
		if req.Number != nil || req.ShirtNumber != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "field not valid for role parent"})
			return
		}
		err = db.UpdateParent(userID, db.ParentUpdate{
			Password:  req.Password,
			Email:     req.Email,
			Name:      req.Name,
			Picture:   req.Picture,
			BirthYear: req.BirthYear,
			Country:   req.Country,
		})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

func handleDeleteUser(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := db.DeleteUser(userID); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter, answering the request itself when the
// value is not an integer.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// userPayload renders a user record for a response. Passwords stay out of
// responses.
func userPayload(user db.User) gin.H {
	switch u := user.(type) {
	case *db.Player:
		return gin.H{
			"id":          u.ID,
			"role":        db.RolePlayer,
			"username":    u.Username,
			"email":       u.Email,
			"name":        u.Name,
			"picture":     nullString(u.Picture),
			"birthYear":   u.BirthYear,
			"country":     u.Country,
			"number":      nullInt(u.Number),
			"parent":      nullString(u.Parent),
			"parentEmail": nullString(u.ParentEmail),
			"parentPhone": nullString(u.ParentPhone),
			"coach":       nullString(u.Coach),
			"coachEmail":  nullString(u.CoachEmail),
			"coachPhone":  nullString(u.CoachPhone),
			"team":        nullString(u.Team),
			"shirtNumber": nullInt(u.ShirtNumber),
			"teamId":      nullInt(u.TeamID),
		}
	case *db.Coach:
		return gin.H{
			"id":        u.ID,
			"role":      db.RoleCoach,
			"username":  u.Username,
			"email":     u.Email,
			"name":      u.Name,
			"picture":   nullString(u.Picture),
			"birthYear": u.BirthYear,
			"country":   u.Country,
			"team":      nullString(u.Team),
			"teamId":    nullInt(u.TeamID),
		}
	case *db.Parent:
		return gin.H{
			"id":         u.ID,
			"role":       db.RoleParent,
			"username":   u.Username,
			"email":      u.Email,
			"name":       u.Name,
			"picture":    nullString(u.Picture),
			"birthYear":  u.BirthYear,
			"country":    u.Country,
			"childName":  nullString(u.ChildName),
			"childEmail": nullString(u.ChildEmail),
		}
	}
	return nil
}
