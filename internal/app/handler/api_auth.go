package handler

import (
	"errors"
	"net/http"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/auth"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

func toUserResponse(u ds.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Age:       u.Age,
		Gender:    u.Gender,
	}
}

// GetUsers lists all users
// @Summary List users
// @Tags auth
// @Produce json
// @Success 200 {array} handler.userResponse
// @Router /users [get]
func (h *Handler) GetUsers(ctx *gin.Context) {
	users, err := h.Repository.ListUsers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Register creates a new user
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{firstName=string,lastName=string,username=string,email=string,password=string,age=int,gender=string} true "Registration data"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /register [post]
func (h *Handler) Register(ctx *gin.Context) {
	type requestBody struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		Age       int    `json:"age" binding:"required,gt=0"`
		Gender    string `json:"gender" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if existing, err := h.Repository.GetUserByEmail(body.Email); err == nil && existing != nil {
		h.workflowError(ctx, workflow.Conflict("Email already registered"), "Failed to register")
		return
	}
	if existing, err := h.Repository.GetUserByUsername(body.Username); err == nil && existing != nil {
		h.workflowError(ctx, workflow.Conflict("Username already taken"), "Failed to register")
		return
	}

	if len(body.Password) < 8 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters long"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user := &ds.User{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Username:  body.Username,
		Email:     body.Email,
		Password:  string(hashedPassword),
		Age:       body.Age,
		Gender:    body.Gender,
	}
	if err := h.Repository.CreateUser(user); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login authenticates a user
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{message=string,user=handler.userResponse,token=string,session_id=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func (h *Handler) Login(ctx *gin.Context) {
	type requestBody struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByEmail(body.Email)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.JWTService.Generate(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	sessionID := uuid.New().String()
	sessionData := auth.SessionData{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	if err := h.SessionService.Create(ctx.Request.Context(), sessionID, sessionData); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.SetCookie("session_id", sessionID, 86400, "/", "", false, true)

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"user":       toUserResponse(*user),
		"token":      token,
		"session_id": sessionID,
	})
}

// Logout drops the session
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /logout [post]
func (h *Handler) Logout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
		_ = h.SessionService.Delete(ctx.Request.Context(), sessionID)
	}
	ctx.SetCookie("session_id", "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

var errNoData = errors.New("No data provided")
