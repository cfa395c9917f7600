package handler

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/config"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/middleware"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/auth"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/workflow"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// UserStore is the account persistence the handlers need. Satisfied by
// *repository.Repository.
type UserStore interface {
	GetUserByEmail(email string) (*ds.User, error)
	GetUserByUsername(username string) (*ds.User, error)
	ListUsers() ([]ds.User, error)
	CreateUser(u *ds.User) error
	CountPrescriptionsByUser(userID uint) (int64, error)
	LastPrescriptionByUser(userID uint) (*ds.Prescription, error)
}

// ObjectStore is the upload storage surface the handlers need. Satisfied
// by *storage.MinIO.
type ObjectStore interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) error
	Fetch(ctx context.Context, key string) (io.ReadCloser, string, int64, error)
	Remove(ctx context.Context, key string) error
}

type Handler struct {
	Repository     UserStore
	Config         *config.Config
	Workflow       *workflow.Review
	Storage        ObjectStore
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
}

func NewHandler(r UserStore, cfg *config.Config, w *workflow.Review, s ObjectStore, jwtSvc *auth.JWTService, sessionSvc *auth.SessionService) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		Workflow:       w,
		Storage:        s,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
	}
}

// RegisterHandler wires up the routes. Paths match the original frontend
// contract; only /admin/* demands an authenticated admin.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	router.Use(h.corsMiddleware())

	router.GET("/users", h.GetUsers)
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)

	router.POST("/analyze", h.Analyze)
	router.GET("/dashboard", h.Dashboard)
	router.GET("/uploads/:filename", h.ServeUpload)
	router.DELETE("/prescription/:id", h.DeletePrescription)
	router.GET("/health", h.Health)

	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}
	admin := router.Group("/admin", middleware.AuthMiddleware(authSvc), middleware.RequireAdminMiddleware())
	admin.GET("/prescriptions", h.AdminListPrescriptions)
	admin.PUT("/prescription/:id", h.AdminUpdatePrescription)
	admin.POST("/prescription/:id/approve", h.AdminApprovePrescription)
	admin.POST("/prescription/:id/reject", h.AdminRejectPrescription)
	admin.GET("/users", h.AdminListUsers)
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	origin := h.Config.FrontendURL
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// errorHandler logs and answers with the original's error shape.
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	log.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"error": err.Error(),
	})
}

// workflowError maps the workflow taxonomy onto HTTP codes. Internal
// failures answer with a generic message, details stay in the log.
func (h *Handler) workflowError(ctx *gin.Context, err error, internalMsg string) {
	switch {
	case workflow.IsValidation(err):
		h.errorHandler(ctx, http.StatusBadRequest, err)
	case err == workflow.ErrNotFound:
		h.errorHandler(ctx, http.StatusNotFound, err)
	case workflow.IsConflict(err):
		h.errorHandler(ctx, http.StatusBadRequest, err)
	default:
		log.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
