package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/storage"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/workflow"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type prescriptionItem struct {
	ID        uint              `json:"id"`
	RawText   string            `json:"raw_text"`
	FilePath  *string           `json:"file_path"`
	FileType  *string           `json:"file_type"`
	Analysis  ds.AnalysisResult `json:"analysis"`
	Timestamp string            `json:"timestamp"`
	Status    string            `json:"status"`
}

// POST /analyze — submit a prescription (multipart: user_id, text?, file?)
func (h *Handler) Analyze(ctx *gin.Context) {
	userIDStr := ctx.PostForm("user_id")
	if userIDStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}

	text := ctx.PostForm("text")
	file, _ := ctx.FormFile("file")

	if text == "" && file == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Please provide prescription text or upload a file"})
		return
	}

	sub := workflow.Submission{UserID: uint(userID), Text: text}
	if file != nil && file.Filename != "" {
		if file.Size > workflow.MaxUploadBytes {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
			return
		}
		if !workflow.AllowedFile(file.Filename) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
			return
		}

		key := storage.ObjectName(file.Filename)
		if err := h.Storage.Upload(ctx.Request.Context(), file, key); err != nil {
			h.workflowError(ctx, err, "Failed to submit prescription")
			return
		}
		fileType := file.Header.Get("Content-Type")
		sub.FileKey = &key
		sub.FileType = &fileType
		// An image with no text stays empty: the admin reviews the image
		// directly instead of a made-up placeholder.
	}

	p, err := h.Workflow.Submit(ctx.Request.Context(), sub)
	if err != nil {
		// A failed record leaves no stored file behind
		if sub.FileKey != nil {
			if rmErr := h.Storage.Remove(ctx.Request.Context(), *sub.FileKey); rmErr != nil {
				log.WithError(rmErr).WithField("file", *sub.FileKey).Warn("failed to remove orphaned upload")
			}
		}
		h.workflowError(ctx, err, "Failed to submit prescription")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":         "Prescription submitted for review",
		"prescription_id": p.ID,
		"status":          p.Status,
	})
}

// GET /dashboard?user_id= — the user's submissions, newest first
func (h *Handler) Dashboard(ctx *gin.Context) {
	userIDStr := ctx.Query("user_id")
	if userIDStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}

	list, err := h.Workflow.ListForUser(uint(userID))
	if err != nil {
		h.workflowError(ctx, err, "Failed to get prescriptions")
		return
	}

	resp := make([]prescriptionItem, 0, len(list))
	for _, p := range list {
		resp = append(resp, prescriptionItem{
			ID:        p.ID,
			RawText:   p.RawText,
			FilePath:  p.FilePath,
			FileType:  p.FileType,
			Analysis:  ds.DecodeAnalysis(p.AnalysisJSON),
			Timestamp: p.CreatedAt.Format("2006-01-02 15:04"),
			Status:    p.Status,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

// GET /uploads/:filename — stream a stored upload
func (h *Handler) ServeUpload(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if filename == "" || strings.Contains(filename, "/") {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	rc, contentType, size, err := h.Storage.Fetch(ctx.Request.Context(), filename)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	defer rc.Close()

	ctx.DataFromReader(http.StatusOK, size, contentType, rc, nil)
}

// DELETE /prescription/:id
func (h *Handler) DeletePrescription(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if err := h.Workflow.Delete(ctx.Request.Context(), uint(id)); err != nil {
		h.workflowError(ctx, err, "Failed to delete prescription")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Prescription deleted successfully"})
}

// GET /health
func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
