package handler

import (
	"net/http"
	"strconv"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/workflow"

	"github.com/gin-gonic/gin"
)

// GET /admin/prescriptions — every submission joined with its owner
// @Summary List all prescriptions
// @Tags admin
// @Security BearerAuth
// @Security CookieAuth
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} object{error=string}
// @Router /admin/prescriptions [get]
func (h *Handler) AdminListPrescriptions(ctx *gin.Context) {
	items, err := h.Workflow.ListAll()
	if err != nil {
		h.workflowError(ctx, err, "Failed to get prescriptions")
		return
	}

	type adminPrescriptionItem struct {
		ID        uint                 `json:"id"`
		User      workflow.UserSummary `json:"user"`
		RawText   string               `json:"raw_text"`
		FilePath  *string              `json:"file_path"`
		FileType  *string              `json:"file_type"`
		Analysis  ds.AnalysisResult    `json:"analysis"`
		Timestamp string               `json:"timestamp"`
		Status    string               `json:"status"`
		CreatedAt string               `json:"created_at"`
	}

	resp := make([]adminPrescriptionItem, 0, len(items))
	for _, it := range items {
		p := it.Prescription
		resp = append(resp, adminPrescriptionItem{
			ID:        p.ID,
			User:      it.User,
			RawText:   p.RawText,
			FilePath:  p.FilePath,
			FileType:  p.FileType,
			Analysis:  ds.DecodeAnalysis(p.AnalysisJSON),
			Timestamp: p.CreatedAt.Format("2006-01-02 15:04"),
			Status:    p.Status,
			CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

// PUT /admin/prescription/:id — update status and/or analysis
// @Summary Update a prescription
// @Tags admin
// @Security BearerAuth
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body object{status=string,analysis=object} true "Fields to update"
// @Success 200 {object} object{message=string,prescription_id=int}
// @Failure 404 {object} object{error=string}
// @Router /admin/prescription/{id} [put]
func (h *Handler) AdminUpdatePrescription(ctx *gin.Context) {
	id, ok := h.prescriptionID(ctx)
	if !ok {
		return
	}

	type requestBody struct {
		Status   *string            `json:"status"`
		Analysis *ds.AnalysisResult `json:"analysis"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errNoData)
		return
	}

	if err := h.Workflow.AdminUpdate(ctx.Request.Context(), id, body.Status, body.Analysis); err != nil {
		h.workflowError(ctx, err, "Failed to update prescription")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":         "Prescription updated successfully",
		"prescription_id": id,
	})
}

// POST /admin/prescription/:id/approve — approve, optionally with a
// custom analysis replacing the provider's
// @Summary Approve a prescription
// @Tags admin
// @Security BearerAuth
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body object{custom_analysis=object} false "Admin override"
// @Success 200 {object} object{message=string,analysis=ds.AnalysisResult}
// @Failure 404 {object} object{error=string}
// @Router /admin/prescription/{id}/approve [post]
func (h *Handler) AdminApprovePrescription(ctx *gin.Context) {
	id, ok := h.prescriptionID(ctx)
	if !ok {
		return
	}

	type requestBody struct {
		CustomAnalysis *ds.AnalysisResult `json:"custom_analysis"`
	}
	var body requestBody
	// An empty body means "run the provider"
	_ = ctx.ShouldBindJSON(&body)

	result, err := h.Workflow.Approve(ctx.Request.Context(), id, body.CustomAnalysis)
	if err != nil {
		h.workflowError(ctx, err, "Failed to approve prescription")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Prescription approved successfully",
		"analysis": result,
	})
}

// POST /admin/prescription/:id/reject
// @Summary Reject a prescription
// @Tags admin
// @Security BearerAuth
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body object{reason=string} false "Rejection reason"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /admin/prescription/{id}/reject [post]
func (h *Handler) AdminRejectPrescription(ctx *gin.Context) {
	id, ok := h.prescriptionID(ctx)
	if !ok {
		return
	}

	type requestBody struct {
		Reason string `json:"reason"`
	}
	var body requestBody
	_ = ctx.ShouldBindJSON(&body)

	if err := h.Workflow.Reject(ctx.Request.Context(), id, body.Reason); err != nil {
		h.workflowError(ctx, err, "Failed to reject prescription")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Prescription rejected successfully"})
}

// GET /admin/users — users with submission aggregates
// @Summary List users with aggregates
// @Tags admin
// @Security BearerAuth
// @Security CookieAuth
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} object{error=string}
// @Router /admin/users [get]
func (h *Handler) AdminListUsers(ctx *gin.Context) {
	users, err := h.Repository.ListUsers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	type adminUserItem struct {
		ID            uint   `json:"id"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		Username      string `json:"username"`
		Age           int    `json:"age"`
		Gender        string `json:"gender"`
		Prescriptions int64  `json:"prescriptions"`
		LastActive    string `json:"lastActive"`
		CreatedAt     string `json:"created_at"`
	}

	resp := make([]adminUserItem, 0, len(users))
	for _, u := range users {
		count, _ := h.Repository.CountPrescriptionsByUser(u.ID)

		lastActive := "Never"
		if last, err := h.Repository.LastPrescriptionByUser(u.ID); err == nil && last != nil {
			lastActive = last.CreatedAt.Format("2006-01-02")
		}

		resp = append(resp, adminUserItem{
			ID:            u.ID,
			Name:          u.FullName(),
			Email:         u.Email,
			Username:      u.Username,
			Age:           u.Age,
			Gender:        u.Gender,
			Prescriptions: count,
			LastActive:    lastActive,
			CreatedAt:     u.CreatedAt.Format("2006-01-02"),
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *Handler) prescriptionID(ctx *gin.Context) (uint, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return 0, false
	}
	return uint(id), true
}
