// Package workflow owns the prescription review state machine: a
// submission enters as pending and an admin moves it to approved or
// rejected. All analysis content that ends up on a record flows through
// here.
package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/analysis"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store is the persistence surface the workflow needs. Satisfied by
// *repository.Repository.
type Store interface {
	CreatePrescription(p *ds.Prescription) error
	GetPrescriptionByID(id uint) (*ds.Prescription, error)
	UpdatePrescriptionFields(id uint, fields map[string]interface{}) error
	DeletePrescription(id uint) error
	ListPrescriptionsByUser(userID uint) ([]ds.Prescription, error)
	ListPrescriptions() ([]ds.Prescription, error)
	GetUserByID(id uint) (*ds.User, error)
}

// FileStore removes stored uploads when their record goes away.
type FileStore interface {
	Remove(ctx context.Context, key string) error
}

type Review struct {
	store    Store
	provider analysis.Provider
	files    FileStore
}

func New(store Store, provider analysis.Provider, files FileStore) *Review {
	return &Review{store: store, provider: provider, files: files}
}

// PlaceholderAnalysis is what every submission carries until an admin
// acts on it.
func PlaceholderAnalysis() ds.AnalysisResult {
	return ds.AnalysisResult{
		Medicines:          []ds.MedicineInfo{},
		Explanation:        "Pending admin review",
		NutritionTips:      []string{},
		AnalysisConfidence: 0.0,
		Recommendations:    []string{"Your prescription is under review by our medical team"},
	}
}

func rejectionAnalysis(reason string) ds.AnalysisResult {
	return ds.AnalysisResult{
		Medicines:          []ds.MedicineInfo{},
		Explanation:        "Prescription rejected: " + reason,
		NutritionTips:      []string{},
		AnalysisConfidence: 0.0,
		Recommendations:    []string{"Please consult with your healthcare provider"},
	}
}

type Submission struct {
	UserID   uint
	Text     string
	FileKey  *string
	FileType *string
}

// Submit validates the submission and creates the pending record. The
// caller stores the file first; a record is never created for a failed
// upload and an upload is never referenced by more than one record.
func (w *Review) Submit(_ context.Context, sub Submission) (*ds.Prescription, error) {
	if sub.UserID == 0 {
		return nil, Invalid("Missing user_id")
	}
	if sub.Text == "" && sub.FileKey == nil {
		return nil, Invalid("Please provide prescription text or upload a file")
	}

	p := &ds.Prescription{
		UserID:       sub.UserID,
		RawText:      sub.Text,
		FilePath:     sub.FileKey,
		FileType:     sub.FileType,
		AnalysisJSON: ds.EncodeAnalysis(PlaceholderAnalysis()),
		Status:       ds.StatusPending,
		CreatedAt:    time.Now(),
	}
	if err := w.store.CreatePrescription(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Approve sets the terminal approved status. A custom analysis from the
// admin replaces the stored one verbatim; otherwise the provider runs on
// the record's raw text.
func (w *Review) Approve(ctx context.Context, id uint, custom *ds.AnalysisResult) (ds.AnalysisResult, error) {
	p, err := w.get(id)
	if err != nil {
		return ds.AnalysisResult{}, err
	}

	var result ds.AnalysisResult
	if custom != nil {
		result = *custom
	} else {
		result = w.provider.Analyze(ctx, p.RawText)
	}

	err = w.update(id, map[string]interface{}{
		"status":        ds.StatusApproved,
		"analysis_json": ds.EncodeAnalysis(result),
	})
	if err != nil {
		return ds.AnalysisResult{}, err
	}
	return result, nil
}

// Reject sets the terminal rejected status with a reason-bearing analysis.
func (w *Review) Reject(_ context.Context, id uint, reason string) error {
	if _, err := w.get(id); err != nil {
		return err
	}
	if reason == "" {
		reason = "Prescription rejected by admin"
	}
	return w.update(id, map[string]interface{}{
		"status":        ds.StatusRejected,
		"analysis_json": ds.EncodeAnalysis(rejectionAnalysis(reason)),
	})
}

// AdminUpdate applies status and analysis independently; either may be
// absent. The status must belong to the closed enum.
func (w *Review) AdminUpdate(_ context.Context, id uint, status *string, custom *ds.AnalysisResult) error {
	if _, err := w.get(id); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if status != nil && *status != "" {
		if !ds.ValidStatus(*status) {
			return Invalid("Invalid status %q, must be one of pending, approved, rejected", *status)
		}
		fields["status"] = *status
	}
	if custom != nil {
		fields["analysis_json"] = ds.EncodeAnalysis(*custom)
	}
	if len(fields) == 0 {
		return nil
	}
	return w.update(id, fields)
}

// Delete removes the record and its stored upload. A failed file removal
// is logged and does not block the record deletion.
func (w *Review) Delete(ctx context.Context, id uint) error {
	p, err := w.get(id)
	if err != nil {
		return err
	}
	if p.FilePath != nil && *p.FilePath != "" {
		if err := w.files.Remove(ctx, *p.FilePath); err != nil {
			log.WithError(err).WithField("file", *p.FilePath).Warn("failed to delete prescription file")
		}
	}
	return w.store.DeletePrescription(id)
}

// ListForUser returns the user's records, newest first.
func (w *Review) ListForUser(userID uint) ([]ds.Prescription, error) {
	return w.store.ListPrescriptionsByUser(userID)
}

// UserSummary is the denormalized owner info on admin listings.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminItem struct {
	Prescription ds.Prescription
	User         UserSummary
}

// ListAll returns every record joined with its owner. Records whose owner
// cannot be resolved are skipped rather than failing the whole call.
func (w *Review) ListAll() ([]AdminItem, error) {
	list, err := w.store.ListPrescriptions()
	if err != nil {
		return nil, err
	}
	items := make([]AdminItem, 0, len(list))
	for _, p := range list {
		u, err := w.store.GetUserByID(p.UserID)
		if err != nil || u == nil {
			continue
		}
		items = append(items, AdminItem{
			Prescription: p,
			User:         UserSummary{ID: u.ID, Name: u.FullName(), Email: u.Email},
		})
	}
	return items, nil
}

func (w *Review) get(id uint) (*ds.Prescription, error) {
	p, err := w.store.GetPrescriptionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (w *Review) update(id uint, fields map[string]interface{}) error {
	err := w.store.UpdatePrescriptionFields(id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
