package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/config"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/pkg/auth"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/workflow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubStore serves canned rows so handler tests run without a database.
type stubStore struct {
	prescriptions []ds.Prescription
	users         map[uint]*ds.User
	createErr     error
}

func (s *stubStore) CreatePrescription(p *ds.Prescription) error {
	if s.createErr != nil {
		return s.createErr
	}
	p.ID = uint(len(s.prescriptions) + 1)
	s.prescriptions = append(s.prescriptions, *p)
	return nil
}

func (s *stubStore) GetPrescriptionByID(id uint) (*ds.Prescription, error) {
	for i := range s.prescriptions {
		if s.prescriptions[i].ID == id {
			return &s.prescriptions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) UpdatePrescriptionFields(id uint, fields map[string]interface{}) error {
	return nil
}

func (s *stubStore) DeletePrescription(id uint) error { return nil }

func (s *stubStore) ListPrescriptionsByUser(userID uint) ([]ds.Prescription, error) {
	out := []ds.Prescription{}
	for _, p := range s.prescriptions {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) ListPrescriptions() ([]ds.Prescription, error) {
	return s.prescriptions, nil
}

func (s *stubStore) GetUserByID(id uint) (*ds.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubStore) GetUserByEmail(email string) (*ds.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) GetUserByUsername(username string) (*ds.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) ListUsers() ([]ds.User, error) {
	out := make([]ds.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubStore) CreateUser(u *ds.User) error {
	if s.users == nil {
		s.users = map[uint]*ds.User{}
	}
	u.ID = uint(len(s.users) + 1)
	s.users[u.ID] = u
	return nil
}

func (s *stubStore) CountPrescriptionsByUser(userID uint) (int64, error) {
	var count int64
	for _, p := range s.prescriptions {
		if p.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *stubStore) LastPrescriptionByUser(userID uint) (*ds.Prescription, error) {
	for i := range s.prescriptions {
		if s.prescriptions[i].UserID == userID {
			return &s.prescriptions[i], nil
		}
	}
	return nil, nil
}

// stubObjectStore records uploads and removals in memory.
type stubObjectStore struct {
	uploaded []string
	removed  []string
}

func (s *stubObjectStore) Upload(_ context.Context, _ *multipart.FileHeader, key string) error {
	s.uploaded = append(s.uploaded, key)
	return nil
}

func (s *stubObjectStore) Fetch(_ context.Context, key string) (io.ReadCloser, string, int64, error) {
	return nil, "", 0, errors.New("object not found")
}

func (s *stubObjectStore) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	return nil
}

func newTestRouter(store *stubStore) (*gin.Engine, *Handler, *stubObjectStore) {
	gin.SetMode(gin.TestMode)

	objects := &stubObjectStore{}
	h := &Handler{
		Repository: store,
		Config:     &config.Config{},
		Workflow:   workflow.New(store, nil, nil),
		Storage:    objects,
		JWTService: auth.NewJWTService("test-secret"),
	}
	router := gin.New()
	h.RegisterHandler(router)
	return router, h, objects
}

func TestAnalyzeMissingUserID(t *testing.T) {
	router, _, _ := newTestRouter(&stubStore{})

	form := url.Values{"text": {"Napa 500mg"}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing user_id")
}

func TestAnalyzeMissingTextAndFile(t *testing.T) {
	router, _, _ := newTestRouter(&stubStore{})

	form := url.Values{"user_id": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide prescription text or upload a file")
}

func TestAnalyzeRejectsDisallowedExtension(t *testing.T) {
	router, _, _ := newTestRouter(&stubStore{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("user_id", "1")
	part, _ := mw.CreateFormFile("file", "run.exe")
	_, _ = part.Write([]byte("MZ"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File type not allowed")
}

func TestAnalyzeTextOnlySubmits(t *testing.T) {
	store := &stubStore{}
	router, _, _ := newTestRouter(store)

	form := url.Values{"user_id": {"1"}, "text": {"Napa 500mg twice daily"}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Prescription submitted for review", resp["message"])
	assert.Equal(t, ds.StatusPending, resp["status"])
	assert.Len(t, store.prescriptions, 1)
}

func TestAnalyzeRemovesUploadWhenRecordFails(t *testing.T) {
	store := &stubStore{createErr: errors.New("connection refused")}
	router, _, objects := newTestRouter(store)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("user_id", "1")
	part, _ := mw.CreateFormFile("file", "scan.png")
	_, _ = part.Write([]byte("png bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The stored object must not outlive the failed record
	require.Len(t, objects.uploaded, 1)
	assert.Equal(t, objects.uploaded, objects.removed)
	assert.Empty(t, store.prescriptions)
}

func TestDashboardMissingUserID(t *testing.T) {
	router, _, _ := newTestRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing user_id")
}

func TestDashboardListsUserRecords(t *testing.T) {
	store := &stubStore{
		prescriptions: []ds.Prescription{
			{
				ID:           1,
				UserID:       1,
				RawText:      "Napa 500mg",
				AnalysisJSON: ds.EncodeAnalysis(workflow.PlaceholderAnalysis()),
				Status:       ds.StatusPending,
				CreatedAt:    time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			},
			{ID: 2, UserID: 2, RawText: "someone else's", Status: ds.StatusPending},
		},
	}
	router, _, _ := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/dashboard?user_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Napa 500mg", resp[0]["raw_text"])
	assert.Equal(t, "2025-03-01 10:30", resp[0]["timestamp"])
}

func TestHealth(t *testing.T) {
	router, _, _ := newTestRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAdminRequiresAuth(t *testing.T) {
	router, _, _ := newTestRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/admin/prescriptions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRejectsNonAdminToken(t *testing.T) {
	router, h, _ := newTestRouter(&stubStore{})

	token, err := h.JWTService.Generate(1, "johndoe", false)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/prescriptions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminListPrescriptionsWithAdminToken(t *testing.T) {
	store := &stubStore{
		prescriptions: []ds.Prescription{
			{
				ID:           1,
				UserID:       1,
				RawText:      "Napa 500mg",
				AnalysisJSON: ds.EncodeAnalysis(workflow.PlaceholderAnalysis()),
				Status:       ds.StatusPending,
				CreatedAt:    time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			},
		},
		users: map[uint]*ds.User{
			1: {ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		},
	}
	router, h, _ := newTestRouter(store)

	token, err := h.JWTService.Generate(2, "admin", true)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/prescriptions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Doe")
	assert.Contains(t, w.Body.String(), "john@example.com")
}
