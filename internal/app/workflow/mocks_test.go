package workflow

import (
	"context"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreatePrescription(p *ds.Prescription) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *mockStore) GetPrescriptionByID(id uint) (*ds.Prescription, error) {
	args := m.Called(id)
	var p *ds.Prescription
	if v := args.Get(0); v != nil {
		p = v.(*ds.Prescription)
	}
	return p, args.Error(1)
}

func (m *mockStore) UpdatePrescriptionFields(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *mockStore) DeletePrescription(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockStore) ListPrescriptionsByUser(userID uint) ([]ds.Prescription, error) {
	args := m.Called(userID)
	var list []ds.Prescription
	if v := args.Get(0); v != nil {
		list = v.([]ds.Prescription)
	}
	return list, args.Error(1)
}

func (m *mockStore) ListPrescriptions() ([]ds.Prescription, error) {
	args := m.Called()
	var list []ds.Prescription
	if v := args.Get(0); v != nil {
		list = v.([]ds.Prescription)
	}
	return list, args.Error(1)
}

func (m *mockStore) GetUserByID(id uint) (*ds.User, error) {
	args := m.Called(id)
	var u *ds.User
	if v := args.Get(0); v != nil {
		u = v.(*ds.User)
	}
	return u, args.Error(1)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Analyze(ctx context.Context, text string) ds.AnalysisResult {
	args := m.Called(ctx, text)
	return args.Get(0).(ds.AnalysisResult)
}

type mockFiles struct {
	mock.Mock
}

func (m *mockFiles) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
