package repository

import (
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CreatePrescription(p *ds.Prescription) error {
	return r.db.Create(p).Error
}

func (r *Repository) GetPrescriptionByID(id uint) (*ds.Prescription, error) {
	var p ds.Prescription
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPrescriptionsByUser returns the user's submissions, newest first.
func (r *Repository) ListPrescriptionsByUser(userID uint) ([]ds.Prescription, error) {
	var list []ds.Prescription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) ListPrescriptions() ([]ds.Prescription, error) {
	var list []ds.Prescription
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) UpdatePrescriptionFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.Model(&ds.Prescription{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeletePrescription(id uint) error {
	return r.db.Delete(&ds.Prescription{}, id).Error
}

func (r *Repository) CountPrescriptionsByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Prescription{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// LastPrescriptionByUser returns the most recent submission or nil.
func (r *Repository) LastPrescriptionByUser(userID uint) (*ds.Prescription, error) {
	var p ds.Prescription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
