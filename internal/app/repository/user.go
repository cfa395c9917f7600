package repository

import (
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var u ds.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var u ds.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var u ds.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) ListUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *Repository) CreateUser(u *ds.User) error {
	return r.db.Create(u).Error
}
