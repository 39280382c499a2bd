package repository

import (
	"grillpos/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ DB *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) FindByEmail(email string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("email = ?", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
