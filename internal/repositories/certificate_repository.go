package repositories

import (
	"errors"

	"vinixport_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateRepository interface {
	Create(db *gorm.DB, certificate *models.Certificate) error
	FindByUser(db *gorm.DB, userID string) ([]models.Certificate, error)
	Delete(db *gorm.DB, userID, id string) error
}

type CertificateRepositoryImpl struct{}

func NewCertificateRepository() CertificateRepository {
	return &CertificateRepositoryImpl{}
}

func (r *CertificateRepositoryImpl) Create(db *gorm.DB, certificate *models.Certificate) error {
	return db.Create(certificate).Error
}

func (r *CertificateRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepositoryImpl) Delete(db *gorm.DB, userID, id string) error {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Certificate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}
