package repository

import (
	"errors"

	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/model"
	"gorm.io/gorm"
)

type LanguageRepository interface {
	Create(language *model.Language) error
	FindByID(id uint) (*model.Language, error)
	FindAll() ([]model.Language, error)
	Update(language *model.Language) error
	Delete(language *model.Language) error
}

type languageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) Create(language *model.Language) error {
	return r.db.Create(language).Error
}

func (r *languageRepository) FindByID(id uint) (*model.Language, error) {
	var language model.Language
	if err := r.db.First(&language, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.WrapNotFound("Language", id, err)
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindAll() ([]model.Language, error) {
	var languages []model.Language
	if err := r.db.Order("id ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *languageRepository) Update(language *model.Language) error {
	return r.db.Save(language).Error
}

func (r *languageRepository) Delete(language *model.Language) error {
	return r.db.Delete(&model.Language{}, language.ID).Error
}
