package repository

import (
	"errors"

	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindByCategoryID(categoryID uint) ([]model.Question, error)
	Update(question *model.Question) error
	RemoveCategory(question *model.Question, category *model.Category) error
	Delete(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Omit("Categories.*").Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Categories").First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.WrapNotFound("Question", id, err)
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Preload("Categories").Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategoryID(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Preload("Categories").
		Joins("JOIN question_categories ON question_categories.question_id = questions.id").
		Where("question_categories.category_id = ?", categoryID).
		Order("questions.id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Update saves the question columns and replaces its category links with question.Categories.
func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(question).Error; err != nil {
			return err
		}
		if len(question.Categories) == 0 {
			return tx.Model(question).Association("Categories").Clear()
		}
		return tx.Model(question).Association("Categories").Replace(question.Categories)
	})
}

func (r *questionRepository) RemoveCategory(question *model.Question, category *model.Category) error {
	return r.db.Model(question).Association("Categories").Delete(category)
}

func (r *questionRepository) Delete(question *model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(question).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, question.ID).Error
	})
}
