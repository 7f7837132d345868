package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/model"
	"github.com/lshigami/tms/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	GetAllCategories() ([]dto.CategoryResponse, error)
	GetCategory(id uint) (*dto.CategoryResponse, error)
	CreateCategory(req dto.CategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(id uint, req dto.CategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	repo         repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

func NewCategoryService(repo repository.CategoryRepository, questionRepo repository.QuestionRepository) CategoryService {
	return &categoryService{repo: repo, questionRepo: questionRepo}
}

func (s *categoryService) GetAllCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return nil, fmt.Errorf("list categories: %w", err)
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	if err := copier.Copy(&resp, &categories); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return resp, nil
}

func (s *categoryService) GetCategory(id uint) (*dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category)
}

func (s *categoryService) CreateCategory(req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(&category); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create category")
		return nil, fmt.Errorf("create category: %w", err)
	}
	return toCategoryResponse(&category)
}

func (s *categoryService) UpdateCategory(id uint, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Description = req.Description

	if err := s.repo.Update(category); err != nil {
		log.Error().Err(err).Uint("categoryID", id).Msg("Failed to update category")
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return toCategoryResponse(category)
}

// DeleteCategory detaches the category from every question that references it
// and then removes it. Questions themselves are kept.
func (s *categoryService) DeleteCategory(id uint) error {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	questions, err := s.questionRepo.FindByCategoryID(id)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", id).Msg("Failed to load questions of category")
		return fmt.Errorf("find questions of category %d: %w", id, err)
	}
	for i := range questions {
		if err := s.questionRepo.RemoveCategory(&questions[i], category); err != nil {
			log.Error().Err(err).Uint("categoryID", id).Uint("questionID", questions[i].ID).Msg("Failed to detach category from question")
			return fmt.Errorf("detach category %d from question %d: %w", id, questions[i].ID, err)
		}
	}

	if err := s.repo.Delete(category); err != nil {
		log.Error().Err(err).Uint("categoryID", id).Msg("Failed to delete category")
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	log.Info().Uint("categoryID", id).Int("detachedQuestions", len(questions)).Msg("Category deleted")
	return nil
}

func toCategoryResponse(category *model.Category) (*dto.CategoryResponse, error) {
	var resp dto.CategoryResponse
	if err := copier.Copy(&resp, category); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
