package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/model"
	"github.com/lshigami/tms/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	GetAllQuestions(categoryID *uint) ([]dto.QuestionResponse, error) // Pass categoryID to filter
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	CreateQuestion(req dto.QuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo         repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	languageRepo repository.LanguageRepository
}

func NewQuestionService(repo repository.QuestionRepository, categoryRepo repository.CategoryRepository, languageRepo repository.LanguageRepository) QuestionService {
	return &questionService{repo: repo, categoryRepo: categoryRepo, languageRepo: languageRepo}
}

func (s *questionService) GetAllQuestions(categoryID *uint) ([]dto.QuestionResponse, error) {
	var questions []model.Question
	var err error

	if categoryID != nil {
		if _, err := s.categoryRepo.FindByID(*categoryID); err != nil {
			return nil, err
		}
		questions, err = s.repo.FindByCategoryID(*categoryID)
	} else {
		questions, err = s.repo.FindAll()
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, fmt.Errorf("list questions: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		question, err := toQuestionResponse(&questions[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *question)
	}
	return resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toQuestionResponse(question)
}

func (s *questionService) CreateQuestion(req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	if err := s.checkLanguage(req.LanguageID); err != nil {
		return nil, err
	}
	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	question := model.Question{
		Title:      req.Title,
		Body:       req.Body,
		LanguageID: req.LanguageID,
		Categories: categories,
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, fmt.Errorf("create question: %w", err)
	}
	return toQuestionResponse(&question)
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkLanguage(req.LanguageID); err != nil {
		return nil, err
	}
	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	question.Title = req.Title
	question.Body = req.Body
	question.LanguageID = req.LanguageID
	question.Language = nil
	question.Categories = categories

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, fmt.Errorf("update question %d: %w", id, err)
	}
	return toQuestionResponse(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

func (s *questionService) checkLanguage(languageID *uint) error {
	if languageID == nil {
		return nil
	}
	_, err := s.languageRepo.FindByID(*languageID)
	return err
}

// resolveCategories loads the categories behind ids, ignoring duplicates.
// The first id with no category is reported as not found.
func (s *questionService) resolveCategories(ids []uint) ([]model.Category, error) {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	categories, err := s.categoryRepo.FindByIDs(unique)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if len(categories) == len(unique) {
		return categories, nil
	}

	found := make(map[uint]bool, len(categories))
	for _, c := range categories {
		found[c.ID] = true
	}
	for _, id := range unique {
		if !found[id] {
			return nil, apperror.NotFound("Category", id)
		}
	}
	return categories, nil
}

func toQuestionResponse(question *model.Question) (*dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	if resp.Categories == nil {
		resp.Categories = []dto.CategoryResponse{}
	}
	return &resp, nil
}
