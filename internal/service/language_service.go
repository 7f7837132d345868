package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/model"
	"github.com/lshigami/tms/internal/repository"
	"github.com/rs/zerolog/log"
)

type LanguageService interface {
	GetAllLanguages() ([]dto.LanguageResponse, error)
	GetLanguage(id uint) (*dto.LanguageResponse, error)
	CreateLanguage(req dto.LanguageRequest) (*dto.LanguageResponse, error)
	UpdateLanguage(id uint, req dto.LanguageRequest) (*dto.LanguageResponse, error)
	DeleteLanguage(id uint) error
}

type languageService struct {
	repo repository.LanguageRepository
}

func NewLanguageService(repo repository.LanguageRepository) LanguageService {
	return &languageService{repo: repo}
}

func (s *languageService) GetAllLanguages() ([]dto.LanguageResponse, error) {
	languages, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list languages")
		return nil, fmt.Errorf("list languages: %w", err)
	}
	resp := make([]dto.LanguageResponse, 0, len(languages))
	if err := copier.Copy(&resp, &languages); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return resp, nil
}

func (s *languageService) GetLanguage(id uint) (*dto.LanguageResponse, error) {
	language, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toLanguageResponse(language)
}

func (s *languageService) CreateLanguage(req dto.LanguageRequest) (*dto.LanguageResponse, error) {
	language := model.Language{Name: req.Name}
	if err := s.repo.Create(&language); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create language")
		return nil, fmt.Errorf("create language: %w", err)
	}
	return toLanguageResponse(&language)
}

func (s *languageService) UpdateLanguage(id uint, req dto.LanguageRequest) (*dto.LanguageResponse, error) {
	language, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	language.Name = req.Name
	if err := s.repo.Update(language); err != nil {
		log.Error().Err(err).Uint("languageID", id).Msg("Failed to update language")
		return nil, fmt.Errorf("update language %d: %w", id, err)
	}
	return toLanguageResponse(language)
}

func (s *languageService) DeleteLanguage(id uint) error {
	language, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(language); err != nil {
		log.Error().Err(err).Uint("languageID", id).Msg("Failed to delete language")
		return fmt.Errorf("delete language %d: %w", id, err)
	}
	return nil
}

func toLanguageResponse(language *model.Language) (*dto.LanguageResponse, error) {
	var resp dto.LanguageResponse
	if err := copier.Copy(&resp, language); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
