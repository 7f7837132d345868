package quiz

import (
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/dto"
)

type mockCategoryService struct {
	categories []dto.CategoryResponse
	err        error
	deleted    []uint
	lastReq    dto.CategoryRequest
}

func (m *mockCategoryService) find(id uint) (*dto.CategoryResponse, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			c := m.categories[i]
			return &c, nil
		}
	}
	return nil, apperror.NotFound("Category", id)
}

func (m *mockCategoryService) GetAllCategories() ([]dto.CategoryResponse, error) {
	return m.categories, m.err
}

func (m *mockCategoryService) GetCategory(id uint) (*dto.CategoryResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.find(id)
}

func (m *mockCategoryService) CreateCategory(req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastReq = req
	return &dto.CategoryResponse{ID: uint(len(m.categories) + 1), Name: req.Name, Description: req.Description}, nil
}

func (m *mockCategoryService) UpdateCategory(id uint, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := m.find(id)
	if err != nil {
		return nil, err
	}
	m.lastReq = req
	c.Name, c.Description = req.Name, req.Description
	return c, nil
}

func (m *mockCategoryService) DeleteCategory(id uint) error {
	if _, err := m.find(id); err != nil {
		return err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockLanguageService struct {
	languages []dto.LanguageResponse
	err       error
	deleted   []uint
}

func (m *mockLanguageService) find(id uint) (*dto.LanguageResponse, error) {
	for i := range m.languages {
		if m.languages[i].ID == id {
			l := m.languages[i]
			return &l, nil
		}
	}
	return nil, apperror.NotFound("Language", id)
}

func (m *mockLanguageService) GetAllLanguages() ([]dto.LanguageResponse, error) {
	return m.languages, m.err
}

func (m *mockLanguageService) GetLanguage(id uint) (*dto.LanguageResponse, error) {
	return m.find(id)
}

func (m *mockLanguageService) CreateLanguage(req dto.LanguageRequest) (*dto.LanguageResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LanguageResponse{ID: uint(len(m.languages) + 1), Name: req.Name}, nil
}

func (m *mockLanguageService) UpdateLanguage(id uint, req dto.LanguageRequest) (*dto.LanguageResponse, error) {
	l, err := m.find(id)
	if err != nil {
		return nil, err
	}
	l.Name = req.Name
	return l, nil
}

func (m *mockLanguageService) DeleteLanguage(id uint) error {
	if _, err := m.find(id); err != nil {
		return err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockQuestionService struct {
	questions  []dto.QuestionResponse
	err        error
	categoryID *uint
	lastReq    dto.QuestionRequest
}

func (m *mockQuestionService) find(id uint) (*dto.QuestionResponse, error) {
	for i := range m.questions {
		if m.questions[i].ID == id {
			q := m.questions[i]
			return &q, nil
		}
	}
	return nil, apperror.NotFound("Question", id)
}

func (m *mockQuestionService) GetAllQuestions(categoryID *uint) ([]dto.QuestionResponse, error) {
	m.categoryID = categoryID
	return m.questions, m.err
}

func (m *mockQuestionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	return m.find(id)
}

func (m *mockQuestionService) CreateQuestion(req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastReq = req
	return &dto.QuestionResponse{ID: 1, Title: req.Title, Body: req.Body, Categories: []dto.CategoryResponse{}}, nil
}

func (m *mockQuestionService) UpdateQuestion(id uint, req dto.QuestionRequest) (*dto.QuestionResponse, error) {
	q, err := m.find(id)
	if err != nil {
		return nil, err
	}
	m.lastReq = req
	q.Title = req.Title
	return q, nil
}

func (m *mockQuestionService) DeleteQuestion(id uint) error {
	_, err := m.find(id)
	return err
}
