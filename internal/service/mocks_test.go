package service

import (
	"context"
	"sort"

	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/model"
)

// --- Mock Category Repository ---

type MockCategoryRepo struct {
	Categories map[uint]*model.Category
	NextID     uint
	ListErr    error
	SaveErr    error
	DeleteErr  error
	Deleted    []uint
}

func newMockCategoryRepo(categories ...model.Category) *MockCategoryRepo {
	m := &MockCategoryRepo{Categories: map[uint]*model.Category{}, NextID: 1}
	for i := range categories {
		c := categories[i]
		m.Categories[c.ID] = &c
		if c.ID >= m.NextID {
			m.NextID = c.ID + 1
		}
	}
	return m
}

func (m *MockCategoryRepo) Create(category *model.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	category.ID = m.NextID
	m.NextID++
	c := *category
	m.Categories[c.ID] = &c
	return nil
}

func (m *MockCategoryRepo) FindByID(id uint) (*model.Category, error) {
	c, ok := m.Categories[id]
	if !ok {
		return nil, apperror.NotFound("Category", id)
	}
	cp := *c
	return &cp, nil
}

func (m *MockCategoryRepo) FindByIDs(ids []uint) ([]model.Category, error) {
	var out []model.Category
	for _, id := range ids {
		if c, ok := m.Categories[id]; ok {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCategoryRepo) FindAll() ([]model.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []model.Category
	for _, c := range m.Categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCategoryRepo) Update(category *model.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	c := *category
	m.Categories[c.ID] = &c
	return nil
}

func (m *MockCategoryRepo) Delete(category *model.Category) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Categories, category.ID)
	m.Deleted = append(m.Deleted, category.ID)
	return nil
}

// --- Mock Question Repository ---

type MockQuestionRepo struct {
	Questions map[uint]*model.Question
	NextID    uint
	FindErr   error
	RemoveErr error
	Removed   [][2]uint // question id, category id
}

func newMockQuestionRepo(questions ...model.Question) *MockQuestionRepo {
	m := &MockQuestionRepo{Questions: map[uint]*model.Question{}, NextID: 1}
	for i := range questions {
		q := questions[i]
		m.Questions[q.ID] = &q
		if q.ID >= m.NextID {
			m.NextID = q.ID + 1
		}
	}
	return m
}

func (m *MockQuestionRepo) Create(question *model.Question) error {
	question.ID = m.NextID
	m.NextID++
	q := *question
	m.Questions[q.ID] = &q
	return nil
}

func (m *MockQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := m.Questions[id]
	if !ok {
		return nil, apperror.NotFound("Question", id)
	}
	cp := *q
	return &cp, nil
}

func (m *MockQuestionRepo) sorted(filter func(*model.Question) bool) []model.Question {
	var out []model.Question
	for _, q := range m.Questions {
		if filter(q) {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MockQuestionRepo) FindAll() ([]model.Question, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.sorted(func(*model.Question) bool { return true }), nil
}

func (m *MockQuestionRepo) FindByCategoryID(categoryID uint) ([]model.Question, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.sorted(func(q *model.Question) bool {
		for _, c := range q.Categories {
			if c.ID == categoryID {
				return true
			}
		}
		return false
	}), nil
}

func (m *MockQuestionRepo) Update(question *model.Question) error {
	q := *question
	m.Questions[q.ID] = &q
	return nil
}

func (m *MockQuestionRepo) RemoveCategory(question *model.Question, category *model.Category) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	stored := m.Questions[question.ID]
	kept := stored.Categories[:0]
	for _, c := range stored.Categories {
		if c.ID != category.ID {
			kept = append(kept, c)
		}
	}
	stored.Categories = kept
	m.Removed = append(m.Removed, [2]uint{question.ID, category.ID})
	return nil
}

func (m *MockQuestionRepo) Delete(question *model.Question) error {
	delete(m.Questions, question.ID)
	return nil
}

// --- Mock Language Repository ---

type MockLanguageRepo struct {
	Languages map[uint]*model.Language
	NextID    uint
	SaveErr   error
}

func newMockLanguageRepo(languages ...model.Language) *MockLanguageRepo {
	m := &MockLanguageRepo{Languages: map[uint]*model.Language{}, NextID: 1}
	for i := range languages {
		l := languages[i]
		m.Languages[l.ID] = &l
		if l.ID >= m.NextID {
			m.NextID = l.ID + 1
		}
	}
	return m
}

func (m *MockLanguageRepo) Create(language *model.Language) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	language.ID = m.NextID
	m.NextID++
	l := *language
	m.Languages[l.ID] = &l
	return nil
}

func (m *MockLanguageRepo) FindByID(id uint) (*model.Language, error) {
	l, ok := m.Languages[id]
	if !ok {
		return nil, apperror.NotFound("Language", id)
	}
	cp := *l
	return &cp, nil
}

func (m *MockLanguageRepo) FindAll() ([]model.Language, error) {
	var out []model.Language
	for _, l := range m.Languages {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockLanguageRepo) Update(language *model.Language) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	l := *language
	m.Languages[l.ID] = &l
	return nil
}

func (m *MockLanguageRepo) Delete(language *model.Language) error {
	delete(m.Languages, language.ID)
	return nil
}

// --- Mock User Repository ---

type MockUserRepo struct {
	Users       []model.User
	Roles       map[string]model.Role   // realm roles by name
	UserRoles   map[string][]model.Role // by user id
	ListErr     error
	CreatedID   string
	Created     *model.User
	Updated     *model.User
	Passwords   map[string]string
	AddedRoles  map[string][]model.Role
	Deleted     []string
	CreateErr   error
	AddRolesErr error
	DeleteErr   error
}

func newMockUserRepo(users ...model.User) *MockUserRepo {
	return &MockUserRepo{
		Users:      users,
		Roles:      map[string]model.Role{},
		UserRoles:  map[string][]model.Role{},
		Passwords:  map[string]string{},
		AddedRoles: map[string][]model.Role{},
	}
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]model.User, len(m.Users))
	copy(out, m.Users)
	return out, nil
}

func (m *MockUserRepo) FindRoles(ctx context.Context, userID string) ([]model.Role, error) {
	return m.UserRoles[userID], nil
}

func (m *MockUserRepo) FindRole(ctx context.Context, name string) (*model.Role, error) {
	role, ok := m.Roles[name]
	if !ok {
		return nil, apperror.NotFound("Role", name)
	}
	return &role, nil
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	user.ID = m.CreatedID
	cp := *user
	m.Created = &cp
	return nil
}

func (m *MockUserRepo) AddRoles(ctx context.Context, userID string, roles []model.Role) error {
	if m.AddRolesErr != nil {
		return m.AddRolesErr
	}
	m.AddedRoles[userID] = append(m.AddedRoles[userID], roles...)
	return nil
}

func (m *MockUserRepo) Update(ctx context.Context, user *model.User) error {
	cp := *user
	m.Updated = &cp
	return nil
}

func (m *MockUserRepo) SetPassword(ctx context.Context, userID, password string) error {
	m.Passwords[userID] = password
	return nil
}

func (m *MockUserRepo) Delete(ctx context.Context, userID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, userID)
	return nil
}
