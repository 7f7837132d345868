package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/model"
	"github.com/lshigami/tms/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserAccessService reads and mutates Keycloak users. Every lookup fetches the
// full user list and filters it in memory.
type UserAccessService interface {
	GetUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUsernames(ctx context.Context) ([]string, error)
	GetUserRoleNames(ctx context.Context, username string) ([]string, error)
	IsValidID(ctx context.Context, id string) (bool, error)
	FindIDByEmail(ctx context.Context, email string) (*string, error)
	GetUserByID(ctx context.Context, id string) (*dto.UserResponse, error)
	GetUserByUsername(ctx context.Context, username string) (*dto.UserResponse, error)
	AddNewUser(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error)
	AddUserRoles(ctx context.Context, username string, roles []dto.RoleRequest) ([]dto.RoleResponse, error)
	UpdateUser(ctx context.Context, req dto.UserRequest) error
	ChangePassword(ctx context.Context, id, newPassword string) error
	RemoveUser(ctx context.Context, id string) error
	RemoveUserByUsername(ctx context.Context, username string) error
}

type userAccessService struct {
	repo repository.UserRepository
}

func NewUserAccessService(repo repository.UserRepository) UserAccessService {
	return &userAccessService{repo: repo}
}

func (s *userAccessService) users(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users from identity provider")
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

func (s *userAccessService) find(ctx context.Context, match func(model.User) bool) (*model.User, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(users[i]) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *userAccessService) findByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.find(ctx, func(u model.User) bool { return u.ID == id })
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User", id)
	}
	return user, nil
}

func (s *userAccessService) findByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.find(ctx, func(u model.User) bool { return u.Username == username })
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFoundBy("User", "username", username)
	}
	return user, nil
}

func (s *userAccessService) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		user, err := toUserResponse(&users[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *user)
	}
	return resp, nil
}

func (s *userAccessService) GetUsernames(ctx context.Context) ([]string, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names, nil
}

func (s *userAccessService) GetUserRoleNames(ctx context.Context, username string) ([]string, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	roles, err := s.repo.FindRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *userAccessService) IsValidID(ctx context.Context, id string) (bool, error) {
	user, err := s.find(ctx, func(u model.User) bool { return u.ID == id })
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// FindIDByEmail returns the id of the first user with that email, or nil.
func (s *userAccessService) FindIDByEmail(ctx context.Context, email string) (*string, error) {
	user, err := s.find(ctx, func(u model.User) bool { return u.Email == email })
	if err != nil || user == nil {
		return nil, err
	}
	id := user.ID
	return &id, nil
}

func (s *userAccessService) GetUserByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withRoles(ctx, user)
}

func (s *userAccessService) GetUserByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.withRoles(ctx, user)
}

func (s *userAccessService) withRoles(ctx context.Context, user *model.User) (*dto.UserResponse, error) {
	roles, err := s.repo.FindRoles(ctx, user.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Failed to fetch user roles")
		return nil, fmt.Errorf("fetch roles of user %s: %w", user.ID, err)
	}
	user.Roles = roles
	return toUserResponse(user)
}

func (s *userAccessService) AddNewUser(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	roles, err := s.resolveRoles(ctx, req.Roles)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, err
	}
	if err := s.repo.AddRoles(ctx, user.ID, roles); err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Failed to assign roles to new user")
		// Remove the half-created user so the same username can be retried.
		if delErr := s.repo.Delete(ctx, user.ID); delErr != nil {
			log.Error().Err(delErr).Str("userID", user.ID).Msg("Failed to roll back new user")
			return nil, errors.Join(err, delErr)
		}
		return nil, err
	}
	user.Roles = roles

	log.Info().Str("userID", user.ID).Str("username", user.Username).Msg("User created")
	return toUserResponse(&user)
}

func (s *userAccessService) AddUserRoles(ctx context.Context, username string, roles []dto.RoleRequest) ([]dto.RoleResponse, error) {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	resolved, err := s.resolveRoles(ctx, roles)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddRoles(ctx, user.ID, resolved); err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Failed to add user roles")
		return nil, err
	}

	resp := make([]dto.RoleResponse, 0, len(resolved))
	if err := copier.Copy(&resp, &resolved); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return resp, nil
}

// UpdateUser writes email and names onto the stored user, and the password
// when one is given. The user is located by id, or by username when id is empty.
func (s *userAccessService) UpdateUser(ctx context.Context, req dto.UserRequest) error {
	var user *model.User
	var err error
	if req.ID != "" {
		user, err = s.findByID(ctx, req.ID)
	} else {
		user, err = s.findByUsername(ctx, req.Username)
	}
	if err != nil {
		return err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if err := s.repo.Update(ctx, user); err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Failed to update user")
		return err
	}
	if req.Password != "" {
		if err := s.repo.SetPassword(ctx, user.ID, req.Password); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("Failed to update user password")
			return err
		}
	}
	return nil
}

func (s *userAccessService) ChangePassword(ctx context.Context, id, newPassword string) error {
	if err := s.repo.SetPassword(ctx, id, newPassword); err != nil {
		log.Error().Err(err).Str("userID", id).Msg("Failed to change password")
		return err
	}
	return nil
}

func (s *userAccessService) RemoveUser(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.remove(ctx, id)
}

func (s *userAccessService) RemoveUserByUsername(ctx context.Context, username string) error {
	user, err := s.findByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.remove(ctx, user.ID)
}

func (s *userAccessService) remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("userID", id).Msg("Failed to delete user")
		return err
	}
	log.Info().Str("userID", id).Msg("User deleted")
	return nil
}

// resolveRoles looks each role up by name so the realm ids are attached.
func (s *userAccessService) resolveRoles(ctx context.Context, reqs []dto.RoleRequest) ([]model.Role, error) {
	roles := make([]model.Role, 0, len(reqs))
	for _, r := range reqs {
		role, err := s.repo.FindRole(ctx, r.Name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

func toUserResponse(user *model.User) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	if resp.Roles == nil {
		resp.Roles = []dto.RoleResponse{}
	}
	return &resp, nil
}
