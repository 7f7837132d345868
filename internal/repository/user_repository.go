package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Nerzal/gocloak/v13"
	"github.com/lshigami/tms/config"
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/model"
)

// GoCloakClient is the part of the Keycloak admin API the user repository calls.
// *gocloak.GoCloak satisfies it.
type GoCloakClient interface {
	LoginClient(ctx context.Context, clientID, clientSecret, realm string, scopes ...string) (*gocloak.JWT, error)
	GetUsers(ctx context.Context, accessToken, realm string, params gocloak.GetUsersParams) ([]*gocloak.User, error)
	CreateUser(ctx context.Context, token, realm string, user gocloak.User) (string, error)
	UpdateUser(ctx context.Context, accessToken, realm string, user gocloak.User) error
	DeleteUser(ctx context.Context, accessToken, realm, userID string) error
	SetPassword(ctx context.Context, token, userID, realm, password string, temporary bool) error
	GetRealmRolesByUserID(ctx context.Context, accessToken, realm, userID string) ([]*gocloak.Role, error)
	GetRealmRole(ctx context.Context, token, realm, roleName string) (*gocloak.Role, error)
	AddRealmRoleToUser(ctx context.Context, token, realm, userID string, roles []gocloak.Role) error
}

func NewKeycloakClient(cfg *config.Config) GoCloakClient {
	return gocloak.NewClient(cfg.Keycloak.URL)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindRoles(ctx context.Context, userID string) ([]model.Role, error)
	FindRole(ctx context.Context, name string) (*model.Role, error)
	Create(ctx context.Context, user *model.User) error
	AddRoles(ctx context.Context, userID string, roles []model.Role) error
	Update(ctx context.Context, user *model.User) error
	SetPassword(ctx context.Context, userID, password string) error
	Delete(ctx context.Context, userID string) error
}

// keycloakUserRepository logs in with the service account client credentials
// on every call, so no admin token outlives a request.
type keycloakUserRepository struct {
	client GoCloakClient
	cfg    config.Keycloak
}

func NewUserRepository(client GoCloakClient, cfg *config.Config) UserRepository {
	return &keycloakUserRepository{client: client, cfg: cfg.Keycloak}
}

func (r *keycloakUserRepository) token(ctx context.Context) (string, error) {
	jwt, err := r.client.LoginClient(ctx, r.cfg.ClientID, r.cfg.ClientSecret, r.cfg.Realm)
	if err != nil {
		return "", fmt.Errorf("keycloak login: %w", err)
	}
	return jwt.AccessToken, nil
}

// FindAll pages through every user of the realm.
func (r *keycloakUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	token, err := r.token(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := r.cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	users := []model.User{}
	for first := 0; ; first += pageSize {
		page, err := r.client.GetUsers(ctx, token, r.cfg.Realm, gocloak.GetUsersParams{
			First: gocloak.IntP(first),
			Max:   gocloak.IntP(pageSize),
		})
		if err != nil {
			return nil, fmt.Errorf("keycloak get users: %w", err)
		}
		for _, u := range page {
			if u != nil {
				users = append(users, toModelUser(u))
			}
		}
		if len(page) < pageSize {
			break
		}
	}
	return users, nil
}

func (r *keycloakUserRepository) FindRoles(ctx context.Context, userID string) ([]model.Role, error) {
	token, err := r.token(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := r.client.GetRealmRolesByUserID(ctx, token, r.cfg.Realm, userID)
	if err != nil {
		return nil, mapKeycloakError(err, "User", "id", userID)
	}
	out := make([]model.Role, 0, len(roles))
	for _, role := range roles {
		if role != nil {
			out = append(out, toModelRole(role))
		}
	}
	return out, nil
}

func (r *keycloakUserRepository) FindRole(ctx context.Context, name string) (*model.Role, error) {
	token, err := r.token(ctx)
	if err != nil {
		return nil, err
	}
	role, err := r.client.GetRealmRole(ctx, token, r.cfg.Realm, name)
	if err != nil {
		return nil, mapKeycloakError(err, "Role", "name", name)
	}
	out := toModelRole(role)
	return &out, nil
}

// Create stores the user with a non-temporary password and sets user.ID.
func (r *keycloakUserRepository) Create(ctx context.Context, user *model.User) error {
	token, err := r.token(ctx)
	if err != nil {
		return err
	}

	kcUser := toKeycloakUser(user)
	kcUser.Enabled = gocloak.BoolP(true)
	if user.Password != "" {
		kcUser.Credentials = &[]gocloak.CredentialRepresentation{{
			Type:      gocloak.StringP("password"),
			Value:     gocloak.StringP(user.Password),
			Temporary: gocloak.BoolP(false),
		}}
	}

	id, err := r.client.CreateUser(ctx, token, r.cfg.Realm, kcUser)
	if err != nil {
		return mapKeycloakError(err, "User", "username", user.Username)
	}
	user.ID = id
	user.Enabled = true
	return nil
}

func (r *keycloakUserRepository) AddRoles(ctx context.Context, userID string, roles []model.Role) error {
	if len(roles) == 0 {
		return nil
	}
	token, err := r.token(ctx)
	if err != nil {
		return err
	}
	kcRoles := make([]gocloak.Role, len(roles))
	for i, role := range roles {
		kcRoles[i] = gocloak.Role{ID: gocloak.StringP(role.ID), Name: gocloak.StringP(role.Name)}
	}
	if err := r.client.AddRealmRoleToUser(ctx, token, r.cfg.Realm, userID, kcRoles); err != nil {
		return mapKeycloakError(err, "User", "id", userID)
	}
	return nil
}

func (r *keycloakUserRepository) Update(ctx context.Context, user *model.User) error {
	token, err := r.token(ctx)
	if err != nil {
		return err
	}
	kcUser := toKeycloakUser(user)
	kcUser.ID = gocloak.StringP(user.ID)
	if err := r.client.UpdateUser(ctx, token, r.cfg.Realm, kcUser); err != nil {
		return mapKeycloakError(err, "User", "id", user.ID)
	}
	return nil
}

func (r *keycloakUserRepository) SetPassword(ctx context.Context, userID, password string) error {
	token, err := r.token(ctx)
	if err != nil {
		return err
	}
	if err := r.client.SetPassword(ctx, token, userID, r.cfg.Realm, password, false); err != nil {
		return mapKeycloakError(err, "User", "id", userID)
	}
	return nil
}

func (r *keycloakUserRepository) Delete(ctx context.Context, userID string) error {
	token, err := r.token(ctx)
	if err != nil {
		return err
	}
	if err := r.client.DeleteUser(ctx, token, r.cfg.Realm, userID); err != nil {
		return mapKeycloakError(err, "User", "id", userID)
	}
	return nil
}

func mapKeycloakError(err error, resource, key, value string) error {
	var apiErr *gocloak.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return &apperror.NotFoundError{Resource: resource, Key: key, ID: value, Cause: err}
		case http.StatusConflict:
			return apperror.WrapConflict(resource, key, value, err)
		}
	}
	return fmt.Errorf("keycloak %s %s %s: %w", resource, key, value, err)
}

func toModelUser(u *gocloak.User) model.User {
	return model.User{
		ID:        gocloak.PString(u.ID),
		Username:  gocloak.PString(u.Username),
		Email:     gocloak.PString(u.Email),
		FirstName: gocloak.PString(u.FirstName),
		LastName:  gocloak.PString(u.LastName),
		Enabled:   gocloak.PBool(u.Enabled),
	}
}

func toModelRole(r *gocloak.Role) model.Role {
	return model.Role{ID: gocloak.PString(r.ID), Name: gocloak.PString(r.Name)}
}

func toKeycloakUser(u *model.User) gocloak.User {
	return gocloak.User{
		Username:  gocloak.StringP(u.Username),
		Email:     gocloak.StringP(u.Email),
		FirstName: gocloak.StringP(u.FirstName),
		LastName:  gocloak.StringP(u.LastName),
	}
}
