package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Nerzal/gocloak/v13"
	"github.com/lshigami/tms/config"
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake Keycloak client ---

type fakeGoCloak struct {
	Users        []*gocloak.User
	Roles        map[string]*gocloak.Role
	UserRoles    map[string][]*gocloak.Role
	LoginErr     error
	GetUsersErr  error
	CreatedID    string
	CreateErr    error
	Created      *gocloak.User
	Updated      *gocloak.User
	Deleted      []string
	Passwords    map[string]string
	AddedRoles   map[string][]gocloak.Role
	GetUsersArgs []gocloak.GetUsersParams
	Tokens       []string
}

func newFakeGoCloak() *fakeGoCloak {
	return &fakeGoCloak{
		Roles:      map[string]*gocloak.Role{},
		UserRoles:  map[string][]*gocloak.Role{},
		Passwords:  map[string]string{},
		AddedRoles: map[string][]gocloak.Role{},
	}
}

func notFound() error {
	return &gocloak.APIError{Code: http.StatusNotFound, Message: "404 Not Found"}
}

func (f *fakeGoCloak) LoginClient(ctx context.Context, clientID, clientSecret, realm string, scopes ...string) (*gocloak.JWT, error) {
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return &gocloak.JWT{AccessToken: "admin-token"}, nil
}

func (f *fakeGoCloak) GetUsers(ctx context.Context, accessToken, realm string, params gocloak.GetUsersParams) ([]*gocloak.User, error) {
	f.Tokens = append(f.Tokens, accessToken)
	f.GetUsersArgs = append(f.GetUsersArgs, params)
	if f.GetUsersErr != nil {
		return nil, f.GetUsersErr
	}
	first, max := gocloak.PInt(params.First), gocloak.PInt(params.Max)
	if first >= len(f.Users) {
		return []*gocloak.User{}, nil
	}
	end := first + max
	if end > len(f.Users) {
		end = len(f.Users)
	}
	return f.Users[first:end], nil
}

func (f *fakeGoCloak) CreateUser(ctx context.Context, token, realm string, user gocloak.User) (string, error) {
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	f.Created = &user
	return f.CreatedID, nil
}

func (f *fakeGoCloak) UpdateUser(ctx context.Context, accessToken, realm string, user gocloak.User) error {
	if gocloak.PString(user.ID) == "missing" {
		return notFound()
	}
	f.Updated = &user
	return nil
}

func (f *fakeGoCloak) DeleteUser(ctx context.Context, accessToken, realm, userID string) error {
	if userID == "missing" {
		return notFound()
	}
	f.Deleted = append(f.Deleted, userID)
	return nil
}

func (f *fakeGoCloak) SetPassword(ctx context.Context, token, userID, realm, password string, temporary bool) error {
	f.Passwords[userID] = password
	return nil
}

func (f *fakeGoCloak) GetRealmRolesByUserID(ctx context.Context, accessToken, realm, userID string) ([]*gocloak.Role, error) {
	roles, ok := f.UserRoles[userID]
	if !ok {
		return nil, notFound()
	}
	return roles, nil
}

func (f *fakeGoCloak) GetRealmRole(ctx context.Context, token, realm, roleName string) (*gocloak.Role, error) {
	role, ok := f.Roles[roleName]
	if !ok {
		return nil, notFound()
	}
	return role, nil
}

func (f *fakeGoCloak) AddRealmRoleToUser(ctx context.Context, token, realm, userID string, roles []gocloak.Role) error {
	f.AddedRoles[userID] = append(f.AddedRoles[userID], roles...)
	return nil
}

func kcUser(id, username, email string) *gocloak.User {
	return &gocloak.User{
		ID:       gocloak.StringP(id),
		Username: gocloak.StringP(username),
		Email:    gocloak.StringP(email),
		Enabled:  gocloak.BoolP(true),
	}
}

func testKeycloakConfig(pageSize int) *config.Config {
	return &config.Config{Keycloak: config.Keycloak{
		URL:          "http://keycloak:8080",
		Realm:        "tms",
		ClientID:     "ums",
		ClientSecret: "secret",
		PageSize:     pageSize,
	}}
}

// --- Tests ---

func TestUserRepositoryFindAllPages(t *testing.T) {
	fake := newFakeGoCloak()
	fake.Users = []*gocloak.User{
		kcUser("1", "alice", "alice@example.com"),
		kcUser("2", "bob", "bob@example.com"),
		kcUser("3", "carol", "carol@example.com"),
	}
	repo := NewUserRepository(fake, testKeycloakConfig(2))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "carol@example.com", users[2].Email)
	assert.True(t, users[1].Enabled)

	require.Len(t, fake.GetUsersArgs, 2)
	assert.Equal(t, 0, gocloak.PInt(fake.GetUsersArgs[0].First))
	assert.Equal(t, 2, gocloak.PInt(fake.GetUsersArgs[1].First))
	assert.Equal(t, []string{"admin-token", "admin-token"}, fake.Tokens)
}

func TestUserRepositoryFindAllErrors(t *testing.T) {
	fake := newFakeGoCloak()
	fake.LoginErr = errors.New("invalid client")
	repo := NewUserRepository(fake, testKeycloakConfig(10))

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keycloak login")

	fake.LoginErr = nil
	fake.GetUsersErr = errors.New("connection refused")
	_, err = repo.FindAll(context.Background())
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}

func TestUserRepositoryRoles(t *testing.T) {
	fake := newFakeGoCloak()
	fake.Roles["admin"] = &gocloak.Role{ID: gocloak.StringP("r1"), Name: gocloak.StringP("admin")}
	fake.UserRoles["1"] = []*gocloak.Role{fake.Roles["admin"]}
	repo := NewUserRepository(fake, testKeycloakConfig(10))
	ctx := context.Background()

	roles, err := repo.FindRoles(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []model.Role{{ID: "r1", Name: "admin"}}, roles)

	_, err = repo.FindRoles(ctx, "2")
	assert.True(t, apperror.IsNotFound(err))

	role, err := repo.FindRole(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "r1", role.ID)

	_, err = repo.FindRole(ctx, "nope")
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Role not found with name nope", err.Error())

	require.NoError(t, repo.AddRoles(ctx, "1", []model.Role{*role}))
	require.Len(t, fake.AddedRoles["1"], 1)
	assert.Equal(t, "admin", gocloak.PString(fake.AddedRoles["1"][0].Name))

	require.NoError(t, repo.AddRoles(ctx, "1", nil))
	assert.Len(t, fake.AddedRoles["1"], 1)
}

func TestUserRepositoryCreate(t *testing.T) {
	fake := newFakeGoCloak()
	fake.CreatedID = "new-id"
	repo := NewUserRepository(fake, testKeycloakConfig(10))

	user := &model.User{Username: "dave", Email: "dave@example.com", Password: "pw"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, "new-id", user.ID)
	require.NotNil(t, fake.Created)
	assert.Equal(t, "dave", gocloak.PString(fake.Created.Username))
	assert.True(t, gocloak.PBool(fake.Created.Enabled))
	require.NotNil(t, fake.Created.Credentials)
	creds := *fake.Created.Credentials
	require.Len(t, creds, 1)
	assert.Equal(t, "pw", gocloak.PString(creds[0].Value))
	assert.False(t, gocloak.PBool(creds[0].Temporary))
}

func TestUserRepositoryCreateConflict(t *testing.T) {
	fake := newFakeGoCloak()
	fake.CreateErr = &gocloak.APIError{Code: http.StatusConflict, Message: "409 Conflict: User exists with same username"}
	repo := NewUserRepository(fake, testKeycloakConfig(10))

	err := repo.Create(context.Background(), &model.User{Username: "dave"})

	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.False(t, apperror.IsNotFound(err))
	assert.Equal(t, "User already exists with username dave", err.Error())

	fake.CreateErr = errors.New("connection reset")
	err = repo.Create(context.Background(), &model.User{Username: "dave"})
	require.Error(t, err)
	assert.False(t, apperror.IsConflict(err))
}

func TestUserRepositoryUpdatePasswordDelete(t *testing.T) {
	fake := newFakeGoCloak()
	repo := NewUserRepository(fake, testKeycloakConfig(10))
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, &model.User{ID: "1", Username: "alice", Email: "new@example.com"}))
	assert.Equal(t, "new@example.com", gocloak.PString(fake.Updated.Email))
	assert.Equal(t, "1", gocloak.PString(fake.Updated.ID))

	err := repo.Update(ctx, &model.User{ID: "missing"})
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, repo.SetPassword(ctx, "1", "s3cret"))
	assert.Equal(t, "s3cret", fake.Passwords["1"])

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.Equal(t, []string{"1"}, fake.Deleted)

	err = repo.Delete(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}
