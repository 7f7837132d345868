package userinfo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/controller"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/middleware"
	"github.com/lshigami/tms/internal/service"
	"github.com/rs/zerolog/log"
)

type UserInfoController struct {
	userSvc  service.UserAccessService
	verifier *middleware.TokenVerifier
}

func NewUserInfoController(svc service.UserAccessService, verifier *middleware.TokenVerifier) *UserInfoController {
	return &UserInfoController{userSvc: svc, verifier: verifier}
}

func (ctrl *UserInfoController) RegisterRoutes(router gin.IRouter) {
	userinfo := router.Group("/userinfo")
	userinfo.Use(middleware.Authenticate(ctrl.verifier))
	ctrl.registerHandlers(userinfo)
}

// registerHandlers attaches the role checks and handlers. Callers must have
// authenticated the request already.
func (ctrl *UserInfoController) registerHandlers(userinfo gin.IRouter) {
	anyUser := middleware.RequireRoles(middleware.RoleUser, middleware.RoleAdmin, middleware.RoleSuperAdmin)
	admins := middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleSuperAdmin)

	userinfo.GET("/users", admins, ctrl.GetUsers)
	userinfo.GET("/usernames", admins, ctrl.GetUsernames)
	userinfo.GET("/userRoles/:username", anyUser, ctrl.GetUserRoles)
	userinfo.GET("/validId/:id", anyUser, ctrl.IsValidID)
	userinfo.GET("/emailInUse/:email", anyUser, ctrl.EmailInUse)
	userinfo.GET("/userById/:id", anyUser, ctrl.GetUserByID)
	userinfo.GET("/userByUsername/:username", anyUser, ctrl.GetUserByUsername)
	userinfo.POST("/addUser", admins, ctrl.AddUser)
	userinfo.POST("/addUserRoles/:username", admins, ctrl.AddUserRoles)
	userinfo.PUT("/updateUser", anyUser, ctrl.UpdateUser)
	userinfo.PUT("/changePassword/:id", anyUser, ctrl.ChangePassword)
	userinfo.DELETE("/deleteUser/:id", admins, ctrl.DeleteUser)
	userinfo.DELETE("/deleteUserByUsername/:username", admins, ctrl.DeleteUserByUsername)
}

// GetUsers godoc
// @Summary List all users of the realm
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {string} string "Forbidden"
// @Router /userinfo/users [get]
func (ctrl *UserInfoController) GetUsers(c *gin.Context) {
	users, err := ctrl.userSvc.GetUsers(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUsernames godoc
// @Summary List all usernames
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /userinfo/usernames [get]
func (ctrl *UserInfoController) GetUsernames(c *gin.Context) {
	names, err := ctrl.userSvc.GetUsernames(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve usernames")
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetUserRoles godoc
// @Summary Realm role names of a user
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {array} string
// @Failure 404 {object} dto.ErrorResponse
// @Router /userinfo/userRoles/{username} [get]
func (ctrl *UserInfoController) GetUserRoles(c *gin.Context) {
	roles, err := ctrl.userSvc.GetUserRoleNames(c.Request.Context(), c.Param("username"))
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve user roles")
		return
	}
	c.JSON(http.StatusOK, roles)
}

// IsValidID godoc
// @Summary Check whether a user id exists
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {boolean} boolean
// @Router /userinfo/validId/{id} [get]
func (ctrl *UserInfoController) IsValidID(c *gin.Context) {
	valid, err := ctrl.userSvc.IsValidID(c.Request.Context(), c.Param("id"))
	if err != nil {
		controller.RespondError(c, err, "Failed to check user id")
		return
	}
	c.JSON(http.StatusOK, valid)
}

// EmailInUse godoc
// @Summary Id of the first user registered with an email
// @Description Returns the id as a JSON string, or null when the email is free.
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {string} string
// @Router /userinfo/emailInUse/{email} [get]
func (ctrl *UserInfoController) EmailInUse(c *gin.Context) {
	id, err := ctrl.userSvc.FindIDByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		controller.RespondError(c, err, "Failed to look up email")
		return
	}
	c.JSON(http.StatusOK, id)
}

// GetUserByID godoc
// @Summary Get a user with roles
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /userinfo/userById/{id} [get]
func (ctrl *UserInfoController) GetUserByID(c *gin.Context) {
	user, err := ctrl.userSvc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByUsername godoc
// @Summary Get a user with roles by username
// @Tags userinfo
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /userinfo/userByUsername/{username} [get]
func (ctrl *UserInfoController) GetUserByUsername(c *gin.Context) {
	user, err := ctrl.userSvc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// AddUser godoc
// @Summary Create a user with password and realm roles
// @Tags userinfo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserRequest true "User data"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown role"
// @Failure 409 {object} dto.ErrorResponse "Username or email already taken"
// @Router /userinfo/addUser [post]
func (ctrl *UserInfoController) AddUser(c *gin.Context) {
	var req dto.UserRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	user, err := ctrl.userSvc.AddNewUser(c.Request.Context(), req)
	if err != nil {
		controller.RespondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// AddUserRoles godoc
// @Summary Add realm roles to a user
// @Tags userinfo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param roles body []dto.RoleRequest true "Roles"
// @Success 200 {array} dto.RoleResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown user or role"
// @Router /userinfo/addUserRoles/{username} [post]
func (ctrl *UserInfoController) AddUserRoles(c *gin.Context) {
	var req []dto.RoleRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	roles, err := ctrl.userSvc.AddUserRoles(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		controller.RespondError(c, err, "Failed to add user roles")
		return
	}
	c.JSON(http.StatusOK, roles)
}

// UpdateUser godoc
// @Summary Update email, names and password of a user
// @Description Users may only update themselves. Admins may update anyone.
// @Tags userinfo
// @Accept json
// @Security BearerAuth
// @Param user body dto.UserRequest true "User data"
// @Success 204
// @Failure 403 {string} string "Forbidden"
// @Router /userinfo/updateUser [put]
func (ctrl *UserInfoController) UpdateUser(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	var req dto.UserRequest
	if !controller.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if !principal.IsAdmin() {
		// Non-admins may only target their own account, whichever of id or
		// username the body uses to locate it.
		caller, err := ctrl.userSvc.GetUserByUsername(ctx, principal.Username)
		if err != nil {
			if apperror.IsNotFound(err) {
				c.String(http.StatusForbidden, "Forbidden")
				return
			}
			controller.RespondError(c, err, "Failed to update user")
			return
		}
		if req.Username != caller.Username || (req.ID != "" && req.ID != caller.ID) {
			log.Warn().Str("caller", principal.Username).Str("targetID", req.ID).Str("targetUsername", req.Username).Msg("Rejected update of another user")
			c.String(http.StatusForbidden, "Forbidden")
			return
		}
		req.ID = caller.ID
	}

	if err := ctrl.userSvc.UpdateUser(ctx, req); err != nil {
		controller.RespondError(c, err, "Failed to update user")
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary Change a user's password
// @Description The body is the new password, raw or as a JSON string.
// @Tags userinfo
// @Accept plain
// @Produce plain
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param password body string true "New password"
// @Success 200 {string} string "Password changed successfully!"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "No such user"
// @Router /userinfo/changePassword/{id} [put]
func (ctrl *UserInfoController) ChangePassword(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	ctx := c.Request.Context()
	caller, err := ctrl.userSvc.GetUserByUsername(ctx, principal.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.String(http.StatusNotFound, "No such user")
			return
		}
		controller.RespondError(c, err, "Failed to change password")
		return
	}
	password, err := readPassword(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")
	if caller.ID != id && !principal.IsAdmin() {
		log.Warn().Str("caller", principal.Username).Str("target", id).Msg("Rejected password change of another user")
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	if err := ctrl.userSvc.ChangePassword(ctx, id, password); err != nil {
		controller.RespondError(c, err, "Failed to change password")
		return
	}
	c.String(http.StatusOK, "Password changed successfully!")
}

// DeleteUser godoc
// @Summary Delete a user by id
// @Tags userinfo
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {string} string "No user with that id"
// @Router /userinfo/deleteUser/{id} [delete]
func (ctrl *UserInfoController) DeleteUser(c *gin.Context) {
	err := ctrl.userSvc.RemoveUser(c.Request.Context(), c.Param("id"))
	if apperror.IsNotFound(err) {
		c.String(http.StatusNotFound, "No user with that id")
		return
	}
	if err != nil {
		controller.RespondError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUserByUsername godoc
// @Summary Delete a user by username
// @Tags userinfo
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 204
// @Failure 404
// @Router /userinfo/deleteUserByUsername/{username} [delete]
func (ctrl *UserInfoController) DeleteUserByUsername(c *gin.Context) {
	err := ctrl.userSvc.RemoveUserByUsername(c.Request.Context(), c.Param("username"))
	if apperror.IsNotFound(err) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		controller.RespondError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

var (
	errPasswordFormat   = errors.New("password must be a raw string or a JSON string")
	errPasswordRequired = errors.New("password is required")
)

func readPassword(c *gin.Context) (string, error) {
	body, err := c.GetRawData()
	if err != nil {
		return "", err
	}
	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return "", errPasswordFormat
		}
		raw = s
	}
	if raw == "" {
		return "", errPasswordRequired
	}
	return raw, nil
}
