package middleware

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/tms/config"
	"github.com/lshigami/tms/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	RoleUser       = "ROLE_user"
	RoleAdmin      = "ROLE_admin"
	RoleSuperAdmin = "ROLE_superadmin"

	rolePrefix   = "ROLE_"
	principalKey = "principal"
)

// Principal is the caller identity taken from a verified access token.
type Principal struct {
	Subject  string
	Username string
	Roles    []string
}

func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, have := range p.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IsAdmin reports whether the caller may act on other users.
func (p *Principal) IsAdmin() bool {
	return p.HasAnyRole(RoleAdmin, RoleSuperAdmin)
}

type keycloakClaims struct {
	jwt.RegisteredClaims
	PreferredUsername string `json:"preferred_username"`
	RealmAccess       struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// TokenVerifier checks RS256 access tokens signed by the Keycloak realm key
// and issued by the configured realm.
type TokenVerifier struct {
	key    *rsa.PublicKey
	issuer string
}

func NewTokenVerifier(cfg *config.Config) (*TokenVerifier, error) {
	issuer, err := RealmIssuer(cfg.Keycloak)
	if err != nil {
		return nil, err
	}
	key, err := ParseRealmPublicKey(cfg.Auth.PublicKey)
	if err != nil {
		return nil, err
	}
	return &TokenVerifier{key: key, issuer: issuer}, nil
}

// RealmIssuer is the "iss" claim Keycloak puts on tokens of the configured realm.
func RealmIssuer(cfg config.Keycloak) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if base == "" || cfg.Realm == "" {
		return "", errors.New("KEYCLOAK_URL and KEYCLOAK_REALM are required")
	}
	return base + "/realms/" + cfg.Realm, nil
}

// ParseRealmPublicKey accepts a PEM public key or the bare base64 body that
// the Keycloak admin console displays under realm keys.
func ParseRealmPublicKey(raw string) (*rsa.PublicKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("AUTH_PUBLIC_KEY is required")
	}
	if !strings.HasPrefix(raw, "-----BEGIN") {
		raw = "-----BEGIN PUBLIC KEY-----\n" + raw + "\n-----END PUBLIC KEY-----"
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parse realm public key: %w", err)
	}
	return key, nil
}

func (v *TokenVerifier) Verify(tokenString string) (*Principal, error) {
	var claims keycloakClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(claims.RealmAccess.Roles))
	for _, r := range claims.RealmAccess.Roles {
		roles = append(roles, normalizeRole(r))
	}
	return &Principal{
		Subject:  claims.Subject,
		Username: claims.PreferredUsername,
		Roles:    roles,
	}, nil
}

func normalizeRole(role string) string {
	if strings.HasPrefix(role, rolePrefix) {
		return role
	}
	return rolePrefix + role
}

// Authenticate rejects requests without a valid bearer token and stores the
// Principal on the gin context.
func Authenticate(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid authorization header format"})
			return
		}

		principal, err := verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRoles lets the request through when the principal holds any of roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok || !principal.HasAnyRole(roles...) {
			c.Abort()
			c.String(http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// SetPrincipal stores p on the context. Used by handlers under test.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}
