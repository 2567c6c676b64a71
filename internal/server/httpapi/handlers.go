package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/dmitrijs2005/careerhub/internal/server/services"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         userSummary `json:"user"`
}

type tokensResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type userProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Expertise []string  `json:"expertise"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, badBody())
	}

	res, err := s.users.Register(c.Request().Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, badBody())
	}

	res, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}

func (s *Server) currentUser(c echo.Context) error {
	u, err := s.users.GetCurrentUser(c.Request().Context(), tokenFromRequest(c.Request()))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, userProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Expertise: u.Expertise,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
}

func (s *Server) refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, badBody())
	}

	pair, err := s.users.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tokensResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, badBody())
	}

	if err := s.users.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// tokenFromRequest accepts "Authorization: Bearer <t>" and the legacy
// x-auth-token header.
func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get(echo.HeaderAuthorization); h != "" {
		const prefix = "Bearer "
		if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
			return strings.TrimSpace(h[len(prefix):])
		}
		return ""
	}
	return strings.TrimSpace(r.Header.Get(common.LegacyTokenHeaderName))
}

func badBody() error {
	return fmt.Errorf("%w: malformed request body", common.ErrorValidation)
}

func toAuthResponse(r *services.AuthResult) authResponse {
	return authResponse{
		Token:        r.Tokens.AccessToken,
		RefreshToken: r.Tokens.RefreshToken,
		User:         summary(r.User),
	}
}

func summary(u *models.PublicUser) userSummary {
	return userSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role.String()}
}
