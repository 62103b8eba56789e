package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduforge/backend/internal/app/models/dto"
	"github.com/eduforge/backend/internal/app/services"
	"github.com/eduforge/backend/internal/middleware"
	"github.com/eduforge/backend/internal/pkg/apperrors"
	pkgauth "github.com/eduforge/backend/internal/pkg/auth"
)

// googleOAuthState guards the OAuth round trip against cross-site requests.
const googleOAuthState = "eduforge-google"

// AuthController handles identity operations
type AuthController struct {
	authService services.AuthService
	google      *pkgauth.GoogleOAuth
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, google *pkgauth.GoogleOAuth, lgr zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		google:      google,
		logger:      lgr,
	}
}

// Login authenticates a user
// @Summary Log in
// @Description Authenticates by email and password and establishes the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Authenticated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse(result)))
}

// SignUp creates a new account
// @Summary Sign up
// @Description Creates an account with a single role and establishes the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid signup data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if req.Password != req.ConfirmPassword {
		middleware.HandleAPIError(ctx, apperrors.ErrPasswordMismatch)
		return
	}

	result, err := c.authService.SignUp(ctx, req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(authResponse(result)))
}

// Logout clears the active session
// @Summary Log out
// @Description Clears the active session unconditionally
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	// Logout never surfaces an error to the user.
	_ = c.authService.Logout(ctx)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// GoogleLogin starts the federated login flow
// @Summary Log in with Google
// @Description Returns the provider consent URL, or establishes a stub session when no OAuth client is configured
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GoogleLoginResponse}
// @Failure 502 {object} dto.ErrorResponse "Identity provider error"
// @Router /auth/google [post]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	if c.google.Configured() {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.GoogleLoginResponse{
			AuthURL: c.google.AuthCodeURL(googleOAuthState),
		}))
		return
	}

	// No OAuth client: deterministic stub session.
	result, err := c.authService.LoginWithGoogle(ctx, "")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	session := authResponse(result)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.GoogleLoginResponse{Session: &session}))
}

// GoogleCallback completes the federated login flow
// @Summary Google OAuth callback
// @Description Exchanges the authorization code and establishes the session
// @Tags auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 502 {object} dto.ErrorResponse "Identity provider error"
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	if !c.google.Configured() {
		middleware.HandleAPIError(ctx, apperrors.NewProviderError("Google login is not configured"))
		return
	}
	if ctx.Query("state") != googleOAuthState {
		middleware.HandleAPIError(ctx, apperrors.NewProviderError("invalid OAuth state"))
		return
	}

	email, err := c.google.FetchEmail(ctx, ctx.Query("code"))
	if err != nil {
		c.logger.Error().Err(err).Msg("Google code exchange failed")
		middleware.HandleAPIError(ctx, errors.Join(apperrors.ErrProviderError, err))
		return
	}

	result, err := c.authService.LoginWithGoogle(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse(result)))
}

// Me returns the authenticated identity
// @Summary Current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Identity}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := middleware.IdentityFromContext(ctx)
	if claims == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	// The token only carries id, email and roles; load the full record.
	identity, err := c.authService.GetIdentity(ctx, claims.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(identity))
}

func authResponse(result *services.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: result.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   result.ExpiresIn,
		},
		User: result.Identity,
	}
}
