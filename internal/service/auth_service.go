package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/client"
	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// AuthSession bundles the provider session with the local profile
type AuthSession struct {
	User         *dto.AuthUserResponse
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*AuthSession, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthSession, error)
	Logout(ctx context.Context, accessToken string) error
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	identity  client.IdentityClient
	blacklist TokenBlacklist
	jwtSecret string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	identity client.IdentityClient,
	blacklist TokenBlacklist,
	jwtSecret string,
	logger *zap.Logger,
	m *metrics.Metrics,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		identity:  identity,
		blacklist: blacklist,
		jwtSecret: jwtSecret,
		logger:    logger,
		metrics:   m,
	}
}

// Signup registers credentials with the identity provider and creates the
// local profile row. 아이디/비밀번호 형식 검증은 여기서 끝낸다.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*AuthSession, error) {
	username := util.SanitizeText(req.Username)
	if !usernamePattern.MatchString(username) {
		return nil, response.NewValidationError("Username may only contain letters, numbers and underscores", "")
	}
	if !hasLetter.MatchString(req.Password) || !hasDigit.MatchString(req.Password) {
		return nil, response.NewValidationError("Password must contain at least one letter and one digit", "")
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to check username availability", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create account", err.Error())
	}
	if existing != nil {
		return nil, response.NewConflictError("Username is already taken", "")
	}

	session, err := s.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, client.ErrSignupRejected) {
			return nil, response.NewConflictError("Email is already registered", "")
		}
		s.logger.Error("Identity provider signup failed", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create account", err.Error())
	}

	user := &domain.User{
		ID:       session.UserID,
		Email:    req.Email,
		Username: username,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user profile",
			zap.String("user_id", session.UserID.String()),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create account", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementSignup()
	}
	s.logger.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return s.toAuthSession(user, session), nil
}

// Login exchanges credentials for a session and loads the local profile
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*AuthSession, error) {
	session, err := s.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			return nil, response.NewUnauthorizedError("Invalid email or password", "")
		}
		s.logger.Error("Identity provider sign-in failed", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign in", err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Authenticated user has no profile row",
				zap.String("user_id", session.UserID.String()),
			)
			return nil, response.NewUnauthorizedError("Invalid email or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign in", err.Error())
	}

	return s.toAuthSession(user, session), nil
}

// Logout revokes the session upstream and blacklists the token locally until
// it would have expired anyway.
func (s *authServiceImpl) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}

	if err := s.identity.SignOut(ctx, accessToken); err != nil {
		s.logger.Warn("Identity provider sign-out failed", zap.Error(err))
	}

	ttl := s.remainingTokenLife(accessToken)
	if ttl > 0 {
		if err := s.blacklist.Add(ctx, accessToken, ttl); err != nil {
			s.logger.Error("Failed to blacklist token", zap.Error(err))
			return response.NewAppError(response.ErrCodeInternal, "Failed to sign out", err.Error())
		}
	}
	return nil
}

// remainingTokenLife returns how long the token stays valid. Unparseable
// tokens get zero; the session middleware rejects them regardless.
func (s *authServiceImpl) remainingTokenLife(accessToken string) time.Duration {
	token, err := jwt.Parse(accessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return 0
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return time.Until(exp.Time)
}

func (s *authServiceImpl) toAuthSession(user *domain.User, session *client.Session) *AuthSession {
	return &AuthSession{
		User: &dto.AuthUserResponse{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	}
}
