package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/client"
	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/response"
)

const testJWTSecret = "test-secret"

func signedTestToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"aud": "authenticated",
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func TestAuthService_Signup(t *testing.T) {
	userID := uuid.New()
	var createdUser *domain.User

	mockUserRepo := &MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			createdUser = user
			return nil
		},
	}
	mockIdentity := &MockIdentityClient{
		SignUpFunc: func(ctx context.Context, email, password string) (*client.Session, error) {
			return &client.Session{
				UserID:       userID,
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    3600,
			}, nil
		},
	}

	service := NewAuthService(mockUserRepo, mockIdentity, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	session, err := service.Signup(context.Background(), &dto.SignupRequest{
		Email:    "new@example.com",
		Password: "password1",
		Username: "new_user",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if session.User.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, session.User.UserID)
	}
	if session.AccessToken != "access" || session.RefreshToken != "refresh" {
		t.Error("Expected provider tokens to pass through")
	}
	// Local profile row reuses the provider subject as primary key
	if createdUser == nil || createdUser.ID != userID {
		t.Error("Expected profile row keyed by the provider user ID")
	}
}

func TestAuthService_Signup_InvalidUsername(t *testing.T) {
	service := NewAuthService(&MockUserRepository{}, &MockIdentityClient{}, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	for _, username := range []string{"has space", "über", "semi;colon", "dash-ed"} {
		_, err := service.Signup(context.Background(), &dto.SignupRequest{
			Email:    "user@example.com",
			Password: "password1",
			Username: username,
		})
		appErr, ok := err.(*response.AppError)
		if !ok {
			t.Fatalf("Expected AppError for username %q, got %T", username, err)
		}
		if appErr.Code != response.ErrCodeValidation {
			t.Errorf("Expected validation error for username %q, got %s", username, appErr.Code)
		}
	}
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	service := NewAuthService(&MockUserRepository{}, &MockIdentityClient{}, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	// Missing a digit, then missing a letter
	for _, password := range []string{"onlyletters", "12345678"} {
		_, err := service.Signup(context.Background(), &dto.SignupRequest{
			Email:    "user@example.com",
			Password: password,
			Username: "valid_user",
		})
		appErr, ok := err.(*response.AppError)
		if !ok {
			t.Fatalf("Expected AppError for password %q, got %T", password, err)
		}
		if appErr.Code != response.ErrCodeValidation {
			t.Errorf("Expected validation error for password %q, got %s", password, appErr.Code)
		}
	}
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	mockUserRepo := &MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Username: username}, nil
		},
	}
	service := NewAuthService(mockUserRepo, &MockIdentityClient{}, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	_, err := service.Signup(context.Background(), &dto.SignupRequest{
		Email:    "user@example.com",
		Password: "password1",
		Username: "taken",
	})
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeAlreadyExists {
		t.Errorf("Expected conflict error, got %s", appErr.Code)
	}
	if appErr.Message != "Username is already taken" {
		t.Errorf("Unexpected message: %s", appErr.Message)
	}
}

func TestAuthService_Signup_EmailRegistered(t *testing.T) {
	mockIdentity := &MockIdentityClient{
		SignUpFunc: func(ctx context.Context, email, password string) (*client.Session, error) {
			return nil, client.ErrSignupRejected
		},
	}
	service := NewAuthService(&MockUserRepository{}, mockIdentity, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	_, err := service.Signup(context.Background(), &dto.SignupRequest{
		Email:    "dup@example.com",
		Password: "password1",
		Username: "fresh_user",
	})
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeAlreadyExists {
		t.Errorf("Expected conflict error, got %s", appErr.Code)
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	mockUserRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Email: "user@example.com", Username: "user1"}, nil
		},
	}
	mockIdentity := &MockIdentityClient{
		SignInWithPasswordFunc: func(ctx context.Context, email, password string) (*client.Session, error) {
			return &client.Session{UserID: userID, AccessToken: "access", ExpiresIn: 3600}, nil
		},
	}
	service := NewAuthService(mockUserRepo, mockIdentity, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	session, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if session.User.Username != "user1" {
		t.Errorf("Expected username user1, got %s", session.User.Username)
	}
	if session.ExpiresIn != 3600 {
		t.Errorf("Expected expires_in 3600, got %d", session.ExpiresIn)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	mockIdentity := &MockIdentityClient{
		SignInWithPasswordFunc: func(ctx context.Context, email, password string) (*client.Session, error) {
			return nil, client.ErrInvalidCredentials
		},
	}
	service := NewAuthService(&MockUserRepository{}, mockIdentity, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeUnauthorized {
		t.Errorf("Expected unauthorized error, got %s", appErr.Code)
	}
}

func TestAuthService_Login_MissingProfile(t *testing.T) {
	// Provider knows the account but the local profile row is gone.
	// 프로필이 없으면 자격 증명 오류와 동일하게 처리한다.
	mockUserRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewAuthService(mockUserRepo, &MockIdentityClient{}, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password1",
	})
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeUnauthorized {
		t.Errorf("Expected unauthorized error, got %s", appErr.Code)
	}
}

func TestAuthService_Logout_BlacklistsToken(t *testing.T) {
	var gotToken string
	var gotTTL time.Duration
	mockBlacklist := &MockTokenBlacklist{
		AddFunc: func(ctx context.Context, token string, ttl time.Duration) error {
			gotToken = token
			gotTTL = ttl
			return nil
		},
	}
	service := NewAuthService(&MockUserRepository{}, &MockIdentityClient{}, mockBlacklist, testJWTSecret, zap.NewNop(), nil)

	token := signedTestToken(t, time.Hour)
	if err := service.Logout(context.Background(), token); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gotToken != token {
		t.Error("Expected the access token to be blacklisted")
	}
	if gotTTL <= 0 || gotTTL > time.Hour {
		t.Errorf("Expected TTL within the token lifetime, got %v", gotTTL)
	}
}

func TestAuthService_Logout_GarbageToken(t *testing.T) {
	added := false
	mockBlacklist := &MockTokenBlacklist{
		AddFunc: func(ctx context.Context, token string, ttl time.Duration) error {
			added = true
			return nil
		},
	}
	service := NewAuthService(&MockUserRepository{}, &MockIdentityClient{}, mockBlacklist, testJWTSecret, zap.NewNop(), nil)

	if err := service.Logout(context.Background(), "not-a-jwt"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if added {
		t.Error("Expected unparseable tokens to skip the blacklist")
	}
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	service := NewAuthService(&MockUserRepository{}, &MockIdentityClient{}, &MockTokenBlacklist{}, testJWTSecret, zap.NewNop(), nil)
	if err := service.Logout(context.Background(), ""); err != nil {
		t.Fatalf("Expected no error for empty token, got %v", err)
	}
}
