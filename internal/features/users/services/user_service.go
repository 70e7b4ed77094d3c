package users_services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	users_dto "workhub/internal/features/users/dto"
	users_models "workhub/internal/features/users/models"
	users_repositories "workhub/internal/features/users/repositories"
)

const sessionLifetime = 30 * 24 * time.Hour

type UserService struct {
	userRepository      *users_repositories.UserRepository
	sessionRepository   *users_repositories.SessionRepository
	secretKeyRepository *users_repositories.SecretKeyRepository
	logger              *slog.Logger
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_models.User, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:             uuid.New(),
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: &hashedPasswordStr,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) SignIn(
	request *users_dto.SignInRequestDTO,
	ipAddress *string,
	userAgent *string,
) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Same message for unknown email and wrong password: sign-in must not
	// reveal whether an account exists.
	if user == nil || !user.HasPassword() {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Opportunistic cleanup riding on the sign-in write path; failure must
	// not block the sign-in itself.
	if err := s.sessionRepository.DeleteExpiredSessions(); err != nil {
		s.logger.Error("failed to delete expired sessions", "error", err)
	}

	return s.CreateSession(user, ipAddress, userAgent)
}

func (s *UserService) ChangePassword(
	user *users_models.User,
	request *users_dto.ChangePasswordRequestDTO,
) error {
	if !user.HasPassword() {
		return errors.New("current password is incorrect")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(*user.HashedPassword), []byte(request.CurrentPassword),
	); err != nil {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepository.UpdateUserPassword(user.ID, string(hashedPassword))
}

func (s *UserService) SignOut(token string) error {
	return s.sessionRepository.DeleteSessionByToken(token)
}

// CreateSession mints a signed token and persists it as a session row. The
// row is what makes the token revocable: sign-out deletes it and the token
// stops resolving even though its signature stays valid.
func (s *UserService) CreateSession(
	user *users_models.User,
	ipAddress *string,
	userAgent *string,
) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	sessionID := uuid.New()
	expiresAt := time.Now().UTC().Add(sessionLifetime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
		"jti": sessionID.String(),
		"exp": expiresAt.Unix(),
		"iat": time.Now().UTC().Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &users_models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Token:     tokenString,
		ExpiresAt: expiresAt,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.sessionRepository.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	session, err := s.sessionRepository.GetSessionByToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session == nil {
		return nil, errors.New("session has been revoked")
	}

	if session.IsExpired() {
		return nil, errors.New("session has expired")
	}

	user, err := s.userRepository.GetUserByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user no longer exists")
	}

	return user, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		Image:         user.Image,
		CreatedAt:     user.CreatedAt,
	}
}
