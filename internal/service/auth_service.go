package service

import (
	"strings"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/repository"
	"edu_feedback_backend/internal/util"
	"edu_feedback_backend/pkg/logger"
	"edu_feedback_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	UserRepo    *repository.UserRepository
	SessionRepo *repository.SessionRepository
}

func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository) *AuthService {
	return &AuthService{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
	}
}

// Register appends a new user and returns it. Uniqueness of username
// and email is the caller's responsibility; the engine does not check
// for duplicates and will happily append one. The only validation
// performed here is password length.
func (s *AuthService) Register(data model.User) (*model.User, error) {
	if len(data.Password) < util.MinPasswordLength {
		return nil, util.ErrPasswordTooShort
	}
	user := data
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	if user.ID == "" {
		user.ID = "user-" + uuid.New().String()
	}
	if err := s.UserRepo.Append(user); err != nil {
		logger.Log.Warn("user persisted in memory only", zap.String("user", user.ID), zap.Error(err))
	}
	return &user, nil
}

// Validate matches username case-insensitively, password exactly
// (stored in plain text by contract with the host system) and role
// exactly. The first matching record wins.
func (s *AuthService) Validate(username, password string, role model.UserRole) (*model.User, error) {
	for _, u := range s.UserRepo.All() {
		if strings.EqualFold(u.Username, username) && u.Password == password && u.Role == role {
			return &u, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (s *AuthService) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.UserRepo.All() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (s *AuthService) Delete(userID string) error {
	return s.UserRepo.Delete(userID)
}

// Login validates credentials and binds the user to the given
// session, replacing any prior identity.
func (s *AuthService) Login(sess *model.Session, username, password string, role model.UserRole) (*model.User, error) {
	user, err := s.Validate(username, password, role)
	if err != nil {
		return nil, err
	}
	sess.User = user
	monitoring.Logins.WithLabelValues(string(user.Role)).Inc()
	if err := s.SessionRepo.Save(sess); err != nil {
		logger.Log.Warn("session persisted in memory only", zap.Error(err))
	}
	return user, nil
}

func (s *AuthService) Logout(sess *model.Session) {
	sess.User = nil
	if err := s.SessionRepo.Save(sess); err != nil {
		logger.Log.Warn("session persisted in memory only", zap.Error(err))
	}
}
