package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/db/repository"
	"github.com/vite-gourmand/catering-service/internal/mail"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/stats"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = time.Hour
)

// UserStore is the user persistence the auth service needs.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AuthService handles registration, credential checks and password resets.
type AuthService struct {
	users       UserStore
	mailer      mail.Mailer
	recorder    stats.Recorder
	resetSecret string
	baseURL     string
}

// NewAuthService creates a new authentication service.
func NewAuthService(users UserStore, mailer mail.Mailer, recorder stats.Recorder, resetSecret, baseURL string) *AuthService {
	return &AuthService{
		users:       users,
		mailer:      mailer,
		recorder:    recorder,
		resetSecret: resetSecret,
		baseURL:     baseURL,
	}
}

// resetClaims is the signed payload of a password-reset link.
type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Register creates a client account. The welcome email and the analytics
// event are best-effort.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.LastName == "" || req.FirstName == "" || req.Email == "" || req.Password == "" {
		return nil, Invalid("Tous les champs obligatoires doivent être remplis.")
	}
	if len(req.Password) < minPasswordLength {
		return nil, Invalid(fmt.Sprintf("Le mot de passe doit contenir au moins %d caractères.", minPasswordLength))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Internal(err)
	}

	user := models.User{
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleClient,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, Conflict("Cet e-mail est déjà utilisé.")
		}
		return nil, Internal(err)
	}

	s.sendBestEffort(created.Email, "Bienvenue chez Vite & Gourmand !",
		"<h1>Bienvenue "+created.FirstName+" !</h1>"+
			"<p>Votre compte a été créé avec succès.</p>"+
			"<p>Vous pouvez maintenant commander nos menus gastronomiques.</p>"+
			"<p>L'équipe Vite & Gourmand</p>")

	if err := s.recorder.Record(ctx, stats.Event{
		Type:    stats.EventRegistration,
		Details: map[string]any{"email": created.Email},
	}); err != nil {
		logrus.WithError(err).Warn("failed to record registration stat")
	}

	return created, nil
}

// Login checks credentials. The error message never reveals whether the
// email exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, Invalid("E-mail et mot de passe requis.")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, Unauthorized("E-mail ou mot de passe incorrect.")
		}
		return nil, Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, Unauthorized("E-mail ou mot de passe incorrect.")
	}

	return user, nil
}

// RequestPasswordReset emails a signed, one-hour reset link. The response is
// identical whether or not the address is registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return Invalid("E-mail requis.")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return Internal(err)
	}

	token, err := s.newResetToken(user.ID)
	if err != nil {
		return Internal(err)
	}

	s.sendBestEffort(user.Email, "Réinitialisation de votre mot de passe",
		"<h1>Bonjour "+user.FirstName+"</h1>"+
			"<p>Cliquez sur ce lien pour réinitialiser votre mot de passe :</p>"+
			"<a href=\""+s.baseURL+"/reset-password.html?token="+token+"\">Réinitialiser mon mot de passe</a>"+
			"<p>Ce lien expire dans 1 heure.</p>")

	return nil
}

// ResetPassword verifies a reset token and installs the new password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return Invalid(fmt.Sprintf("Le mot de passe doit contenir au moins %d caractères.", minPasswordLength))
	}

	userID, err := s.parseResetToken(token)
	if err != nil {
		return Unauthorized("Lien de réinitialisation invalide ou expiré.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return Internal(err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Unauthorized("Lien de réinitialisation invalide ou expiré.")
		}
		return Internal(err)
	}

	return nil
}

// CreateEmployee creates an employee account. Admin only, enforced at the
// route level.
func (s *AuthService) CreateEmployee(ctx context.Context, req models.EmployeeRequest) (*models.User, error) {
	if req.LastName == "" || req.FirstName == "" || req.Email == "" || req.Password == "" {
		return nil, Invalid("Tous les champs obligatoires doivent être remplis.")
	}
	if len(req.Password) < minPasswordLength {
		return nil, Invalid(fmt.Sprintf("Le mot de passe doit contenir au moins %d caractères.", minPasswordLength))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Internal(err)
	}

	user := models.User{
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleEmployee,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, Conflict("Cet e-mail est déjà utilisé.")
		}
		return nil, Internal(err)
	}

	return created, nil
}

// ListEmployees retrieves all employee accounts.
func (s *AuthService) ListEmployees(ctx context.Context) ([]models.User, error) {
	employees, err := s.users.ListByRole(ctx, models.RoleEmployee)
	if err != nil {
		return nil, Internal(err)
	}

	return employees, nil
}

func (s *AuthService) newResetToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &resetClaims{
		Purpose: "password_reset",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.resetSecret))
}

func (s *AuthService) parseResetToken(tokenString string) (uuid.UUID, error) {
	claims := &resetClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.resetSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid || claims.Purpose != "password_reset" {
		return uuid.Nil, errors.New("invalid reset token")
	}

	return uuid.Parse(claims.Subject)
}

func (s *AuthService) sendBestEffort(to, subject, html string) {
	if err := s.mailer.Send(to, subject, html); err != nil {
		logrus.WithError(err).WithField("to", to).Warn("failed to send email")
	}
}
