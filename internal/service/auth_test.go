package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vite-gourmand/catering-service/internal/db/repository"
	"github.com/vite-gourmand/catering-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (f *fakeUsers) add(u *models.User) {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("failed to get user: %w", sql.ErrNoRows)
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("failed to get user by email: %w", sql.ErrNoRows)
}

func (f *fakeUsers) Create(_ context.Context, user models.User) (*models.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, repository.ErrDuplicateEmail
	}
	user.ID = uuid.New()
	f.add(&user)
	return &user, nil
}

func (f *fakeUsers) ListByRole(_ context.Context, role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, sql.ErrNoRows)
	}
	u.PasswordHash = hash
	return nil
}

type fakeMailer struct {
	sent []string // "to|subject"
	err  error
}

func (f *fakeMailer) Send(to, subject, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

func newAuthService(users *fakeUsers, mailer *fakeMailer) *AuthService {
	return NewAuthService(users, mailer, &fakeRecorder{}, "test-secret", "http://localhost:3000")
}

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		LastName:  "Martin",
		FirstName: "Paul",
		Email:     "paul@example.com",
		Password:  "motdepasse",
	}
}

func TestRegisterCreatesClient(t *testing.T) {
	users := newFakeUsers()
	mailer := &fakeMailer{}
	svc := newAuthService(users, mailer)

	user, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.NotEqual(t, "motdepasse", user.PasswordHash)
	require.Len(t, mailer.sent, 1, "welcome email sent")
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(newFakeUsers(), &fakeMailer{})

	missing := validRegistration()
	missing.Email = ""
	_, err := svc.Register(context.Background(), missing)
	assert.Equal(t, CodeInvalid, CodeOf(err))

	short := validRegistration()
	short.Password = "court"
	_, err = svc.Register(context.Background(), short)
	assert.Equal(t, CodeInvalid, CodeOf(err))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users, &fakeMailer{})

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegistration())
	assert.Equal(t, CodeConflict, CodeOf(err))
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	svc := newAuthService(newFakeUsers(), &fakeMailer{err: fmt.Errorf("smtp down")})

	_, err := svc.Register(context.Background(), validRegistration())
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.add(&models.User{
		ID:           uuid.New(),
		Email:        "paul@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleClient,
	})
	svc := newAuthService(users, &fakeMailer{})

	user, err := svc.Login(context.Background(), "paul@example.com", "motdepasse")
	require.NoError(t, err)
	assert.Equal(t, "paul@example.com", user.Email)

	// Unknown address and wrong password yield the same message
	_, errUnknown := svc.Login(context.Background(), "absent@example.com", "motdepasse")
	_, errWrong := svc.Login(context.Background(), "paul@example.com", "faux")
	assert.Equal(t, CodeUnauthorized, CodeOf(errUnknown))
	assert.Equal(t, CodeUnauthorized, CodeOf(errWrong))
	assert.Equal(t, MessageOf(errUnknown), MessageOf(errWrong))
}

func TestPasswordResetRoundTrip(t *testing.T) {
	users := newFakeUsers()
	user := &models.User{ID: uuid.New(), Email: "paul@example.com", FirstName: "Paul"}
	users.add(user)
	mailer := &fakeMailer{}
	svc := newAuthService(users, mailer)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "paul@example.com"))
	require.Len(t, mailer.sent, 1)

	token, err := svc.newResetToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "nouveaumotdepasse"))
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte("nouveaumotdepasse")))
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newAuthService(newFakeUsers(), mailer)

	// No error and no email: the response must not reveal account existence
	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "absent@example.com"))
	assert.Empty(t, mailer.sent)
}

func TestResetPasswordRejectsTamperedToken(t *testing.T) {
	users := newFakeUsers()
	user := &models.User{ID: uuid.New(), Email: "paul@example.com"}
	users.add(user)
	svc := newAuthService(users, &fakeMailer{})

	other := NewAuthService(users, &fakeMailer{}, &fakeRecorder{}, "other-secret", "")
	token, err := other.newResetToken(user.ID)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "nouveaumotdepasse")
	assert.Equal(t, CodeUnauthorized, CodeOf(err))
}

func TestCreateEmployee(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users, &fakeMailer{})

	employee, err := svc.CreateEmployee(context.Background(), models.EmployeeRequest{
		LastName:  "Bernard",
		FirstName: "Sophie",
		Email:     "sophie@vite-gourmand.fr",
		Password:  "motdepasse",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, employee.Role)

	employees, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}
