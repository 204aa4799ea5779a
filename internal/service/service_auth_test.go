package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/mock"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/internal/validators"
	"github.com/MKhiriev/go-turf-booking/models"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "test-issuer",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "test",
	}
}

func newTestAuthSvc(t *testing.T, clock utils.Clock) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig(), clock, logger.Nop()), repo
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesAndNormalises(t *testing.T) {
	svc, repo := newTestAuthSvc(t, utils.FixedClock{T: testNow})

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.NotEqual(t, "pw", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))
			assert.Equal(t, testNow, u.CreatedAt)
			u.UserID = 7
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "  Alice@Example.COM ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthSvc(t, utils.SystemClock{})

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "a@x.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_EmptyInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t, utils.SystemClock{})

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: " ", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.Credentials{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_PasswordTooLongForBcrypt(t *testing.T) {
	svc, _ := newTestAuthSvc(t, utils.SystemClock{})

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "a@x.com", Password: string(long)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, utils.SystemClock{})

	stored := models.User{UserID: 3, Email: "a@x.com", PasswordHash: hashFor(t, "pw")}
	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.Credentials{Email: "A@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, user.UserID)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, repo := newTestAuthSvc(t, utils.SystemClock{})

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").
		Return(models.User{UserID: 3, Email: "a@x.com", PasswordHash: hashFor(t, "pw")}, nil)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, wrongPassword := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "nope"})
	_, unknownEmail := svc.Login(context.Background(), models.Credentials{Email: "ghost@x.com", Password: "nope"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, repo := newTestAuthSvc(t, utils.SystemClock{})

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t, utils.FixedClock{T: time.Now().UTC()})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 11})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(11), parsed.UserID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	issuer := NewAuthService(repo, testAppConfig(), utils.FixedClock{T: testNow}, logger.Nop())
	token, err := issuer.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	later := NewAuthService(repo, testAppConfig(), utils.FixedClock{T: testNow.Add(time.Hour + time.Second)}, logger.Nop())
	_, err = later.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
	assert.NotErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t, utils.SystemClock{})

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)

	other := testAppConfig()
	other.TokenSignKey = "another-key"
	foreign, err := NewAuthService(nil, other, utils.SystemClock{}, logger.Nop()).
		CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_CreateToken_MisconfiguredKey(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, utils.SystemClock{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── Validation decorator ─────────────────────────────────────────────────────

func TestAuthValidationService_RegisterRejectsMalformedEmail(t *testing.T) {
	inner, repo := newTestAuthSvc(t, utils.SystemClock{})
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrValidationFailed)

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email must be a valid email address", verrs.Messages())
}

func TestAuthValidationService_LoginRejectsEmptyPasswordAsBadCredentials(t *testing.T) {
	inner, repo := newTestAuthSvc(t, utils.SystemClock{})
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Times(0)

	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
