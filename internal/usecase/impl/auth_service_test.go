package impl

import (
	"context"
	"testing"

	domainerrors "kda/internal/domain/errors"
	"kda/internal/domain/repository"
	"kda/internal/domain/service"
	mockRepo "kda/internal/mocks/repository"
	mockSvc "kda/internal/mocks/service"
	"kda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenCodec  *mockSvc.MockTokenCodec
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	mocks := &authServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		sessionRepo: mockRepo.NewMockSessionRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokenCodec:  mockSvc.NewMockTokenCodec(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:   mocks.txManager,
		UserRepo:    mocks.userRepo,
		SessionRepo: mocks.sessionRepo,
		Hasher:      mocks.hasher,
		TokenCodec:  mocks.tokenCodec,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return svc, mocks
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	session := newSessionFixture("mastika")

	mocks.hasher.EXPECT().Hash("811899").Return("hashed-811899", nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			sessionRepo := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().SessionRepo().Return(sessionRepo)

			userRepo.EXPECT().CountByUsername(ctx, "mastika").Return(int64(0), nil)
			userRepo.EXPECT().CountByEmail(ctx, "mastika@gmail.com").Return(int64(0), nil)
			userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			sessionRepo.EXPECT().Create(ctx, "mastika", "test-agent").Return(session, nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	mocks.tokenCodec.EXPECT().
		SignPair(mock.Anything).
		Return(&service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	output, err := svc.Register(ctx, usecase.RegisterInput{
		Username:  "mastika",
		Password:  "811899",
		Name:      "mastika",
		Email:     "mastika@gmail.com",
		UserAgent: "test-agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "mastika", output.Identity.Username)
	assert.Equal(t, session.ID, output.Identity.Session.ID)
	assert.True(t, output.Identity.Session.Valid)
	assert.Equal(t, "access", output.Tokens.AccessToken)
	assert.Equal(t, "refresh", output.Tokens.RefreshToken)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("811899").Return("hashed", nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().SessionRepo().Return(mockRepo.NewMockSessionRepository(t))

			userRepo.EXPECT().CountByUsername(ctx, "mastika").Return(int64(1), nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrUsernameTaken)
		}).
		Return(domainerrors.ErrUsernameTaken)

	output, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "mastika",
		Password: "811899",
		Name:     "mastika",
		Email:    "mastika@gmail.com",
	})

	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Nil(t, output)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("811899").Return("hashed", nil)
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().SessionRepo().Return(mockRepo.NewMockSessionRepository(t))

			userRepo.EXPECT().CountByUsername(ctx, "mastika").Return(int64(0), nil)
			userRepo.EXPECT().CountByEmail(ctx, "mastika@gmail.com").Return(int64(1), nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrEmailTaken)
		}).
		Return(domainerrors.ErrEmailTaken)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "mastika",
		Password: "811899",
		Name:     "mastika",
		Email:    "mastika@gmail.com",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	session := newSessionFixture("mastika")
	identity := newIdentityFixture(session)

	mocks.userRepo.EXPECT().FindByUsername(ctx, "mastika").Return(&userFixture, nil)
	mocks.hasher.EXPECT().Compare("hashed-811899", "811899").Return(nil)
	mocks.sessionRepo.EXPECT().Create(ctx, "mastika", "test-agent").Return(session, nil)
	mocks.tokenCodec.EXPECT().
		SignPair(mock.Anything).
		Return(&service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	output, err := svc.Login(ctx, usecase.LoginInput{
		Username:  "mastika",
		Password:  "811899",
		UserAgent: "test-agent",
	})

	require.NoError(t, err)
	assert.Equal(t, identity.Username, output.Identity.Username)
	assert.Equal(t, session.ID, output.Identity.Session.ID)
	assert.NotEmpty(t, output.Tokens.RefreshToken)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	// Unknown username.
	svc, mocks := newAuthService(t)
	mocks.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, unknownErr := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "811899"})
	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	// Wrong password.
	svc2, mocks2 := newAuthService(t)
	mocks2.userRepo.EXPECT().FindByUsername(ctx, "mastika").Return(&userFixture, nil)
	mocks2.hasher.EXPECT().Compare("hashed-811899", "nope").Return(assert.AnError)

	_, wrongErr := svc2.Login(ctx, usecase.LoginInput{Username: "mastika", Password: "nope"})
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	// The two failures are indistinguishable to the caller.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Logout_Success(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	session := newSessionFixture("mastika")
	invalidated := *session
	invalidated.Valid = false

	mocks.sessionRepo.EXPECT().Invalidate(ctx, session.ID).Return(&invalidated, nil)

	require.NoError(t, svc.Logout(ctx, session.ID.String()))
}

func TestAuthService_Logout_Unauthorized(t *testing.T) {
	ctx := context.Background()

	t.Run("empty session id", func(t *testing.T) {
		svc, _ := newAuthService(t)
		assert.ErrorIs(t, svc.Logout(ctx, ""), domainerrors.ErrUnauthorized)
	})

	t.Run("malformed session id", func(t *testing.T) {
		svc, _ := newAuthService(t)
		assert.ErrorIs(t, svc.Logout(ctx, "not-a-uuid"), domainerrors.ErrUnauthorized)
	})

	t.Run("session already invalid", func(t *testing.T) {
		svc, mocks := newAuthService(t)
		id := uuid.New()
		mocks.sessionRepo.EXPECT().Invalidate(ctx, id).Return(nil, repository.ErrSessionNotFound)

		assert.ErrorIs(t, svc.Logout(ctx, id.String()), domainerrors.ErrUnauthorized)
	})
}
