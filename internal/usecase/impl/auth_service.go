// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"kda/config"
	deliverycontext "kda/internal/delivery/context"
	"kda/internal/domain/entity"
	domainerrors "kda/internal/domain/errors"
	"kda/internal/domain/repository"
	"kda/internal/domain/service"
	"kda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokenCodec  service.TokenCodec
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	TokenCodec  service.TokenCodec
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokenCodec:  params.TokenCodec,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account with the default role, opens its first
// session and signs the token pair. The uniqueness checks, the user row
// and the session row all live in one transaction so a failed step leaves
// nothing behind.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var (
		user    *entity.User
		session *entity.Session
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		count, err := userRepo.CountByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if count > 0 {
			return domainerrors.ErrUsernameTaken
		}

		count, err = userRepo.CountByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if count > 0 {
			return domainerrors.ErrEmailTaken
		}

		user = &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hashed,
			Roles:        entity.Roles{entity.RoleUser},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			// The check above raced a concurrent registration into the
			// unique index.
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.NewDatabaseExecuteError(err, "unique constraint violated on users")
			}

			return errors.Wrap(err, "failed to create user")
		}

		session, err = sessionRepo.Create(ctx, user.Username, input.UserAgent)
		if err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output, err := srv.issueTokens(user, session)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration completed",
		slog.String("username", user.Username),
		slog.String("sessionId", session.ID.String()),
	)

	return output, nil
}

// Login verifies the credentials and opens a fresh session. An unknown
// username and a wrong password produce the same error so the response
// does not reveal which part failed.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.sessionRepo.Create(ctx, user.Username, input.UserAgent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	output, err := srv.issueTokens(user, session)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login completed",
		slog.String("username", user.Username),
		slog.String("sessionId", session.ID.String()),
	)

	return output, nil
}

// Logout invalidates the session bound to the caller's identity. The
// session row survives with its Valid flag flipped; a second logout of
// the same session fails.
func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(sessionID)
	if err != nil {
		return domainerrors.ErrUnauthorized
	}

	if _, err := srv.sessionRepo.Invalidate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrUnauthorized
		}

		return errors.Wrap(err, "failed to invalidate session")
	}

	srv.log(ctx).Info("Logout completed", slog.String("sessionId", sessionID))

	return nil
}

// Resolve turns the request's cookie material into a Resolution. The
// decision tree:
//
//	no access token            -> unauthenticated, clear cookies
//	access verifies, session valid -> identity from the token
//	access verifies, session dead  -> unauthenticated, clear cookies
//	access fails, no refresh token -> unauthenticated, clear cookies
//	access fails, refresh present  -> silent refresh; on failure the dead
//	                                  access token's session is salvaged
//	                                  (invalidated best-effort) and the
//	                                  cookies cleared
//
// Bad tokens never surface as errors; only infrastructure failures do.
func (srv *authService) Resolve(ctx context.Context, input usecase.ResolveInput) (*usecase.Resolution, error) {
	if input.AccessToken == "" {
		return &usecase.Resolution{Clear: true}, nil
	}

	claims, err := srv.tokenCodec.Verify(input.AccessToken)
	if err == nil {
		return srv.resolveVerified(ctx, claims)
	}

	if input.RefreshToken == "" {
		return &usecase.Resolution{Clear: true}, nil
	}

	resolution, err := srv.refresh(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if resolution.Clear {
		srv.salvage(ctx, input.AccessToken)
	}

	return resolution, nil
}

// resolveVerified finishes resolution for an access token whose signature
// and expiry checked out. The session registry stays the source of truth:
// a token outliving its session does not authenticate.
func (srv *authService) resolveVerified(ctx context.Context, claims *service.Claims) (*usecase.Resolution, error) {
	if claims.Session.ID == uuid.Nil {
		return &usecase.Resolution{Clear: true}, nil
	}

	if _, err := srv.sessionRepo.FindValid(ctx, claims.Session.ID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return &usecase.Resolution{Clear: true}, nil
		}

		return nil, errors.Wrap(err, "failed to check session")
	}

	identity := claims.Identity

	return &usecase.Resolution{Identity: &identity}, nil
}

// refresh attempts the silent reissue: the refresh token must verify and
// its session must still be valid, then a fresh access token is signed
// from the refresh token's own payload. The refresh token itself is never
// rotated.
func (srv *authService) refresh(ctx context.Context, refreshToken string) (*usecase.Resolution, error) {
	claims, err := srv.tokenCodec.Verify(refreshToken)
	if err != nil {
		return &usecase.Resolution{Clear: true}, nil
	}

	if claims.Session.ID == uuid.Nil {
		return &usecase.Resolution{Clear: true}, nil
	}

	if _, err := srv.sessionRepo.FindValid(ctx, claims.Session.ID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return &usecase.Resolution{Clear: true}, nil
		}

		return nil, errors.Wrap(err, "failed to check session")
	}

	identity := claims.Identity
	accessToken, err := srv.tokenCodec.SignAccess(&identity)
	if err != nil {
		srv.log(ctx).Warn("Failed to sign refreshed access token", slog.String("error", err.Error()))

		return &usecase.Resolution{Clear: true}, nil
	}

	srv.log(ctx).Debug("Access token refreshed", slog.String("sessionId", claims.Session.ID.String()))

	return &usecase.Resolution{Identity: &identity, Refreshed: accessToken}, nil
}

// salvage invalidates the session referenced by the expired access token
// after a failed reissue, so the dead token pair cannot be replayed once
// the session's refresh material is gone. The token is decoded without
// verification; every failure here is swallowed since the request is
// already unauthenticated.
func (srv *authService) salvage(ctx context.Context, accessToken string) {
	claims, err := srv.tokenCodec.Decode(accessToken)
	if err != nil {
		return
	}

	if claims.Session.ID == uuid.Nil {
		return
	}

	if _, err := srv.sessionRepo.Invalidate(ctx, claims.Session.ID); err != nil {
		srv.log(ctx).Debug("Session salvage skipped",
			slog.String("sessionId", claims.Session.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	srv.log(ctx).Info("Salvaged session invalidated", slog.String("sessionId", claims.Session.ID.String()))
}

// issueTokens builds the identity carried by the tokens and signs the pair.
func (srv *authService) issueTokens(user *entity.User, session *entity.Session) (*usecase.AuthOutput, error) {
	identity := &entity.Identity{
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Session:  session.Snapshot(),
		Roles:    user.Roles,
	}

	tokens, err := srv.tokenCodec.SignPair(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token pair")
	}

	return &usecase.AuthOutput{
		Identity: identity,
		Tokens: &usecase.TokenCookies{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		},
	}, nil
}
