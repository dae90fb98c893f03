package impl

import (
	"io"
	"log/slog"

	"kda/config"
	"kda/internal/domain/entity"
	"kda/internal/domain/service"

	"github.com/google/uuid"
)

var userFixture = entity.User{
	Username:     "mastika",
	Email:        "mastika@gmail.com",
	Name:         "mastika",
	PasswordHash: "hashed-811899",
	Roles:        entity.Roles{entity.RoleUser},
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	}
}

func newSessionFixture(username string) *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		Username:  username,
		Valid:     true,
		UserAgent: "test-agent",
	}
}

func newIdentityFixture(session *entity.Session) entity.Identity {
	return entity.Identity{
		Username: session.Username,
		Email:    session.Username + "@gmail.com",
		Name:     session.Username,
		Session:  session.Snapshot(),
		Roles:    entity.Roles{entity.RoleUser},
	}
}

func newClaimsFixture(session *entity.Session) *service.Claims {
	return &service.Claims{Identity: newIdentityFixture(session)}
}
