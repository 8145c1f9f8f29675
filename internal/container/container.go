package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/config"
	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	userRepo    repository.UserRepository
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	hasher     *helpers.PasswordHasher

	rabbitPub *helpers.RabbitPublisher
	auditSink application.AuditSink
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetUserRepo(r repository.UserRepository) { userRepo = r }
func GetUserRepo() repository.UserRepository  { return userRepo }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetJWT(m *helpers.JWTManager)            { jwtManager = m }
func GetJWT() *helpers.JWTManager             { return jwtManager }
func SetHasher(h *helpers.PasswordHasher)     { hasher = h }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func SetAuditSink(s application.AuditSink)    { auditSink = s }

func GetHasher() *helpers.PasswordHasher {
	if hasher != nil {
		return hasher
	}
	return helpers.NewPasswordHasher(config.BcryptCost)
}

// GetRabbitPub returns nil when email sending is disabled.
func GetRabbitPub() *helpers.RabbitPublisher { return rabbitPub }

func GetAuditSink() application.AuditSink {
	if auditSink != nil {
		return auditSink
	}
	return application.NopAuditSink{}
}
