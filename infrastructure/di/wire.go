//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"ecovista-backend/application/ingestion"
	"ecovista-backend/application/ports"
	"ecovista-backend/infrastructure/config"
	"ecovista-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	ArticleRepo  ports.ArticleRepository
	ActorRepo    ports.ActorRepository
	TagRepo      ports.TagRepository
	LocationRepo ports.LocationRepository
	Ingestor     *ingestion.Ingestor
	JWTIssuer    *auth.JWTIssuer
	JWTValidator *auth.JWTValidator
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideArticleRepository,
	ProvideActorRepository,
	ProvideTagRepository,
	ProvideLocationRepository,
	ProvideIngestor,
	ProvideJWTIssuer,
	ProvideJWTValidator,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
