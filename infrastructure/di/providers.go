package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"ecovista-backend/application/ingestion"
	"ecovista-backend/application/ports"
	"ecovista-backend/infrastructure/config"
	"ecovista-backend/infrastructure/persistence/dynamodb"
	"ecovista-backend/pkg/auth"
)

// devJWTSecret is used outside production when no secret is configured.
// Config.Validate rejects an empty secret in production.
const devJWTSecret = "local-dev-secret"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideArticleRepository creates an article repository
func ProvideArticleRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ArticleRepository {
	return dynamodb.NewArticleRepository(client, cfg.ArticlesTable, cfg.URLIndexName, logger)
}

// ProvideActorRepository creates an actor repository
func ProvideActorRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ActorRepository {
	return dynamodb.NewActorRepository(client, cfg.ActorsTable, logger)
}

// ProvideTagRepository creates a tag repository
func ProvideTagRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.TagRepository {
	return dynamodb.NewTagRepository(client, cfg.TagsTable, logger)
}

// ProvideLocationRepository creates a location repository
func ProvideLocationRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.LocationRepository {
	return dynamodb.NewLocationRepository(client, cfg.LocationsTable, logger)
}

// ProvideIngestor creates the bulk ingestion fan-out service
func ProvideIngestor(
	articles ports.ArticleRepository,
	actors ports.ActorRepository,
	tags ports.TagRepository,
	locations ports.LocationRepository,
	logger *zap.Logger,
) *ingestion.Ingestor {
	return ingestion.NewIngestor(articles, actors, tags, locations, logger)
}

func jwtConfig(cfg *config.Config) auth.JWTConfig {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = devJWTSecret
	}
	return auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		TTL:       cfg.JWTTTLDuration(),
	}
}

// ProvideJWTIssuer creates the session token issuer
func ProvideJWTIssuer(cfg *config.Config) (*auth.JWTIssuer, error) {
	return auth.NewJWTIssuer(jwtConfig(cfg))
}

// ProvideJWTValidator creates the session token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(jwtConfig(cfg))
}
