package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"ecovista-backend/application/ports"
	"ecovista-backend/domain"
	apperrors "ecovista-backend/pkg/errors"
)

// LocationRepository implements ports.LocationRepository against the
// Locations table.
type LocationRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.LocationRepository {
	return &LocationRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// List returns every location in the table as a single batch
func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		r.logger.Error("Failed to scan locations", zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan locations", err)
	}

	locations := make([]domain.Location, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &locations); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal locations", err)
	}
	return locations, nil
}

// GetByID retrieves one location
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKeyAttrs(id),
	})
	if err != nil {
		r.logger.Error("Failed to get location", zap.String("locationID", id), zap.Error(err))
		return nil, apperrors.NewDatabaseError("get location", err)
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("location %s", id))
	}

	var location domain.Location
	if err := attributevalue.UnmarshalMap(result.Item, &location); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal location", err)
	}
	return &location, nil
}

// Create validates and writes the location. Ingestion-created records carry
// the name only; API-created records are validated against NewLocation by
// the handler, which requires the geolocation pair.
func (r *LocationRepository) Create(ctx context.Context, location *domain.Location) error {
	if err := domain.Validate(location); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(location)
	if err != nil {
		return apperrors.NewDatabaseError("marshal location", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to put location", zap.String("locationID", location.ID), zap.Error(err))
		return apperrors.NewDatabaseError("put location", err)
	}

	r.logger.Debug("Location written",
		zap.String("locationID", location.ID),
		zap.String("name", location.Name),
	)
	return nil
}

// Update merges only the supplied fields into an existing record
func (r *LocationRepository) Update(ctx context.Context, id string, upd domain.LocationUpdate) error {
	if upd.IsEmpty() {
		return apperrors.NewValidationError("no valid fields provided for update")
	}
	if err := domain.Validate(upd); err != nil {
		return err
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	update := expression.UpdateBuilder{}
	if upd.Name != nil {
		update = update.Set(expression.Name("name"), expression.Value(*upd.Name))
	}
	if upd.Geolocation != nil {
		update = update.Set(expression.Name("geolocation"), expression.Value(*upd.Geolocation))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return apperrors.NewDatabaseError("build location update", err)
	}

	if _, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKeyAttrs(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}); err != nil {
		r.logger.Error("Failed to update location", zap.String("locationID", id), zap.Error(err))
		return apperrors.NewDatabaseError("update location", err)
	}
	return nil
}

// Delete removes a location
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKeyAttrs(id),
	}); err != nil {
		r.logger.Error("Failed to delete location", zap.String("locationID", id), zap.Error(err))
		return apperrors.NewDatabaseError("delete location", err)
	}
	return nil
}

// AddArticleRefs merges article ids into the location's back-reference set
// with the same ADD union as the actor repository.
func (r *LocationRepository) AddArticleRefs(ctx context.Context, id string, articleIDs ...string) error {
	if len(articleIDs) == 0 {
		return nil
	}

	if _, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              idKeyAttrs(id),
		UpdateExpression: aws.String("ADD articleIds :articleIds"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":articleIds": &types.AttributeValueMemberSS{Value: articleIDs},
		},
	}); err != nil {
		r.logger.Error("Failed to add article refs to location",
			zap.String("locationID", id),
			zap.Strings("articleIDs", articleIDs),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("add location article refs", err)
	}
	return nil
}
