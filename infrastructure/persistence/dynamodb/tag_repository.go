package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"ecovista-backend/application/ports"
	"ecovista-backend/domain"
	apperrors "ecovista-backend/pkg/errors"
)

// TagRepository implements ports.TagRepository against the Tags table
type TagRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.TagRepository {
	return &TagRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// List returns every tag in the table as a single batch
func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		r.logger.Error("Failed to scan tags", zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan tags", err)
	}

	tags := make([]domain.Tag, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tags); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal tags", err)
	}
	return tags, nil
}

// GetByID retrieves one tag
func (r *TagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKeyAttrs(id),
	})
	if err != nil {
		r.logger.Error("Failed to get tag", zap.String("tagID", id), zap.Error(err))
		return nil, apperrors.NewDatabaseError("get tag", err)
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("tag %s", id))
	}

	var tag domain.Tag
	if err := attributevalue.UnmarshalMap(result.Item, &tag); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal tag", err)
	}
	return &tag, nil
}

// Put validates and writes the tag. Re-inserting the same id overwrites
// without side effects.
func (r *TagRepository) Put(ctx context.Context, tag *domain.Tag) error {
	if err := domain.Validate(tag); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(tag)
	if err != nil {
		return apperrors.NewDatabaseError("marshal tag", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to put tag", zap.String("tagID", tag.ID), zap.Error(err))
		return apperrors.NewDatabaseError("put tag", err)
	}
	return nil
}

// Update merges only the supplied fields into an existing record
func (r *TagRepository) Update(ctx context.Context, id string, upd domain.TagUpdate) error {
	if upd.IsEmpty() {
		return apperrors.NewValidationError("no valid fields provided for update")
	}
	if err := domain.Validate(upd); err != nil {
		return err
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKeyAttrs(id),
		UpdateExpression:         aws.String("SET #name = :name"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: *upd.Name},
		},
	}); err != nil {
		r.logger.Error("Failed to update tag", zap.String("tagID", id), zap.Error(err))
		return apperrors.NewDatabaseError("update tag", err)
	}
	return nil
}

// Delete removes a tag
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKeyAttrs(id),
	}); err != nil {
		r.logger.Error("Failed to delete tag", zap.String("tagID", id), zap.Error(err))
		return apperrors.NewDatabaseError("delete tag", err)
	}
	return nil
}
