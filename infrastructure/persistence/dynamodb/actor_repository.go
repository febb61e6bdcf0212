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

// ActorRepository implements ports.ActorRepository against the Actors table.
// The articleIds attribute is a native string set, which is what makes the
// ADD-based union on it idempotent.
type ActorRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewActorRepository creates a new ActorRepository
func NewActorRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ActorRepository {
	return &ActorRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// List returns every actor in the table as a single batch
func (r *ActorRepository) List(ctx context.Context) ([]domain.Actor, error) {
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		r.logger.Error("Failed to scan actors", zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan actors", err)
	}

	actors := make([]domain.Actor, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &actors); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal actors", err)
	}
	return actors, nil
}

// GetByID retrieves one actor
func (r *ActorRepository) GetByID(ctx context.Context, id string) (*domain.Actor, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKeyAttrs(id),
	})
	if err != nil {
		r.logger.Error("Failed to get actor", zap.String("actorID", id), zap.Error(err))
		return nil, apperrors.NewDatabaseError("get actor", err)
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("actor %s", id))
	}

	var actor domain.Actor
	if err := attributevalue.UnmarshalMap(result.Item, &actor); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal actor", err)
	}
	return &actor, nil
}

// Create validates and writes the actor
func (r *ActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	if err := domain.Validate(actor); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(actor)
	if err != nil {
		return apperrors.NewDatabaseError("marshal actor", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to put actor", zap.String("actorID", actor.ID), zap.Error(err))
		return apperrors.NewDatabaseError("put actor", err)
	}

	r.logger.Debug("Actor written",
		zap.String("actorID", actor.ID),
		zap.String("name", actor.Name),
	)
	return nil
}

// Update merges only the supplied fields into an existing record. An
// explicit articleIds update replaces the whole set, unlike the ingestion
// union.
func (r *ActorRepository) Update(ctx context.Context, id string, upd domain.ActorUpdate) error {
	if upd.IsEmpty() {
		return apperrors.NewValidationError("no valid fields provided for update")
	}
	if err := domain.Validate(upd); err != nil {
		return err
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	// Built by hand because the set replace needs an SS value, which the
	// expression builder would marshal as a list.
	setExprs := make([]string, 0, 3)
	values := map[string]types.AttributeValue{}
	if upd.Name != nil {
		setExprs = append(setExprs, "#name = :name")
		values[":name"] = &types.AttributeValueMemberS{Value: *upd.Name}
	}
	if upd.TagID != nil {
		setExprs = append(setExprs, "tagId = :tagId")
		values[":tagId"] = &types.AttributeValueMemberS{Value: *upd.TagID}
	}
	if upd.ArticleIDs != nil {
		setExprs = append(setExprs, "articleIds = :articleIds")
		values[":articleIds"] = &types.AttributeValueMemberSS{Value: *upd.ArticleIDs}
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKeyAttrs(id),
		UpdateExpression:          aws.String("SET " + joinExprs(setExprs)),
		ExpressionAttributeValues: values,
	}
	if upd.Name != nil {
		input.ExpressionAttributeNames = map[string]string{"#name": "name"}
	}

	if _, err := r.client.UpdateItem(ctx, input); err != nil {
		r.logger.Error("Failed to update actor", zap.String("actorID", id), zap.Error(err))
		return apperrors.NewDatabaseError("update actor", err)
	}
	return nil
}

// Delete removes an actor
func (r *ActorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKeyAttrs(id),
	}); err != nil {
		r.logger.Error("Failed to delete actor", zap.String("actorID", id), zap.Error(err))
		return apperrors.NewDatabaseError("delete actor", err)
	}
	return nil
}

// AddArticleRefs merges article ids into the actor's back-reference set.
// ADD on a string set never duplicates an element and never drops existing
// ones, which is exactly the union the ingestion fan-out needs.
func (r *ActorRepository) AddArticleRefs(ctx context.Context, id string, articleIDs ...string) error {
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
		r.logger.Error("Failed to add article refs to actor",
			zap.String("actorID", id),
			zap.Strings("articleIDs", articleIDs),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("add actor article refs", err)
	}

	r.logger.Debug("Actor article refs merged",
		zap.String("actorID", id),
		zap.Strings("articleIDs", articleIDs),
	)
	return nil
}
