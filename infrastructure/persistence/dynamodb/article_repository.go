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

// ArticleRepository implements ports.ArticleRepository against the Articles
// table, keyed by (id, publicationDate) with a GSI on url for the
// uniqueness lookup.
type ArticleRepository struct {
	client    *dynamodb.Client
	tableName string
	urlIndex  string
	logger    *zap.Logger
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(client *dynamodb.Client, tableName, urlIndex string, logger *zap.Logger) ports.ArticleRepository {
	return &ArticleRepository{
		client:    client,
		tableName: tableName,
		urlIndex:  urlIndex,
		logger:    logger,
	}
}

// List returns every article in the table as a single batch
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		r.logger.Error("Failed to scan articles", zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan articles", err)
	}

	articles := make([]domain.Article, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &articles); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal articles", err)
	}
	return articles, nil
}

// GetByKey retrieves one article by its full composite key
func (r *ArticleRepository) GetByKey(ctx context.Context, key domain.ArticleKey) (*domain.Article, error) {
	if err := domain.Validate(key); err != nil {
		return nil, err
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       articleKeyAttrs(key),
	})
	if err != nil {
		r.logger.Error("Failed to get article",
			zap.String("articleID", key.ID),
			zap.String("publicationDate", key.PublicationDate),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("get article", err)
	}
	if result.Item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("article %s", key.ID))
	}

	var article domain.Article
	if err := attributevalue.UnmarshalMap(result.Item, &article); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal article", err)
	}
	return &article, nil
}

// FindByURL queries the url index and returns the first match, or a not
// found error when no article carries the url.
func (r *ArticleRepository) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	keyCond := expression.Key("url").Equal(expression.Value(url))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build url query", err)
	}

	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.urlIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		r.logger.Error("Failed to query article by url", zap.String("url", url), zap.Error(err))
		return nil, apperrors.NewDatabaseError("query article by url", err)
	}
	if len(result.Items) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("article with url %s", url))
	}

	var article domain.Article
	if err := attributevalue.UnmarshalMap(result.Items[0], &article); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal article", err)
	}
	return &article, nil
}

// Create validates the article, rejects duplicate urls and writes the
// record. The url check is a lookup before the put, so two concurrent
// creates can both pass it; uniqueness is best effort, not atomic.
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if err := domain.Validate(article); err != nil {
		return err
	}

	_, err := r.FindByURL(ctx, article.URL)
	if err == nil {
		return apperrors.NewConflictError(fmt.Sprintf("article with url %s already exists", article.URL))
	}
	if !apperrors.IsNotFound(err) {
		return err
	}

	return r.Put(ctx, article)
}

// Put writes the article unconditionally, overwriting any record at the
// same key. Ingestion calls this directly and skips the url check.
func (r *ArticleRepository) Put(ctx context.Context, article *domain.Article) error {
	av, err := attributevalue.MarshalMap(article)
	if err != nil {
		return apperrors.NewDatabaseError("marshal article", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to put article",
			zap.String("articleID", article.ID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("put article", err)
	}

	r.logger.Debug("Article written",
		zap.String("articleID", article.ID),
		zap.String("publicationDate", article.PublicationDate),
		zap.String("url", article.URL),
	)
	return nil
}

// Update merges only the supplied fields into an existing record. List
// fields are replaced wholesale. The publication date is part of the key and
// cannot be rewritten.
func (r *ArticleRepository) Update(ctx context.Context, key domain.ArticleKey, upd domain.ArticleUpdate) error {
	if upd.IsEmpty() {
		return apperrors.NewValidationError("no valid fields provided for update")
	}
	if err := domain.Validate(upd); err != nil {
		return err
	}
	if _, err := r.GetByKey(ctx, key); err != nil {
		return err
	}

	update := expression.UpdateBuilder{}
	if upd.SourceName != nil {
		update = update.Set(expression.Name("sourceName"), expression.Value(*upd.SourceName))
	}
	if upd.Paywall != nil {
		update = update.Set(expression.Name("paywall"), expression.Value(*upd.Paywall))
	}
	if upd.Headline != nil {
		update = update.Set(expression.Name("headline"), expression.Value(*upd.Headline))
	}
	if upd.URL != nil {
		update = update.Set(expression.Name("url"), expression.Value(*upd.URL))
	}
	if upd.Author != nil {
		update = update.Set(expression.Name("author"), expression.Value(*upd.Author))
	}
	if upd.CoverageLevel != nil {
		update = update.Set(expression.Name("coverageLevel"), expression.Value(*upd.CoverageLevel))
	}
	if upd.ActorIDs != nil {
		update = update.Set(expression.Name("actorIds"), expression.Value(*upd.ActorIDs))
	}
	if upd.TagIDs != nil {
		update = update.Set(expression.Name("tagIds"), expression.Value(*upd.TagIDs))
	}
	if upd.LocationID != nil {
		update = update.Set(expression.Name("locationId"), expression.Value(*upd.LocationID))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return apperrors.NewDatabaseError("build article update", err)
	}

	if _, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       articleKeyAttrs(key),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}); err != nil {
		r.logger.Error("Failed to update article",
			zap.String("articleID", key.ID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("update article", err)
	}
	return nil
}

// Delete removes an article. The full composite key must be supplied.
func (r *ArticleRepository) Delete(ctx context.Context, key domain.ArticleKey) error {
	if _, err := r.GetByKey(ctx, key); err != nil {
		return err
	}

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       articleKeyAttrs(key),
	}); err != nil {
		r.logger.Error("Failed to delete article",
			zap.String("articleID", key.ID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("delete article", err)
	}

	r.logger.Debug("Article deleted",
		zap.String("articleID", key.ID),
		zap.String("publicationDate", key.PublicationDate),
	)
	return nil
}

func articleKeyAttrs(key domain.ArticleKey) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":              &types.AttributeValueMemberS{Value: key.ID},
		"publicationDate": &types.AttributeValueMemberS{Value: key.PublicationDate},
	}
}
