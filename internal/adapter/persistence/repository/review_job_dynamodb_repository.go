package repository

import (
	"context"
	"errors"
	"time"

	"auditqc/internal/domain/entities"
	"auditqc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewJobsTableName = "review_jobs"
	reviewJobsAuditIDIndex     = "audit_id-index"
)

type reviewJobItem struct {
	AuditReviewID string `dynamodbav:"audit_review_id"`
	ID            string `dynamodbav:"id"`
	AuditID       string `dynamodbav:"audit_id"`
	Status        string `dynamodbav:"status"`
	Message       string `dynamodbav:"message,omitempty"`
	ReviewReady   bool   `dynamodbav:"review_ready"`
	SubmittedAt   string `dynamodbav:"submitted_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ReviewJobDynamoRepository persists the review-job registry in DynamoDB.
//
// Table requirements:
//   - PK: audit_review_id (string), one record per submitted review job
//   - GSI: audit_id-index (PK: audit_id)
type ReviewJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewJobRepository = (*ReviewJobDynamoRepository)(nil)

func NewReviewJobDynamoRepository(ddb *dynamodb.Client) *ReviewJobDynamoRepository {
	return &ReviewJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEW_JOBS_TABLE", defaultReviewJobsTableName),
	}
}

func (r *ReviewJobDynamoRepository) Create(ctx context.Context, job entities.ReviewJob) (entities.ReviewJob, error) {
	it := toReviewJobItem(job)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ReviewJob{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "audit_review_id",
		},
	})
	if err != nil {
		return entities.ReviewJob{}, err
	}
	return job, nil
}

func (r *ReviewJobDynamoRepository) GetByReviewID(ctx context.Context, auditReviewID string) (entities.ReviewJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"audit_review_id": &types.AttributeValueMemberS{Value: auditReviewID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReviewJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReviewJob{}, nil
	}

	var it reviewJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReviewJob{}, err
	}
	return fromReviewJobItem(it), nil
}

func (r *ReviewJobDynamoRepository) UpdateProgress(ctx context.Context, auditReviewID string, progress entities.ReviewProgress) (entities.ReviewJob, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"audit_review_id": &types.AttributeValueMemberS{Value: auditReviewID},
		},
		ConditionExpression: aws.String("attribute_exists(#rid)"),
		UpdateExpression:    aws.String("SET #status = :status, #message = :message, #ready = :ready, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(progress.Status)},
			":message":    &types.AttributeValueMemberS{Value: progress.Message},
			":ready":      &types.AttributeValueMemberBOOL{Value: progress.ReviewReady},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#rid":        "audit_review_id",
			"#status":     "status",
			"#message":    "message",
			"#ready":      "review_ready",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReviewJob{}, nil
		}
		return entities.ReviewJob{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ReviewJob{}, nil
	}
	var it reviewJobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ReviewJob{}, err
	}
	return fromReviewJobItem(it), nil
}

func (r *ReviewJobDynamoRepository) ListByAuditID(ctx context.Context, auditID string) ([]entities.ReviewJob, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewJobsAuditIDIndex),
		KeyConditionExpression: aws.String("audit_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: auditID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ReviewJob, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewJobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewJobItem(it))
	}
	return items, nil
}

func toReviewJobItem(job entities.ReviewJob) reviewJobItem {
	return reviewJobItem{
		AuditReviewID: job.AuditReviewID,
		ID:            job.ID,
		AuditID:       job.AuditID,
		Status:        string(job.Status),
		Message:       job.Message,
		ReviewReady:   job.ReviewReady,
		SubmittedAt:   job.SubmittedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     job.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewJobItem(it reviewJobItem) entities.ReviewJob {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ReviewJob{
		ID:            it.ID,
		AuditID:       it.AuditID,
		AuditReviewID: it.AuditReviewID,
		Status:        entities.AuditStatus(it.Status),
		Message:       it.Message,
		ReviewReady:   it.ReviewReady,
		SubmittedAt:   submittedAt,
		UpdatedAt:     updatedAt,
	}
}
