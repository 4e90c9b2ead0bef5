package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoDBClient is the cloud insight archive. The table is keyed by view
// (partition) and generatedAt in unix milliseconds (sort).
type DynamoDBClient struct {
	svc   dynamoAPI
	table string
}

// NewDynamoDBClient creates a new DynamoDB client instance
func NewDynamoDBClient(ctx context.Context, region, table string) (*DynamoDBClient, error) {
	// Load AWS configuration from environment/credentials
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &DynamoDBClient{
		svc:   dynamodb.NewFromConfig(cfg),
		table: table,
	}, nil
}

// ReportItem represents the DynamoDB structure for insight reports
type ReportItem struct {
	View            string           `dynamodbav:"view"`
	GeneratedAt     int64            `dynamodbav:"generatedAt"`
	ReportID        string           `dynamodbav:"reportId"`
	SampleCount     int              `dynamodbav:"sampleCount"`
	Insights        []domain.Insight `dynamodbav:"insights"`
	Recommendations []string         `dynamodbav:"recommendations"`
}

// SaveReport stores an insight report in DynamoDB
func (c *DynamoDBClient) SaveReport(ctx context.Context, rep *domain.InsightReport) error {
	item, err := attributevalue.MarshalMap(ReportItem{
		View:            string(rep.View),
		GeneratedAt:     rep.GeneratedAt.UnixMilli(),
		ReportID:        rep.ID,
		SampleCount:     rep.SampleCount,
		Insights:        rep.Insights,
		Recommendations: rep.Recommendations,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = c.svc.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}

	return nil
}

// RecentReports returns the newest real-time reports first
func (c *DynamoDBClient) RecentReports(ctx context.Context, limit int) ([]domain.InsightReport, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(c.table),
		KeyConditionExpression: aws.String("#v = :view"),
		ExpressionAttributeNames: map[string]string{
			"#v": "view",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":view": &types.AttributeValueMemberS{Value: string(domain.RealTimeMonitoring)},
		},
		ScanIndexForward: aws.Bool(false), // Sort descending (newest first)
		Limit:            aws.Int32(int32(limit)),
	}

	result, err := c.svc.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}

	var items []ReportItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reports: %w", err)
	}

	out := make([]domain.InsightReport, len(items))
	for i, it := range items {
		out[i] = domain.InsightReport{
			ID:              it.ReportID,
			View:            domain.View(it.View),
			GeneratedAt:     time.UnixMilli(it.GeneratedAt).UTC(),
			SampleCount:     it.SampleCount,
			Insights:        it.Insights,
			Recommendations: it.Recommendations,
		}
	}
	return out, nil
}
