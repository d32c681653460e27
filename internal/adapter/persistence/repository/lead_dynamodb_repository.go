package repository

import (
	"context"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID               string   `dynamodbav:"id"`
	PeakDemand       float64  `dynamodbav:"peak_demand,omitempty"`
	MonthlyUsage     float64  `dynamodbav:"monthly_usage,omitempty"`
	RateSchedule     string   `dynamodbav:"rate_schedule,omitempty"`
	EstimatedSavings float64  `dynamodbav:"estimated_savings,omitempty"`
	CompanyName      string   `dynamodbav:"company_name,omitempty"`
	Industry         string   `dynamodbav:"industry,omitempty"`
	Email            string   `dynamodbav:"email,omitempty"`
	Phone            string   `dynamodbav:"phone,omitempty"`
	Level            string   `dynamodbav:"level"`
	Score            int      `dynamodbav:"score"`
	Priority         string   `dynamodbav:"priority"`
	ResponseTime     string   `dynamodbav:"response_time"`
	CloseRate        int      `dynamodbav:"close_rate"`
	AssignedTrack    string   `dynamodbav:"assigned_track"`
	NextActions      []string `dynamodbav:"next_actions"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists qualified leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The lead record and its qualification result are flattened into one item so
// the sales dashboard can filter on score/priority without nested paths.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.QualifiedLead) (entities.QualifiedLead, error) {
	it := toLeadItem(l)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QualifiedLead{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QualifiedLead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.QualifiedLead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QualifiedLead{}, err
	}
	if len(out.Item) == 0 {
		return entities.QualifiedLead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QualifiedLead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.QualifiedLead) leadItem {
	return leadItem{
		ID:               l.ID,
		PeakDemand:       l.Lead.PeakDemand,
		MonthlyUsage:     l.Lead.MonthlyUsage,
		RateSchedule:     l.Lead.RateSchedule,
		EstimatedSavings: l.Lead.EstimatedSavings,
		CompanyName:      l.Lead.CompanyName,
		Industry:         l.Lead.Industry,
		Email:            l.Lead.Email,
		Phone:            l.Lead.Phone,
		Level:            string(l.Result.Level),
		Score:            l.Result.Score,
		Priority:         string(l.Result.Priority),
		ResponseTime:     l.Result.ResponseTime,
		CloseRate:        l.Result.CloseRate,
		AssignedTrack:    l.Result.AssignedTrack,
		NextActions:      l.Result.NextActions,
		CreatedAt:        l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.QualifiedLead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.QualifiedLead{
		ID: it.ID,
		Lead: entities.LeadData{
			PeakDemand:       it.PeakDemand,
			MonthlyUsage:     it.MonthlyUsage,
			RateSchedule:     it.RateSchedule,
			EstimatedSavings: it.EstimatedSavings,
			CompanyName:      it.CompanyName,
			Industry:         it.Industry,
			Email:            it.Email,
			Phone:            it.Phone,
		},
		Result: entities.QualificationResult{
			Level:         entities.QualificationLevel(it.Level),
			Score:         it.Score,
			Priority:      entities.LeadPriority(it.Priority),
			ResponseTime:  it.ResponseTime,
			CloseRate:     it.CloseRate,
			AssignedTrack: it.AssignedTrack,
			NextActions:   it.NextActions,
		},
		CreatedAt: createdAt,
	}
}
