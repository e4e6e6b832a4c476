package repository

import (
	"context"
	"time"

	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultQuotesTableName = "quotes"

	// Bumped on incompatible item layout changes; readers tolerate absence
	// (items written before versioning existed).
	quoteSchemaVersion = 1
)

type quoteItem struct {
	ID                  string `dynamodbav:"id"`
	SchemaVersion       int    `dynamodbav:"schema_version"`
	QuoteNumber         int64  `dynamodbav:"quote_number"`
	CustomerID          string `dynamodbav:"customer_id"`
	CustomerDisplayName string `dynamodbav:"customer_display_name,omitempty"`
	Price               string `dynamodbav:"price"`
	TimeframeDays       int    `dynamodbav:"timeframe_days"`
	Details             string `dynamodbav:"details,omitempty"`
	Status              string `dynamodbav:"status"`
	CreatedBy           string `dynamodbav:"created_by"`
	CreatedAt           string `dynamodbav:"created_at"`
	ClaimedBy           string `dynamodbav:"claimed_by,omitempty"`
	ClaimedAt           string `dynamodbav:"claimed_at,omitempty"`
	PaymentMethod       string `dynamodbav:"payment_method,omitempty"`
	Paid                bool   `dynamodbav:"paid"`
	PaidBy              string `dynamodbav:"paid_by,omitempty"`
	PaidAt              string `dynamodbav:"paid_at,omitempty"`
	InvoiceLink         string `dynamodbav:"invoice_link,omitempty"`
	InvoiceSentBy       string `dynamodbav:"invoice_sent_by,omitempty"`
	InvoiceSentAt       string `dynamodbav:"invoice_sent_at,omitempty"`
	CompletedBy         string `dynamodbav:"completed_by,omitempty"`
	CompletedAt         string `dynamodbav:"completed_at,omitempty"`
	DecisionBy          string `dynamodbav:"decision_by,omitempty"`
	DecisionAt          string `dynamodbav:"decision_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Upsert overwrites the whole item: the cache holds the authoritative record,
// so the store only ever receives full post-mutation snapshots. ListAll and
// MaxQuoteNumber scan the table; both run once, at startup.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Upsert(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) MaxQuoteNumber(ctx context.Context) (int64, error) {
	max := int64(0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("quote_number"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return 0, err
		}
		for _, raw := range out.Items {
			var it struct {
				QuoteNumber int64 `dynamodbav:"quote_number"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return 0, err
			}
			if it.QuoteNumber > max {
				max = it.QuoteNumber
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return max, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                  q.ID,
		SchemaVersion:       quoteSchemaVersion,
		QuoteNumber:         q.QuoteNumber,
		CustomerID:          q.CustomerID,
		CustomerDisplayName: q.CustomerDisplayName,
		Price:               q.Price.String(),
		TimeframeDays:       q.TimeframeDays,
		Details:             q.Details,
		Status:              string(q.Status),
		CreatedBy:           q.CreatedBy,
		CreatedAt:           q.CreatedAt.UTC().Format(time.RFC3339Nano),
		ClaimedBy:           q.ClaimedBy,
		ClaimedAt:           timeToString(q.ClaimedAt),
		PaymentMethod:       string(q.PaymentMethod),
		Paid:                q.Paid,
		PaidBy:              q.PaidBy,
		PaidAt:              timeToString(q.PaidAt),
		InvoiceLink:         q.InvoiceLink,
		InvoiceSentBy:       q.InvoiceSentBy,
		InvoiceSentAt:       timeToString(q.InvoiceSentAt),
		CompletedBy:         q.CompletedBy,
		CompletedAt:         timeToString(q.CompletedAt),
		DecisionBy:          q.DecisionBy,
		DecisionAt:          timeToString(q.DecisionAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := decimal.NewFromString(it.Price)
	return entities.Quote{
		ID:                  it.ID,
		QuoteNumber:         it.QuoteNumber,
		CustomerID:          it.CustomerID,
		CustomerDisplayName: it.CustomerDisplayName,
		Price:               price,
		TimeframeDays:       it.TimeframeDays,
		Details:             it.Details,
		Status:              entities.QuoteStatus(it.Status),
		CreatedBy:           it.CreatedBy,
		CreatedAt:           createdAt,
		ClaimedBy:           it.ClaimedBy,
		ClaimedAt:           stringToTime(it.ClaimedAt),
		PaymentMethod:       entities.PaymentMethod(it.PaymentMethod),
		Paid:                it.Paid,
		PaidBy:              it.PaidBy,
		PaidAt:              stringToTime(it.PaidAt),
		InvoiceLink:         it.InvoiceLink,
		InvoiceSentBy:       it.InvoiceSentBy,
		InvoiceSentAt:       stringToTime(it.InvoiceSentAt),
		CompletedBy:         it.CompletedBy,
		CompletedAt:         stringToTime(it.CompletedAt),
		DecisionBy:          it.DecisionBy,
		DecisionAt:          stringToTime(it.DecisionAt),
	}
}

func timeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
