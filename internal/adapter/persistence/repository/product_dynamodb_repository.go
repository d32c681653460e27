package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID            int     `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	Price         float64 `dynamodbav:"price"`
	Category      string  `dynamodbav:"category"`
	Size          string  `dynamodbav:"size"`
	Image         string  `dynamodbav:"image,omitempty"`
	InStock       bool    `dynamodbav:"in_stock"`
	StockQuantity *int    `dynamodbav:"stock_quantity,omitempty"`
}

// ProductDynamoRepository reads the catalog and performs the authoritative
// stock deduction in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
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
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id int) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

// DeductStock decrements stock_quantity atomically. The condition keeps the
// count non-negative; a negative quantity compensates a prior deduction.
// A failed condition returns a zero-value product, nil error.
func (r *ProductDynamoRepository) DeductStock(ctx context.Context, id int, quantity int) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND in_stock = :true AND stock_quantity >= :qty"),
		UpdateExpression:    aws.String("SET stock_quantity = stock_quantity - :qty"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty":  &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:            it.ID,
		Name:          it.Name,
		Price:         it.Price,
		Category:      it.Category,
		Size:          entities.ProductSize(it.Size),
		Image:         it.Image,
		InStock:       it.InStock,
		StockQuantity: it.StockQuantity,
	}
}
