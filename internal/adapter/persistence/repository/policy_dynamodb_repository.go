package repository

import (
	"context"
	"errors"
	"time"

	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPoliciesTableName = "policies"

type policyItem struct {
	Numero              string `dynamodbav:"numero"`
	ID                  string `dynamodbav:"id"`
	Status              string `dynamodbav:"status"`
	DataEmissao         string `dynamodbav:"data_emissao"`
	InicioVigencia      string `dynamodbav:"inicio_vigencia"`
	FimVigencia         string `dynamodbav:"fim_vigencia"`
	ImportanciaSegurada int64  `dynamodbav:"importancia_segurada"`
	LMG                 int64  `dynamodbav:"lmg"`
	EndorsementsCount   int    `dynamodbav:"endorsements_count"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: numero (string)
//
// numero is the public identifier and the only lookup key, so it doubles as the
// uniqueness guard. endorsements_count is the version used by endorsement writes.
type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POLICIES_TABLE", defaultPoliciesTableName),
	}
}

// CreateTableInput describes the table for local bootstrapping.
func (r *PolicyDynamoRepository) CreateTableInput() *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("numero"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("numero"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#numero)"),
		ExpressionAttributeNames: map[string]string{
			"#numero": "numero",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Policy{}, interfaces.ErrNumeroAlreadyExists
		}
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByNumero(ctx context.Context, numero string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            policyKey(numero),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  policyKey(numero),
		ProjectionExpression: aws.String("#numero"),
		ExpressionAttributeNames: map[string]string{
			"#numero": "numero",
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

// List scans the table and filters, sorts and pages in memory.
func (r *PolicyDynamoRepository) List(ctx context.Context, filter entities.PolicyFilter) ([]entities.Policy, int, error) {
	var policies []entities.Policy
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		var items []policyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, 0, err
		}
		for _, it := range items {
			policies = append(policies, fromPolicyItem(it))
		}
	}

	matched := filterPolicies(policies, filter)
	sortPolicies(matched, filter.SortBy, filter.SortOrder)
	return paginate(matched, filter.Pagination), len(matched), nil
}

// putPolicyVersioned builds the transactional write that replaces a policy only
// when endorsements_count still holds the expected value.
func (r *PolicyDynamoRepository) putPolicyVersioned(p entities.Policy, expected int) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#numero) AND #endorsements_count = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#numero":             "numero",
				"#endorsements_count": "endorsements_count",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: itoa(expected)},
			},
		},
	}, nil
}

func policyKey(numero string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"numero": &types.AttributeValueMemberS{Value: numero},
	}
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		Numero:              p.Numero,
		ID:                  p.ID,
		Status:              string(p.Status),
		DataEmissao:         formatDate(p.DataEmissao),
		InicioVigencia:      formatDate(p.InicioVigencia),
		FimVigencia:         formatDate(p.FimVigencia),
		ImportanciaSegurada: p.ImportanciaSegurada,
		LMG:                 p.LMG,
		EndorsementsCount:   p.EndorsementsCount,
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Policy{
		ID:                  it.ID,
		Numero:              it.Numero,
		Status:              entities.PolicyStatus(it.Status),
		DataEmissao:         parseDate(it.DataEmissao),
		InicioVigencia:      parseDate(it.InicioVigencia),
		FimVigencia:         parseDate(it.FimVigencia),
		ImportanciaSegurada: it.ImportanciaSegurada,
		LMG:                 it.LMG,
		EndorsementsCount:   it.EndorsementsCount,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
