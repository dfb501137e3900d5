package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEndorsementsTableName  = "endorsements"
	defaultCancellationsTableName = "endorsement_cancellations"
)

// Positions inside the TransactWriteItems call built by Amend.
const (
	txEndorsement = iota
	txPolicy
	txCancellation
)

type endorsementItem struct {
	PolicyID               string  `dynamodbav:"policy_id"`
	Sequencia              int     `dynamodbav:"sequencia"`
	ID                     string  `dynamodbav:"id"`
	DataEmissao            string  `dynamodbav:"data_emissao"`
	Tipo                   string  `dynamodbav:"tipo"`
	ImportanciaSegurada    *int64  `dynamodbav:"importancia_segurada,omitempty"`
	InicioVigencia         *string `dynamodbav:"inicio_vigencia,omitempty"`
	FimVigencia            *string `dynamodbav:"fim_vigencia,omitempty"`
	CancelledEndorsementID string  `dynamodbav:"cancelled_endorsement_id,omitempty"`
	CreatedAt              string  `dynamodbav:"created_at"`
	UpdatedAt              string  `dynamodbav:"updated_at"`
}

type cancellationItem struct {
	PolicyID               string `dynamodbav:"policy_id"`
	CancelledEndorsementID string `dynamodbav:"cancelled_endorsement_id"`
	CancellerEndorsementID string `dynamodbav:"canceller_endorsement_id"`
	CreatedAt              string `dynamodbav:"created_at"`
}

// EndorsementDynamoRepository persists endorsements and the cancellation lookup.
//
// Table requirements:
//   - endorsements: PK policy_id (string), SK sequencia (number)
//   - endorsement_cancellations: PK policy_id (string), SK cancelled_endorsement_id (string)
//
// Both tables are keyed by policy so the full history is one strongly
// consistent Query. The cancellation key makes a target cancellable once.
type EndorsementDynamoRepository struct {
	ddb                *dynamodb.Client
	policies           *PolicyDynamoRepository
	tableName          string
	cancellationsTable string
}

var _ interfaces.IEndorsementRepository = (*EndorsementDynamoRepository)(nil)

func NewEndorsementDynamoRepository(ddb *dynamodb.Client, policies *PolicyDynamoRepository) *EndorsementDynamoRepository {
	return &EndorsementDynamoRepository{
		ddb:                ddb,
		policies:           policies,
		tableName:          getenvDefault("ENDORSEMENTS_TABLE", defaultEndorsementsTableName),
		cancellationsTable: getenvDefault("ENDORSEMENT_CANCELLATIONS_TABLE", defaultCancellationsTableName),
	}
}

// CreateTableInputs describes both tables for local bootstrapping.
func (r *EndorsementDynamoRepository) CreateTableInputs() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(r.tableName),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("policy_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("sequencia"), AttributeType: types.ScalarAttributeTypeN},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("policy_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("sequencia"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(r.cancellationsTable),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("policy_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("cancelled_endorsement_id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("policy_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("cancelled_endorsement_id"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
	}
}

func (r *EndorsementDynamoRepository) Amend(ctx context.Context, numero string, amend interfaces.AmendFunc) (entities.Endorsement, error) {
	p, err := r.policies.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Endorsement{}, err
	}
	if p.ID == "" {
		if _, err := amend(entities.PolicySnapshot{}); err != nil {
			return entities.Endorsement{}, err
		}
		return entities.Endorsement{}, fmt.Errorf("policy %s does not exist", numero)
	}

	snapshot, err := r.snapshot(ctx, p)
	if err != nil {
		return entities.Endorsement{}, err
	}
	a, err := amend(snapshot)
	if err != nil {
		return entities.Endorsement{}, err
	}

	items, err := r.transactItems(a)
	if err != nil {
		return entities.Endorsement{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Endorsement{}, translateTransactError(err)
	}
	return a.Endorsement, nil
}

func (r *EndorsementDynamoRepository) transactItems(a entities.Amendment) ([]types.TransactWriteItem, error) {
	eav, err := attributevalue.MarshalMap(toEndorsementItem(a.Endorsement))
	if err != nil {
		return nil, err
	}
	policyPut, err := r.policies.putPolicyVersioned(a.Policy, a.ExpectedEndorsementsCount)
	if err != nil {
		return nil, err
	}

	items := []types.TransactWriteItem{
		txEndorsement: {
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                eav,
				ConditionExpression: aws.String("attribute_not_exists(#policy_id)"),
				ExpressionAttributeNames: map[string]string{
					"#policy_id": "policy_id",
				},
			},
		},
		txPolicy: policyPut,
	}

	if a.Cancellation != nil {
		cav, err := attributevalue.MarshalMap(toCancellationItem(*a.Cancellation))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.cancellationsTable),
				Item:                cav,
				ConditionExpression: aws.String("attribute_not_exists(#cancelled)"),
				ExpressionAttributeNames: map[string]string{
					"#cancelled": "cancelled_endorsement_id",
				},
			},
		})
	}
	return items, nil
}

// translateTransactError maps a cancelled transaction to the storage errors
// the use case understands. Any failed condition other than the cancellation
// target means the policy moved on.
func translateTransactError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	reasons := tce.CancellationReasons
	if len(reasons) > txCancellation && aws.ToString(reasons[txCancellation].Code) == "ConditionalCheckFailed" {
		return interfaces.ErrEndorsementAlreadyCancelled
	}
	log.Printf("[endorsement][repository] transaction cancelled reasons=%d", len(reasons))
	return interfaces.ErrConcurrentModification
}

func (r *EndorsementDynamoRepository) GetByID(ctx context.Context, policyID, id string) (entities.Endorsement, error) {
	endorsements, err := r.queryEndorsements(ctx, policyID)
	if err != nil {
		return entities.Endorsement{}, err
	}
	for _, e := range endorsements {
		if e.ID != id {
			continue
		}
		cancellations, err := r.queryCancellations(ctx, policyID)
		if err != nil {
			return entities.Endorsement{}, err
		}
		return withCancelledBy([]entities.Endorsement{e}, cancellations)[0], nil
	}
	return entities.Endorsement{}, nil
}

func (r *EndorsementDynamoRepository) List(ctx context.Context, policyID string, filter entities.EndorsementFilter) ([]entities.Endorsement, int, error) {
	endorsements, err := r.queryEndorsements(ctx, policyID)
	if err != nil {
		return nil, 0, err
	}
	cancellations, err := r.queryCancellations(ctx, policyID)
	if err != nil {
		return nil, 0, err
	}

	matched := filterEndorsements(withCancelledBy(endorsements, cancellations), filter)
	sortEndorsements(matched, filter.SortBy, filter.SortOrder)
	return paginate(matched, filter.Pagination), len(matched), nil
}

func (r *EndorsementDynamoRepository) snapshot(ctx context.Context, p entities.Policy) (entities.PolicySnapshot, error) {
	endorsements, err := r.queryEndorsements(ctx, p.ID)
	if err != nil {
		return entities.PolicySnapshot{}, err
	}
	cancellations, err := r.queryCancellations(ctx, p.ID)
	if err != nil {
		return entities.PolicySnapshot{}, err
	}
	return entities.PolicySnapshot{Policy: p, Endorsements: endorsements, Cancellations: cancellations}, nil
}

func (r *EndorsementDynamoRepository) queryEndorsements(ctx context.Context, policyID string) ([]entities.Endorsement, error) {
	var items []endorsementItem
	if err := r.queryByPolicy(ctx, r.tableName, policyID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Endorsement, 0, len(items))
	for _, it := range items {
		out = append(out, fromEndorsementItem(it))
	}
	return out, nil
}

func (r *EndorsementDynamoRepository) queryCancellations(ctx context.Context, policyID string) ([]entities.EndorsementCancellation, error) {
	var items []cancellationItem
	if err := r.queryByPolicy(ctx, r.cancellationsTable, policyID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.EndorsementCancellation, 0, len(items))
	for _, it := range items {
		out = append(out, fromCancellationItem(it))
	}
	return out, nil
}

// queryByPolicy reads every item under the policy_id partition, in sort key order.
func (r *EndorsementDynamoRepository) queryByPolicy(ctx context.Context, table, policyID string, out any) error {
	var all []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#policy_id = :policy_id"),
		ExpressionAttributeNames: map[string]string{
			"#policy_id": "policy_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		all = append(all, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(all, out)
}

func toEndorsementItem(e entities.Endorsement) endorsementItem {
	return endorsementItem{
		PolicyID:               e.PolicyID,
		Sequencia:              e.Sequencia,
		ID:                     e.ID,
		DataEmissao:            formatDate(e.DataEmissao),
		Tipo:                   string(e.Tipo),
		ImportanciaSegurada:    e.ImportanciaSegurada,
		InicioVigencia:         formatDatePtr(e.InicioVigencia),
		FimVigencia:            formatDatePtr(e.FimVigencia),
		CancelledEndorsementID: e.CancelledEndorsementID,
		CreatedAt:              e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEndorsementItem(it endorsementItem) entities.Endorsement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Endorsement{
		ID:                     it.ID,
		PolicyID:               it.PolicyID,
		Sequencia:              it.Sequencia,
		DataEmissao:            parseDate(it.DataEmissao),
		Tipo:                   entities.EndorsementTipo(it.Tipo),
		ImportanciaSegurada:    it.ImportanciaSegurada,
		InicioVigencia:         parseDatePtr(it.InicioVigencia),
		FimVigencia:            parseDatePtr(it.FimVigencia),
		CancelledEndorsementID: it.CancelledEndorsementID,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}

func toCancellationItem(c entities.EndorsementCancellation) cancellationItem {
	return cancellationItem{
		PolicyID:               c.PolicyID,
		CancelledEndorsementID: c.CancelledEndorsementID,
		CancellerEndorsementID: c.CancellerEndorsementID,
		CreatedAt:              c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCancellationItem(it cancellationItem) entities.EndorsementCancellation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EndorsementCancellation{
		PolicyID:               it.PolicyID,
		CancelledEndorsementID: it.CancelledEndorsementID,
		CancellerEndorsementID: it.CancellerEndorsementID,
		CreatedAt:              createdAt,
	}
}
