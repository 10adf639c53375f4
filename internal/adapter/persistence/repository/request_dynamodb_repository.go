package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "requests"
	requestsCleanerIDIndex   = "cleaner_id-index"
	requestsClientIDIndex    = "client_id-index"
)

type applicationItem struct {
	CleanerID string `dynamodbav:"cleaner_id"`
	AppliedAt string `dynamodbav:"applied_at"`
}

type requestItem struct {
	ID              string            `dynamodbav:"id"`
	ClientID        string            `dynamodbav:"client_id"`
	CleanerID       string            `dynamodbav:"cleaner_id,omitempty"`
	RequestType     string            `dynamodbav:"request_type"`
	Status          string            `dynamodbav:"status"`
	Service         string            `dynamodbav:"service"`
	Date            string            `dynamodbav:"date"`
	StartTime       string            `dynamodbav:"start_time"`
	EndTime         string            `dynamodbav:"end_time"`
	Note            string            `dynamodbav:"note,omitempty"`
	Budget          float64           `dynamodbav:"budget,omitempty"`
	Deadline        string            `dynamodbav:"deadline,omitempty"`
	ScheduleWarning bool              `dynamodbav:"schedule_warning,omitempty"`
	Applications    []applicationItem `dynamodbav:"applications,omitempty"`
	ApplicantIDs    []string          `dynamodbav:"applicant_ids,stringset,omitempty"`
	AcceptedAt      string            `dynamodbav:"accepted_at,omitempty"`
	Rating          int               `dynamodbav:"rating,omitempty"`
	Review          string            `dynamodbav:"review,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists Request entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cleaner_id-index (PK: cleaner_id)
//   - GSI: client_id-index (PK: client_id)
//
// Every transition is a single conditional UpdateItem keyed on the current
// status, so concurrent transitions on the same request are serialized by
// the store. The applicant_ids string set mirrors the applications list and
// exists only so the "one application per cleaner" rule can be a write
// condition instead of a read-check.

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.Request) (entities.Request, error) {
	it := toRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Request{}, err
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
		return entities.Request{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListByCleaner(ctx context.Context, cleanerID string, statuses []entities.RequestStatus) ([]entities.Request, error) {
	return r.queryIndex(ctx, requestsCleanerIDIndex, "cleaner_id", cleanerID, statuses)
}

func (r *RequestDynamoRepository) ListByClient(ctx context.Context, clientID string, statuses []entities.RequestStatus) ([]entities.Request, error) {
	return r.queryIndex(ctx, requestsClientIDIndex, "client_id", clientID, statuses)
}

func (r *RequestDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue string, statuses []entities.RequestStatus) ([]entities.Request, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :key", keyAttr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: keyValue},
		},
	}
	if len(statuses) > 0 {
		placeholders := make([]string, 0, len(statuses))
		for i, s := range statuses {
			p := fmt.Sprintf(":s%d", i)
			placeholders = append(placeholders, p)
			in.ExpressionAttributeValues[p] = &types.AttributeValueMemberS{Value: string(s)}
		}
		in.FilterExpression = aws.String(fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", ")))
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalRequests(out.Items)
}

func (r *RequestDynamoRepository) ListGeneralOpen(ctx context.Context) ([]entities.Request, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#request_type = :general AND #status = :open"),
		ExpressionAttributeNames: map[string]string{
			"#request_type": "request_type",
			"#status":       "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":general": &types.AttributeValueMemberS{Value: string(entities.RequestTypeGeneral)},
			":open":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusOpen)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequests(out.Items)
}

func (r *RequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.RequestStatus, to entities.RequestStatus, acceptedAt *time.Time) (entities.Request, error) {
	placeholders := make([]string, 0, len(from))
	values := map[string]types.AttributeValue{
		":to": &types.AttributeValueMemberS{Value: string(to)},
	}
	for i, s := range from {
		p := fmt.Sprintf(":f%d", i)
		placeholders = append(placeholders, p)
		values[p] = &types.AttributeValueMemberS{Value: string(s)}
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	updateExpr := "SET #status = :to, #updated_at = :updated_at"
	if acceptedAt != nil {
		updateExpr += ", #accepted_at = :accepted_at"
		names["#accepted_at"] = "accepted_at"
		values[":accepted_at"] = &types.AttributeValueMemberS{Value: acceptedAt.UTC().Format(time.RFC3339Nano)}
	}
	condition := fmt.Sprintf("attribute_exists(#id) AND #status IN (%s)", strings.Join(placeholders, ", "))

	return r.conditionalUpdate(ctx, id, condition, updateExpr, values, names)
}

func (r *RequestDynamoRepository) AssignCleaner(ctx context.Context, id, cleanerID string, acceptedAt time.Time) (entities.Request, error) {
	condition := "attribute_exists(#id) AND #status = :open AND #request_type = :general"
	updateExpr := "SET #status = :accepted, #request_type = :specific, #cleaner_id = :cleaner_id, #accepted_at = :accepted_at, #updated_at = :updated_at REMOVE #applications, #applicant_ids"
	values := map[string]types.AttributeValue{
		":open":        &types.AttributeValueMemberS{Value: string(entities.RequestStatusOpen)},
		":general":     &types.AttributeValueMemberS{Value: string(entities.RequestTypeGeneral)},
		":accepted":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusAccepted)},
		":specific":    &types.AttributeValueMemberS{Value: string(entities.RequestTypeSpecific)},
		":cleaner_id":  &types.AttributeValueMemberS{Value: cleanerID},
		":accepted_at": &types.AttributeValueMemberS{Value: acceptedAt.UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#status":        "status",
		"#request_type":  "request_type",
		"#cleaner_id":    "cleaner_id",
		"#accepted_at":   "accepted_at",
		"#applications":  "applications",
		"#applicant_ids": "applicant_ids",
		"#updated_at":    "updated_at",
	}
	return r.conditionalUpdate(ctx, id, condition, updateExpr, values, names)
}

func (r *RequestDynamoRepository) AddApplication(ctx context.Context, id string, app entities.Application) (entities.Request, error) {
	appList, err := attributevalue.MarshalList([]applicationItem{{
		CleanerID: app.CleanerID,
		AppliedAt: app.AppliedAt.UTC().Format(time.RFC3339Nano),
	}})
	if err != nil {
		return entities.Request{}, err
	}

	condition := "attribute_exists(#id) AND #status = :open AND (attribute_not_exists(#applicant_ids) OR NOT contains(#applicant_ids, :cleaner_id))"
	updateExpr := "SET #applications = list_append(if_not_exists(#applications, :empty), :app), #updated_at = :updated_at ADD #applicant_ids :cleaner_id_set"
	values := map[string]types.AttributeValue{
		":open":           &types.AttributeValueMemberS{Value: string(entities.RequestStatusOpen)},
		":cleaner_id":     &types.AttributeValueMemberS{Value: app.CleanerID},
		":cleaner_id_set": &types.AttributeValueMemberSS{Value: []string{app.CleanerID}},
		":app":            &types.AttributeValueMemberL{Value: appList},
		":empty":          &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}
	names := map[string]string{
		"#status":        "status",
		"#applications":  "applications",
		"#applicant_ids": "applicant_ids",
		"#updated_at":    "updated_at",
	}
	return r.conditionalUpdate(ctx, id, condition, updateExpr, values, names)
}

func (r *RequestDynamoRepository) SetRating(ctx context.Context, id string, rating int, review string) (entities.Request, error) {
	condition := "attribute_exists(#id) AND #status = :completed AND attribute_not_exists(#rating)"
	updateExpr := "SET #rating = :rating, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":completed": &types.AttributeValueMemberS{Value: string(entities.RequestStatusCompleted)},
		":rating":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rating)},
	}
	names := map[string]string{
		"#status":     "status",
		"#rating":     "rating",
		"#updated_at": "updated_at",
	}
	if review != "" {
		updateExpr += ", #review = :review"
		names["#review"] = "review"
		values[":review"] = &types.AttributeValueMemberS{Value: review}
	}
	return r.conditionalUpdate(ctx, id, condition, updateExpr, values, names)
}

// conditionalUpdate runs one UpdateItem guarded by condition. A failed
// condition comes back as a zero-value Request with a nil error; the use
// case layer decides whether that means not-found or conflict.
func (r *RequestDynamoRepository) conditionalUpdate(
	ctx context.Context,
	id string,
	condition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Request, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Request{}, nil
		}
		return entities.Request{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Request{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func unmarshalRequests(raw []map[string]types.AttributeValue) ([]entities.Request, error) {
	items := make([]entities.Request, 0, len(raw))
	for _, m := range raw {
		var it requestItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRequestItem(it))
	}
	// GSIs do not order results; newest first is applied here.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func toRequestItem(r entities.Request) requestItem {
	it := requestItem{
		ID:              r.ID,
		ClientID:        r.ClientID,
		CleanerID:       r.CleanerID,
		RequestType:     string(r.RequestType),
		Status:          string(r.Status),
		Service:         r.Service,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Note:            r.Note,
		Budget:          r.Budget,
		ScheduleWarning: r.ScheduleWarning,
		Rating:          r.Rating,
		Review:          r.Review,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.Deadline != nil {
		it.Deadline = r.Deadline.UTC().Format(time.RFC3339Nano)
	}
	if r.AcceptedAt != nil {
		it.AcceptedAt = r.AcceptedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, a := range r.Applications {
		it.Applications = append(it.Applications, applicationItem{
			CleanerID: a.CleanerID,
			AppliedAt: a.AppliedAt.UTC().Format(time.RFC3339Nano),
		})
		it.ApplicantIDs = append(it.ApplicantIDs, a.CleanerID)
	}
	return it
}

func fromRequestItem(it requestItem) entities.Request {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	r := entities.Request{
		ID:              it.ID,
		ClientID:        it.ClientID,
		CleanerID:       it.CleanerID,
		RequestType:     entities.RequestType(it.RequestType),
		Status:          entities.RequestStatus(it.Status),
		Service:         it.Service,
		Date:            it.Date,
		StartTime:       it.StartTime,
		EndTime:         it.EndTime,
		Note:            it.Note,
		Budget:          it.Budget,
		ScheduleWarning: it.ScheduleWarning,
		Rating:          it.Rating,
		Review:          it.Review,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.Deadline != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.Deadline); err == nil {
			r.Deadline = &t
		}
	}
	if it.AcceptedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.AcceptedAt); err == nil {
			r.AcceptedAt = &t
		}
	}
	for _, a := range it.Applications {
		appliedAt, _ := time.Parse(time.RFC3339Nano, a.AppliedAt)
		r.Applications = append(r.Applications, entities.Application{
			CleanerID: a.CleanerID,
			AppliedAt: appliedAt,
		})
	}
	return r
}
