package repository

import (
	"context"
	"errors"
	"fmt"
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
	defaultCleanersTableName = "cleaners"
	cleanersUsernameIndex    = "username-index"

	// applyRatingAttempts bounds the optimistic retry on the stars
	// aggregate when two ratings for the same cleaner land together.
	applyRatingAttempts = 3
)

type scheduleWindowItem struct {
	StartTime string `dynamodbav:"start_time"`
	EndTime   string `dynamodbav:"end_time"`
}

type cleanerItem struct {
	ID           string                        `dynamodbav:"id"`
	Username     string                        `dynamodbav:"username"`
	Password     string                        `dynamodbav:"password"`
	Name         string                        `dynamodbav:"name"`
	PhoneNumber  string                        `dynamodbav:"phone_number"`
	Email        string                        `dynamodbav:"email"`
	Gender       string                        `dynamodbav:"gender"`
	Age          int                           `dynamodbav:"age"`
	Service      []string                      `dynamodbav:"service"`
	HourlyPrice  float64                       `dynamodbav:"hourly_price"`
	Stars        float64                       `dynamodbav:"stars"`
	RatingCount  int                           `dynamodbav:"rating_count"`
	Comments     []string                      `dynamodbav:"comments,omitempty"`
	Schedule     map[string]scheduleWindowItem `dynamodbav:"schedule,omitempty"`
	ScheduleType string                        `dynamodbav:"schedule_type,omitempty"`
	Role         string                        `dynamodbav:"role"`
	CreatedAt    string                        `dynamodbav:"created_at"`
	UpdatedAt    string                        `dynamodbav:"updated_at"`
}

// CleanerDynamoRepository persists Cleaner entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)
//
// The filter listing is a Scan with a dynamically built FilterExpression;
// the cleaner set is small and read-heavy.

type CleanerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICleanerRepository = (*CleanerDynamoRepository)(nil)

func NewCleanerDynamoRepository(ddb *dynamodb.Client) *CleanerDynamoRepository {
	return &CleanerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLEANERS_TABLE", defaultCleanersTableName),
	}
}

func (r *CleanerDynamoRepository) Create(ctx context.Context, c entities.Cleaner) (entities.Cleaner, error) {
	av, err := attributevalue.MarshalMap(toCleanerItem(c))
	if err != nil {
		return entities.Cleaner{}, err
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
		return entities.Cleaner{}, err
	}
	return c, nil
}

func (r *CleanerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cleaner, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cleaner{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cleaner{}, nil
	}

	var it cleanerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cleaner{}, err
	}
	return fromCleanerItem(it), nil
}

func (r *CleanerDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Cleaner, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cleanersUsernameIndex),
		KeyConditionExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Cleaner{}, err
	}
	if len(out.Items) == 0 {
		return entities.Cleaner{}, nil
	}

	var it cleanerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Cleaner{}, err
	}
	return fromCleanerItem(it), nil
}

func (r *CleanerDynamoRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (entities.Cleaner, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("username = :username OR email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
			":email":    &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return entities.Cleaner{}, err
	}
	if len(out.Items) == 0 {
		return entities.Cleaner{}, nil
	}

	var it cleanerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Cleaner{}, err
	}
	return fromCleanerItem(it), nil
}

func (r *CleanerDynamoRepository) Update(ctx context.Context, c entities.Cleaner) (entities.Cleaner, error) {
	av, err := attributevalue.MarshalMap(toCleanerItem(c))
	if err != nil {
		return entities.Cleaner{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cleaner{}, nil
		}
		return entities.Cleaner{}, err
	}
	return c, nil
}

func (r *CleanerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *CleanerDynamoRepository) List(ctx context.Context, limit int) ([]entities.Cleaner, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalCleaners(out.Items)
}

func (r *CleanerDynamoRepository) Filter(ctx context.Context, f entities.CleanerFilter) ([]entities.Cleaner, error) {
	if f.IsEmpty() {
		return r.List(ctx, 0)
	}

	var conditions []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	addRange := func(attr string, rng *entities.Range) {
		if rng == nil {
			return
		}
		name := "#" + attr
		conditions = append(conditions, fmt.Sprintf("%s BETWEEN :%s_min AND :%s_max", name, attr, attr))
		names[name] = attr
		values[":"+attr+"_min"] = &types.AttributeValueMemberN{Value: floatToString(rng.Min)}
		values[":"+attr+"_max"] = &types.AttributeValueMemberN{Value: floatToString(rng.Max)}
	}
	addRange("stars", f.Stars)
	addRange("hourly_price", f.Price)
	addRange("age", f.Age)

	if f.Gender != "" {
		conditions = append(conditions, "#gender = :gender")
		names["#gender"] = "gender"
		values[":gender"] = &types.AttributeValueMemberS{Value: f.Gender}
	}
	if f.Service != "" {
		conditions = append(conditions, "contains(#service, :service)")
		names["#service"] = "service"
		values[":service"] = &types.AttributeValueMemberS{Value: f.Service}
	}

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(strings.Join(conditions, " AND ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCleaners(out.Items)
}

// ApplyRating recomputes the stars average with an optimistic precondition
// on the current rating count, retrying a bounded number of times when a
// concurrent rating wins the write.
func (r *CleanerDynamoRepository) ApplyRating(ctx context.Context, id string, rating int, comment string) (entities.Cleaner, error) {
	for attempt := 0; attempt < applyRatingAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Cleaner{}, err
		}
		if current.ID == "" {
			return entities.Cleaner{}, nil
		}

		newCount := current.RatingCount + 1
		newStars := (current.Stars*float64(current.RatingCount) + float64(rating)) / float64(newCount)

		updateExpr := "SET #stars = :stars, #rating_count = :new_count, #updated_at = :updated_at"
		values := map[string]types.AttributeValue{
			":stars":      &types.AttributeValueMemberN{Value: floatToString(newStars)},
			":new_count":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newCount)},
			":old_count":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", current.RatingCount)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		}
		names := map[string]string{
			"#id":           "id",
			"#stars":        "stars",
			"#rating_count": "rating_count",
			"#updated_at":   "updated_at",
		}
		if comment != "" {
			updateExpr += ", #comments = list_append(if_not_exists(#comments, :empty), :comment)"
			names["#comments"] = "comments"
			values[":comment"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: comment},
			}}
			values[":empty"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
		}

		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression:       aws.String("attribute_exists(#id) AND #rating_count = :old_count"),
			UpdateExpression:          aws.String(updateExpr),
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  names,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return entities.Cleaner{}, err
		}

		var it cleanerItem
		if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
			return entities.Cleaner{}, err
		}
		return fromCleanerItem(it), nil
	}
	return entities.Cleaner{}, nil
}

func unmarshalCleaners(raw []map[string]types.AttributeValue) ([]entities.Cleaner, error) {
	items := make([]entities.Cleaner, 0, len(raw))
	for _, m := range raw {
		var it cleanerItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCleanerItem(it))
	}
	return items, nil
}

func toCleanerItem(c entities.Cleaner) cleanerItem {
	it := cleanerItem{
		ID:           c.ID,
		Username:     c.Username,
		Password:     c.Password,
		Name:         c.Name,
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		Gender:       c.Gender,
		Age:          c.Age,
		Service:      c.Service,
		HourlyPrice:  c.HourlyPrice,
		Stars:        c.Stars,
		RatingCount:  c.RatingCount,
		Comments:     c.Comments,
		ScheduleType: string(c.ScheduleType),
		Role:         c.Role,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(c.Schedule) > 0 {
		it.Schedule = make(map[string]scheduleWindowItem, len(c.Schedule))
		for day, w := range c.Schedule {
			it.Schedule[day] = scheduleWindowItem{StartTime: w.StartTime, EndTime: w.EndTime}
		}
	}
	return it
}

func fromCleanerItem(it cleanerItem) entities.Cleaner {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	c := entities.Cleaner{
		ID:           it.ID,
		Username:     it.Username,
		Password:     it.Password,
		Name:         it.Name,
		PhoneNumber:  it.PhoneNumber,
		Email:        it.Email,
		Gender:       it.Gender,
		Age:          it.Age,
		Service:      it.Service,
		HourlyPrice:  it.HourlyPrice,
		Stars:        it.Stars,
		RatingCount:  it.RatingCount,
		Comments:     it.Comments,
		ScheduleType: entities.ScheduleType(it.ScheduleType),
		Role:         it.Role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if len(it.Schedule) > 0 {
		c.Schedule = make(entities.Schedule, len(it.Schedule))
		for day, w := range it.Schedule {
			c.Schedule[day] = entities.ScheduleWindow{StartTime: w.StartTime, EndTime: w.EndTime}
		}
	}
	return c
}
