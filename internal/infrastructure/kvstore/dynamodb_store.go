package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute layout of the single key-value table.
//
//	k      partition key (string)
//	v      scalar value (string) or counter (number)
//	h:<f>  hash field f
//	s      string set
//	ttl    epoch seconds, registered as the table TTL attribute
const (
	attrKey       = "k"
	attrValue     = "v"
	attrSet       = "s"
	attrTTL       = "ttl"
	hashFieldPref = "h:"
)

// DynamoAPI is the subset of *dynamodb.Client the store needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// DynamoStore implements Store on one DynamoDB table.
//
// DynamoDB reaps TTL'd items lazily (up to days later), so every read checks
// the ttl attribute itself and treats expired items as absent. In-place
// updates (hash fields, counters, sets) run under a liveness condition; an
// expired leftover is deleted first so the update starts from an empty item.
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	return &DynamoStore{ddb: ddb, tableName: tableName, now: time.Now}
}

func keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attrKey: &types.AttributeValueMemberS{Value: key}}
}

func (s *DynamoStore) load(ctx context.Context, key string) (map[string]types.AttributeValue, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 || s.isExpired(out.Item) {
		return nil, nil
	}
	return out.Item, nil
}

func (s *DynamoStore) isExpired(item map[string]types.AttributeValue) bool {
	n, ok := item[attrTTL].(*types.AttributeValueMemberN)
	if !ok {
		return false
	}
	ttl, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil || ttl <= 0 {
		return false
	}
	return s.now().Unix() >= ttl
}

// liveCondition holds for absent items and items whose ttl is unset or in the future.
const liveCondition = "attribute_not_exists(#ttl) OR #ttl = :nottl OR #ttl > :now"

// updateLive applies in to a live or absent item. When the stored item has
// expired but DynamoDB has not reaped it yet, the leftover is removed and the
// update retried once.
func (s *DynamoStore) updateLive(ctx context.Context, in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
	now := &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now().Unix(), 10)}
	in.ConditionExpression = aws.String(liveCondition)
	in.ExpressionAttributeNames = withEntry(in.ExpressionAttributeNames, "#ttl", attrTTL)
	in.ExpressionAttributeValues = withEntry[types.AttributeValue](in.ExpressionAttributeValues, ":now", now)
	in.ExpressionAttributeValues[":nottl"] = &types.AttributeValueMemberN{Value: "0"}

	out, err := s.ddb.UpdateItem(ctx, in)
	var cfe *types.ConditionalCheckFailedException
	if err == nil || !errors.As(err, &cfe) {
		return out, err
	}
	if _, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       in.Key,
		ConditionExpression:       aws.String("#ttl <= :now"),
		ExpressionAttributeNames:  map[string]string{"#ttl": attrTTL},
		ExpressionAttributeValues: map[string]types.AttributeValue{":now": now},
	}); err != nil && !errors.As(err, &cfe) {
		return nil, err
	}
	return s.ddb.UpdateItem(ctx, in)
}

func withEntry[V any](m map[string]V, k string, v V) map[string]V {
	if m == nil {
		m = map[string]V{}
	}
	m[k] = v
	return m
}

func (s *DynamoStore) ttlValue(ttl time.Duration) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now().Add(ttl).Unix(), 10)}
}

func (s *DynamoStore) Get(ctx context.Context, key string) (string, bool, error) {
	item, err := s.load(ctx, key)
	if err != nil || item == nil {
		return "", false, err
	}
	switch v := item[attrValue].(type) {
	case *types.AttributeValueMemberS:
		return v.Value, true, nil
	case *types.AttributeValueMemberN:
		return v.Value, true, nil
	}
	return "", false, ErrWrongType
}

// scalarItem is the full item written by Set; it replaces whatever the key held.
type scalarItem struct {
	Key   string `dynamodbav:"k"`
	Value string `dynamodbav:"v"`
	TTL   int64  `dynamodbav:"ttl,omitempty"`
}

func (s *DynamoStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	in, err := s.putInput(key, value, ttl)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, in)
	return err
}

func (s *DynamoStore) putInput(key, value string, ttl time.Duration) (*dynamodb.PutItemInput, error) {
	it := scalarItem{Key: key, Value: value}
	if ttl > 0 {
		it.TTL = s.now().Add(ttl).Unix()
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	return &dynamodb.PutItemInput{TableName: aws.String(s.tableName), Item: av}, nil
}

func (s *DynamoStore) Del(ctx context.Context, keys ...string) (int, error) {
	n := 0
	for _, key := range keys {
		if key == "" {
			return n, ErrEmptyKey
		}
		out, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName:    aws.String(s.tableName),
			Key:          keyOf(key),
			ReturnValues: types.ReturnValueAllOld,
		})
		if err != nil {
			return n, err
		}
		if len(out.Attributes) > 0 && !s.isExpired(out.Attributes) {
			n++
		}
	}
	return n, nil
}

// hsetExpression builds "SET #a0 = :v0, ..." with field names kept out of the
// expression text so any character is allowed in a field.
func hsetExpression(fields map[string]string) (string, map[string]string, map[string]types.AttributeValue) {
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	parts := make([]string, 0, len(fields))
	i := 0
	for f, v := range fields {
		n := fmt.Sprintf("#a%d", i)
		p := fmt.Sprintf(":v%d", i)
		names[n] = hashFieldPref + f
		values[p] = &types.AttributeValueMemberS{Value: v}
		parts = append(parts, n+" = "+p)
		i++
	}
	return "SET " + strings.Join(parts, ", "), names, values
}

func (s *DynamoStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(fields) == 0 {
		return nil
	}
	expr, names, values := hsetExpression(fields)
	_, err := s.updateLive(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       keyOf(key),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func (s *DynamoStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	item, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	for name, av := range item {
		if !strings.HasPrefix(name, hashFieldPref) {
			continue
		}
		field := strings.TrimPrefix(name, hashFieldPref)
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			out[field] = v.Value
		case *types.AttributeValueMemberN:
			out[field] = v.Value
		}
	}
	return out, nil
}

func (s *DynamoStore) HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}
	out, err := s.updateLive(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       keyOf(key),
		UpdateExpression:          aws.String("ADD #f :d"),
		ExpressionAttributeNames:  map[string]string{"#f": hashFieldPref + field},
		ExpressionAttributeValues: map[string]types.AttributeValue{":d": &types.AttributeValueMemberN{Value: strconv.FormatInt(delta, 10)}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	return numberAttr(out.Attributes, hashFieldPref+field)
}

func numberAttr(attrs map[string]types.AttributeValue, name string) (int64, error) {
	n, ok := attrs[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, ErrWrongType
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (s *DynamoStore) setUpdate(ctx context.Context, key, verb string, members []string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(members) == 0 {
		return nil
	}
	_, err := s.updateLive(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       keyOf(key),
		UpdateExpression:          aws.String(verb + " #s :m"),
		ExpressionAttributeNames:  map[string]string{"#s": attrSet},
		ExpressionAttributeValues: map[string]types.AttributeValue{":m": &types.AttributeValueMemberSS{Value: members}},
	})
	return err
}

func (s *DynamoStore) SAdd(ctx context.Context, key string, members ...string) error {
	return s.setUpdate(ctx, key, "ADD", members)
}

func (s *DynamoStore) SRem(ctx context.Context, key string, members ...string) error {
	return s.setUpdate(ctx, key, "DELETE", members)
}

func (s *DynamoStore) SMembers(ctx context.Context, key string) ([]string, error) {
	item, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	ss, ok := item[attrSet].(*types.AttributeValueMemberSS)
	if !ok {
		return []string{}, nil
	}
	return append([]string(nil), ss.Value...), nil
}

func (s *DynamoStore) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}
	out, err := s.updateLive(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       keyOf(key),
		UpdateExpression:          aws.String("ADD #v :d"),
		ExpressionAttributeNames:  map[string]string{"#v": attrValue},
		ExpressionAttributeValues: map[string]types.AttributeValue{":d": &types.AttributeValueMemberN{Value: strconv.FormatInt(delta, 10)}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	return numberAttr(out.Attributes, attrValue)
}

func (s *DynamoStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl <= 0 {
		_, err := s.Del(ctx, key)
		return err
	}
	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       keyOf(key),
		ConditionExpression:       aws.String("attribute_exists(#k)"),
		UpdateExpression:          aws.String("SET #ttl = :t"),
		ExpressionAttributeNames:  map[string]string{"#k": attrKey, "#ttl": attrTTL},
		ExpressionAttributeValues: map[string]types.AttributeValue{":t": s.ttlValue(ttl)},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

// Atomic maps the batch onto one TransactWriteItems call (max 100 ops).
func (s *DynamoStore) Atomic(ctx context.Context, ops ...Op) error {
	if err := validateOps(ops); err != nil {
		return err
	}
	items := make([]types.TransactWriteItem, 0, len(ops))
	for _, op := range ops {
		switch op.kind {
		case opSet:
			in, err := s.putInput(op.key, op.value, op.ttl)
			if err != nil {
				return err
			}
			items = append(items, types.TransactWriteItem{Put: &types.Put{TableName: in.TableName, Item: in.Item}})
		case opHSet:
			if len(op.fields) == 0 {
				continue
			}
			expr, names, values := hsetExpression(op.fields)
			items = append(items, types.TransactWriteItem{Update: &types.Update{
				TableName:                 aws.String(s.tableName),
				Key:                       keyOf(op.key),
				UpdateExpression:          aws.String(expr),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			}})
		case opDel:
			items = append(items, types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(s.tableName),
				Key:       keyOf(op.key),
			}})
		case opSAdd, opSRem:
			if len(op.members) == 0 {
				continue
			}
			verb := "ADD"
			if op.kind == opSRem {
				verb = "DELETE"
			}
			items = append(items, types.TransactWriteItem{Update: &types.Update{
				TableName:                 aws.String(s.tableName),
				Key:                       keyOf(op.key),
				UpdateExpression:          aws.String(verb + " #s :m"),
				ExpressionAttributeNames:  map[string]string{"#s": attrSet},
				ExpressionAttributeValues: map[string]types.AttributeValue{":m": &types.AttributeValueMemberSS{Value: op.members}},
			}})
		}
	}
	if len(items) == 0 {
		return nil
	}
	if len(items) > 100 {
		return fmt.Errorf("kvstore: atomic batch of %d ops exceeds the 100 op limit", len(items))
	}
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}
