/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/aliasstore/datastore"
	aserrors "github.com/suparena/aliasstore/errors"
)

const (
	keyAttribute   = "PK"
	valueAttribute = "V"

	// maxTransactItems is the DynamoDB limit on items in one transaction.
	maxTransactItems = 100
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	TransactGetItems(ctx context.Context, params *sdk.TransactGetItemsInput, optFns ...func(*sdk.Options)) (*sdk.TransactGetItemsOutput, error)
	TransactWriteItems(ctx context.Context, params *sdk.TransactWriteItemsInput, optFns ...func(*sdk.Options)) (*sdk.TransactWriteItemsOutput, error)
}

// item is the stored shape of one key: a binary partition key and a binary value.
type item struct {
	PK []byte `dynamodbav:"PK"`
	V  []byte `dynamodbav:"V"`
}

// DynamodbDataStore implements datastore.Backend on a single DynamoDB table whose
// partition key is the binary attribute "PK".
type DynamodbDataStore struct {
	client    API
	tableName string
	// mu serializes Atomic calls made through this store.
	mu sync.Mutex
}

var _ datastore.Backend = (*DynamodbDataStore)(nil)

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used when
// awsAccessKey is set, otherwise the default credential chain. A non-empty endpoint
// overrides the service endpoint.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion, endpoint string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(awsRegion),
	}
	if awsAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return client, nil
}

// NewDynamodbDataStore constructs a DynamodbDataStore backed by table awsDDBTableName.
func NewDynamodbDataStore(awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName, endpoint string) (*DynamodbDataStore, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	log.Printf("DynamoDB client initialized for table: %s in region: %s", awsDDBTableName, awsRegion)
	return NewWithClient(client, awsDDBTableName), nil
}

// NewWithClient constructs a DynamodbDataStore around an existing client.
func NewWithClient(client API, tableName string) *DynamodbDataStore {
	return &DynamodbDataStore{
		client:    client,
		tableName: tableName,
	}
}

func keyOf(key []byte) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttribute: &types.AttributeValueMemberB{Value: key},
	}
}

// Get reads key with a strongly consistent GetItem.
func (d *DynamodbDataStore) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, false, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return it.V, true, nil
}

// Atomic runs fn against a write overlay and commits the buffered writes with one
// TransactWriteItems call. Each write is conditioned on the value fn observed for
// that key, so a concurrent writer elsewhere makes the commit fail with
// ErrConditionFailed instead of being overwritten.
func (d *DynamodbDataStore) Atomic(ctx context.Context, fn func(ctx context.Context, tx datastore.KVStore) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ov := datastore.NewOverlay(d)
	if err := fn(ctx, ov); err != nil {
		return err
	}

	writes := ov.Writes()
	if len(writes) == 0 {
		return nil
	}
	if len(writes) > maxTransactItems {
		return aserrors.NewValidationError("writes", fmt.Sprintf("transaction has %d writes, limit is %d", len(writes), maxTransactItems))
	}

	items := make([]types.TransactWriteItem, 0, len(writes))
	for _, w := range writes {
		cond, names, values := observedCondition(ov, w.Key)
		if w.Delete {
			items = append(items, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName:                 &d.tableName,
					Key:                       keyOf(w.Key),
					ConditionExpression:       cond,
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			})
			continue
		}

		av, err := attributevalue.MarshalMap(item{PK: w.Key, V: w.Value})
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                 &d.tableName,
				Item:                      av,
				ConditionExpression:       cond,
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			},
		})
	}

	_, err := d.client.TransactWriteItems(ctx, &sdk.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return fmt.Errorf("TransactWriteItems cancelled: %w", aserrors.NewConditionFailedError("commit", cancellationReasons(tce)))
		}
		return fmt.Errorf("TransactWriteItems failed: %w", err)
	}
	return nil
}

// observedCondition builds the condition that the stored item still matches what
// the call read. Keys the call never read are written unconditionally.
func observedCondition(ov *datastore.Overlay, key []byte) (*string, map[string]string, map[string]types.AttributeValue) {
	obs, ok := ov.Observed(key)
	if !ok {
		return nil, nil, nil
	}
	if !obs.Found {
		return aws.String("attribute_not_exists(#pk)"), map[string]string{"#pk": keyAttribute}, nil
	}
	return aws.String("#v = :observed"),
		map[string]string{"#v": valueAttribute},
		map[string]types.AttributeValue{":observed": &types.AttributeValueMemberB{Value: obs.Value}}
}

func cancellationReasons(tce *types.TransactionCanceledException) string {
	var reasons []string
	for _, r := range tce.CancellationReasons {
		if r.Code == nil || *r.Code == "None" {
			continue
		}
		reasons = append(reasons, aws.ToString(r.Code))
	}
	if len(reasons) == 0 {
		return tce.ErrorMessage()
	}
	return strings.Join(reasons, ", ")
}

// View runs fn and then re-reads every key fn read in one TransactGetItems call.
// If any of them changed in between, the reads did not form a consistent
// snapshot and View fails with ErrConditionFailed.
func (d *DynamodbDataStore) View(ctx context.Context, fn func(ctx context.Context, r datastore.ReadOnlyKVStore) error) error {
	ov := datastore.NewOverlay(d)
	fnErr := fn(ctx, viewStore{ov: ov})

	keys := ov.ObservedKeys()
	if len(keys) < 2 {
		return fnErr
	}
	if len(keys) > maxTransactItems {
		return aserrors.NewValidationError("reads", fmt.Sprintf("view read %d keys, limit is %d", len(keys), maxTransactItems))
	}

	gets := make([]types.TransactGetItem, 0, len(keys))
	for _, k := range keys {
		gets = append(gets, types.TransactGetItem{
			Get: &types.Get{TableName: &d.tableName, Key: keyOf(k)},
		})
	}
	out, err := d.client.TransactGetItems(ctx, &sdk.TransactGetItemsInput{TransactItems: gets})
	if err != nil {
		return fmt.Errorf("TransactGetItems failed: %w", err)
	}
	if len(out.Responses) != len(keys) {
		return fmt.Errorf("TransactGetItems returned %d responses for %d keys", len(out.Responses), len(keys))
	}

	for i, k := range keys {
		obs, _ := ov.Observed(k)
		current := out.Responses[i].Item
		if current == nil {
			if obs.Found {
				return aserrors.NewConditionFailedError("view", "key removed during read")
			}
			continue
		}

		var it item
		if err := attributevalue.UnmarshalMap(current, &it); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		if !obs.Found || !bytes.Equal(obs.Value, it.V) {
			return aserrors.NewConditionFailedError("view", "key modified during read")
		}
	}
	return fnErr
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (d *DynamodbDataStore) Close() error {
	return nil
}

// viewStore hides the overlay's write methods from View callbacks.
type viewStore struct {
	ov *datastore.Overlay
}

func (v viewStore) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	return v.ov.Get(ctx, key)
}
