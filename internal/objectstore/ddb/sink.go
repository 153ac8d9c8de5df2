// Package ddb implements objectstore.ResultSink with DynamoDB, letting
// the benchmark driver accumulate recall/QPS rows across runs for
// longitudinal tracking instead of only printing them to stdout.
package ddb

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/bwst/internal/objectstore"
)

// Client is the subset of the DynamoDB API the sink needs, so tests can
// supply a fake without standing up a real table.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Sink writes one item per benchmark result row to a DynamoDB table.
// Table schema: partition key run_id (string), sort key l_search (number).
type Sink struct {
	client    Client
	tableName string
}

// NewSink returns a Sink writing to tableName via client.
func NewSink(client Client, tableName string) *Sink {
	return &Sink{client: client, tableName: tableName}
}

// PutResult writes one recall/QPS row, tagged with runID and the current
// time, to the table.
func (s *Sink) PutResult(runID string, r objectstore.Result) error {
	item := map[string]types.AttributeValue{
		"run_id":     &types.AttributeValueMemberS{Value: runID},
		"l_search":   &types.AttributeValueMemberN{Value: strconv.Itoa(r.LSearch)},
		"qps":        &types.AttributeValueMemberN{Value: strconv.FormatFloat(r.QPS, 'g', -1, 64)},
		"recall":     &types.AttributeValueMemberN{Value: strconv.FormatFloat(r.Recall, 'g', -1, 64)},
		"recorded_at": &types.AttributeValueMemberS{Value: strconv.FormatInt(time.Now().Unix(), 10)},
	}

	_, err := s.client.PutItem(context.Background(), &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	return err
}

var _ objectstore.ResultSink = (*Sink)(nil)
