// Package dynamo implements the account repository on top of a DynamoDB
// users table. The table uses role as the partition key and email as the sort
// key; every write carries a condition expression so existence checks are
// atomic with the write itself.
package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"

	"gramsaarthi/config"
)

// NewClient builds a DynamoDB client from the application configuration.
// A configured endpoint points the client at DynamoDB Local; static
// credentials are only used when explicitly set, otherwise the default AWS
// credential chain applies.
func NewClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	if cfg.DynamoDB == nil {
		return nil, errors.New("dynamodb configuration is missing")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.DynamoDB.Region),
	}
	if cfg.DynamoDB.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.DynamoDB.AccessKeyID,
				cfg.DynamoDB.SecretAccessKey,
				"",
			)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
		}
	})

	return client, nil
}
