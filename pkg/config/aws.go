package config

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWSCredentials are optional static credentials for the deploy pipeline.
// When empty the default credential chain is used.
type AWSCredentials struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token,omitempty"`
}

// LoadAWSConfig builds an SDK config pinned to region.
// It only reads local configuration; no request is sent.
func LoadAWSConfig(ctx context.Context, region string, creds *AWSCredentials) (aws.Config, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(region),
	}
	if creds != nil && creds.AccessKeyID != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				creds.AccessKeyID,
				creds.SecretAccessKey,
				creds.SessionToken,
			),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return cfg, nil
}

// S3Options pins an S3 client to region
func S3Options(region string) func(*s3.Options) {
	return func(o *s3.Options) {
		o.Region = region
	}
}

// ClientOptions returns the S3 client options for the asset upload section
func (c *Config) ClientOptions() func(*s3.Options) {
	return S3Options(c.S3.Region)
}

// AssetPutInput builds the upload request for a built asset
func (c *Config) AssetPutInput(key string, body io.Reader) *s3.PutObjectInput {
	return &s3.PutObjectInput{
		Bucket: aws.String(c.S3.Bucket),
		Key:    aws.String(objectKey(key)),
		Body:   body,
	}
}

// IndexPutInput builds the upload request for the index document.
// Without allowOverwrite the write is conditional on the key not existing.
func (c *Config) IndexPutInput(key string, body io.Reader) *s3.PutObjectInput {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(c.S3Index.Bucket),
		Key:         aws.String(objectKey(key)),
		Body:        body,
		ContentType: aws.String("text/html"),
	}
	if !c.S3Index.AllowOverwrite {
		in.IfNoneMatch = aws.String("*")
	}
	return in
}

func objectKey(key string) string {
	return strings.TrimPrefix(path.Clean("/"+key), "/")
}
