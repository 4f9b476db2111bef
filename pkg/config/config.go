package config

import (
	"errors"
	"fmt"
)

// DefaultRegion is the AWS region every section is pinned to
const DefaultRegion = "us-east-1"

// Bucket names per deploy target
const (
	BucketProduction  = "savo-static-site-prod"
	BucketStaging     = "savo-static-site-staging"
	BucketDevelopment = "savo-static-site-dev"
)

// Build environments passed to the asset build
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var (
	ErrUnknownTarget = errors.New("unknown deploy target")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Build holds settings for the build plugin
type Build struct {
	Region      string `json:"region"`
	Bucket      string `json:"bucket"`
	Environment string `json:"environment,omitempty"` // empty = unset
}

// S3 holds settings for the asset upload plugin
type S3 struct {
	Region string `json:"region"`
	Bucket string `json:"bucket"`
}

// S3Index holds settings for the index document upload plugin
type S3Index struct {
	AllowOverwrite bool   `json:"allowOverwrite"`
	Bucket         string `json:"bucket"`
	Region         string `json:"region"`
}

// Config is the resolved deploy configuration
type Config struct {
	Build   Build   `json:"build"`
	S3      S3      `json:"s3"`
	S3Index S3Index `json:"s3-index"`
}

// Bucket returns the bucket shared by all sections
func (c *Config) Bucket() string {
	return c.S3.Bucket
}

// HasEnvironment reports whether a build environment was assigned
func (c *Config) HasEnvironment() bool {
	return c.Build.Environment != ""
}

// Clone returns an independent copy
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) setBucket(bucket string) {
	c.Build.Bucket = bucket
	c.S3.Bucket = bucket
	c.S3Index.Bucket = bucket
}

// Validate checks the cross-section invariants the schema cannot express
func (c *Config) Validate() error {
	if c.Build.Region != c.S3.Region || c.S3.Region != c.S3Index.Region {
		return fmt.Errorf("%w: region differs between sections (build=%q s3=%q s3-index=%q)",
			ErrInvalidConfig, c.Build.Region, c.S3.Region, c.S3Index.Region)
	}
	if c.Build.Bucket != c.S3.Bucket || c.S3.Bucket != c.S3Index.Bucket {
		return fmt.Errorf("%w: bucket differs between sections (build=%q s3=%q s3-index=%q)",
			ErrInvalidConfig, c.Build.Bucket, c.S3.Bucket, c.S3Index.Bucket)
	}
	if c.Bucket() == "" {
		return fmt.Errorf("%w: bucket is empty", ErrInvalidConfig)
	}
	if !c.S3Index.AllowOverwrite {
		return fmt.Errorf("%w: s3-index must allow overwrite", ErrInvalidConfig)
	}
	return nil
}
