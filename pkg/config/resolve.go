package config

import (
	"context"
	"fmt"

	"github.com/williamokano/site_deployer/pkg/target"
)

type override struct {
	environment string
	bucket      string
}

// overrides applied on top of the production baseline, keyed by target
var overrides = map[target.Target]override{
	target.Development: {environment: EnvDevelopment, bucket: BucketDevelopment},
	target.Staging:     {environment: EnvProduction, bucket: BucketStaging},
	target.Production:  {environment: EnvProduction, bucket: BucketProduction},
}

func baseline() *Config {
	return &Config{
		Build: Build{
			Region: DefaultRegion,
			Bucket: BucketProduction,
		},
		S3: S3{
			Region: DefaultRegion,
			Bucket: BucketProduction,
		},
		S3Index: S3Index{
			AllowOverwrite: true,
			Bucket:         BucketProduction,
			Region:         DefaultRegion,
		},
	}
}

// Resolve builds the deploy configuration for a target label.
// Unrecognized labels get the production baseline with no build environment.
func Resolve(deployTarget string) *Config {
	cfg, _ := resolve(deployTarget)
	return cfg
}

// ResolveStrict is like Resolve but rejects unrecognized labels with ErrUnknownTarget
func ResolveStrict(deployTarget string) (*Config, error) {
	cfg, ok := resolve(deployTarget)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, deployTarget)
	}
	return cfg, nil
}

func resolve(deployTarget string) (*Config, bool) {
	cfg := baseline()

	o, ok := overrides[target.Parse(deployTarget)]
	if !ok {
		return cfg, false
	}

	cfg.Build.Environment = o.environment
	cfg.setBucket(o.bucket)
	return cfg, true
}

// Resolver produces a deploy configuration for a target label
type Resolver interface {
	Resolve(ctx context.Context, deployTarget string) (*Config, error)
}

// StaticResolver resolves from the built-in target table
type StaticResolver struct {
	Strict bool // reject unknown targets instead of falling back to the baseline
}

func (r StaticResolver) Resolve(ctx context.Context, deployTarget string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Strict {
		return ResolveStrict(deployTarget)
	}
	return Resolve(deployTarget), nil
}

// Result is the outcome of an asynchronous resolution
type Result struct {
	Config *Config
	Err    error
}

// ResolveAsync runs r in a goroutine. The returned channel yields exactly one Result.
func ResolveAsync(ctx context.Context, r Resolver, deployTarget string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		cfg, err := r.Resolve(ctx, deployTarget)
		out <- Result{Config: cfg, Err: err}
	}()
	return out
}
