package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/williamokano/site_deployer/pkg/config"
	"github.com/williamokano/site_deployer/pkg/logger"
	"github.com/williamokano/site_deployer/pkg/target"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout))
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout io.Writer) int {
	log := logger.Get()

	deployTarget := getenv("DEPLOY_TARGET")
	if len(args) > 0 {
		deployTarget = args[0]
	}

	strict := false
	if v := getenv("STRICT_TARGET"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			log.Error().Err(err).Str("deploy_target", deployTarget).Str("strict_target", v).Msg("invalid STRICT_TARGET value")
			return 1
		}
		strict = parsed
	}

	targetLog := log.With().Str("deploy_target", deployTarget).Bool("strict", strict).Logger()

	if !strict && !target.Parse(deployTarget).Known() {
		known := make([]string, 0, len(target.All()))
		for _, t := range target.All() {
			known = append(known, t.String())
		}
		targetLog.Warn().Strs("known_targets", known).Msg("unrecognized deploy target")
	}

	res := <-config.ResolveAsync(ctx, config.StaticResolver{Strict: strict}, deployTarget)
	if res.Err != nil {
		if errors.Is(res.Err, config.ErrUnknownTarget) {
			targetLog.Error().Err(res.Err).Msg("refusing to resolve unknown deploy target")
		} else {
			targetLog.Error().Err(res.Err).Msg("failed to resolve deploy config")
		}
		return 1
	}
	cfg := res.Config

	if err := config.ValidateConfig(cfg); err != nil {
		targetLog.Error().Err(err).Msg("resolved config is invalid")
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		targetLog.Error().Err(err).Msg("failed to write config")
		return 1
	}

	targetLog.Info().
		Str("bucket", cfg.Bucket()).
		Str("region", cfg.S3.Region).
		Str("environment", cfg.Build.Environment).
		Msg("deploy config resolved")

	return 0
}
