/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/google/bitcalc/core/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type WebArgs struct {
	Addr    string `arg:"--addr,env:BITCALC_ADDR" help:"listen address host:port, overrides BITCALC_HOST and BITCALC_PORT"`
	EnvFile string `arg:"--env-file,env:BITCALC_ENV_FILE" default:".env" help:"dotenv file with BITCALC_* settings"`
	Dev     bool   `arg:"--dev,env:BITCALC_DEV" help:"human readable debug logging"`
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
}

func run(args WebArgs) error {
	logger, err := newLogger(args.Dev)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	_ = zap.ReplaceGlobals(logger)

	cfg, err := server.LoadConfig(args.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if args.Addr != "" {
		if err := cfg.OverrideAddr(args.Addr); err != nil {
			return err
		}
	}

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting %s on http://localhost:%s\n", cfg.AppName, cfg.Port)
	return srv.Start(ctx)
}

func main() {
	var args WebArgs
	arg.MustParse(&args)

	if err := run(args); err != nil {
		// zap.L() is still a no-op here if the logger itself failed to build
		zap.L().Error("web server failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
