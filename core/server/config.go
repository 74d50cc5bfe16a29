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

package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultHost    = ""
	defaultPort    = "8080"
	defaultAppName = "bitcalc"
)

// Config holds the web server settings
type Config struct {
	Host    string
	Port    string
	AppName string
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LoadConfig reads the server settings from the environment.
// Variables in envFile are loaded first without overriding ones already set.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			zap.L().Info("Skipping .env", zap.String("path", envFile), zap.Error(err))
		}
	}

	port := os.Getenv("BITCALC_PORT")
	if port == "" {
		port = defaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	host := os.Getenv("BITCALC_HOST")
	if host == "" {
		host = defaultHost
	}

	appName := os.Getenv("BITCALC_APP_NAME")
	if appName == "" {
		appName = defaultAppName
	}

	return &Config{
		Host:    host,
		Port:    port,
		AppName: appName,
	}, nil
}

// OverrideAddr replaces Host and Port with the parts of a host:port address
func (c *Config) OverrideAddr(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if err := validatePort(port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	c.Host = host
	c.Port = port
	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
