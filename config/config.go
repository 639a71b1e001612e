/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxFileSizeMB  = 500
	defaultMaxStorageSize = 2 * 1024 * 1024 * 1024
	defaultClamscanPath   = "/opt/clamav/bin/clamscan"
	defaultClamDBPath     = "/opt/clamav/share/clamav"
)

type AppConfig struct {
	Aws          AWS
	Scanner      Scanner
	Notification Notification
}

type AWS struct {
	Region   string
	Resolver string
}

type Scanner struct {
	QuarantineBucket string
	ClamscanPath     string
	ClamDBPath       string
	MaxFileSizeMB    uint64
	MaxStorageSize   int64
	DebugLog         bool
	Metrics          bool
}

type Notification struct {
	TopicARN string
	Slack    Slack
}

type Slack struct {
	ChannelID string
	Webhook   string
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Aws: AWS{
			Region: "us-east-1",
		},
		Scanner: Scanner{
			ClamscanPath:   defaultClamscanPath,
			ClamDBPath:     defaultClamDBPath,
			MaxFileSizeMB:  defaultMaxFileSizeMB,
			MaxStorageSize: defaultMaxStorageSize,
		},
	}
}

// MaxFileSize is the scan ceiling in bytes.
func (s Scanner) MaxFileSize() uint64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

func validateConfig(config AppConfig) error {
	if config.Aws.Region == "" {
		return fmt.Errorf("no AWS region specified")
	}

	if config.Scanner.MaxFileSizeMB == 0 {
		return fmt.Errorf("max file size must be positive")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// The config file is optional: a Lambda deployment is env-only.
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))

	// Operational aliases, kept stable across deployments.
	bindAliases(v)

	// refresh configuration with all merged values
	config := AppConfig{}
	if err := v.Unmarshal(&config); err != nil {
		return AppConfig{}, err
	}

	if err := validateConfig(config); err != nil {
		return AppConfig{}, err
	}

	return config, nil
}

func bindAliases(v *viper.Viper) {
	aliases := map[string]string{
		"scanner/quarantinebucket": "QUARANTINE_BUCKET",
		"notification/topicarn":    "ALERT_TOPIC_ARN",
		"scanner/clamdbpath":       "CLAM_DB_PATH",
		"scanner/clamscanpath":     "CLAMSCAN_PATH",
		"scanner/maxfilesizemb":    "MAX_FILE_SIZE_MB",
	}

	for key, env := range aliases {
		// BindEnv only fails on an empty key.
		_ = v.BindEnv(key, env, strings.ToUpper(strings.ReplaceAll(key, "/", "_")))
	}
}
