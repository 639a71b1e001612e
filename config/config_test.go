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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", config.Aws.Region)
	assert.Equal(t, "/opt/clamav/bin/clamscan", config.Scanner.ClamscanPath)
	assert.Equal(t, "/opt/clamav/share/clamav", config.Scanner.ClamDBPath)
	assert.Equal(t, uint64(500), config.Scanner.MaxFileSizeMB)
	assert.Equal(t, uint64(500*1024*1024), config.Scanner.MaxFileSize())
	assert.Empty(t, config.Scanner.QuarantineBucket)
	assert.Empty(t, config.Notification.TopicARN)
	assert.False(t, config.Scanner.DebugLog)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("QUARANTINE_BUCKET", "my-quarantine")
	t.Setenv("ALERT_TOPIC_ARN", "arn:aws:sns:us-east-1:123456789012:alerts")
	t.Setenv("CLAMSCAN_PATH", "/usr/bin/clamscan")
	t.Setenv("CLAM_DB_PATH", "/var/lib/clamav")
	t.Setenv("MAX_FILE_SIZE_MB", "250")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("SCANNER_DEBUGLOG", "true")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "my-quarantine", config.Scanner.QuarantineBucket)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:alerts", config.Notification.TopicARN)
	assert.Equal(t, "/usr/bin/clamscan", config.Scanner.ClamscanPath)
	assert.Equal(t, "/var/lib/clamav", config.Scanner.ClamDBPath)
	assert.Equal(t, uint64(250), config.Scanner.MaxFileSizeMB)
	assert.Equal(t, "sa-east-1", config.Aws.Region)
	assert.True(t, config.Scanner.DebugLog)
}

func TestLoadConfigRejectsZeroFileSize(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_MB", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}
