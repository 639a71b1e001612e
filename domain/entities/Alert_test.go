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

package entities

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertSubject(t *testing.T) {
	alert := NewAlert(AlertMalwareDetected, nil)
	assert.Equal(t, "[SECURITY ALERT] MALWARE_DETECTED", alert.Subject())
}

func TestAlertMessage(t *testing.T) {
	alert := NewAlert(AlertQuarantineFailed, map[string]string{"bucket": "uploads", "key": "malware.exe"})

	message, err := alert.Message()
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(message), &body))

	assert.Equal(t, "QUARANTINE_FAILED", body["type"])
	assert.Equal(t, "uploads", body["bucket"])
	assert.Equal(t, "malware.exe", body["key"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAlertMessageTruncatesPayload(t *testing.T) {
	alert := NewAlert(AlertScanError, map[string]string{"error": strings.Repeat("x", 1000)})

	message, err := alert.Message()
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(message), &body))
	assert.Len(t, body["error"], MaxDetailsLength)
}

func TestTruncateDetails(t *testing.T) {
	assert.Equal(t, "short", TruncateDetails("short"))
	assert.Len(t, TruncateDetails(strings.Repeat("y", MaxDetailsLength+1)), MaxDetailsLength)
}

func TestTagSetPairs(t *testing.T) {
	tags := NewTagSet(TagClean, "No threats detected")
	pairs := tags.Pairs()

	require.Len(t, pairs, 3)
	assert.Equal(t, [2]string{"virus-scan", "clean"}, pairs[0])
	assert.Equal(t, "scan-date", pairs[1][0])
	assert.Equal(t, [2]string{"scan-details", "No threats detected"}, pairs[2])
}

func TestTagSetPairsWithoutDetails(t *testing.T) {
	tags := NewTagSet(TagSkipped, "")
	pairs := tags.Pairs()

	require.Len(t, pairs, 2)
	assert.Equal(t, [2]string{"virus-scan", "skipped"}, pairs[0])
}
