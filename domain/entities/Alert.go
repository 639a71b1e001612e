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
	"time"
)

type AlertType string

const (
	AlertMalwareDetected        AlertType = "MALWARE_DETECTED"
	AlertQuarantineFailed       AlertType = "QUARANTINE_FAILED"
	AlertQuarantineDeleteFailed AlertType = "QUARANTINE_DELETE_FAILED"
	AlertScanError              AlertType = "SCAN_ERROR"
)

// Alert is the structured security notification sent to the configured
// channels. Payload fields are flattened next to the fixed envelope.
type Alert struct {
	Type      AlertType
	Timestamp time.Time
	Payload   map[string]string
}

func NewAlert(alertType AlertType, payload map[string]string) Alert {
	return Alert{Type: alertType, Timestamp: time.Now().UTC(), Payload: payload}
}

// Subject is the notification subject line.
func (a Alert) Subject() string {
	return "[SECURITY ALERT] " + string(a.Type)
}

// Message serializes the alert envelope plus payload as indented JSON.
func (a Alert) Message() (string, error) {
	body := make(map[string]string, len(a.Payload)+2)
	for key, value := range a.Payload {
		body[key] = TruncateDetails(value)
	}

	body["type"] = string(a.Type)
	body["timestamp"] = a.Timestamp.Format(time.RFC3339)

	raw, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
