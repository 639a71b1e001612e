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

package notification

import (
	"osprey/domain/entities"
	ports "osprey/domain/ports/out"
	"osprey/logging"
)

type Alerter interface {
	Send(alert entities.Alert)
}

// AlertService fans a security alert out to the configured channels.
// Alerting is best effort and must never mask the primary outcome:
// delivery failures are logged and swallowed. With no channel configured
// the alert is only recorded to the operational log.
type AlertService struct {
	notifier ports.Notifier
	viewers  []ports.Viewer
	logger   logging.Logger
}

func NewAlertService(notifier ports.Notifier, viewers []ports.Viewer, logger logging.Logger) *AlertService {
	return &AlertService{notifier: notifier, viewers: viewers, logger: logger}
}

func (a *AlertService) Send(alert entities.Alert) {
	message, err := alert.Message()
	if err != nil {
		a.logger.Errorw("Failed to serialize alert", "error", err, "type", alert.Type)
		return
	}

	a.logger.Warnw("Security alert", "type", alert.Type, "alert", message)

	if a.notifier != nil {
		if err := a.notifier.Publish(alert.Subject(), message); err != nil {
			a.logger.Errorw("Failed to deliver alert to notification topic", "error", err, "type", alert.Type)
		}
	}

	for _, viewer := range a.viewers {
		if err := viewer.SendMessage(alert.Subject() + "\n" + message); err != nil {
			a.logger.Errorw("Failed to deliver alert to viewer", "error", err, "type", alert.Type)
		}
	}
}
