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

package out

import (
	"github.com/slack-go/slack"
)

// SlackViewer posts security alerts to a channel through an incoming
// webhook. It is a secondary channel: the SNS topic stays authoritative.
type SlackViewer struct {
	webhook   string
	channelID string
}

func NewSlackViewer(webhook, channelID string) *SlackViewer {
	return &SlackViewer{webhook: webhook, channelID: channelID}
}

func (s *SlackViewer) SendMessage(message string) error {
	msg := slack.WebhookMessage{
		Username: "osprey",
		Channel:  s.channelID,
		Text:     message,
	}

	return slack.PostWebhook(s.webhook, &msg)
}
