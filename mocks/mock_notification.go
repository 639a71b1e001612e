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

package mocks

import (
	"osprey/domain/entities"
)

type SpyAlerter struct {
	Counter map[string]int
	Alerts  []entities.Alert
}

func NewSpyAlerter() *SpyAlerter {
	return &SpyAlerter{Counter: make(map[string]int)}
}

func (m *SpyAlerter) Send(alert entities.Alert) {
	m.Counter["Send"] += 1
	m.Alerts = append(m.Alerts, alert)
}

type SpyNotifier struct {
	Counter  map[string]int
	Err      error
	Subjects []string
	Messages []string
}

func NewSpyNotifier() *SpyNotifier {
	return &SpyNotifier{Counter: make(map[string]int)}
}

func (m *SpyNotifier) Publish(subject, message string) error {
	m.Counter["Publish"] += 1
	m.Subjects = append(m.Subjects, subject)
	m.Messages = append(m.Messages, message)

	return m.Err
}

type SpyViewer struct {
	Counter  map[string]int
	Err      error
	Messages []string
}

func NewSpyViewer() *SpyViewer {
	return &SpyViewer{Counter: make(map[string]int)}
}

func (m *SpyViewer) SendMessage(message string) error {
	m.Counter["SendMessage"] += 1
	m.Messages = append(m.Messages, message)

	return m.Err
}
