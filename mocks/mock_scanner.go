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
	"context"

	"osprey/domain/entities"
)

type FakeScanner struct {
	Counter  map[string]int
	Verdict  entities.ScanVerdict
	LastPath string
}

func NewFakeScanner(verdict entities.ScanVerdict) *FakeScanner {
	return &FakeScanner{Counter: make(map[string]int), Verdict: verdict}
}

func (m *FakeScanner) Scan(ctx context.Context, path string) entities.ScanVerdict {
	m.Counter["Scan"] += 1
	m.LastPath = path

	return m.Verdict
}

type SpyQuarantiner struct {
	Counter     map[string]int
	Location    string
	Err         error
	LastDetails string
}

func NewSpyQuarantiner() *SpyQuarantiner {
	return &SpyQuarantiner{Counter: make(map[string]int)}
}

func (m *SpyQuarantiner) Quarantine(request entities.ScanRequest, scanDetails string) (string, error) {
	m.Counter["Quarantine"] += 1
	m.LastDetails = scanDetails

	return m.Location, m.Err
}

type TagCall struct {
	Status  entities.TagStatus
	Details string
}

type SpyTagger struct {
	Counter map[string]int
	Calls   []TagCall
}

func NewSpyTagger() *SpyTagger {
	return &SpyTagger{Counter: make(map[string]int)}
}

func (m *SpyTagger) TagObject(request entities.ScanRequest, status entities.TagStatus, details string) {
	m.Counter["TagObject"] += 1
	m.Calls = append(m.Calls, TagCall{Status: status, Details: details})
}
