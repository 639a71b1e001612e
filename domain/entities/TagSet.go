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

import "time"

type TagStatus string

const (
	TagClean   TagStatus = "clean"
	TagSkipped TagStatus = "skipped"
)

const (
	TagKeyStatus  = "virus-scan"
	TagKeyDate    = "scan-date"
	TagKeyDetails = "scan-details"
)

// TagSet is the advisory scan metadata attached to a surviving object.
// It is overwritten on each scan, never appended.
type TagSet struct {
	Status  TagStatus
	Date    time.Time
	Details string
}

func NewTagSet(status TagStatus, details string) TagSet {
	return TagSet{Status: status, Date: time.Now().UTC(), Details: TruncateDetails(details)}
}

// Pairs renders the tag set as ordered key/value pairs. The details pair
// is present only when there is something to say.
func (t TagSet) Pairs() [][2]string {
	pairs := [][2]string{
		{TagKeyStatus, string(t.Status)},
		{TagKeyDate, t.Date.Format(time.RFC3339)},
	}

	if t.Details != "" {
		pairs = append(pairs, [2]string{TagKeyDetails, t.Details})
	}

	return pairs
}
