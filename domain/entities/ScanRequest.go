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

import "fmt"

// ScanRequest is the normalized form of one upload notification. It lives
// for a single invocation; both identifiers must resolve to a real object
// at processing time.
type ScanRequest struct {
	Bucket      string // Bucket name
	Key         string // Key in the bucket that should be scanned
	Size        uint64 // Declared file size in the bucket, 0 when the event omits it
	StorageType string // Currently, only supports S3
	ScanID      string
}

// Location renders the request as a provider URI for logs and alerts.
func (s ScanRequest) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}
