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

// ScanResponse is the invocation result handed back to the platform.
// Every successful path answers 200 with one of the fixed body strings;
// failed invocations propagate an error instead.
type ScanResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

const (
	BodySkippedTooLarge = "File too large - skipped"
	BodyMediaValidated  = "Media file - basic validation passed"
	BodyQuarantined     = "Infected file quarantined"
	BodyClean           = "File scanned - clean"
)

func NewScanResponse(body string) ScanResponse {
	return ScanResponse{StatusCode: 200, Body: body}
}
