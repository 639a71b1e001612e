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

type VerdictResult int8

const (
	// Clean means the engine terminated normally and reported no findings.
	Clean VerdictResult = iota

	// Infected means the engine reported at least one finding.
	Infected

	// EngineError covers every other engine outcome: non 0/1 exit, timeout
	// or a missing engine binary. Policy is degrade-open: the pipeline
	// treats these as clean and surfaces the raw error text in Details.
	EngineError
)

func (v VerdictResult) String() string {
	switch v {
	case Clean:
		return "clean"
	case Infected:
		return "infected"
	case EngineError:
		return "engine_error"
	default:
		return "unknown"
	}
}

// ScanVerdict is produced exactly once per invocation and is immutable
// after creation. Only its derived tag set or alert survives the
// invocation.
type ScanVerdict struct {
	Result  VerdictResult
	Details string
}

// MaxDetailsLength bounds the free-text engine output wherever it leaves
// the process (object tags, quarantine metadata, alerts).
const MaxDetailsLength = 256

// TruncateDetails caps free text at MaxDetailsLength characters.
func TruncateDetails(details string) string {
	if len(details) > MaxDetailsLength {
		return details[:MaxDetailsLength]
	}

	return details
}
