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

package scan

import (
	"context"

	"osprey/domain/entities"
)

// FileScanner classifies a single on-disk file. Implementations never
// return an error: indeterminate outcomes are expressed as an
// EngineError verdict, which the pipeline degrades to clean.
type FileScanner interface {
	Scan(ctx context.Context, path string) entities.ScanVerdict
}
