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
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osprey/domain/entities"
	"osprey/logging"
)

func fakeEngine(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake engine scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "clamscan")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))

	return path
}

func TestScanMissingBinary(t *testing.T) {
	scanner := NewClamScanner("/nonexistent/clamscan", "/nonexistent/db", logging.NewDiscardLog())

	verdict := scanner.Scan(context.Background(), "/tmp/file")

	assert.Equal(t, entities.EngineError, verdict.Result)
	assert.Contains(t, verdict.Details, "scanner not available")
}

func TestScanClean(t *testing.T) {
	binary := fakeEngine(t, "exit 0")
	scanner := NewClamScanner(binary, "/opt/clamav/share/clamav", logging.NewDiscardLog())

	verdict := scanner.Scan(context.Background(), "/tmp/file")

	assert.Equal(t, entities.Clean, verdict.Result)
	assert.Equal(t, "No threats detected", verdict.Details)
}

func TestScanInfected(t *testing.T) {
	binary := fakeEngine(t, `echo "/tmp/file: Eicar-Test-Signature FOUND"; exit 1`)
	scanner := NewClamScanner(binary, "/opt/clamav/share/clamav", logging.NewDiscardLog())

	verdict := scanner.Scan(context.Background(), "/tmp/file")

	assert.Equal(t, entities.Infected, verdict.Result)
	assert.Equal(t, "/tmp/file: Eicar-Test-Signature FOUND", verdict.Details)
}

func TestScanInfectedWithoutOutput(t *testing.T) {
	binary := fakeEngine(t, "exit 1")
	scanner := NewClamScanner(binary, "/opt/clamav/share/clamav", logging.NewDiscardLog())

	verdict := scanner.Scan(context.Background(), "/tmp/file")

	assert.Equal(t, entities.Infected, verdict.Result)
	assert.Equal(t, "threat signature reported", verdict.Details)
}

func TestScanEngineFailure(t *testing.T) {
	binary := fakeEngine(t, `echo "LibClamAV Error: database not found" >&2; exit 2`)
	scanner := NewClamScanner(binary, "/opt/clamav/share/clamav", logging.NewDiscardLog())

	verdict := scanner.Scan(context.Background(), "/tmp/file")

	assert.Equal(t, entities.EngineError, verdict.Result)
	assert.Contains(t, verdict.Details, "Scan error")
	assert.Contains(t, verdict.Details, "database not found")
}

func TestScanTimeout(t *testing.T) {
	binary := fakeEngine(t, "sleep 5")
	scanner := NewClamScanner(binary, "/opt/clamav/share/clamav", logging.NewDiscardLog())
	scanner.timeout = 50 * time.Millisecond

	verdict := scanner.Scan(context.Background(), "/tmp/file")

	assert.Equal(t, entities.EngineError, verdict.Result)
	assert.Contains(t, verdict.Details, "timed out")
}

func TestScanPassesEngineArguments(t *testing.T) {
	binary := fakeEngine(t, `echo "$@"; exit 1`)
	scanner := NewClamScanner(binary, "/custom/db", logging.NewDiscardLog())

	verdict := scanner.Scan(context.Background(), "/tmp/suspicious")

	assert.Equal(t, entities.Infected, verdict.Result)
	assert.Contains(t, verdict.Details, "--database=/custom/db")
	assert.Contains(t, verdict.Details, "--no-summary")
	assert.Contains(t, verdict.Details, "--infected")
	assert.Contains(t, verdict.Details, "/tmp/suspicious")
}
