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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"osprey/common"
	"osprey/domain/entities"
	"osprey/logging"
)

// Engine exit codes: 0 no findings, 1 findings present, anything else is
// an engine error.
const exitInfected = 1

// Hard ceiling on a single engine run. Exceeding it is handled like any
// other engine error.
const scanTimeout = 300 * time.Second

// ClamScanner drives the clamscan executable. An absent binary or a
// failing engine never blocks the pipeline: both degrade to an
// EngineError verdict that downstream treats as clean.
type ClamScanner struct {
	binaryPath   string
	databasePath string
	timeout      time.Duration
	logger       logging.Logger
}

func NewClamScanner(binaryPath, databasePath string, logger logging.Logger) *ClamScanner {
	return &ClamScanner{binaryPath: binaryPath, databasePath: databasePath, timeout: scanTimeout, logger: logger}
}

func (s *ClamScanner) Scan(ctx context.Context, path string) entities.ScanVerdict {
	if _, err := os.Stat(s.binaryPath); err != nil {
		s.logger.Warnw("Scan engine not available, proceeding without deep scan", "binary", s.binaryPath)
		return entities.ScanVerdict{Result: entities.EngineError, Details: fmt.Sprintf("scanner not available at %s", s.binaryPath)}
	}

	scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(scanCtx, s.binaryPath,
		"--database="+s.databasePath,
		"--no-summary",
		"--infected",
		path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return entities.ScanVerdict{Result: entities.Clean, Details: "No threats detected"}
	}

	if errors.Is(scanCtx.Err(), context.DeadlineExceeded) {
		s.logger.Errorw("Scan engine timed out", "binary", s.binaryPath, "timeout", s.timeout, "path", path)
		return entities.ScanVerdict{Result: entities.EngineError, Details: fmt.Sprintf("scan timed out after %s", s.timeout)}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == exitInfected {
		details := common.GetFirstNonEmpty(strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), "threat signature reported")
		return entities.ScanVerdict{Result: entities.Infected, Details: details}
	}

	details := common.GetFirstNonEmpty(strings.TrimSpace(stderr.String()), strings.TrimSpace(stdout.String()), err.Error())
	s.logger.Errorw("Scan engine failed", "error", err, "details", details, "path", path)

	return entities.ScanVerdict{Result: entities.EngineError, Details: "Scan error: " + details}
}
