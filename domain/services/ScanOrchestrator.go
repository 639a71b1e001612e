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

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uber-go/tally/v4"

	"osprey/domain/entities"
	ports "osprey/domain/ports/out"
	"osprey/domain/services/notification"
	"osprey/domain/services/quarantine"
	"osprey/domain/services/scan"
	"osprey/fileutils"
	"osprey/logging"
)

const (
	receivedCount    = "files_received"
	cleanCount       = "files_clean"
	infectedCount    = "files_infected"
	skippedCount     = "files_skipped"
	bypassedCount    = "files_bypassed"
	engineErrorCount = "engine_errors"
	singleInc        = 1
)

type Quarantiner interface {
	Quarantine(request entities.ScanRequest, scanDetails string) (string, error)
}

type Tagger interface {
	TagObject(request entities.ScanRequest, status entities.TagStatus, details string)
}

// ScanOrchestrator routes one upload notification to exactly one of three
// terminal outcomes: skip, clean, or quarantine. A detected infection is
// never silently dropped.
type ScanOrchestrator struct {
	downloadService     Downloader
	localStorageFactory ports.LocalStorageFactory
	scanner             scan.FileScanner
	quarantiner         Quarantiner
	tagger              Tagger
	alerter             notification.Alerter
	maxFileSize         uint64
	metricsScope        tally.Scope
	logger              logging.Logger
}

func NewScanOrchestrator(downloadService Downloader, localStorageFactory ports.LocalStorageFactory, scanner scan.FileScanner,
	quarantiner Quarantiner, tagger Tagger, alerter notification.Alerter, maxFileSize uint64, metricsScope tally.Scope, logger logging.Logger) *ScanOrchestrator {
	return &ScanOrchestrator{
		downloadService:     downloadService,
		localStorageFactory: localStorageFactory,
		scanner:             scanner,
		quarantiner:         quarantiner,
		tagger:              tagger,
		alerter:             alerter,
		maxFileSize:         maxFileSize,
		metricsScope:        metricsScope,
		logger:              logger,
	}
}

func (s *ScanOrchestrator) Process(ctx context.Context, request entities.ScanRequest) (entities.ScanResponse, error) {
	s.metricsScope.Counter(receivedCount).Inc(singleInc)
	s.logger.Infow("Processing upload", "location", request.Location(), "size", request.Size, "scan_id", request.ScanID)

	// Bound worst-case scan latency and cost.
	if request.Size > s.maxFileSize {
		s.logger.Infow("File too large to scan", "size", request.Size, "max", s.maxFileSize, "location", request.Location())
		s.tagger.TagObject(request, entities.TagSkipped, "File too large")
		s.metricsScope.Counter(skippedCount).Inc(singleInc)

		return entities.NewScanResponse(entities.BodySkippedTooLarge), nil
	}

	// Media formats are already validated by the upstream media pipeline.
	if fileutils.HasMediaExtension(request.Key) {
		return s.bypassMediaFile(request), nil
	}

	verdict, mediaContent, err := s.scanObject(ctx, request)
	if err != nil {
		return entities.ScanResponse{}, err
	}

	if mediaContent {
		return s.bypassMediaFile(request), nil
	}

	if verdict.Result == entities.Infected {
		return s.handleInfectedFile(request, verdict)
	}

	if verdict.Result == entities.EngineError {
		// Deliberate policy: engine failures degrade to "assume clean, log
		// loudly" so a broken engine never blocks the upload pipeline.
		s.logger.Errorw("Scan engine did not produce a verdict, treating file as clean", "details", verdict.Details, "location", request.Location())
		s.metricsScope.Counter(engineErrorCount).Inc(singleInc)
	}

	s.tagger.TagObject(request, entities.TagClean, verdict.Details)
	s.metricsScope.Counter(cleanCount).Inc(singleInc)

	return entities.NewScanResponse(entities.BodyClean), nil
}

// scanObject downloads the object into scratch storage and runs the
// engine against it. The scratch sandbox is destroyed on every exit
// path. The second return value reports that the content sniff
// identified the bytes as media, which skips the engine entirely.
func (s *ScanOrchestrator) scanObject(ctx context.Context, request entities.ScanRequest) (entities.ScanVerdict, bool, error) {
	localStorage, err := s.localStorageFactory.GetLocalStorage(request.Size)
	if err != nil {
		return entities.ScanVerdict{}, false, fmt.Errorf("failed to create scratch storage. %w", err)
	}

	defer func() {
		if err := s.localStorageFactory.DestroyStorage(localStorage.GetID()); err != nil {
			s.logger.Errorw("Failed to destroy scratch storage", "error", err, "storage_id", localStorage.GetID())
		}
	}()

	if err := s.downloadService.DownloadSingleFile(request, localStorage); err != nil {
		return entities.ScanVerdict{}, false, err
	}

	if s.isMediaContent(localStorage, request.Key) {
		return entities.ScanVerdict{}, true, nil
	}

	path, err := localStorage.RealPath(request.Key)
	if err != nil {
		return entities.ScanVerdict{}, false, fmt.Errorf("failed to resolve scratch path. %w", err)
	}

	return s.scanner.Scan(ctx, path), false, nil
}

// isMediaContent catches media uploaded under a wrong extension. Sniff
// failures simply fall through to the engine.
func (s *ScanOrchestrator) isMediaContent(localStorage ports.LocalStorage, key string) bool {
	file, err := localStorage.Open(key)
	if err != nil {
		return false
	}
	defer file.Close()

	filetype, err := fileutils.GetType(file)

	return err == nil && filetype == fileutils.Multimedia
}

func (s *ScanOrchestrator) bypassMediaFile(request entities.ScanRequest) entities.ScanResponse {
	s.logger.Infow("Media file, basic validation only", "location", request.Location())
	s.tagger.TagObject(request, entities.TagClean, "Media file - basic validation")
	s.metricsScope.Counter(bypassedCount).Inc(singleInc)

	return entities.NewScanResponse(entities.BodyMediaValidated)
}

func (s *ScanOrchestrator) handleInfectedFile(request entities.ScanRequest, verdict entities.ScanVerdict) (entities.ScanResponse, error) {
	s.logger.Errorw("VIRUS DETECTED", "location", request.Location(), "details", verdict.Details)

	location, err := s.quarantiner.Quarantine(request, verdict.Details)
	if err != nil {
		s.alertQuarantineFailure(request, verdict, location, err)
		return entities.ScanResponse{}, err
	}

	s.alerter.Send(entities.NewAlert(entities.AlertMalwareDetected, map[string]string{
		"bucket":              request.Bucket,
		"key":                 request.Key,
		"scan_result":         verdict.Details,
		"quarantine_location": location,
		"action":              "File quarantined and deleted from source",
	}))

	s.metricsScope.Counter(infectedCount).Inc(singleInc)

	return entities.NewScanResponse(entities.BodyQuarantined), nil
}

func (s *ScanOrchestrator) alertQuarantineFailure(request entities.ScanRequest, verdict entities.ScanVerdict, location string, err error) {
	payload := map[string]string{
		"bucket":      request.Bucket,
		"key":         request.Key,
		"scan_result": verdict.Details,
		"error":       err.Error(),
	}

	alertType := entities.AlertQuarantineFailed
	if errors.Is(err, quarantine.ErrDeleteFailed) {
		alertType = entities.AlertQuarantineDeleteFailed
		payload["quarantine_location"] = location
	}

	s.alerter.Send(entities.NewAlert(alertType, payload))
}
