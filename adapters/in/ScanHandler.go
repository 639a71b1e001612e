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

package in

import (
	"context"
	"encoding/json"

	"osprey/domain/entities"
	"osprey/domain/services/notification"
	"osprey/logging"
)

type Orchestrator interface {
	Process(ctx context.Context, request entities.ScanRequest) (entities.ScanResponse, error)
}

// ScanHandler is the invocation entry point. Every failed invocation is
// reported as a generic SCAN_ERROR alert before the error is handed back
// to the platform, whose retry policy governs redelivery.
type ScanHandler struct {
	eventController *EventController
	orchestrator    Orchestrator
	alerter         notification.Alerter
	logger          logging.Logger
}

func NewScanHandler(eventController *EventController, orchestrator Orchestrator, alerter notification.Alerter, logger logging.Logger) *ScanHandler {
	return &ScanHandler{eventController: eventController, orchestrator: orchestrator, alerter: alerter, logger: logger}
}

func (h *ScanHandler) Handle(ctx context.Context, raw json.RawMessage) (entities.ScanResponse, error) {
	request, err := h.eventController.Extract(raw)
	if err != nil {
		return entities.ScanResponse{}, h.reportFailure(raw, err)
	}

	response, err := h.orchestrator.Process(ctx, request)
	if err != nil {
		return entities.ScanResponse{}, h.reportFailure(raw, err)
	}

	return response, nil
}

func (h *ScanHandler) reportFailure(raw json.RawMessage, err error) error {
	h.logger.Errorw("Failed to process upload notification", "error", err)

	h.alerter.Send(entities.NewAlert(entities.AlertScanError, map[string]string{
		"error": err.Error(),
		"event": string(raw),
	}))

	return err
}
