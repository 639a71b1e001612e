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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osprey/domain/entities"
	"osprey/logging"
	"osprey/mocks"
)

type spyOrchestrator struct {
	response entities.ScanResponse
	err      error
	requests []entities.ScanRequest
}

func (s *spyOrchestrator) Process(ctx context.Context, request entities.ScanRequest) (entities.ScanResponse, error) {
	s.requests = append(s.requests, request)
	return s.response, s.err
}

func validEvent() json.RawMessage {
	return json.RawMessage(`{"detail": {"bucket": {"name": "uploads"}, "object": {"key": "report.pdf", "size": 1024}}}`)
}

func TestHandleReturnsOrchestratorResponse(t *testing.T) {
	orchestrator := &spyOrchestrator{response: entities.NewScanResponse(entities.BodyClean)}
	alerter := mocks.NewSpyAlerter()
	handler := NewScanHandler(NewEventController(logging.NewDiscardLog()), orchestrator, alerter, logging.NewDiscardLog())

	response, err := handler.Handle(context.Background(), validEvent())

	require.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.Equal(t, entities.BodyClean, response.Body)
	require.Len(t, orchestrator.requests, 1)
	assert.Equal(t, "uploads", orchestrator.requests[0].Bucket)
	assert.Empty(t, alerter.Alerts)
}

func TestHandleAlertsOnUnrecognizedEvent(t *testing.T) {
	orchestrator := &spyOrchestrator{}
	alerter := mocks.NewSpyAlerter()
	handler := NewScanHandler(NewEventController(logging.NewDiscardLog()), orchestrator, alerter, logging.NewDiscardLog())

	_, err := handler.Handle(context.Background(), json.RawMessage(`{"unexpected": true}`))

	assert.ErrorIs(t, err, ErrUnrecognizedEvent)
	assert.Empty(t, orchestrator.requests)

	require.Len(t, alerter.Alerts, 1)
	assert.Equal(t, entities.AlertScanError, alerter.Alerts[0].Type)
	assert.Contains(t, alerter.Alerts[0].Payload["event"], "unexpected")
}

func TestHandleAlertsOnProcessingFailure(t *testing.T) {
	processErr := errors.New("download failed")
	orchestrator := &spyOrchestrator{err: processErr}
	alerter := mocks.NewSpyAlerter()
	handler := NewScanHandler(NewEventController(logging.NewDiscardLog()), orchestrator, alerter, logging.NewDiscardLog())

	_, err := handler.Handle(context.Background(), validEvent())

	assert.ErrorIs(t, err, processErr)

	require.Len(t, alerter.Alerts, 1)
	assert.Equal(t, entities.AlertScanError, alerter.Alerts[0].Type)
	assert.Equal(t, processErr.Error(), alerter.Alerts[0].Payload["error"])
}
