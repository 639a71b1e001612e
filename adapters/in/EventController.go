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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	adapterentities "osprey/adapters/entities"
	"osprey/domain/entities"
	"osprey/logging"
)

// ErrUnrecognizedEvent marks a payload matching neither of the two
// recognized notification shapes.
var ErrUnrecognizedEvent = errors.New("unrecognized event format")

// EventController normalizes an inbound payload into a ScanRequest before
// any business logic runs. Two shapes are recognized: an EventBridge
// envelope with an object-created detail, and a direct S3 notification
// with a records list. Everything else is rejected up front.
type EventController struct {
	logger logging.Logger
}

func NewEventController(logger logging.Logger) *EventController {
	return &EventController{logger: logger}
}

func (c *EventController) Extract(raw json.RawMessage) (entities.ScanRequest, error) {
	var probe adapterentities.UploadEventProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return entities.ScanRequest{}, fmt.Errorf("%w: %s", ErrUnrecognizedEvent, err)
	}

	switch {
	case len(probe.Detail) != 0:
		return c.extractFromEventBridge(probe.Detail)
	case len(probe.Records) != 0:
		return c.extractFromRecords(raw)
	default:
		return entities.ScanRequest{}, ErrUnrecognizedEvent
	}
}

func (c *EventController) extractFromEventBridge(detail json.RawMessage) (entities.ScanRequest, error) {
	var objectCreated adapterentities.ObjectCreatedDetail
	if err := json.Unmarshal(detail, &objectCreated); err != nil {
		return entities.ScanRequest{}, fmt.Errorf("%w: %s", ErrUnrecognizedEvent, err)
	}

	return c.newRequest(objectCreated.Bucket.Name, objectCreated.Object.Key, objectCreated.Object.Size)
}

func (c *EventController) extractFromRecords(raw json.RawMessage) (entities.ScanRequest, error) {
	var s3Event events.S3Event
	if err := json.Unmarshal(raw, &s3Event); err != nil || len(s3Event.Records) == 0 {
		return entities.ScanRequest{}, ErrUnrecognizedEvent
	}

	record := s3Event.Records[0]

	return c.newRequest(record.S3.Bucket.Name, record.S3.Object.Key, uint64(record.S3.Object.Size))
}

func (c *EventController) newRequest(bucket, key string, size uint64) (entities.ScanRequest, error) {
	if bucket == "" || key == "" {
		return entities.ScanRequest{}, ErrUnrecognizedEvent
	}

	uniqueUUID, err := uuid.NewRandom()
	if err != nil {
		return entities.ScanRequest{}, fmt.Errorf("failed to generate scan id. %w", err)
	}

	request := entities.ScanRequest{
		Bucket:      bucket,
		Key:         key,
		Size:        size,
		StorageType: "s3",
		ScanID:      uniqueUUID.String(),
	}

	c.logger.Debugw("Received new request", "bucket", request.Bucket, "key", request.Key, "size", request.Size, "scan_id", request.ScanID)

	return request, nil
}
