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

package quarantine

import (
	"errors"
	"fmt"
	"time"

	"osprey/domain/entities"
	ports "osprey/domain/ports/out"
	"osprey/logging"
)

var (
	// ErrCopyFailed means the object never reached quarantine; the
	// original is left untouched so the platform can retry.
	ErrCopyFailed = errors.New("quarantine copy failed")

	// ErrDeleteFailed means the quarantine copy exists but the original
	// could not be removed.
	ErrDeleteFailed = errors.New("quarantine delete failed")
)

const (
	metadataOriginalBucket = "original-bucket"
	metadataOriginalKey    = "original-key"
	metadataScanResult     = "scan-result"
	metadataDate           = "quarantine-date"
)

// Service relocates an infected object into the quarantine bucket under a
// date-partitioned path and removes the original. The copy is the sole
// surviving representation of the object afterwards.
type Service struct {
	remoteStorageFactory ports.RemoteStorageFactory
	quarantineBucket     string
	logger               logging.Logger
	now                  func() time.Time
}

func NewQuarantineService(remoteStorageFactory ports.RemoteStorageFactory, quarantineBucket string, logger logging.Logger) *Service {
	return &Service{remoteStorageFactory: remoteStorageFactory, quarantineBucket: quarantineBucket, logger: logger, now: time.Now}
}

// Quarantine copies the object, then deletes the original. The returned
// location is the provider URI of the quarantine copy.
func (s *Service) Quarantine(request entities.ScanRequest, scanDetails string) (string, error) {
	storage, err := s.remoteStorageFactory.GetRemoteStorage(request.StorageType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCopyFailed, err)
	}

	timestamp := s.now().UTC()
	quarantineKey := fmt.Sprintf("infected/%s/%s/%s", timestamp.Format("2006/01/02"), request.Bucket, request.Key)
	location := fmt.Sprintf("s3://%s/%s", s.quarantineBucket, quarantineKey)

	s.logger.Infow("Quarantining infected file", "source", request.Location(), "destination", location)

	metadata := map[string]string{
		metadataOriginalBucket: request.Bucket,
		metadataOriginalKey:    request.Key,
		metadataScanResult:     entities.TruncateDetails(scanDetails),
		metadataDate:           timestamp.Format(time.RFC3339),
	}

	if err := storage.Copy(request.Bucket, request.Key, s.quarantineBucket, quarantineKey, metadata); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCopyFailed, err)
	}

	if err := storage.Delete(request.Bucket, request.Key); err != nil {
		return location, fmt.Errorf("%w: %s", ErrDeleteFailed, err)
	}

	s.logger.Infow("Deleted original file", "source", request.Location())

	return location, nil
}
