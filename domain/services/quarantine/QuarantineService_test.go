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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osprey/domain/entities"
	"osprey/logging"
	"osprey/mocks"
)

func fixedClock() time.Time {
	return time.Date(2026, time.August, 24, 15, 4, 5, 0, time.UTC)
}

func quarantineRequest() entities.ScanRequest {
	return entities.ScanRequest{Bucket: "uploads", Key: "docs/malware.exe", Size: 1024, StorageType: "s3", ScanID: "test-scan"}
}

func TestQuarantineMovesObject(t *testing.T) {
	storage := mocks.NewSpyRemoteStorage()
	service := NewQuarantineService(&mocks.SpyRemoteStorageFactory{Storage: storage}, "quarantine-bucket", logging.NewDiscardLog())
	service.now = fixedClock

	location, err := service.Quarantine(quarantineRequest(), "Eicar-Test-Signature FOUND")

	require.NoError(t, err)
	assert.Equal(t, "s3://quarantine-bucket/infected/2026/08/24/uploads/docs/malware.exe", location)
	assert.Equal(t, "uploads/docs/malware.exe", storage.CopiedSrc)
	assert.Equal(t, "quarantine-bucket/infected/2026/08/24/uploads/docs/malware.exe", storage.CopiedDst)
	assert.Equal(t, "uploads/docs/malware.exe", storage.DeletedKey)

	assert.Equal(t, "uploads", storage.Metadata["original-bucket"])
	assert.Equal(t, "docs/malware.exe", storage.Metadata["original-key"])
	assert.Equal(t, "Eicar-Test-Signature FOUND", storage.Metadata["scan-result"])
	assert.Equal(t, "2026-08-24T15:04:05Z", storage.Metadata["quarantine-date"])
}

func TestQuarantineTruncatesScanResult(t *testing.T) {
	storage := mocks.NewSpyRemoteStorage()
	service := NewQuarantineService(&mocks.SpyRemoteStorageFactory{Storage: storage}, "quarantine-bucket", logging.NewDiscardLog())

	_, err := service.Quarantine(quarantineRequest(), strings.Repeat("x", 1000))

	require.NoError(t, err)
	assert.Len(t, storage.Metadata["scan-result"], entities.MaxDetailsLength)
}

func TestQuarantineCopyFailureLeavesOriginal(t *testing.T) {
	storage := mocks.NewSpyRemoteStorage()
	storage.CopyErr = errors.New("access denied")
	service := NewQuarantineService(&mocks.SpyRemoteStorageFactory{Storage: storage}, "quarantine-bucket", logging.NewDiscardLog())

	location, err := service.Quarantine(quarantineRequest(), "details")

	assert.ErrorIs(t, err, ErrCopyFailed)
	assert.Empty(t, location)
	assert.Zero(t, storage.Counter["Delete"])
}

func TestQuarantineDeleteFailureReportsLocation(t *testing.T) {
	storage := mocks.NewSpyRemoteStorage()
	storage.DeleteErr = errors.New("object locked")
	service := NewQuarantineService(&mocks.SpyRemoteStorageFactory{Storage: storage}, "quarantine-bucket", logging.NewDiscardLog())
	service.now = fixedClock

	location, err := service.Quarantine(quarantineRequest(), "details")

	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.Equal(t, "s3://quarantine-bucket/infected/2026/08/24/uploads/docs/malware.exe", location)
	assert.Equal(t, 1, storage.Counter["Copy"])
}

func TestQuarantineStorageFactoryFailure(t *testing.T) {
	service := NewQuarantineService(&mocks.SpyRemoteStorageFactory{Err: errors.New("unknown storage")}, "quarantine-bucket", logging.NewDiscardLog())

	_, err := service.Quarantine(quarantineRequest(), "details")

	assert.ErrorIs(t, err, ErrCopyFailed)
}
