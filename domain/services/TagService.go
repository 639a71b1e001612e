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
	"osprey/domain/entities"
	ports "osprey/domain/ports/out"
	"osprey/logging"
)

// TagService overwrites the scan tag set on a surviving object. Tags are
// advisory metadata: failures are logged and swallowed, never escalated.
type TagService struct {
	remoteStorageFactory ports.RemoteStorageFactory
	logger               logging.Logger
}

func NewTagService(remoteStorageFactory ports.RemoteStorageFactory, logger logging.Logger) *TagService {
	return &TagService{remoteStorageFactory: remoteStorageFactory, logger: logger}
}

func (t *TagService) TagObject(request entities.ScanRequest, status entities.TagStatus, details string) {
	storage, err := t.remoteStorageFactory.GetRemoteStorage(request.StorageType)
	if err != nil {
		t.logger.Errorw("Failed to get remote storage for tagging", "error", err, "bucket", request.Bucket, "key", request.Key)
		return
	}

	tags := entities.NewTagSet(status, details)
	if err := storage.PutTags(request.Bucket, request.Key, tags); err != nil {
		t.logger.Errorw("Failed to tag object", "error", err, "bucket", request.Bucket, "key", request.Key, "status", status)
	}
}
