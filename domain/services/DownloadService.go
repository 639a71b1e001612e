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
	"fmt"

	"osprey/domain/entities"
	ports "osprey/domain/ports/out"
	"osprey/logging"
)

type Downloader interface {
	DownloadSingleFile(request entities.ScanRequest, localStorage ports.LocalStorage) error
}

// DownloadService fetches the remote object into the invocation's scratch
// sandbox, keeping the object key as the sandbox path.
type DownloadService struct {
	remoteStorageFactory ports.RemoteStorageFactory
	logger               logging.Logger
}

func NewDownloadService(remoteStorageFactory ports.RemoteStorageFactory, logger logging.Logger) Downloader {
	return &DownloadService{remoteStorageFactory: remoteStorageFactory, logger: logger}
}

func (d *DownloadService) DownloadSingleFile(request entities.ScanRequest, localStorage ports.LocalStorage) error {
	remoteStorage, err := d.remoteStorageFactory.GetRemoteStorage(request.StorageType)
	if err != nil {
		return fmt.Errorf("failed to get remote storage. %w", err)
	}

	localFile, err := localStorage.Create(request.Key)
	if err != nil {
		return fmt.Errorf("failed to create local file. %w", err)
	}
	defer localFile.Close()

	d.logger.Debugw("Downloading object to scratch storage", "bucket", request.Bucket, "key", request.Key)

	if err := remoteStorage.Get(request.Bucket, request.Key, localFile); err != nil {
		return fmt.Errorf("failed to request key from bucket. bucket: %s, key: %s, error: %w", request.Bucket, request.Key, err)
	}

	return nil
}
