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

package mocks

import (
	"io"

	"osprey/domain/entities"
	ports "osprey/domain/ports/out"
)

// SpyRemoteStorage records every call and serves configurable content and
// errors, so tests can drive each failure path of the storage port.
type SpyRemoteStorage struct {
	Counter map[string]int

	Content   []byte
	GetErr    error
	CopyErr   error
	DeleteErr error
	TagsErr   error

	CopiedSrc  string
	CopiedDst  string
	Metadata   map[string]string
	DeletedKey string
	Tags       entities.TagSet
}

func NewSpyRemoteStorage() *SpyRemoteStorage {
	return &SpyRemoteStorage{Counter: make(map[string]int)}
}

func (m *SpyRemoteStorage) Get(bucket, name string, writer io.WriterAt) error {
	m.Counter["Get"] += 1
	if m.GetErr != nil {
		return m.GetErr
	}

	_, err := writer.WriteAt(m.Content, 0)

	return err
}

func (m *SpyRemoteStorage) Copy(srcBucket, srcKey, dstBucket, dstKey string, metadata map[string]string) error {
	m.Counter["Copy"] += 1
	m.CopiedSrc = srcBucket + "/" + srcKey
	m.CopiedDst = dstBucket + "/" + dstKey
	m.Metadata = metadata

	return m.CopyErr
}

func (m *SpyRemoteStorage) Delete(bucket, name string) error {
	m.Counter["Delete"] += 1
	m.DeletedKey = bucket + "/" + name

	return m.DeleteErr
}

func (m *SpyRemoteStorage) PutTags(bucket, name string, tags entities.TagSet) error {
	m.Counter["PutTags"] += 1
	m.Tags = tags

	return m.TagsErr
}

type SpyRemoteStorageFactory struct {
	Storage ports.RemoteStorage
	Err     error
}

func (m *SpyRemoteStorageFactory) GetRemoteStorage(storageType string) (ports.RemoteStorage, error) {
	return m.Storage, m.Err
}
