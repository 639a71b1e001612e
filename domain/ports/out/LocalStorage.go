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

package out

import "github.com/spf13/afero"

// LocalStorage is a sandboxed scratch area scoped to a single invocation.
type LocalStorage interface {
	Create(path string) (afero.File, error)
	Open(path string) (afero.File, error)
	Exists(path string) (bool, error)
	Size(path string) (int64, error)

	// RealPath resolves a sandbox path to an absolute path on the host
	// filesystem, so external processes can be pointed at the file.
	RealPath(path string) (string, error)

	GetID() string
	Destroy() error
}

type LocalStorageFactory interface {
	GetLocalStorage(filesize uint64) (LocalStorage, error)
	GetStorageFromID(storageID string) (LocalStorage, error)
	DestroyStorage(storageID string) error
}
