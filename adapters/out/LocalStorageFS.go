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

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const defaultDirPermission = 0755

// LocalStorageFS sandboxes every scratch file of one invocation under
// /tmp/<storage id>. Destroying the storage is idempotent: removing an
// already absent tree is not an error.
type LocalStorageFS struct {
	changeFSUsage func(storageID string, nbytes int64) error
	storageID     string
	base          *afero.BasePathFs
	afero.Fs
}

func NewLocalStorageFS(base afero.Fs, changeFSUsage func(storageID string, nbytes int64) error) (*LocalStorageFS, error) {
	// Enforcing base directory, because we don't want any file to escape the sandbox directory
	storageID := uuid.New().String()
	rootDir := "/tmp/" + storageID

	if err := base.MkdirAll(rootDir, defaultDirPermission); err != nil {
		return nil, err
	}

	sandbox, _ := afero.NewBasePathFs(base, rootDir).(*afero.BasePathFs)

	return &LocalStorageFS{changeFSUsage: changeFSUsage, storageID: storageID, base: sandbox, Fs: sandbox}, nil
}

func (d *LocalStorageFS) Create(path string) (afero.File, error) {
	if err := d.MkdirAll(filepath.Dir(path), defaultDirPermission); err != nil {
		return nil, err
	}

	file, err := d.Fs.Create(path)
	if err != nil {
		return nil, err
	}

	return NewLimitedFileSize(file, func(nbytes int64) error { return d.changeFSUsage(d.storageID, nbytes) }), nil
}

func (d *LocalStorageFS) Open(path string) (afero.File, error) {
	return d.Fs.Open(path)
}

func (d *LocalStorageFS) Exists(path string) (bool, error) {
	return afero.Exists(d.Fs, path)
}

func (d *LocalStorageFS) Size(path string) (int64, error) {
	info, err := d.Stat(path)
	if err != nil {
		return 0, err
	}

	return info.Size(), err
}

// RealPath resolves a sandbox path to the host filesystem path, so the
// scan engine subprocess can be pointed at the file.
func (d *LocalStorageFS) RealPath(path string) (string, error) {
	return d.base.RealPath(path)
}

func (d *LocalStorageFS) GetID() string {
	return d.storageID
}

func (d *LocalStorageFS) Destroy() error {
	return d.RemoveAll("")
}
