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

package fileutils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

type Filetype int8

const (
	Uncompressed Filetype = iota + 1
	Executable
	Multimedia
)

const maxHeaderBuffer = 1024
const mimeApplicationType = "application"

//nolint:gochecknoglobals
var once sync.Once

// Extensions of media formats already validated by the upstream media
// pipeline. Matching objects skip the engine entirely.
//
//nolint:gochecknoglobals
var mediaExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".heic": {}, ".heif": {}, ".avif": {},
	".mp4": {}, ".mov": {}, ".webm": {}, ".m4v": {}, ".avi": {},
	".mp3": {}, ".m4a": {}, ".wav": {}, ".aac": {}, ".flac": {}, ".ogg": {},
}

func prefix(preffix []byte) func([]byte, uint32) bool {
	return func(raw []byte, limit uint32) bool {
		if limit < uint32(len(preffix)) {
			return false
		}

		return bytes.Equal(raw[:len(preffix)], preffix)
	}
}

func registerAdditionalTypes() {
	// Support for Eicar
	mimetype.Extend(prefix([]byte{0x58, 0x35, 0x4f, 0x21}), "application/x-eicar", "")
}

// HasMediaExtension reports whether the key carries one of the
// allow-listed media extensions, case-insensitive.
func HasMediaExtension(key string) bool {
	ext := strings.ToLower(filepath.Ext(key))
	_, ok := mediaExtensions[ext]

	return ok
}

func GetType(reader io.Reader) (Filetype, error) {
	once.Do(registerAdditionalTypes)
	return checkFiletype(reader)
}

func checkFiletype(reader io.Reader) (Filetype, error) {
	head := make([]byte, maxHeaderBuffer)
	_, err := reader.Read(head)

	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read header from file. Error: %w", err)
	}

	mtype := mimetype.Detect(head)
	identifiedType := strings.Split(mtype.String(), "/")

	switch {
	case isMultimedia(identifiedType):
		return Multimedia, nil
	case isBinaryApp(identifiedType):
		return Executable, nil
	default:
		return Uncompressed, nil
	}
}

func isBinaryApp(identifiedType []string) bool {
	return identifiedType[0] == mimeApplicationType &&
		(identifiedType[1] == "x-elf" ||
			identifiedType[1] == "vnd.microsoft.portable-executable" ||
			identifiedType[1] == "x-executable" ||
			identifiedType[1] == "x-sharedlib" ||
			identifiedType[1] == "x-mach-binary" ||
			identifiedType[1] == "x-eicar")
}

func isMultimedia(identifiedType []string) bool {
	return identifiedType[0] == "audio" ||
		identifiedType[0] == "video" ||
		identifiedType[0] == "image"
}
