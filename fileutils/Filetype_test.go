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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasMediaExtension(t *testing.T) {
	table := []struct {
		key      string
		expected bool
	}{
		{key: "photo.jpg", expected: true},
		{key: "photo.JPEG", expected: true},
		{key: "nested/path/clip.mp4", expected: true},
		{key: "song.FLAC", expected: true},
		{key: "archive.zip", expected: false},
		{key: "binary.exe", expected: false},
		{key: "noextension", expected: false},
		{key: "trailingdot.", expected: false},
	}

	for _, v := range table {
		v := v
		t.Run(v.key, func(t *testing.T) {
			assert.Equal(t, v.expected, HasMediaExtension(v.key))
		})
	}
}

func TestGetType(t *testing.T) {
	table := []struct {
		name     string
		content  []byte
		expected Filetype
	}{
		{name: "png", content: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, expected: Multimedia},
		{name: "jpeg", content: []byte{0xFF, 0xD8, 0xFF, 0xE0}, expected: Multimedia},
		{name: "elf", content: []byte{0x7F, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00}, expected: Executable},
		{name: "eicar", content: []byte(`X5O!P%@AP[4\PZX54(P^)7CC)7}$EICAR-STANDARD-ANTIVIRUS-TEST-FILE!$H+H*`), expected: Executable},
		{name: "text", content: []byte("just some ordinary text"), expected: Uncompressed},
	}

	for _, v := range table {
		v := v
		t.Run(fmt.Sprintf("type_%s", v.name), func(t *testing.T) {
			filetype, err := GetType(bytes.NewReader(v.content))
			require.NoError(t, err)
			assert.Equal(t, v.expected, filetype)
		})
	}
}
