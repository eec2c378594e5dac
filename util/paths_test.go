// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/kittyd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	testData := []struct {
		directory string
		filePath  string
		expected  string
	}{
		{"/var/lib/kittyd", "kitty.leveldb", "/var/lib/kittyd/kitty.leveldb"},
		{"/var/lib/kittyd", "/tmp/kitty.leveldb", "/tmp/kitty.leveldb"},
		{"/var/lib/kittyd", "./log/../kitty.leveldb", "/var/lib/kittyd/kitty.leveldb"},
		{"/var/lib/kittyd/", "log", "/var/lib/kittyd/log"},
	}

	for i, item := range testData {
		actual := util.EnsureAbsolute(item.directory, item.filePath)
		if item.expected != actual {
			t.Errorf("%d: EnsureAbsolute(%q, %q) = %q  expected: %q", i, item.directory, item.filePath, actual, item.expected)
		}
	}
}
