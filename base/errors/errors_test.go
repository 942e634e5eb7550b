// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog1(t *testing.T) {
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("twelve")))
	assert.NoError(t, Log(nil))
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { Must(New("boom")) })
	assert.NotPanics(t, func() { Must(nil) })
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
}

func TestJoinIs(t *testing.T) {
	base := New("base")
	err := Join(base, nil, New("other"))
	assert.True(t, Is(err, base))
	assert.Nil(t, Join(nil, nil))
}
