// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	cases := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"ERROR", logrus.ErrorLevel},
		{"  info  ", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}
	for _, tc := range cases {
		SetLevel(tc.level)
		if got := Log.GetLevel(); got != tc.want {
			t.Errorf("SetLevel(%q) left level %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestSetVerbose(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	Log.SetLevel(logrus.InfoLevel)
	SetVerbose(false)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("SetVerbose(false) should not change the level, got %v", Log.GetLevel())
	}

	SetVerbose(true)
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("SetVerbose(true) should enable debug, got %v", Log.GetLevel())
	}
}
