// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger for all packages.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// ConfigureForServer switches to JSON output for structured log collection.
func ConfigureForServer() {
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLevel adjusts the log level from a string such as "debug" or "warn".
// Unknown levels fall back to info.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		return
	}
	Log.SetLevel(parsed)
}

// SetVerbose enables debug logging.
func SetVerbose(verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
	}
}
