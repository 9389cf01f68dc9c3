// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analysis

import "strings"

// Window returns the trimmed text surrounding the span [start, end),
// extended by size characters on each side and clamped to the text bounds.
func Window(text string, start, end, size int) string {
	from := start - size
	if from < 0 {
		from = 0
	}
	to := end + size
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}

// Clip truncates s to at most n characters.
func Clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
