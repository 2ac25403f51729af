// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrReportExpired rejects mutations against a report whose assessment date
// lies more than six months in the past.
var ErrReportExpired = errors.New("report is expired")

// ErrInvalidContentType rejects evidence uploads with a disallowed MIME type.
var ErrInvalidContentType = errors.New("unsupported content type")

// GenerateValidationError aggregates every test case blocking report
// generation, not just the first one found.
type GenerateValidationError struct {
	// vulnerability names of test cases missing description or procedure
	MissingTestCases []string
}

func (e *GenerateValidationError) Error() string {
	return fmt.Sprintf("test cases missing description or test procedure: %s", strings.Join(e.MissingTestCases, ", "))
}
