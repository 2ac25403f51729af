package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForVulnerabilityStatus(t *testing.T) {
	open := VulnerabilityStatusOpen
	closed := VulnerabilityStatusClosed
	inProgress := VulnerabilityStatusInProgress
	notApplicable := VulnerabilityStatusNotApplicable

	assert.Equal(t, TestCaseStatusPassed, StatusForVulnerabilityStatus(&closed))
	assert.Equal(t, TestCaseStatusFailed, StatusForVulnerabilityStatus(&open))
	assert.Equal(t, TestCaseStatusNotStarted, StatusForVulnerabilityStatus(&inProgress))
	assert.Equal(t, TestCaseStatusNotStarted, StatusForVulnerabilityStatus(&notApplicable))
	assert.Equal(t, TestCaseStatusNotStarted, StatusForVulnerabilityStatus(nil))
}

func TestEffectiveSeverity(t *testing.T) {
	testCase := VaptTestCase{TestPlan: TestPlan{Severity: SeverityMedium}}
	assert.Equal(t, SeverityMedium, testCase.EffectiveSeverity())

	override := SeverityCritical
	testCase.Severity = &override
	assert.Equal(t, SeverityCritical, testCase.EffectiveSeverity())

	blank := Severity("")
	testCase.Severity = &blank
	assert.Equal(t, SeverityMedium, testCase.EffectiveSeverity())
}

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeverityHigh.Rank())
	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Greater(t, SeverityLow.Rank(), SeverityInformational.Rank())
}
