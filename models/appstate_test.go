package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppStateDefaults(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, DefaultProfile(), s.Profile)
	assert.Equal(t, ToolAnalyzer, s.Tool)
	assert.Equal(t, ViewApp, s.View)
	assert.Nil(t, s.Report)
}

func TestSettersDoNotMutateReceiver(t *testing.T) {
	base := NewAppState()

	next := base.WithTool(ToolSchemes).WithView(ViewFAQ).
		WithReport(&CIBILReport{Name: "cibil.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")})

	assert.Equal(t, ToolAnalyzer, base.Tool)
	assert.Equal(t, ViewApp, base.View)
	assert.Nil(t, base.Report)

	assert.Equal(t, ToolSchemes, next.Tool)
	assert.Equal(t, ViewFAQ, next.View)
	assert.Equal(t, 4, next.Report.Size())
	assert.Nil(t, next.WithoutReport().Report)
}

func TestAnalysisLifecycle(t *testing.T) {
	result := &LoanAnalysisResult{LoanFitScore: 40}
	s := NewAppState().WithAnalysis(result)

	// a validation failure keeps the previous result on screen
	invalid := s.WithAnalysisInput("", "Please paste your loan agreement text.")
	assert.Same(t, result, invalid.Analyzer.Result)
	assert.Equal(t, "Please paste your loan agreement text.", invalid.Analyzer.Error)

	pending := invalid.BeginAnalysis("Interest Rate: 28%")
	assert.True(t, pending.Analyzer.Pending)
	assert.Nil(t, pending.Analyzer.Result)
	assert.Empty(t, pending.Analyzer.Error)

	failed := pending.WithAnalysisError("boom")
	assert.False(t, failed.Analyzer.Pending)
	assert.Equal(t, "Interest Rate: 28%", failed.Analyzer.LoanText)
	assert.Equal(t, "boom", failed.Analyzer.Error)
}

func TestSchemesEmptyResultSurvivesRoundTrip(t *testing.T) {
	s := NewAppState().BeginSchemes("education", "50000").WithSchemes(nil)
	assert.True(t, s.Schemes.Checked())

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded AppState
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Schemes.Checked())
	assert.Empty(t, decoded.Schemes.Result)
	assert.False(t, NewAppState().Schemes.Checked())
}

func TestReportRoundTrip(t *testing.T) {
	s := NewAppState().WithReport(&CIBILReport{Name: "r.pdf", MIMEType: "application/pdf", Data: []byte{0, 1, 2, 255}})
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded AppState
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.Report)
	assert.Equal(t, []byte{0, 1, 2, 255}, decoded.Report.Data)
}

func TestCheckEnumerations(t *testing.T) {
	p := DefaultProfile()
	assert.NoError(t, p.CheckEnumerations())

	p.LoanAmount = -5
	assert.NoError(t, p.CheckEnumerations())

	p.CibilScore = "Stellar"
	assert.Error(t, p.CheckEnumerations())
}

func TestToolAndViewValid(t *testing.T) {
	assert.True(t, ToolDashboard.Valid())
	assert.False(t, Tool("chat").Valid())
	assert.True(t, ViewFAQ.Valid())
	assert.False(t, View("admin").Valid())
}
