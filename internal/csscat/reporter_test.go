package csscat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluralizeCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 files"},
		{1, "1 file"},
		{2, "2 files"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pluralizeCount(tt.count, "file", "files"))
	}
}

func TestShouldUseColors(t *testing.T) {
	var buf bytes.Buffer

	t.Run("forced", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.True(t, shouldUseColors(&buf, true))
	})

	t.Run("NO_COLOR wins over FORCE_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("FORCE_COLOR", "1")
		assert.False(t, shouldUseColors(&buf, false))
	})

	t.Run("FORCE_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("FORCE_COLOR", "1")
		assert.True(t, shouldUseColors(&buf, false))
	})

	t.Run("non-terminal writer", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("FORCE_COLOR", "")
		assert.False(t, shouldUseColors(&buf, false))
	})
}

func TestPrintSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		report *Report
		want   string
	}{
		{
			name:   "not available",
			report: &Report{Result: &AggregationResult{}},
			want:   "Not available.\n",
		},
		{
			name: "single file denied",
			report: &Report{
				Result:  &AggregationResult{FileCount: 1, IncludedFiles: []string{"a.css"}, ByteLength: 1},
				Outcome: WriteDenied,
			},
			want: "1 files\n1 bytes\nWrite permission denied.\n",
		},
		{
			name: "failed write",
			report: &Report{
				Result:  &AggregationResult{FileCount: 3, ByteLength: 0},
				Outcome: WriteFailed,
			},
			want: "3 files\n0 bytes\nWrite operation failed.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false).PrintSummary(tt.report)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerboseReporter_SkippedCountsUnnamedCandidates(t *testing.T) {
	report := &Report{
		Result: &AggregationResult{
			FileCount:     5,
			IncludedFiles: []string{"layout.css"},
			Skipped: []Rejection{
				{Name: "theme-dnp.css", Reason: SkipDNP},
				{Name: "empty.css", Reason: SkipTrivial, Length: 2},
			},
		},
	}

	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintSkipped(report)

	out := buf.String()
	assert.Contains(t, out, "• theme-dnp.css: do-not-process\n")
	assert.Contains(t, out, "• empty.css: trivial (2 bytes)\n")
	assert.Contains(t, out, "(2 unnamed)")
}

func TestVerboseReporter_DeniedHidesOutputPath(t *testing.T) {
	report := &Report{
		RunID:      "run-1",
		BaseDir:    "/srv/site",
		SelfMode:   true,
		Target:     TargetMedium,
		Result:     &AggregationResult{FileCount: 1},
		Outcome:    WriteDenied,
		OutputPath: "/srv/site/style.med.css",
	}

	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintDetails(report)

	out := buf.String()
	assert.Contains(t, out, "Directory:  /srv/site (self)")
	assert.Contains(t, out, "Target:     style.med.css")
	assert.NotContains(t, out, "Output:")
}

func TestVerboseReporter_Minification(t *testing.T) {
	report := &Report{
		Engine:   EngineYUI,
		Result:   &AggregationResult{FileCount: 1, ByteLength: 200},
		Minified: make([]byte, 50),
	}

	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintMinification(report)

	out := buf.String()
	assert.Contains(t, out, "Engine:     yui")
	assert.Contains(t, out, "Size:       200 -> 50 bytes")
	assert.Contains(t, out, "75.0% saved")
}

func TestPrintProgressBar(t *testing.T) {
	var buf bytes.Buffer
	printProgressBar(&buf, 50)
	require.Equal(t, "[██████████░░░░░░░░░░] 50.0% saved\n", buf.String())

	buf.Reset()
	printProgressBar(&buf, 100)
	require.Equal(t, "[████████████████████] 100.0% saved\n", buf.String())
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "30 bytes", Paint(RoleCount, "30 bytes", false))
	assert.Equal(t, "plain", Paint(RolePlain, "plain", true))
	assert.Contains(t, Paint(RoleFailed, "Write operation failed.", true), "Write operation failed.")
}

func TestOutcomeRole(t *testing.T) {
	tests := []struct {
		outcome WriteOutcome
		want    Role
	}{
		{WriteSucceeded, RoleSucceeded},
		{WriteFailed, RoleFailed},
		{WriteDenied, RoleNotice},
		{WriteNotRequested, RolePlain},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome)+"_", func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeRole(tt.outcome))
		})
	}
}
