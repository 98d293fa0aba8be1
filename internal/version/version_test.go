package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		date    string
		want    int
		wantErr bool
	}{
		{date: "2026-01-01", want: 0},
		{date: "2026-01-02", want: 1},
		{date: "2027-01-01", want: 365},
		{date: "2030-01-01", want: 1461},
		{date: "invalid", wantErr: true},
		{date: "", wantErr: true},
		{date: "2025-12-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := BuildIDFor(tt.date)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate, BuildCommit = "2026-01-11", "abc123"
	info := Info()
	assert.True(t, info.Calculated)
	assert.Equal(t, 10, info.BuildID)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.Go)
	assert.Equal(t, "creature-forge build 10 (2026-01-11) commit[abc123] branch[unknown] ci[local]", String())

	BuildDate = ""
	assert.False(t, Info().Calculated)
	assert.Contains(t, String(), "build unknown")
}
