package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfo_withBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name string
		in   Info
		want Info
	}{
		{
			name: "fills defaults",
			in:   Info{Version: "dev", GitCommit: "unknown", BuildDate: "unknown"},
			want: Info{Version: "v1.2.3", GitCommit: "abc123", BuildDate: "2026-01-02T03:04:05Z"},
		},
		{
			name: "ldflags win",
			in:   Info{Version: "v9.9.9", GitCommit: "fff", BuildDate: "today"},
			want: Info{Version: "v9.9.9", GitCommit: "fff", BuildDate: "today"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, tt.in.withBuildInfo(bi))
		})
	}
}

func TestInfo_withBuildInfoDevel(t *testing.T) {
	req := require.New(t)
	got := Info{Version: "dev"}.withBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	req.Equal("dev", got.Version)
}

func TestInfo_String(t *testing.T) {
	req := require.New(t)
	s := Info{Version: "v1.0.0", GitCommit: "abc", BuildDate: "now", GoVersion: "go1.24.0", Platform: "linux/amd64"}.String()

	req.True(strings.HasPrefix(s, "prettierconf version v1.0.0\n"))
	req.Contains(s, "Platform: linux/amd64")
}
