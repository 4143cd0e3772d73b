package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		full     bool
		detailed bool
		want     Mode
		wantErr  bool
	}{
		{name: "default quick", want: ModeQuick},
		{name: "detailed flag", detailed: true, want: ModeDetailed},
		{name: "full flag", full: true, want: ModeFull},
		{name: "full beats detailed", full: true, detailed: true, want: ModeFull},
		{name: "explicit mode beats flags", explicit: "quick", full: true, detailed: true, want: ModeQuick},
		{name: "explicit detailed", explicit: "detailed", want: ModeDetailed},
		{name: "unknown mode", explicit: "thorough", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMode(tt.explicit, tt.full, tt.detailed)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
