package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name        string
		patch       string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name: "mixed operations",
			patch: `{"operations": [
				{"op": "add", "target": "a", "plan": "log"},
				{"op": "add_named", "target": "a", "name": "n", "plan": "counter"},
				{"op": "remove_named", "target": "b", "name": "n"}
			]}`,
			wantContain: []string{"3 ops (add=1, add_named=1, remove_named=1) on 2 target(s)"},
		},
		{
			name:        "empty patch",
			patch:       `{"operations": []}`,
			wantContain: []string{"0 ops"},
		},
		{
			name:        "json output",
			patch:       `{"operations": [{"op": "add", "target": "a", "plan": "text_append"}]}`,
			wantJSON:    true,
			wantContain: []string{`"ops": 1`, `"add": 1`},
		},
		{
			name:    "malformed",
			patch:   `{"operations": [{"op": "add"`,
			wantErr: true,
		},
		{
			name:    "remove without name",
			patch:   `{"operations": [{"op": "remove_named", "target": "a"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			path := writePatch(t, "patch.json", []byte(tt.patch))
			output, err := captureOutput(t, func() error {
				return runValidate([]string{path})
			})

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestValidateCommand_MissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runValidate([]string{"does-not-exist.json"})
	})
	require.Error(t, err)
}
