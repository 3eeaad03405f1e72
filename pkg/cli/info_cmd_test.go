package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type infoTestCase struct {
	name             string
	args             []string
	expectedInStdout []string
	expectedErr      string
	description      string
}

func TestInfoCommand(t *testing.T) {
	tests := []infoTestCase{
		{
			name: "complete_cfg",
			args: []string{"info", "alpha"},
			expectedInStdout: []string{
				"/home/testuser/mods/alpha/itemV2.cfg",
				"title", "Alpha",
				"published_id", "number", "123456789",
				"tags", "list", "[ui, tools]",
				"bundleDir", "alpha_bundle",
				"itemPreview", "alpha.png",
			},
			description: "Lists every statement and the mapped keys",
		},
		{
			name:             "missing_mapped_keys",
			args:             []string{"info", "broken"},
			expectedInStdout: []string{"Broken", "(missing)"},
			description:      "Missing mapped keys are shown, not fatal",
		},
		{
			name:        "no_cfg",
			args:        []string{"info", "beta"},
			expectedErr: "itemV2.cfg",
			description: "A mod without a cfg fails",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(innerT *testing.T) {
			innerT.Parallel()
			sb := NewModderSandbox(innerT)

			res := NewProcess(innerT, false, tt.args...).Run(sb.Context(), sb.Runtime())

			if tt.expectedErr != "" {
				require.Error(innerT, res.Err, "expected error - %s", tt.description)
				stderr := string(res.Stderr)
				require.Contains(innerT, stderr, tt.expectedErr,
					"error message should contain %q, got stderr: %s", tt.expectedErr, stderr)
				return
			}
			require.NoError(innerT, res.Err, "info command should succeed - %s", tt.description)
			stdout := string(res.Stdout)
			for _, expected := range tt.expectedInStdout {
				require.Contains(innerT, stdout, expected,
					"expected output to contain %q, got:\n%s", expected, stdout)
			}
		})
	}
}
