package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadPayload(t *testing.T) {
	path := writeFile(t, `{
		"department_id": 1,
		"start_date": "2024-07-01",
		"end_date": "2024-12-31",
		"assignments": [{"gbs_group_id": 2, "leader_id": 5, "member_ids": [7, 8]}]
	}`)

	payload, err := readPayload(path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), payload.DepartmentID)
	require.Len(t, payload.Assignments, 1)
	assert.Equal(t, []uint{7, 8}, payload.Assignments[0].MemberIDs)

	req, err := payload.ToRequest()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", req.StartDate.Format("2006-01-02"))
}

func TestReadPayload_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":         `{`,
		"missing dept":     `{"start_date": "2024-07-01", "end_date": "2024-12-31"}`,
		"bad date":         `{"department_id": 1, "start_date": "07/01/2024", "end_date": "2024-12-31"}`,
		"group id missing": `{"department_id": 1, "start_date": "2024-07-01", "end_date": "2024-12-31", "assignments": [{"leader_id": 5}]}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := readPayload(writeFile(t, content))
			assert.Error(t, err)
		})
	}

	_, err := readPayload(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "reorganize", "user", "token"}, names)

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("memory"))
}
