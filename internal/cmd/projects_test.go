package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
)

var testProjects = []domain.Project{
	{Name: "api", Path: "/src/api", SCMType: domain.SCMGit},
	{Name: "legacy", Path: "/src/legacy", SCMType: domain.SCMSvn},
}

func TestPrintProjectsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printProjectsTable(&buf, testProjects))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "/src/legacy")
	assert.Contains(t, out, "Total: 2 projects")
}

func TestPrintProjectsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printProjectsJSON(&buf, testProjects))

	var got []projectJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []projectJSON{
		{Name: "api", Path: "/src/api", SCM: "git"},
		{Name: "legacy", Path: "/src/legacy", SCM: "svn"},
	}, got)
}

func TestPrintProjectsJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printProjectsJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, parseKeyValues(" up, k ,"))
	assert.Empty(t, parseKeyValues(" , "))
}

func TestFormatExampleValue(t *testing.T) {
	assert.Equal(t, "vim", formatExampleValue("vim"))
	assert.Equal(t, "true", formatExampleValue(true))
	assert.Equal(t, "5", formatExampleValue(5))
	assert.Equal(t, `["a","b"]`, formatExampleValue([]string{"a", "b"}))
}
