package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSchemactl(t *testing.T) {
	t.Run("Should print the business record", func(t *testing.T) {
		out, err := execute(t, "business", "--compact")
		require.NoError(t, err)

		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &rec))
		assert.Equal(t, "LocalBusiness", rec["@type"])
		assert.Equal(t, "https://mycirclesofcare.com.au/#organization", rec["@id"])
	})

	t.Run("Should honour the site URL override", func(t *testing.T) {
		out, err := execute(t, "organization", "--compact", "--site-url", "https://staging.example.org/")
		require.NoError(t, err)
		assert.Contains(t, out, `"url":"https://staging.example.org"`)
	})

	t.Run("Should wrap records in script blocks", func(t *testing.T) {
		out, err := execute(t, "page", "/services/plan-management", "--html")
		require.NoError(t, err)
		assert.Equal(t, 4, strings.Count(out, `<script type="application/ld+json">`))
	})

	t.Run("Should list the records of a location page", func(t *testing.T) {
		out, err := execute(t, "page", "/locations/gosford", "--compact")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[2], "/locations/gosford#organization")
		assert.Contains(t, lines[3], `"@type":"BreadcrumbList"`)
	})

	t.Run("Should reject unknown services", func(t *testing.T) {
		_, err := execute(t, "service", "dog-walking")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown service "dog-walking"`)
	})

	t.Run("Should validate the embedded catalog", func(t *testing.T) {
		out, err := execute(t, "validate")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "ok: https://mycirclesofcare.com.au"))
	})
}
