package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/school-data/deptreport/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestServiceRun(t *testing.T) {
	t.Run("renders a JSON document", func(t *testing.T) {
		path := writeTempFile(t, "dept.json", `{
			"School": "State University",
			"Department": "Computer Science",
			"Faculty": [{"name": "Ada Fernsby"}]
		}`)

		var out bytes.Buffer
		err := NewService(&out).Run(configs.Report{InputPath: path, Format: configs.FormatAuto})
		require.NoError(t, err)
		assert.Equal(t, "State University: Computer Science\n    Ada Fernsby\n        Teaches:\n", out.String())
	})

	t.Run("renders a YAML document by extension", func(t *testing.T) {
		path := writeTempFile(t, "dept.yaml", `
School: State University
Department: Computer Science
Faculty:
  - name: Ada Fernsby
    email: afernsby@stateu.edu
`)

		var out bytes.Buffer
		err := NewService(&out).Run(configs.Report{InputPath: path, Format: configs.FormatAuto})
		require.NoError(t, err)
		assert.Equal(t, "State University: Computer Science\n    Ada Fernsby\n        Email: afernsby@stateu.edu\n        Teaches:\n", out.String())
	})

	t.Run("forced format overrides extension", func(t *testing.T) {
		path := writeTempFile(t, "dept.txt", `School: S
Department: D
`)

		var out bytes.Buffer
		err := NewService(&out).Run(configs.Report{InputPath: path, Format: configs.FormatYAML})
		require.NoError(t, err)
		assert.Equal(t, "S: D\n", out.String())
	})

	t.Run("missing file is a ReadError naming the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nowhere.json")

		var out bytes.Buffer
		err := NewService(&out).Run(configs.Report{InputPath: path, Format: configs.FormatAuto})
		require.Error(t, err)

		var readErr *ReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, path, readErr.Path)
		assert.Contains(t, err.Error(), "Error reading "+path)
		assert.Empty(t, out.String())
	})

	t.Run("malformed JSON is a ParseError", func(t *testing.T) {
		path := writeTempFile(t, "broken.json", `{"School": "S",`)

		var out bytes.Buffer
		err := NewService(&out).Run(configs.Report{InputPath: path, Format: configs.FormatAuto})
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "JSON", parseErr.Format)
		assert.Contains(t, err.Error(), "Invalid JSON data")
		assert.Empty(t, out.String())
	})

	t.Run("missing Department is an ElementError with no output", func(t *testing.T) {
		path := writeTempFile(t, "dept.json", `{"School": "S"}`)

		var out bytes.Buffer
		err := NewService(&out).Run(configs.Report{InputPath: path, Format: configs.FormatAuto})
		require.Error(t, err)
		assert.Equal(t, "Error reading element 'Department'", err.Error())
		assert.Empty(t, out.String())
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := configs.Report{}
	applyDefaults(&cfg)

	assert.Equal(t, "compsci.json", cfg.InputPath)
	assert.Equal(t, configs.FormatAuto, cfg.Format)

	cfg = configs.Report{InputPath: "other.yaml", Format: configs.FormatYAML}
	applyDefaults(&cfg)

	assert.Equal(t, "other.yaml", cfg.InputPath)
	assert.Equal(t, configs.FormatYAML, cfg.Format)
}
