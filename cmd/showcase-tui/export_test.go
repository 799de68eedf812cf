// ABOUTME: Tests for the export subcommand
// ABOUTME: Covers the verbatim file write and refusal propagation

package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exportEnv points config discovery at an absent file so defaults apply, and
// swaps the flag globals for the test's server and output path.
func exportEnv(t *testing.T, serverURL, outPath, initData string) {
	t.Helper()
	t.Setenv("SHOWCASE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("SHOWCASE_INIT_DATA", initData)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	oldServer, oldOut := flagServer, flagExportOut
	flagServer, flagExportOut = serverURL, outPath
	t.Cleanup(func() { flagServer, flagExportOut = oldServer, oldOut })

	// runExport is called directly, bypassing Execute, so cmd.Context()
	// would be nil without this.
	exportCmd.SetContext(context.Background())
}

func TestRunExport_WritesBytesVerbatim(t *testing.T) {
	csv := "id,status\n1,new\n2,done\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/export/leads.csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, csv)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "leads.csv")
	exportEnv(t, srv.URL, out, "tok")

	require.NoError(t, runExport(exportCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte(csv), data, "file contents must match the response bytes exactly")
}

func TestRunExport_RefusalSurfacesBodyAndWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, "not an admin")
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "leads.csv")
	exportEnv(t, srv.URL, out, "")

	err := runExport(exportCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an admin")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no file is written on a failed export")
}
