package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fishub/lookupload/internal/store"
	"github.com/fishub/lookupload/pkg/lookupload"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetLoadFlags restores flag defaults, clears the environment the CLI
// reads and moves into an empty working directory.
func resetLoadFlags(t *testing.T) string {
	t.Helper()

	loadFlags = defaultLoadFlags()
	listValues = false
	for _, fs := range []*pflag.FlagSet{loadCmd.Flags(), listCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	for _, env := range []string{
		lookupload.EnvCredentials,
		lookupload.EnvProject,
		lookupload.EnvEmulatorHost,
		lookupload.EnvNonInteractive,
	} {
		t.Setenv(env, "")
	}

	dir := t.TempDir()
	t.Chdir(dir)

	original := newConnectorFactory
	t.Cleanup(func() {
		newConnectorFactory = original
		loadCmd.SetOut(nil)
		listCmd.SetOut(nil)
	})
	return dir
}

// useMemoryStore routes runLoad to an in-memory writer.
func useMemoryStore(t *testing.T) *store.MemoryWriter {
	t.Helper()
	conn := store.NewMemoryConnector()
	newConnectorFactory = func(lookupload.Logger) lookupload.ConnectorFactory {
		return func(lookupload.LoadConfig) (lookupload.Connector, error) {
			return conn, nil
		}
	}
	return conn.Writer
}

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	loadCmd.SetOut(&buf)
	listCmd.SetOut(&buf)
	return &buf
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
