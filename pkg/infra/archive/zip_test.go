package archive_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/infra/archive"
	"github.com/m-mizutani/fontinst/pkg/utils/ziptest"
)

func TestZip_Extract(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	archivePath := ziptest.Write(t, filepath.Join(dir, "fonts.zip"), map[string]string{
		"Arial.ttf":              "arial",
		"docs/readme.txt":        "hello",
		"a/b/c/Deep.otf":         "deep",
		"empty-dir/placeholder/": "",
	})

	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.Mkdir(dest, 0755))

	gt.NoError(t, archive.NewZip().Extract(ctx, archivePath, dest))

	content, err := os.ReadFile(filepath.Join(dest, "Arial.ttf"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("arial")

	content, err = os.ReadFile(filepath.Join(dest, "a", "b", "c", "Deep.otf"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("deep")

	info, err := os.Stat(filepath.Join(dest, "empty-dir", "placeholder"))
	gt.NoError(t, err)
	gt.True(t, info.IsDir())
}

func TestZip_Extract_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) string
	}{
		{
			name: "corrupt archive",
			setup: func(t *testing.T, dir string) string {
				return ziptest.WriteBytes(t, filepath.Join(dir, "bad.zip"), []byte("this is not valid zip data"))
			},
		},
		{
			name: "missing archive",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "missing.zip")
			},
		},
		{
			name: "path traversal entry",
			setup: func(t *testing.T, dir string) string {
				return ziptest.Write(t, filepath.Join(dir, "evil.zip"), map[string]string{
					"../escape.ttf": "evil",
				})
			},
		},
		{
			name: "encrypted entry",
			setup: func(t *testing.T, dir string) string {
				data := ziptest.BuildEntries(t, []ziptest.Entry{
					{Name: "Secret.ttf", Content: "secret", Encrypted: true},
				})
				return ziptest.WriteBytes(t, filepath.Join(dir, "locked.zip"), data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			archivePath := tt.setup(t, dir)
			dest := filepath.Join(dir, "out")
			gt.NoError(t, os.Mkdir(dest, 0755))

			err := archive.NewZip().Extract(context.Background(), archivePath, dest)
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, model.ErrTagExtraction))

			_, statErr := os.Stat(filepath.Join(dir, "escape.ttf"))
			gt.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestZip_Extract_Cancelled(t *testing.T) {
	dir := t.TempDir()
	archivePath := ziptest.Write(t, filepath.Join(dir, "fonts.zip"), map[string]string{"A.ttf": "a"})
	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.Mkdir(dest, 0755))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := archive.NewZip().Extract(ctx, archivePath, dest)
	gt.Error(t, err)
	gt.True(t, !goerr.HasTag(err, model.ErrTagExtraction))
}

func TestZip_Entries(t *testing.T) {
	dir := t.TempDir()
	archivePath := ziptest.Write(t, filepath.Join(dir, "fonts.zip"), map[string]string{
		"Arial.ttf":       "arial",
		"docs/readme.txt": "hello",
		"docs/":           "",
	})

	names, err := archive.NewZip().Entries(context.Background(), archivePath)
	gt.NoError(t, err)
	sort.Strings(names)

	if diff := cmp.Diff([]string{"Arial.ttf", "docs/readme.txt"}, names); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestCommand_Extract(t *testing.T) {
	if _, err := exec.LookPath(archive.DefaultUnzipBinary); err != nil {
		t.Skip("unzip not available in PATH")
	}

	ctx := context.Background()
	dir := t.TempDir()
	archivePath := ziptest.Write(t, filepath.Join(dir, "fonts.zip"), map[string]string{
		"nested/Font.ttf": "font",
	})
	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.Mkdir(dest, 0755))

	gt.NoError(t, archive.NewCommand().Extract(ctx, archivePath, dest))

	content, err := os.ReadFile(filepath.Join(dest, "nested", "Font.ttf"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("font")

	corrupt := ziptest.WriteBytes(t, filepath.Join(dir, "bad.zip"), []byte("garbage"))
	err = archive.NewCommand().Extract(ctx, corrupt, dest)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagExtraction))
}

func TestCommand_Extract_LeadingBytes(t *testing.T) {
	if _, err := exec.LookPath(archive.DefaultUnzipBinary); err != nil {
		t.Skip("unzip not available in PATH")
	}

	dir := t.TempDir()
	data := ziptest.Build(t, map[string]string{"Arial.ttf": "arial"})
	archivePath := ziptest.WriteBytes(t, filepath.Join(dir, "sfx.zip"), append([]byte("0123456789"), data...))
	dest := filepath.Join(dir, "out")
	gt.NoError(t, os.Mkdir(dest, 0755))

	// unzip exits 1 with a warning but extracts everything
	gt.NoError(t, archive.NewCommand().Extract(context.Background(), archivePath, dest))

	content, err := os.ReadFile(filepath.Join(dest, "Arial.ttf"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("arial")
}

func TestCommand_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	archivePath := ziptest.Write(t, filepath.Join(dir, "fonts.zip"), map[string]string{"A.ttf": "a"})

	d := archive.NewCommand(archive.WithBinary(filepath.Join(dir, "no-such-unzip")))
	err := d.Extract(context.Background(), archivePath, dir)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagExtraction))
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{kind: "native"},
		{kind: ""},
		{kind: "unzip"},
		{kind: "rar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("kind: "+tt.kind, func(t *testing.T) {
			d, err := archive.New(tt.kind)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, d).NotNil()
		})
	}
}
