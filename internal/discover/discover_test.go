package discover_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/msglint/internal/config"
	"github.com/leapstack-labs/msglint/internal/discover"
	"github.com/leapstack-labs/msglint/pkg/dialect"

	_ "github.com/leapstack-labs/msglint/pkg/dialects/all"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"src/App.jsx",
		"src/App.test.jsx",
		"src/legacy.js",
		"src/util.ts",
		"src/Page.tsx",
		"src/server.mjs",
		"src/styles.css",
		"README.md",
		"node_modules/react/index.js",
		"web/node_modules/lib/index.jsx",
		"dist/bundle.min.js",
		"vendor/jquery.min.js",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0o600))
	}
	return root
}

func rels(files []discover.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Rel)
	}
	return out
}

func TestFiles(t *testing.T) {
	root := setupTree(t)

	tests := []struct {
		name  string
		paths []string
		opts  discover.Options
		want  []string
	}{
		{
			name: "default excludes",
			opts: discover.Options{Exclude: config.DefaultExcludeCopy()},
			want: []string{
				"src/App.jsx",
				"src/App.test.jsx",
				"src/Page.tsx",
				"src/legacy.js",
				"src/server.mjs",
				"src/util.ts",
			},
		},
		{
			name: "include narrows",
			opts: discover.Options{
				Include: []string{"**/*.{jsx,tsx}"},
				Exclude: config.DefaultExcludeCopy(),
			},
			want: []string{"src/App.jsx", "src/App.test.jsx", "src/Page.tsx"},
		},
		{
			name: "exclude tests",
			opts: discover.Options{
				Include: []string{"src/**"},
				Exclude: append(config.DefaultExcludeCopy(), "**/*.test.*"),
			},
			want: []string{"src/App.jsx", "src/Page.tsx", "src/legacy.js", "src/server.mjs", "src/util.ts"},
		},
		{
			name:  "explicit subdirectory",
			paths: []string{"src"},
			opts:  discover.Options{Include: []string{"**/*.ts"}},
			want:  []string{"src/util.ts"},
		},
		{
			name:  "explicit file skips include",
			paths: []string{"src/legacy.js"},
			opts:  discover.Options{Include: []string{"**/*.tsx"}},
			want:  []string{"src/legacy.js"},
		},
		{
			name:  "explicit excluded file",
			paths: []string{"node_modules/react/index.js"},
			opts:  discover.Options{Exclude: config.DefaultExcludeCopy()},
			want:  []string{},
		},
		{
			name:  "duplicates collapse",
			paths: []string{"src/App.jsx", "src", "./src/App.jsx"},
			opts:  discover.Options{Include: []string{"**/App.jsx"}},
			want:  []string{"src/App.jsx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(root)
			tt.opts.Root = root

			files, err := discover.Files(context.Background(), tt.paths, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rels(files))
		})
	}
}

func TestFiles_Dialects(t *testing.T) {
	root := setupTree(t)

	files, err := discover.Files(context.Background(), []string{filepath.Join(root, "src")}, discover.Options{Root: root})
	require.NoError(t, err)

	got := make(map[string]string)
	for _, f := range files {
		got[f.Rel] = f.Dialect.Name
	}
	assert.Equal(t, map[string]string{
		"src/App.jsx":      "jsx",
		"src/App.test.jsx": "jsx",
		"src/legacy.js":    "jsx",
		"src/server.mjs":   "jsx",
		"src/util.ts":      "ts",
		"src/Page.tsx":     "tsx",
	}, got)
}

func TestFiles_ForcedDialect(t *testing.T) {
	root := setupTree(t)

	files, err := discover.Files(context.Background(), nil, discover.Options{
		Root:    root,
		Include: []string{"src/*.ts", "src/*.md"},
		Dialect: "tsx",
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "tsx", files[0].Dialect.Name)

	_, err = discover.Files(context.Background(), nil, discover.Options{Root: root, Dialect: "coffee"})
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
}

func TestFiles_Errors(t *testing.T) {
	root := setupTree(t)
	ctx := context.Background()

	_, err := discover.Files(ctx, []string{filepath.Join(root, "README.md")}, discover.Options{Root: root})
	require.ErrorIs(t, err, discover.ErrUnsupportedFile)

	_, err = discover.Files(ctx, []string{filepath.Join(root, "missing")}, discover.Options{Root: root})
	require.Error(t, err)

	_, err = discover.Files(ctx, nil, discover.Options{Root: root, Exclude: []string{"src/[a-"}})
	require.ErrorIs(t, err, discover.ErrBadPattern)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = discover.Files(cancelled, nil, discover.Options{Root: root})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDirs(t *testing.T) {
	root := setupTree(t)
	opts := discover.Options{Root: root, Exclude: config.DefaultExcludeCopy()}

	dirs, err := discover.Dirs(context.Background(), nil, opts)
	require.NoError(t, err)

	var got []string
	for _, d := range dirs {
		rel, err := filepath.Rel(root, d)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{".", "src", "vendor", "web"}, got)

	dirs, err = discover.Dirs(context.Background(), []string{filepath.Join(root, "src", "App.jsx")}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src")}, dirs)
}

func TestExcluded(t *testing.T) {
	root := setupTree(t)
	opts := discover.Options{Root: root, Exclude: config.DefaultExcludeCopy()}

	assert.True(t, discover.Excluded(filepath.Join(root, "node_modules", "react", "index.js"), opts))
	assert.True(t, discover.Excluded(filepath.Join(root, "vendor", "jquery.min.js"), opts))
	assert.False(t, discover.Excluded(filepath.Join(root, "src", "App.jsx"), opts))
}
