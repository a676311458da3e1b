package reasons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeReasonsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reasons.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write reasons file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one per line",
			content: "sharks\nvolcanoes\npaperwork\n",
			want:    []string{"sharks", "volcanoes", "paperwork"},
		},
		{
			name:    "skips blanks and whitespace",
			content: "sharks\n\n   \n\tvolcanoes  \n",
			want:    []string{"sharks", "volcanoes"},
		},
		{
			name:    "skips comments",
			content: "# dangers of the deep\nsharks\n",
			want:    []string{"sharks"},
		},
		{
			name:    "skips exact duplicates",
			content: "sharks\nvolcanoes\nsharks\n",
			want:    []string{"sharks", "volcanoes"},
		},
		{
			name:    "skips near duplicates",
			content: "falling rocks\nfalling rock\nvolcanoes\n",
			want:    []string{"falling rocks", "volcanoes"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "no trailing newline",
			content: "sharks",
			want:    []string{"sharks"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeReasonsFile(t, tc.content)

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Load mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Load on missing file succeeded, wanted error")
	}
}

func TestFromFile(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		if diff := cmp.Diff(Default, FromFile("")); diff != "" {
			t.Errorf("FromFile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")
		if diff := cmp.Diff(Default, FromFile(path)); diff != "" {
			t.Errorf("FromFile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty file falls back to defaults", func(t *testing.T) {
		path := writeReasonsFile(t, "\n\n# only comments\n")
		if diff := cmp.Diff(Default, FromFile(path)); diff != "" {
			t.Errorf("FromFile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("file contents replace defaults", func(t *testing.T) {
		path := writeReasonsFile(t, "sharks\nvolcanoes\n")
		if diff := cmp.Diff([]string{"sharks", "volcanoes"}, FromFile(path)); diff != "" {
			t.Errorf("FromFile mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDefaultNotEmpty(t *testing.T) {
	if len(Default) == 0 {
		t.Fatal("default reason list is empty")
	}
}
