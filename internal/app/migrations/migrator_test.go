package migrations

import (
	"testing"
	"testing/fstest"
)

func TestVersionOf(t *testing.T) {
	cases := map[string]string{
		"001_init.sql":            "001",
		"migrations/002_seed.sql": "002",
		"003.sql":                 "003.sql",
	}
	for in, want := range cases {
		if got := VersionOf(in); got != want {
			t.Fatalf("VersionOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSQLFilesSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"002_reviews.sql": {Data: []byte("SELECT 1;")},
		"001_init.sql":    {Data: []byte("SELECT 1;")},
		"README.md":       {Data: []byte("notes")},
		"old/000_x.sql":   {Data: []byte("SELECT 1;")},
	}
	files, err := SQLFiles(fsys)
	if err != nil {
		t.Fatalf("SQLFiles: %v", err)
	}
	if len(files) != 2 || files[0] != "001_init.sql" || files[1] != "002_reviews.sql" {
		t.Fatalf("unexpected files %v", files)
	}
}
