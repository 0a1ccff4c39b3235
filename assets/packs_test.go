package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPackPieceID(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "png file",
			path: filepath.Join("pieces", "gem.png"),
			want: "pack/gem",
		},
		{
			name: "uppercase extension",
			path: filepath.Join("pieces", "GEM.PNG"),
			want: "pack/GEM",
		},
		{
			name: "not artwork",
			path: filepath.Join("pieces", "readme.txt"),
			want: "",
		},
		{
			name: "dotfile",
			path: filepath.Join("pieces", ".hidden"),
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packPieceID(tt.path); got != tt.want {
				t.Errorf("packPieceID(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadPackMissingDir(t *testing.T) {
	if n := LoadPack(filepath.Join(t.TempDir(), "nope")); n != 0 {
		t.Errorf("LoadPack() of missing dir = %d, want 0", n)
	}
}

func TestLoadPackRegistersArt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.png"), encodeTestPNG(t, 16, 16))
	writeFile(t, filepath.Join(dir, "bad.png"), []byte("definitely not a png"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignored"))
	defer Unregister("pack/good")
	defer Unregister("pack/bad")

	if n := LoadPack(dir); n != 2 {
		t.Errorf("LoadPack() = %d, want 2", n)
	}

	// Valid artwork decodes; corrupt artwork stays registered so the
	// shape cache can report it and fall back to a box.
	if _, err := Decode(context.Background(), "pack/good"); err != nil {
		t.Errorf("Decode(pack/good) error: %v", err)
	}
	if _, err := Decode(context.Background(), "pack/bad"); err == nil {
		t.Error("Decode(pack/bad) returned nil error for corrupt artwork")
	}
}

func TestSyncPackFileRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spinner.png")
	writeFile(t, path, encodeTestPNG(t, 12, 12))
	defer Unregister("pack/spinner")

	if id := syncPackFile(path); id != "pack/spinner" {
		t.Fatalf("syncPackFile() = %q, want %q", id, "pack/spinner")
	}
	if _, err := Decode(context.Background(), "pack/spinner"); err != nil {
		t.Fatalf("Decode() after sync error: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if id := syncPackFile(path); id != "pack/spinner" {
		t.Errorf("syncPackFile() after removal = %q, want %q", id, "pack/spinner")
	}
	if _, err := Decode(context.Background(), "pack/spinner"); err == nil {
		t.Error("Decode() after removal returned nil error")
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}
