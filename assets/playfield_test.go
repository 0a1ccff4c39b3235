package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/stackdrop/config"
)

func TestLoadPlayfieldFromEmbeddedMap(t *testing.T) {
	pf := LoadPlayfield()

	if pf.Width != 640 || pf.Height != 800 {
		t.Errorf("playfield size = %gx%g, want 640x800", pf.Width, pf.Height)
	}
	wantFloor := Rect{X: 120, Y: 710, W: 400, H: 24}
	if pf.Floor != wantFloor {
		t.Errorf("Floor = %+v, want %+v", pf.Floor, wantFloor)
	}
	if pf.SpawnY != 90 {
		t.Errorf("SpawnY = %g, want 90", pf.SpawnY)
	}
	if pf.SwingMinX != 140 || pf.SwingMaxX != 500 {
		t.Errorf("swing span = [%g, %g], want [140, 500]", pf.SwingMinX, pf.SwingMaxX)
	}
	if pf.KillY != 920 {
		t.Errorf("KillY = %g, want 920", pf.KillY)
	}
	if pf.BackdropStyle != "night" {
		t.Errorf("BackdropStyle = %q, want %q", pf.BackdropStyle, "night")
	}
}

func TestParsePlayfieldMissingFile(t *testing.T) {
	if _, err := parsePlayfield(fstest.MapFS{}, "playfield.tmx"); err == nil {
		t.Error("parsePlayfield() of missing file returned nil error")
	}
}

func TestParsePlayfieldSparseMapKeepsDefaults(t *testing.T) {
	const sparse = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <objectgroup id="1" name="Geometry">
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{
		"playfield.tmx": &fstest.MapFile{Data: []byte(sparse)},
	}
	pf, err := parsePlayfield(fsys, "playfield.tmx")
	if err != nil {
		t.Fatalf("parsePlayfield() error: %v", err)
	}
	if pf.Width != 160 || pf.Height != 160 {
		t.Errorf("playfield size = %gx%g, want 160x160 from the map grid", pf.Width, pf.Height)
	}
	if pf.Floor.X != config.Playfield.FloorMinX || pf.Floor.Y != config.Playfield.FloorY {
		t.Errorf("Floor = %+v, want config defaults", pf.Floor)
	}
	if pf.SpawnY != config.Spawner.SpawnY {
		t.Errorf("SpawnY = %g, want default %g", pf.SpawnY, config.Spawner.SpawnY)
	}
}
