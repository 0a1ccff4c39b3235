package silhouette

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		name       string
		pts        []Point
		minSegment float64
		want       []Point
	}{
		{
			name:       "empty path stays empty",
			pts:        nil,
			minSegment: 15,
			want:       nil,
		},
		{
			name:       "single point survives",
			pts:        []Point{{X: 4, Y: 4}},
			minSegment: 15,
			want:       []Point{{X: 4, Y: 4}},
		},
		{
			name:       "points under the minimum collapse onto the first",
			pts:        []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 14, Y: 0}},
			minSegment: 15,
			want:       []Point{{X: 0, Y: 0}},
		},
		{
			name:       "points past the minimum are kept",
			pts:        []Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}},
			minSegment: 15,
			want:       []Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}},
		},
		{
			name: "distance is measured from the last kept point",
			pts: []Point{
				{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 16, Y: 0}, {X: 26, Y: 0}, {X: 32, Y: 0},
			},
			minSegment: 15,
			want:       []Point{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 32, Y: 0}},
		},
		{
			name:       "exactly the minimum is dropped",
			pts:        []Point{{X: 0, Y: 0}, {X: 15, Y: 0}},
			minSegment: 15,
			want:       []Point{{X: 0, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := simplify(tt.pts, tt.minSegment)
			if len(got) > len(tt.pts) {
				t.Errorf("simplify() grew the path: %d points from %d", len(got), len(tt.pts))
			}
			if len(tt.pts) > 0 && got[0] != tt.pts[0] {
				t.Errorf("simplify()[0] = %v, want the original first point %v", got[0], tt.pts[0])
			}
			if len(got) != len(tt.want) {
				t.Fatalf("simplify() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("simplify()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSimplifyGridWalk(t *testing.T) {
	// A traced ring around a 64x64 sample grid, step 4.
	var pts []Point
	for y := 0.0; y <= 60; y += 4 {
		pts = append(pts, Point{X: 0, Y: y})
	}
	for x := 4.0; x <= 60; x += 4 {
		pts = append(pts, Point{X: x, Y: 60})
	}

	got := simplify(pts, 15)
	if len(got) > len(pts) {
		t.Errorf("simplify() grew the path: %d points from %d", len(got), len(pts))
	}
	if got[0] != pts[0] {
		t.Errorf("simplify()[0] = %v, want %v", got[0], pts[0])
	}
	// Kept points are strictly more than 15 apart along the walk.
	for i := 1; i < len(got); i++ {
		if d := got[i].Distance(got[i-1]); d <= 15 {
			t.Errorf("kept points %d and %d are only %v apart", i-1, i, d)
		}
	}
}
