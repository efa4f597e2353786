// Command export writes all scenes, together with the computed
// intersections and rasterized segments, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/epiline"
	"seehuhn.de/go/epiline/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, sc))
		}
	}

	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Beam     [2][3]float64 `json:"beam"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Ends   [2][2]float64 `json:"ends"`
	Hits   [][]float64   `json:"hits,omitempty"` // one entry per beam line, null if missed
	InBeam bool          `json:"in_beam"`
	Pixels [][2]int      `json:"pixels"`
}

func toJSON(category string, sc testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   category + "_" + sc.Name,
		Width:  sc.Width,
		Height: sc.Height,
	}
	for i, l := range sc.Beam {
		js.Beam[i] = [3]float64{l.A, l.B, l.C}
	}

	for _, s := range sc.Segments {
		jseg := jsonSegment{
			Ends:   [2][2]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}},
			InBeam: epiline.IntersectsBeam(s, sc.Beam[0], sc.Beam[1]),
		}
		for _, l := range sc.Beam {
			var hit []float64
			if p, ok := epiline.IntersectSegmentLine(s, l); ok {
				hit = []float64{p.X, p.Y}
			}
			jseg.Hits = append(jseg.Hits, hit)
		}
		for _, p := range epiline.Rasterize(s) {
			jseg.Pixels = append(jseg.Pixels, [2]int{p.X, p.Y})
		}
		js.Segments = append(js.Segments, jseg)
	}
	return js
}
