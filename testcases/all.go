package testcases

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scene{
	"beam":     beamScenes,
	"boundary": boundaryScenes,
	"steep":    steepScenes,
}
