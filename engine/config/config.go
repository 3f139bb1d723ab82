// package config persists showcase preferences as a JSON file in the working
// directory. A missing or invalid file falls back to defaults without error.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the showcase config file, relative to the process working directory.
const PrefsPath = "config/showcase.json"

// Prefs holds the tunable showcase constants: window setup, the asset to
// load, master loop authoring values, sign interaction parameters, and
// camera framing. Persisted across runs.
type Prefs struct {
	WindowTitle  string `json:"window_title"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`

	// AssetPath is the single baked scene asset the showcase loads.
	AssetPath string `json:"asset_path"`

	// MasterFrames and MasterFPS define the master loop length:
	// duration = frames / fps.
	MasterFrames float32 `json:"master_frames"`
	MasterFPS    float32 `json:"master_fps"`

	SignMarker     string  `json:"sign_marker"`
	HoverScale     float32 `json:"hover_scale"`
	HoverSmoothing float32 `json:"hover_smoothing"`

	FlyToOffset [3]float32 `json:"flyto_offset"`
	FlyToSpeed  float32    `json:"flyto_speed"`

	TargetMinX float32 `json:"target_min_x"`
	TargetMaxX float32 `json:"target_max_x"`
	TargetMinY float32 `json:"target_min_y"`
	TargetMaxY float32 `json:"target_max_y"`
}

// Default returns the authored showcase preferences.
func Default() Prefs {
	return Prefs{
		WindowTitle:  "Vitrine",
		WindowWidth:  1280,
		WindowHeight: 720,

		AssetPath: "assets/showcase.glb",

		MasterFrames: 100,
		MasterFPS:    24,

		SignMarker:     "Sign",
		HoverScale:     1.2,
		HoverSmoothing: 0.15,

		FlyToOffset: [3]float32{0, 0.3, 1.5},
		FlyToSpeed:  2.0,

		TargetMinX: -0.6,
		TargetMaxX: 0.6,
		TargetMinY: 0.3,
		TargetMaxY: 1.0,
	}
}

// Load reads preferences from PrefsPath. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to PrefsPath, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(PrefsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
