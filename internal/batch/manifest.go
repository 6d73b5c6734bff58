package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Image   string `json:"image"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Objects int    `json:"objects"`
	Sprites int    `json:"sprites"`
}

// WriteManifest writes the successful results to path as indented JSON.
func WriteManifest(path string, cfg Config, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:    r.Name,
			Source:  r.Source,
			Image:   r.Image,
			Width:   cfg.Width,
			Height:  cfg.Height,
			Objects: r.Objects,
			Sprites: r.Sprites,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
