package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"vecmath/internal/postprocess"
	"vecmath/internal/raster"
	"vecmath/internal/scene"
	"vecmath/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Width       int
	Height      int
	Supersample int
	Workers     int
	Quiet       bool // suppress the progress ticker
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Name    string
	Source  string
	Image   string // output path relative to OutputDir
	Objects int
	Sprites int
	Success bool
	Error   string
}

// Run renders all scene files using a worker pool. Results are returned in
// the order of paths.
func Run(cfg Config, paths []string) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if !cfg.Quiet {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	outputs := &claims{owner: make(map[string]string)}
	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processScene(cfg, outputs, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// claims records which scene file owns each output name.
type claims struct {
	mu    sync.Mutex
	owner map[string]string
}

// claim reserves name for source, or returns the source that holds it.
func (c *claims) claim(name, source string) (string, bool) {
	key := strings.ToLower(name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, taken := c.owner[key]; taken {
		return prev, false
	}
	c.owner[key] = source
	return source, true
}

// outputName returns the scene name if it is usable as a file name inside
// the output directory, and the scene file's stem otherwise.
func outputName(name, path string) string {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\:`) {
		return stem(path)
	}
	return name
}

func processScene(cfg Config, outputs *claims, path string) Result {
	res := Result{Source: path}

	sc, err := scene.Load(path)
	if err != nil {
		res.Name = stem(path)
		res.Error = err.Error()
		return res
	}
	res.Name = sc.Name
	res.Objects = len(sc.Objects)
	res.Sprites = len(sc.Sprites)

	img := raster.RenderScene(sc, cfg.TexResolver, cfg.Width, cfg.Height, cfg.Supersample)

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	res.Image = outputName(sc.Name, path) + ".webp"
	if owner, ok := outputs.claim(res.Image, path); !ok {
		res.Error = fmt.Sprintf("output %s already written by %s", res.Image, owner)
		return res
	}
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}

// FindScenes returns the .json scene files directly under dir, sorted by name.
func FindScenes(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", dir, err)
	}
	return matches, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
