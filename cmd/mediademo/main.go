// Command mediademo evaluates a YAML scene of colors and geometries and
// prints color conversions and geometry query results.
//
// Usage:
//
//	mediademo -scene scene.yaml [-v]
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/media"
)

func main() {
	var (
		scenePath = flag.String("scene", "scene.yaml", "scene file")
		verbose   = flag.Bool("v", false, "log library debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		media.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scene, err := LoadScene(*scenePath)
	if err != nil {
		log.Fatalf("mediademo: %v", err)
	}
	if err := run(scene, os.Stdout); err != nil {
		log.Fatalf("mediademo: %v", err)
	}
}
