package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"prism/pkg/color"
	"prism/pkg/loader"
	"prism/pkg/renderer"
)

// Game holds the Ebitengine state: the shared framebuffer that worker rows
// land in while the render runs.
type Game struct {
	width, height int

	mu  *sync.Mutex
	img *image.RGBA
}

// Update proceeds the game state; there is nothing to advance.
func (g *Game) Update() error {
	return nil
}

// Draw repaints the current framebuffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	screen.WritePixels(g.img.Pix)
}

// Layout returns the logical screen size, which matches the render.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

const sampleScene = `{
  "camera": {
    "width": 512,
    "height": 512,
    "field_of_view": 45,
    "position": {"x": 0, "y": 2, "z": -7}
  },
  "world": {
    "objects": [
      {
        "type": "sphere",
        "material": {"texture": {"type": "color", "red": 255, "green": 80, "blue": 80}},
        "transforms": [{"type": "translation", "x": 0, "y": 1, "z": 0}]
      },
      {
        "type": "plane",
        "material": {
          "texture": {
            "type": "checker",
            "from": {"red": 255, "green": 255, "blue": 255},
            "to": {"red": 40, "green": 40, "blue": 40}
          }
        }
      }
    ],
    "lights": [
      {
        "position": {"x": -10, "y": 10, "z": -10},
        "intensity": {"red": 255, "green": 255, "blue": 255}
      }
    ]
  }
}`

func main() {
	scenePath := flag.String("scene", "", "path to the scene JSON file")
	flag.Parse()

	if *scenePath == "" {
		fmt.Println("Error: Scene file not provided.")
		fmt.Println("Usage: view -scene=<path_to_scene.json>")
		fmt.Println("\nSample Scene JSON:")
		fmt.Println(sampleScene)
		os.Exit(1)
	}

	scene, err := loader.Load(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	width, height := scene.Camera.HSize, scene.Camera.VSize

	var mu sync.Mutex
	fb := image.NewRGBA(image.Rect(0, 0, width, height))

	rndr := renderer.New(scene.Camera, scene.World)
	rndr.OnRow = func(y int, row []color.Color) {
		mu.Lock()
		for x, pixel := range row {
			fb.SetRGBA(x, y, pixel.RGBA8())
		}
		mu.Unlock()
	}

	go func() {
		rndr.Render()
		fmt.Println("Render complete.")
	}()

	game := &Game{width: width, height: height, mu: &mu, img: fb}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Prism Live Preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Ebitengine error: %v", err)
	}
}
