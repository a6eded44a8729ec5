package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"sync/atomic"

	"prism/pkg/geometry"
	"prism/pkg/loader"
	"prism/pkg/material"
	"prism/pkg/models"
	"prism/pkg/renderer"
)

func main() {
	scenePath := flag.String("scene", "", "path to the scene JSON file")
	objPath := flag.String("obj", "", "optional Wavefront OBJ model merged into the world")
	gltfPath := flag.String("gltf", "", "optional glTF/GLB model merged into the world")
	outPath := flag.String("out", "render.png", "output image path")
	divide := flag.Int("divide", 8, "BVH subdivision threshold for model groups")
	progress := flag.Bool("progress", false, "print render progress")
	flag.Parse()

	if *scenePath == "" {
		fmt.Println("Error: Scene file not provided.")
		fmt.Println("Usage: trace -scene=<path_to_scene.json> [-obj=<model.obj>] [-out=<render.png>]")
		os.Exit(1)
	}

	scene, err := loader.Load(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if *objPath != "" {
		group, err := models.LoadOBJ(*objPath, material.Default())
		if err != nil {
			fmt.Printf("Error loading model: %v\n", err)
			os.Exit(1)
		}
		addModel(scene, group, *divide)
	}

	if *gltfPath != "" {
		group, err := models.LoadGLTF(*gltfPath, material.Default())
		if err != nil {
			fmt.Printf("Error loading model: %v\n", err)
			os.Exit(1)
		}
		addModel(scene, group, *divide)
	}

	rndr := renderer.New(scene.Camera, scene.World)

	if *progress {
		total := int64(scene.Camera.HSize * scene.Camera.VSize)
		var done atomic.Int64
		step := total / 100
		if step == 0 {
			step = 1
		}
		rndr.OnPixel = func() {
			n := done.Add(1)
			if n%step == 0 {
				fmt.Printf("\r%3d%%", n*100/total)
			}
		}
	}

	fmt.Println("Rendering...")
	canvas := rndr.Render()
	if *progress {
		fmt.Println()
	}

	fmt.Println("Render complete. Saving...")
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas.Image()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	fmt.Printf("Saved to %s\n", *outPath)
}

func addModel(scene *loader.Scene, group *geometry.Group, divide int) {
	group.Divide(divide)
	scene.World.Objects = append(scene.World.Objects, group)
}
