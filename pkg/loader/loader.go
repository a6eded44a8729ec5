// Package loader reads JSON scene descriptions and builds the camera and
// world they describe.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	gomath "math"
	"os"

	"prism/pkg/camera"
	"prism/pkg/color"
	"prism/pkg/geometry"
	"prism/pkg/material"
	"prism/pkg/math"
	"prism/pkg/world"
)

// Loader validation errors.
var (
	ErrEqualPositionAndLookingAt = errors.New("`position` and `looking_at` points must be different")
	ErrNullUpDirection           = errors.New("`up_direction` vector cannot be null")
)

// Scene is a fully built scene: the camera plus the world it looks at.
type Scene struct {
	Camera *camera.Camera
	World  *world.World
}

type sceneConfig struct {
	Camera cameraConfig `json:"camera"`
	World  worldConfig  `json:"world"`
}

type cameraConfig struct {
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	FieldOfView *float64   `json:"field_of_view"`
	Position    *vecConfig `json:"position"`
	LookingAt   *vecConfig `json:"looking_at"`
	UpDirection *vecConfig `json:"up_direction"`
}

type worldConfig struct {
	Objects []objectConfig `json:"objects"`
	Lights  []lightConfig  `json:"lights"`
}

type vecConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v vecConfig) point() math.Tuple  { return math.NewPoint(v.X, v.Y, v.Z) }
func (v vecConfig) vector() math.Tuple { return math.NewVector(v.X, v.Y, v.Z) }

type objectConfig struct {
	Type       string            `json:"type"`
	Material   *materialConfig   `json:"material"`
	Transforms []transformConfig `json:"transforms"`

	// Cylinder options.
	Minimum *float64 `json:"minimum"`
	Maximum *float64 `json:"maximum"`
	Closed  bool     `json:"closed"`
}

type materialConfig struct {
	Ambient           *float64       `json:"ambient"`
	Diffuse           *float64       `json:"diffuse"`
	Specular          *float64       `json:"specular"`
	Shininess         *float64       `json:"shininess"`
	Reflective        *float64       `json:"reflective"`
	Transparency      *float64       `json:"transparency"`
	IndexOfRefraction *float64       `json:"index_of_refraction"`
	Texture           *textureConfig `json:"texture"`
}

type textureConfig struct {
	Type string `json:"type"`

	// Solid color channels, 0..255.
	Red   *int `json:"red"`
	Green *int `json:"green"`
	Blue  *int `json:"blue"`

	// Two-color pattern fields.
	From       *rgbConfig        `json:"from"`
	To         *rgbConfig        `json:"to"`
	Transforms []transformConfig `json:"transforms"`
}

type rgbConfig struct {
	Red   *int `json:"red"`
	Green *int `json:"green"`
	Blue  *int `json:"blue"`
}

type transformConfig struct {
	Type string `json:"type"`

	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`

	Degrees *float64 `json:"degrees"`

	XY *float64 `json:"x_y"`
	XZ *float64 `json:"x_z"`
	YX *float64 `json:"y_x"`
	YZ *float64 `json:"y_z"`
	ZX *float64 `json:"z_x"`
	ZY *float64 `json:"z_y"`

	From *vecConfig `json:"from"`
	To   *vecConfig `json:"to"`
	Up   *vecConfig `json:"up"`
}

type lightConfig struct {
	Type      string     `json:"type"`
	Position  *vecConfig `json:"position"`
	Intensity *rgbConfig `json:"intensity"`

	// Area light fields.
	Corner *vecConfig `json:"corner"`
	UVec   *vecConfig `json:"u_vec"`
	USteps int        `json:"u_steps"`
	VVec   *vecConfig `json:"v_vec"`
	VSteps int        `json:"v_steps"`
}

// Load reads and builds a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds a scene from JSON bytes.
func Parse(data []byte) (*Scene, error) {
	var config sceneConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	cam, err := buildCamera(config.Camera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	w := &world.World{}

	for i, obj := range config.World.Objects {
		shape, err := buildObject(obj)
		if err != nil {
			return nil, fmt.Errorf("world.objects[%d]: %w", i, err)
		}
		w.Objects = append(w.Objects, shape)
	}

	for i, light := range config.World.Lights {
		built, err := buildLight(light)
		if err != nil {
			return nil, fmt.Errorf("world.lights[%d]: %w", i, err)
		}
		w.Lights = append(w.Lights, built)
	}

	return &Scene{Camera: cam, World: w}, nil
}

func buildCamera(config cameraConfig) (*camera.Camera, error) {
	if config.FieldOfView == nil {
		return nil, missingField("field_of_view")
	}
	if config.Position == nil {
		return nil, missingField("position")
	}

	lookingAt := vecConfig{}
	if config.LookingAt != nil {
		lookingAt = *config.LookingAt
	}
	upDirection := vecConfig{Y: 1}
	if config.UpDirection != nil {
		upDirection = *config.UpDirection
	}

	cam, err := camera.New(config.Width, config.Height, *config.FieldOfView*gomath.Pi/180)
	if err != nil {
		return nil, err
	}

	view, err := math.View(config.Position.point(), lookingAt.point(), upDirection.vector())
	switch {
	case errors.Is(err, math.ErrEqualViewPoints):
		return nil, ErrEqualPositionAndLookingAt
	case errors.Is(err, math.ErrNullUpVector):
		return nil, ErrNullUpDirection
	case err != nil:
		return nil, err
	}

	cam.SetTransform(view)
	return cam, nil
}

func buildObject(config objectConfig) (geometry.Shape, error) {
	m, err := buildMaterial(config.Material)
	if err != nil {
		return nil, err
	}

	transform, err := buildTransforms(config.Transforms)
	if err != nil {
		return nil, err
	}

	switch config.Type {
	case "sphere":
		return geometry.NewSphere(m, transform), nil
	case "plane":
		return geometry.NewPlane(m, transform), nil
	case "cube":
		return geometry.NewCube(m, transform), nil
	case "cylinder":
		minimum := gomath.Inf(-1)
		if config.Minimum != nil {
			minimum = *config.Minimum
		}
		maximum := gomath.Inf(1)
		if config.Maximum != nil {
			maximum = *config.Maximum
		}
		return geometry.NewCylinder(m, transform, minimum, maximum, config.Closed), nil
	case "":
		return nil, missingField("type")
	default:
		return nil, fmt.Errorf("unknown object type %q", config.Type)
	}
}

func buildMaterial(config *materialConfig) (material.Material, error) {
	m := material.Default()
	if config == nil {
		return m, nil
	}

	if config.Ambient != nil {
		m.Ambient = *config.Ambient
	}
	if config.Diffuse != nil {
		m.Diffuse = *config.Diffuse
	}
	if config.Specular != nil {
		m.Specular = *config.Specular
	}
	if config.Shininess != nil {
		m.Shininess = *config.Shininess
	}
	if config.Reflective != nil {
		m.Reflectivity = *config.Reflective
	}
	if config.Transparency != nil {
		m.Transparency = *config.Transparency
	}
	if config.IndexOfRefraction != nil {
		m.IndexOfRefraction = *config.IndexOfRefraction
	}

	if config.Texture != nil {
		pattern, err := buildTexture(*config.Texture)
		if err != nil {
			return m, err
		}
		m.Pattern = pattern
	}

	return m, nil
}

func buildTexture(config textureConfig) (material.Pattern, error) {
	switch config.Type {
	case "color":
		c, err := buildChannels(config.Red, config.Green, config.Blue)
		if err != nil {
			return nil, err
		}
		return material.Solid{C: c}, nil
	case "stripe", "gradient", "ring", "checker":
		if config.From == nil {
			return nil, missingField("from")
		}
		if config.To == nil {
			return nil, missingField("to")
		}

		from, err := buildChannels(config.From.Red, config.From.Green, config.From.Blue)
		if err != nil {
			return nil, err
		}
		to, err := buildChannels(config.To.Red, config.To.Green, config.To.Blue)
		if err != nil {
			return nil, err
		}
		if from.Equal(to) {
			return nil, fmt.Errorf("pattern %q has equal `from` and `to` colors", config.Type)
		}

		transform, err := buildTransforms(config.Transforms)
		if err != nil {
			return nil, err
		}

		switch config.Type {
		case "stripe":
			return material.NewStripe(from, to, transform), nil
		case "gradient":
			return material.NewGradient(from, to, transform), nil
		case "ring":
			return material.NewRing(from, to, transform), nil
		default:
			return material.NewChecker(from, to, transform), nil
		}
	case "":
		return nil, missingField("type")
	default:
		return nil, fmt.Errorf("unknown texture type %q", config.Type)
	}
}

func buildChannels(red, green, blue *int) (color.Color, error) {
	r, err := buildChannel("red", red)
	if err != nil {
		return color.Color{}, err
	}
	g, err := buildChannel("green", green)
	if err != nil {
		return color.Color{}, err
	}
	b, err := buildChannel("blue", blue)
	if err != nil {
		return color.Color{}, err
	}
	return color.Color{R: r, G: g, B: b}, nil
}

func buildChannel(name string, value *int) (float64, error) {
	if value == nil {
		return 0, missingField(name)
	}
	if *value < 0 || *value > 255 {
		return 0, fmt.Errorf("color channel %q must be between 0 and 255, got %d", name, *value)
	}
	return float64(*value) / 255.0, nil
}

// buildTransforms composes an ordered transform list. Entries apply in
// order, so the last listed transform acts last on the object.
func buildTransforms(configs []transformConfig) (math.Matrix, error) {
	result := math.Identity()

	for i, config := range configs {
		step, err := buildTransform(config)
		if err != nil {
			return math.Matrix{}, fmt.Errorf("transforms[%d]: %w", i, err)
		}
		result = step.Mul(result)
	}

	return result, nil
}

func buildTransform(config transformConfig) (math.Matrix, error) {
	xyz := func() (float64, float64, float64, error) {
		if config.X == nil {
			return 0, 0, 0, missingField("x")
		}
		if config.Y == nil {
			return 0, 0, 0, missingField("y")
		}
		if config.Z == nil {
			return 0, 0, 0, missingField("z")
		}
		return *config.X, *config.Y, *config.Z, nil
	}

	switch config.Type {
	case "translation":
		x, y, z, err := xyz()
		if err != nil {
			return math.Matrix{}, err
		}
		return math.Translation(x, y, z), nil
	case "scaling":
		x, y, z, err := xyz()
		if err != nil {
			return math.Matrix{}, err
		}
		return math.Scaling(x, y, z)
	case "rotation_x", "rotation_y", "rotation_z":
		if config.Degrees == nil {
			return math.Matrix{}, missingField("degrees")
		}
		radians := *config.Degrees * gomath.Pi / 180
		switch config.Type {
		case "rotation_x":
			return math.RotationX(radians), nil
		case "rotation_y":
			return math.RotationY(radians), nil
		default:
			return math.RotationZ(radians), nil
		}
	case "shearing":
		components := [6]*float64{config.XY, config.XZ, config.YX, config.YZ, config.ZX, config.ZY}
		names := [6]string{"x_y", "x_z", "y_x", "y_z", "z_x", "z_y"}

		var values [6]float64
		for i, c := range components {
			if c == nil {
				return math.Matrix{}, missingField(names[i])
			}
			values[i] = *c
		}
		return math.Shearing(values[0], values[1], values[2], values[3], values[4], values[5])
	case "view":
		if config.From == nil {
			return math.Matrix{}, missingField("from")
		}
		if config.To == nil {
			return math.Matrix{}, missingField("to")
		}
		up := vecConfig{Y: 1}
		if config.Up != nil {
			up = *config.Up
		}
		return math.View(config.From.point(), config.To.point(), up.vector())
	case "":
		return math.Matrix{}, missingField("type")
	default:
		return math.Matrix{}, fmt.Errorf("unknown transform type %q", config.Type)
	}
}

func buildLight(config lightConfig) (world.Light, error) {
	if config.Intensity == nil {
		return nil, missingField("intensity")
	}
	intensity, err := buildChannels(config.Intensity.Red, config.Intensity.Green, config.Intensity.Blue)
	if err != nil {
		return nil, err
	}

	switch config.Type {
	case "", "point":
		if config.Position == nil {
			return nil, missingField("position")
		}
		return world.PointLight{
			Position:  config.Position.point(),
			Intensity: intensity,
		}, nil
	case "area":
		if config.Corner == nil {
			return nil, missingField("corner")
		}
		if config.UVec == nil {
			return nil, missingField("u_vec")
		}
		if config.VVec == nil {
			return nil, missingField("v_vec")
		}
		if config.USteps < 1 || config.VSteps < 1 {
			return nil, fmt.Errorf("area light cell counts must be positive, got %dx%d", config.USteps, config.VSteps)
		}
		return world.NewAreaLight(
			config.Corner.point(),
			config.UVec.vector(), config.USteps,
			config.VVec.vector(), config.VSteps,
			intensity, nil), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", config.Type)
	}
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
