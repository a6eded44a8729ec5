// Package material holds surface properties and the Phong shading model.
package material

import (
	gomath "math"

	"prism/pkg/color"
	"prism/pkg/math"
)

// Common refraction indices.
const (
	VacuumIndexOfRefraction = 1.0
	AirIndexOfRefraction    = 1.00029
	WaterIndexOfRefraction  = 1.333
	GlassIndexOfRefraction  = 1.52
)

// Material describes how a surface responds to light.
type Material struct {
	Ambient           float64
	Diffuse           float64
	Specular          float64
	Shininess         float64
	Reflectivity      float64
	Transparency      float64
	IndexOfRefraction float64
	Pattern           Pattern
}

// Default returns the standard matte white material.
func Default() Material {
	return Material{
		Ambient:           0.1,
		Diffuse:           0.9,
		Specular:          0.9,
		Shininess:         200.0,
		Reflectivity:      0.0,
		Transparency:      0.0,
		IndexOfRefraction: VacuumIndexOfRefraction,
		Pattern:           Solid{C: color.White},
	}
}

// Glass returns a fully transparent material with a glass-like refraction
// index.
func Glass() Material {
	m := Default()
	m.Transparency = 1.0
	m.IndexOfRefraction = 1.5
	return m
}

// Lighting computes the Phong contribution of a single light at a point on
// the surface. intensity is the light's shadow attenuation in [0, 1]: 0 in
// umbra, 1 fully lit, fractional under area-light penumbra. It scales the
// diffuse and specular terms; ambient is unaffected.
func (m Material) Lighting(objectInverse math.Matrix, lightPos math.Tuple, lightColor color.Color, point, eyev, normalv math.Tuple, intensity float64) color.Color {
	effective := ColorAtObject(m.Pattern, objectInverse, point).Blend(lightColor)

	// A light sitting exactly on the surface yields a null direction, which
	// Normalize passes through and the dot products zero out downstream.
	lightv := lightPos.Sub(point).Normalize()

	ambient := effective.Mul(m.Ambient)
	diffuse := color.Black
	specular := color.Black

	lightDotNormal := lightv.Dot(normalv)

	if math.Ge(lightDotNormal, 0) && intensity > 0 {
		diffuse = effective.Mul(m.Diffuse * lightDotNormal)

		reflectv := lightv.Neg().Reflect(normalv)
		reflectDotEye := reflectv.Dot(eyev)

		if reflectDotEye > 0 {
			factor := gomath.Pow(reflectDotEye, m.Shininess)
			specular = lightColor.Mul(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse.Add(specular).Mul(intensity))
}
