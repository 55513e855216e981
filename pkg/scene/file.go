package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/spectral"
)

// File is the YAML form of a frozen scene description. Spectra are declared
// once and referenced by name from lights and objects, mirroring how
// several objects typically share one material spectrum.
type File struct {
	Spectra []SpectrumSpec `yaml:"spectra"`
	Camera  CameraSpec     `yaml:"camera"`
	Lights  []LightSpec    `yaml:"lights"`
	Objects []ObjectSpec   `yaml:"objects"`
}

// SpectrumSpec declares a named spectrum built from one of the presets.
// Reflective spectra are clamped to at most 1 so surfaces never amplify
// incoming light.
type SpectrumSpec struct {
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"` // solar, temperature, flat, band-red, band-green, band-blue, custom
	Factor      float32   `yaml:"factor"`
	Temperature float32   `yaml:"temperature"`
	Reflective  bool      `yaml:"reflective"`
	Samples     []float32 `yaml:"samples"`
}

// CameraSpec holds camera placement; missing fields fall back to the
// default camera.
type CameraSpec struct {
	Position []float32 `yaml:"position"`
	Forward  []float32 `yaml:"forward"`
	Up       []float32 `yaml:"up"`
	FOV      float32   `yaml:"fov"`
}

// LightSpec places a point light referencing a declared spectrum
type LightSpec struct {
	Name     string    `yaml:"name"`
	Position []float32 `yaml:"position"`
	Spectrum string    `yaml:"spectrum"`
}

// ObjectSpec places a shape referencing a declared spectrum
type ObjectSpec struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"` // box, sphere, rotated-box
	Position []float32 `yaml:"position"`
	Size     []float32 `yaml:"size"`
	Radius   float32   `yaml:"radius"`
	Rotation []float32 `yaml:"rotation"`
	Spectrum string    `yaml:"spectrum"`
	Metallic bool      `yaml:"metallic"`
}

// Load reads a YAML scene file and assembles the scene snapshot with all
// spectra sampled at the given count across the visible range.
func Load(path string, samples int) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading %s: %w", path, err)
	}
	return Parse(data, samples)
}

// Parse assembles a scene snapshot from YAML scene data
func Parse(data []byte, samples int) (*Scene, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("scene: parsing scene file: %w", err)
	}
	return file.Build(samples)
}

// Build converts the parsed file into a validated scene snapshot
func (f *File) Build(samples int) (*Scene, error) {
	spectra := make(map[string]spectral.Distribution, len(f.Spectra))
	for _, spec := range f.Spectra {
		d, err := spec.build(samples)
		if err != nil {
			return nil, err
		}
		spectra[spec.Name] = d
	}

	lookup := func(name, owner string) (spectral.Distribution, error) {
		d, ok := spectra[name]
		if !ok {
			return spectral.Distribution{}, fmt.Errorf("scene: %q references unknown spectrum %q", owner, name)
		}
		return d, nil
	}

	sc := &Scene{
		Camera:   f.Camera.build(),
		Template: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, samples, 0),
	}

	for _, light := range f.Lights {
		d, err := lookup(light.Spectrum, light.Name)
		if err != nil {
			return nil, err
		}
		sc.Lights = append(sc.Lights, Light{
			Name:     light.Name,
			Position: vec3From(light.Position),
			Spectrum: d,
		})
	}

	for _, object := range f.Objects {
		d, err := lookup(object.Spectrum, object.Name)
		if err != nil {
			return nil, err
		}
		shape, err := object.buildShape()
		if err != nil {
			return nil, err
		}
		sc.Primitives = append(sc.Primitives, Primitive{
			Name:     object.Name,
			Shape:    shape,
			Spectrum: d,
			Metallic: object.Metallic,
		})
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *SpectrumSpec) build(samples int) (spectral.Distribution, error) {
	lower, upper := spectral.VisibleLowerBound, spectral.VisibleUpperBound

	var d spectral.Distribution
	switch s.Type {
	case "solar":
		d = spectral.NewSolar(lower, upper, samples, s.Factor)
	case "temperature":
		if s.Temperature <= 0 {
			return d, fmt.Errorf("scene: spectrum %q needs a positive temperature, got %g", s.Name, s.Temperature)
		}
		d = spectral.NewBlackbody(lower, upper, s.Temperature, samples, s.Factor)
	case "flat":
		d = spectral.NewFlat(lower, upper, samples, s.Factor)
	case "band-red":
		d = spectral.NewBandRed(lower, upper, samples, s.Factor)
	case "band-green":
		d = spectral.NewBandGreen(lower, upper, samples, s.Factor)
	case "band-blue":
		d = spectral.NewBandBlue(lower, upper, samples, s.Factor)
	case "custom":
		if len(s.Samples) == 0 {
			return d, fmt.Errorf("scene: custom spectrum %q has no samples", s.Name)
		}
		d = spectral.NewFromSamples(lower, upper, s.Samples)
		d.Resample(samples)
	default:
		return d, fmt.Errorf("scene: spectrum %q has unknown type %q", s.Name, s.Type)
	}

	if s.Reflective {
		d.Min1()
	}
	return d, nil
}

func (c *CameraSpec) build() Camera {
	camera := DefaultCamera()
	if len(c.Position) == 3 {
		camera.Position = vec3From(c.Position)
	}
	if len(c.Forward) == 3 {
		camera.Forward = vec3From(c.Forward)
	}
	if len(c.Up) == 3 {
		camera.Up = vec3From(c.Up)
	}
	if c.FOV > 0 {
		camera.VerticalFOV = c.FOV
	}
	return camera
}

func (o *ObjectSpec) buildShape() (geometry.Shape, error) {
	switch o.Type {
	case "box":
		if len(o.Size) != 3 {
			return nil, fmt.Errorf("scene: box %q needs a size of three components", o.Name)
		}
		return geometry.NewBoxAt(vec3From(o.Position), vec3From(o.Size)), nil
	case "sphere":
		if o.Radius <= 0 {
			return nil, fmt.Errorf("scene: sphere %q needs a positive radius, got %g", o.Name, o.Radius)
		}
		return geometry.NewSphere(vec3From(o.Position), o.Radius), nil
	case "rotated-box":
		if len(o.Size) != 3 {
			return nil, fmt.Errorf("scene: rotated box %q needs a size of three components", o.Name)
		}
		rotation := geometry.Vec3{}
		if len(o.Rotation) == 3 {
			rotation = vec3From(o.Rotation)
		}
		return geometry.NewRotatedBox(vec3From(o.Position), vec3From(o.Size), rotation), nil
	default:
		return nil, fmt.Errorf("scene: object %q has unknown type %q", o.Name, o.Type)
	}
}

func vec3From(values []float32) geometry.Vec3 {
	if len(values) != 3 {
		return geometry.Vec3{}
	}
	return geometry.NewVec3(values[0], values[1], values[2])
}
