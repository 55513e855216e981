package tracer

import (
	"testing"

	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/scene"
	"github.com/happy737/spectral-raytracer/pkg/spectral"
)

// testScene builds a minimal scene: one sphere in front of the camera with
// a light at the camera position, so the visible hemisphere is fully lit.
func testScene(metallic bool) *scene.Scene {
	template := spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, 40, 0)

	return &scene.Scene{
		Primitives: []scene.Primitive{
			{
				Name:     "ball",
				Shape:    geometry.NewSphere(geometry.NewVec3(0, 0, 0), 0.5),
				Spectrum: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, 40, 0.8),
				Metallic: metallic,
			},
		},
		Lights: []scene.Light{
			{
				Name:     "lamp",
				Position: geometry.NewVec3(0, 0, -3),
				Spectrum: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, 40, 1),
			},
		},
		Camera: scene.Camera{
			Position:    geometry.NewVec3(0, 0, -3),
			Forward:     geometry.NewVec3(0, 0, 1),
			Up:          geometry.NewVec3(0, 1, 0),
			VerticalFOV: 60,
		},
		Template: template,
	}
}

func newTestTracer(t *testing.T, sc *scene.Scene, maxBounces int) *Tracer {
	t.Helper()
	camera, err := NewCamera(sc.Camera, 16, 16)
	if err != nil {
		t.Fatalf("Unexpected camera error: %v", err)
	}
	return New(sc, camera, maxBounces, 1)
}

func TestDiffuseSilhouette(t *testing.T) {
	tracer := newTestTracer(t, testScene(false), 1)

	// The center pixel looks straight at the lit sphere
	center := tracer.TracePixel(8, 8, 0)
	if center.Radiance() <= 0 {
		t.Error("Expected positive radiance on the lit sphere")
	}

	// The corner pixel looks past the sphere into empty space; with no sky
	// the result is the exact zero spectrum.
	corner := tracer.TracePixel(0, 0, 0)
	if corner.Radiance() != 0 {
		t.Errorf("Expected zero radiance outside the silhouette, got %g", corner.Radiance())
	}
	for i := 0; i < corner.Samples(); i++ {
		if corner.At(i) != 0 {
			t.Fatalf("Sample %d of a miss is not zero: %g", i, corner.At(i))
		}
	}
}

func TestMetallicSurfaceGoesBlackAtBounceBudget(t *testing.T) {
	// A mirror needs at least one more bounce to see anything. With the
	// budget at 1 the continuation ray gets budget 0 and returns the zero
	// spectrum, so the mirror renders black even with a light present.
	tracer := newTestTracer(t, testScene(true), 1)

	center := tracer.TracePixel(8, 8, 0)
	if center.Radiance() != 0 {
		t.Errorf("Expected zero radiance from a mirror at the bounce limit, got %g", center.Radiance())
	}
}

func TestMetallicSurfaceReflectsWithBudget(t *testing.T) {
	// Two spheres: a mirror in view and a lit diffuse sphere placed where
	// the mirror reflection lands. With two bounces the mirror must pick
	// up the diffuse sphere's radiance.
	sc := testScene(true)
	sc.Primitives = append(sc.Primitives, scene.Primitive{
		Name:     "backdrop",
		Shape:    geometry.NewSphere(geometry.NewVec3(0, 0, -6), 2),
		Spectrum: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, 40, 0.9),
	})

	blocked := newTestTracer(t, sc, 1).TracePixel(8, 8, 0)
	if blocked.Radiance() != 0 {
		t.Errorf("Expected zero radiance with one bounce, got %g", blocked.Radiance())
	}

	reflected := newTestTracer(t, sc, 2).TracePixel(8, 8, 0)
	if reflected.Radiance() <= 0 {
		t.Error("Expected the mirror to reflect the lit backdrop with two bounces")
	}
}

func TestShadowRayOcclusion(t *testing.T) {
	sc := testScene(false)
	control := newTestTracer(t, sc, 1).TracePixel(8, 8, 0)
	if control.Radiance() <= 0 {
		t.Fatal("Expected the unoccluded sphere to be lit")
	}

	// A plate between the light and the sphere kills all direct light;
	// with one bounce there is no indirect fallback.
	sc.Primitives = append(sc.Primitives, scene.Primitive{
		Name:     "plate",
		Shape:    geometry.NewBoxAt(geometry.NewVec3(0, 0, -1.5), geometry.NewVec3(3, 3, 0.1)),
		Spectrum: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, 40, 0.5),
	})

	// The camera now looks at the plate instead; check a point on the
	// sphere via a pixel only if the plate is moved out of view, so probe
	// the shadow directly with a tracer whose camera sits between plate
	// and sphere.
	probe := sc.Camera
	probe.Position = geometry.NewVec3(0, 0, -1.2)
	sc.Camera = probe

	shadowed := newTestTracer(t, sc, 1).TracePixel(8, 8, 0)
	if shadowed.Radiance() != 0 {
		t.Errorf("Expected zero radiance in full shadow, got %g", shadowed.Radiance())
	}
}

func TestIndirectBounceAddsRadiance(t *testing.T) {
	// The indirect term only adds non-negative radiance on top of the
	// direct lighting, so a deeper bounce budget can never darken the
	// image. With a large lit floor under the sphere the downward
	// hemisphere samples pick up bounced light, so summed over the image
	// the deeper budget must come out strictly brighter.
	sc := testScene(false)
	sc.Primitives = append(sc.Primitives, scene.Primitive{
		Name:     "floor",
		Shape:    geometry.NewBoxAt(geometry.NewVec3(0, -0.8, 0), geometry.NewVec3(6, 0.5, 6)),
		Spectrum: spectral.NewFlat(spectral.VisibleLowerBound, spectral.VisibleUpperBound, 40, 0.9),
	})
	sc.Lights[0].Position = geometry.NewVec3(0, 3, -2)
	sc.Lights[0].Spectrum.Scale(5)

	direct := newTestTracer(t, sc, 1)
	deep := newTestTracer(t, sc, 5)

	var directTotal, deepTotal float32
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			d := direct.TracePixel(x, y, 0)
			b := deep.TracePixel(x, y, 0)
			if b.Radiance() < d.Radiance() {
				t.Fatalf("Pixel (%d, %d): deeper budget darkened the pixel (%g < %g)", x, y, b.Radiance(), d.Radiance())
			}
			directTotal += d.Radiance()
			deepTotal += b.Radiance()
		}
	}
	if deepTotal <= directTotal {
		t.Error("Expected the indirect bounces to add radiance somewhere in the image")
	}
}

func TestTracePixelIsDeterministic(t *testing.T) {
	tracer := newTestTracer(t, testScene(false), 5)

	first := tracer.TracePixel(8, 8, 0)
	second := tracer.TracePixel(8, 8, 0)
	if first != second {
		t.Error("Identical pixel and frame produced different radiance")
	}

	// Different frames jitter differently
	otherFrame := New(tracer.scene, tracer.camera, 5, 4).TracePixel(8, 8, 3)
	if first == otherFrame {
		t.Error("Expected different frames to sample differently")
	}
}

func TestZeroBounceBudgetIsBlack(t *testing.T) {
	tracer := newTestTracer(t, testScene(false), 0)
	radiance := tracer.TracePixel(8, 8, 0)
	if radiance.Radiance() != 0 {
		t.Errorf("Expected zero radiance with no bounce budget, got %g", radiance.Radiance())
	}
}
