package tracer

import (
	"github.com/happy737/spectral-raytracer/pkg/geometry"
	"github.com/happy737/spectral-raytracer/pkg/sampling"
	"github.com/happy737/spectral-raytracer/pkg/scene"
	"github.com/happy737/spectral-raytracer/pkg/spectral"
)

// surfaceOffset is how far shadow and bounce ray origins are pushed along
// the surface normal to avoid self-intersection.
const surfaceOffset float32 = 1e-5

// Tracer computes per-pixel radiance for one render. It only reads the
// scene snapshot, so a single instance may be shared across workers, or
// each worker may hold its own; both are safe.
type Tracer struct {
	scene       *scene.Scene
	camera      *Camera
	maxBounces  int
	totalFrames uint32
}

// New creates a tracer over an immutable scene snapshot
func New(sc *scene.Scene, camera *Camera, maxBounces, totalFrames int) *Tracer {
	return &Tracer{
		scene:       sc,
		camera:      camera,
		maxBounces:  maxBounces,
		totalFrames: uint32(totalFrames),
	}
}

// TracePixel computes the radiance spectrum arriving at one pixel for one
// frame. The sub-pixel position comes from the Hammersley point of the
// frame index, so the frames of a pixel sweep a low-discrepancy pattern;
// the bounce randomness is seeded purely from (x, y, frame) and therefore
// reproducible.
func (t *Tracer) TracePixel(x, y, frame int) spectral.Distribution {
	jitterX, jitterY := sampling.Hammersley(uint32(frame), t.totalFrames)
	ray := t.camera.GenerateRay(x, y, jitterX, jitterY)
	rng := sampling.NewSequence(uint32(x), uint32(y), uint32(frame))
	return t.trace(ray, t.maxBounces, rng)
}

// surfaceHit describes the nearest intersection of a ray with the scene
type surfaceHit struct {
	primitive *scene.Primitive
	distance  float32
	point     geometry.Vec3
	normal    geometry.Vec3
}

// nearestHit resolves the closest intersection in front of the ray origin.
// Primitives whose bounding box the ray misses are skipped; among the
// remaining positive-distance hits the minimum wins, ties going to the
// first primitive in scene order.
func (t *Tracer) nearestHit(ray geometry.Ray) (surfaceHit, bool) {
	var best surfaceHit
	found := false

	for i := range t.scene.Primitives {
		primitive := &t.scene.Primitives[i]
		if _, _, ok := primitive.Shape.BoundingBox().Intersect(ray); !ok {
			continue
		}

		distance, ok := primitive.Shape.Intersect(ray)
		if !ok || distance <= 0 {
			continue
		}
		if !found || distance < best.distance {
			point := ray.At(distance)
			best = surfaceHit{
				primitive: primitive,
				distance:  distance,
				point:     point,
				normal:    primitive.Shape.NormalAt(point),
			}
			found = true
		}
	}

	return best, found
}

// occluded reports whether anything blocks the ray before maxDistance.
// Shadow rays terminate on the first hit regardless of material and never
// invoke shading.
func (t *Tracer) occluded(ray geometry.Ray, maxDistance float32) bool {
	for i := range t.scene.Primitives {
		primitive := &t.scene.Primitives[i]
		if _, _, ok := primitive.Shape.BoundingBox().Intersect(ray); !ok {
			continue
		}
		if distance, ok := primitive.Shape.Intersect(ray); ok && distance > 0 && distance < maxDistance {
			return true
		}
	}
	return false
}

// trace returns the radiance spectrum carried back along the ray. Each
// recursion level decrements the bounce budget; a miss and an exhausted
// budget both terminate with the zero spectrum (there is no sky or
// background emission).
func (t *Tracer) trace(ray geometry.Ray, bounces int, rng *sampling.Sequence) spectral.Distribution {
	if bounces <= 0 {
		return spectral.NewZeroLike(&t.scene.Template)
	}

	hit, ok := t.nearestHit(ray)
	if !ok {
		return spectral.NewZeroLike(&t.scene.Template)
	}

	if hit.primitive.Metallic {
		return t.shadeMetallic(ray, hit, bounces, rng)
	}
	return t.shadeDiffuse(ray, hit, bounces, rng)
}

// shadeMetallic follows a single mirror-reflected continuation ray and
// filters its radiance through the surface spectrum. Metallic surfaces do
// not sample lights directly; with the budget exhausted the reflection
// contributes nothing and the surface goes black.
func (t *Tracer) shadeMetallic(ray geometry.Ray, hit surfaceHit, bounces int, rng *sampling.Sequence) spectral.Distribution {
	reflected := ray.Direction.Subtract(hit.normal.Multiply(2 * ray.Direction.Dot(hit.normal)))
	continuation := geometry.NewRay(hit.point.Add(hit.normal.Multiply(surfaceOffset)), reflected)

	radiance := t.trace(continuation, bounces-1, rng)
	radiance.Mul(&hit.primitive.Spectrum)
	return radiance
}

// shadeDiffuse gathers direct light from every light source plus one
// cosine-weighted indirect bounce, then filters the total through the
// surface spectrum.
func (t *Tracer) shadeDiffuse(ray geometry.Ray, hit surfaceHit, bounces int, rng *sampling.Sequence) spectral.Distribution {
	received := spectral.NewZeroLike(&t.scene.Template)
	origin := hit.point.Add(hit.normal.Multiply(surfaceOffset))

	// Direct illumination: one shadow ray per light. The inverse-square
	// attenuation is applied here and only here; bounced contributions
	// have already paid the square tax at their own hit points.
	for i := range t.scene.Lights {
		light := &t.scene.Lights[i]

		toLight := light.Position.Subtract(origin)
		distance := toLight.Length()
		if distance == 0 {
			continue
		}
		direction := toLight.Multiply(1 / distance)

		if t.occluded(geometry.NewRay(origin, direction), distance) {
			continue
		}

		cosIncoming := hit.normal.Dot(direction)
		if cosIncoming < 0 {
			cosIncoming = 0
		}
		cosOutgoing := hit.normal.Dot(ray.Direction.Negate())
		if cosOutgoing < 0 {
			cosOutgoing = 0
		}

		contribution := light.Spectrum
		contribution.Scale(cosIncoming * cosOutgoing / (distance * distance))
		received.Add(&contribution)
	}

	// Indirect illumination: a single cosine-weighted hemisphere sample.
	// The cosine term is implicit in the sampling density, so the returned
	// radiance is added without further weighting.
	if bounces > 1 {
		u1, u2 := rng.Next2()
		direction := sampling.CosineHemisphere(hit.normal, u1, u2)
		indirect := t.trace(geometry.NewRay(origin, direction), bounces-1, rng)
		indirect.Max0()
		received.Add(&indirect)
	}

	received.Mul(&hit.primitive.Spectrum)
	return received
}
