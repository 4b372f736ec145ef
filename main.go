package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/nfnt/resize"

	"github.com/macroing/go-geometry-kernel/pkg/core"
	"github.com/macroing/go-geometry-kernel/pkg/geometry"
)

// supersample is the resolution multiplier before the bilinear downscale
const supersample = 2

type sceneObject struct {
	shape  geometry.Shape
	albedo core.Vec3
	// checker switches the albedo by texture coordinates
	checker bool
}

type demoScene struct {
	objects  []sceneObject
	light    *geometry.Sphere
	emission core.Vec3
}

func main() {
	out := flag.String("out", "render.png", "Output PNG path")
	width := flag.Int("width", 400, "Image width")
	height := flag.Int("height", 225, "Image height")
	samples := flag.Int("samples", 16, "Light samples per pixel")
	objPath := flag.String("obj", "", "Optional OBJ mesh to add to the scene")
	flag.Parse()

	var logger core.Logger = log.New(os.Stdout, "", log.LstdFlags)

	scene, err := buildScene(*objPath)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("rendering %dx%d with %d samples per pixel", *width, *height, *samples)
	startTime := time.Now()
	img := renderImage(scene, *width, *height, *samples, logger)
	logger.Printf("render finished in %v", time.Since(startTime))

	file, err := os.Create(*out)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("saved %s", *out)
}

// buildScene assembles the fixed demo scene: a checkered ground box, a sphere,
// a small box, a spherical area light and an optional OBJ mesh.
func buildScene(objPath string) (*demoScene, error) {
	scene := &demoScene{
		objects: []sceneObject{
			{
				shape:   geometry.NewAxisAlignedBox(core.NewVec3(-20, -2, -20), core.NewVec3(20, 0, 20)),
				albedo:  core.NewVec3(0.75, 0.75, 0.75),
				checker: true,
			},
			{
				shape:  geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0),
				albedo: core.NewVec3(0.8, 0.25, 0.2),
			},
			{
				shape:  geometry.NewAxisAlignedBox(core.NewVec3(1.8, 0, -1.4), core.NewVec3(3.0, 1.4, -0.2)),
				albedo: core.NewVec3(0.25, 0.45, 0.8),
			},
		},
		light:    geometry.NewSphere(core.NewVec3(-2.5, 4.5, 2.0), 0.8),
		emission: core.NewVec3(18, 17, 15),
	}

	if objPath != "" {
		triangles, err := geometry.LoadOBJ(objPath)
		if err != nil {
			return nil, err
		}
		for _, triangle := range triangles {
			scene.objects = append(scene.objects, sceneObject{
				shape:  triangle,
				albedo: core.NewVec3(0.7, 0.65, 0.5),
			})
		}
	}

	return scene, nil
}

// renderImage renders the scene at a supersampled resolution and downscales
// the result to the requested size
func renderImage(scene *demoScene, width, height, samples int, logger core.Logger) image.Image {
	bigW, bigH := width*supersample, height*supersample
	img := image.NewRGBA(image.Rect(0, 0, bigW, bigH))

	cameraOrigin := core.NewVec3(0, 2.0, 7.0)
	forward := core.NewVec3(0, 1, 0).Subtract(cameraOrigin).Normalize()
	basis := core.NewOrthonormalBasisWV(forward, core.NewVec3(0, 1, 0))

	fov := 40.0 * math.Pi / 180.0
	tanFov := math.Tan(fov / 2)
	aspect := float64(bigW) / float64(bigH)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for py := 0; py < bigH; py++ {
		for px := 0; px < bigW; px++ {
			var pixel core.Vec3
			for s := 0; s < samples; s++ {
				jitter := sampler.Get2D()
				sx := (2*((float64(px)+jitter.X)/float64(bigW)) - 1) * tanFov * aspect
				sy := (1 - 2*((float64(py)+jitter.Y)/float64(bigH))) * tanFov

				// the basis U axis points left for this view, negate
				// to keep screen x increasing to the right
				direction := basis.Transform(core.NewVec3(-sx, sy, 1)).Normalize()
				ray := core.NewRay(cameraOrigin, direction)

				pixel = pixel.Add(shade(scene, ray, sampler))
			}
			pixel = pixel.Multiply(1.0 / float64(samples)).Clamp(0, 1).GammaCorrect(2.0)

			img.Set(px, py, color.RGBA{
				R: uint8(pixel.X * 255),
				G: uint8(pixel.Y * 255),
				B: uint8(pixel.Z * 255),
				A: 255,
			})
		}
		if logger != nil && py%(bigH/4+1) == 0 {
			logger.Printf("scanline %d/%d", py, bigH)
		}
	}

	return resize.Resize(uint(width), uint(height), img, resize.Bilinear)
}

// shade estimates direct lighting at the nearest hit with one area-light
// sample per call
func shade(scene *demoScene, ray core.Ray, sampler core.Sampler) core.Vec3 {
	object, t := nearestHit(scene, ray)
	if object == nil {
		if lightT := scene.light.IntersectionT(ray); !math.IsNaN(lightT) {
			return scene.emission
		}
		return sky(ray)
	}

	if lightT := scene.light.IntersectionT(ray); !math.IsNaN(lightT) && lightT < t {
		return scene.emission
	}

	isect := geometry.NewIntersection(object.shape, ray, t)
	point := isect.Point()
	normal := isect.SurfaceNormal()

	albedo := object.albedo
	if object.checker {
		uv := isect.TextureCoordinates()
		if (int(uv.X*16)+int(uv.Y*16))%2 == 0 {
			albedo = albedo.Multiply(0.35)
		}
	}

	// constant ambient so unlit faces stay readable
	result := albedo.MultiplyVec(sky(ray)).Multiply(0.08)

	lightSample, ok := scene.light.Sample(point, normal, sampler.Get2D())
	if !ok || lightSample.PDF <= 0 {
		return result
	}

	toLight := lightSample.Point.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Normalize()

	cosTheta := normal.Dot(direction)
	if cosTheta <= 0 {
		return result
	}

	if occluded(scene, core.NewRay(point, direction), distance) {
		return result
	}

	// Lambertian BRDF albedo/π, divided by the solid-angle PDF
	brdf := albedo.Multiply(1.0 / math.Pi)
	direct := scene.emission.MultiplyVec(brdf).Multiply(cosTheta / lightSample.PDF)
	return result.Add(direct)
}

func nearestHit(scene *demoScene, ray core.Ray) (*sceneObject, float64) {
	var nearest *sceneObject
	nearestT := math.Inf(1)

	for i := range scene.objects {
		t := scene.objects[i].shape.IntersectionT(ray)
		if !math.IsNaN(t) && t < nearestT {
			nearestT = t
			nearest = &scene.objects[i]
		}
	}
	return nearest, nearestT
}

func occluded(scene *demoScene, shadowRay core.Ray, distance float64) bool {
	for i := range scene.objects {
		t := scene.objects[i].shape.IntersectionT(shadowRay)
		if !math.IsNaN(t) && t < distance-1e-3 {
			return true
		}
	}
	return false
}

func sky(ray core.Ray) core.Vec3 {
	t := core.Saturate(0.5 * (ray.Direction.Normalize().Y + 1))
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return core.NewVec3(
		core.Lerp(white.X, blue.X, t),
		core.Lerp(white.Y, blue.Y, t),
		core.Lerp(white.Z, blue.Z, t),
	)
}
