package mesh

import (
	gomath "math"

	"github.com/Faultbox/shapeview/pkg/math"
)

// Cube returns an axis-aligned cube centered at the origin with outward
// winding: 8 vertices and 6 quads.
func Cube(size float64) *Mesh {
	h := size / 2
	b := NewBuilder("cube").Grow(8, 6)

	// Vertex i has x, y, z taken from bits 0, 1, 2 of i.
	for i := 0; i < 8; i++ {
		p := math.Vec3{X: -h, Y: -h, Z: -h}
		if i&1 != 0 {
			p.X = h
		}
		if i&2 != 0 {
			p.Y = h
		}
		if i&4 != 0 {
			p.Z = h
		}
		b.AddVertex(p)
	}

	b.AddPolygon(1, 3, 7, 5) // +X
	b.AddPolygon(0, 4, 6, 2) // -X
	b.AddPolygon(2, 6, 7, 3) // +Y
	b.AddPolygon(0, 1, 5, 4) // -Y
	b.AddPolygon(4, 5, 7, 6) // +Z
	b.AddPolygon(0, 2, 3, 1) // -Z

	return b.Build()
}

// Sphere returns a UV sphere around the Z axis. The poles are closed with
// triangle fans so no polygon is degenerate.
func Sphere(radius float64, slices, stacks int) *Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	b := NewBuilder("sphere").Grow(2+(stacks-1)*slices, slices*stacks)

	north := b.AddVertex(math.Vec3{Z: radius})
	for k := 1; k < stacks; k++ {
		phi := gomath.Pi * float64(k) / float64(stacks)
		rho := radius * gomath.Sin(phi)
		z := radius * gomath.Cos(phi)
		for s := 0; s < slices; s++ {
			theta := 2 * gomath.Pi * float64(s) / float64(slices)
			b.AddVertex(math.Vec3{X: rho * gomath.Cos(theta), Y: rho * gomath.Sin(theta), Z: z})
		}
	}
	south := b.AddVertex(math.Vec3{Z: -radius})

	ring := func(k, s int) int {
		return 1 + (k-1)*slices + s%slices
	}

	for s := 0; s < slices; s++ {
		b.AddPolygon(north, ring(1, s), ring(1, s+1))
	}
	for k := 1; k < stacks-1; k++ {
		for s := 0; s < slices; s++ {
			b.AddPolygon(ring(k+1, s), ring(k+1, s+1), ring(k, s+1), ring(k, s))
		}
	}
	for s := 0; s < slices; s++ {
		b.AddPolygon(south, ring(stacks-1, s+1), ring(stacks-1, s))
	}

	return b.Build()
}

// Cylinder returns a capped cylinder around the Z axis, centered at the origin.
func Cylinder(radius, height float64, slices int) *Mesh {
	slices = max(slices, 3)
	h := height / 2

	b := NewBuilder("cylinder").Grow(2*slices, slices+2)
	for s := 0; s < slices; s++ {
		theta := 2 * gomath.Pi * float64(s) / float64(slices)
		x, y := radius*gomath.Cos(theta), radius*gomath.Sin(theta)
		b.AddVertex(math.Vec3{X: x, Y: y, Z: -h})
		b.AddVertex(math.Vec3{X: x, Y: y, Z: h})
	}

	bottom := func(s int) int { return 2 * (s % slices) }
	top := func(s int) int { return 2*(s%slices) + 1 }

	for s := 0; s < slices; s++ {
		b.AddPolygon(bottom(s), bottom(s+1), top(s+1), top(s))
	}

	lid := make([]int, slices)
	for s := range lid {
		lid[s] = top(s)
	}
	b.AddPolygon(lid...)
	for s := range lid {
		lid[s] = bottom(slices - 1 - s)
	}
	b.AddPolygon(lid...)

	return b.Build()
}

// Torus returns a torus around the Z axis. major is the distance from the
// center to the middle of the tube, minor the tube radius.
func Torus(major, minor float64, rings, sides int) *Mesh {
	rings = max(rings, 3)
	sides = max(sides, 3)

	b := NewBuilder("torus").Grow(rings*sides, rings*sides)
	for i := 0; i < rings; i++ {
		u := 2 * gomath.Pi * float64(i) / float64(rings)
		for j := 0; j < sides; j++ {
			v := 2 * gomath.Pi * float64(j) / float64(sides)
			r := major + minor*gomath.Cos(v)
			b.AddVertex(math.Vec3{X: r * gomath.Cos(u), Y: r * gomath.Sin(u), Z: minor * gomath.Sin(v)})
		}
	}

	at := func(i, j int) int {
		return (i%rings)*sides + j%sides
	}

	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			b.AddPolygon(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}

	return b.Build()
}
