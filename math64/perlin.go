package math64

// permutation is Ken Perlin's reference permutation, doubled so lookups of X+1 and Y+1 never wrap.
var permutation = func() [512]int {
	base := [256]int{151, 160, 137, 91, 90, 15,
		131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
		190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
		88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
		77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
		102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
		135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
		5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
		223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
		129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
		251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
		49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
		138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	}
	var p [512]int
	for i := range p {
		p[i] = base[i%256]
	}
	return p
}()

// PerlinNoise returns 1D Perlin noise at x, in the range [0, 1].
func PerlinNoise(x float64) float64 {
	return PerlinNoise2D(x, 0, 0)
}

// PerlinNoise2D returns 2D Perlin noise at (x, y) in the range [0, 1]. The seed offsets the lattice cell lookup, so
// different seeds give different (but still repeatable) fields. The field repeats every 256 units.
func PerlinNoise2D(x, y float64, seed int) float64 {

	// Lattice cell
	cx := int(x+float64(seed)) & 255
	cy := int(y+float64(seed)) & 255

	// Position within the cell
	x -= float64(int(x))
	y -= float64(int(y))

	u := fade(x)
	v := fade(y)

	p := &permutation
	aa := p[p[cx]+cy]
	ab := p[p[cx]+cy+1]
	ba := p[p[cx+1]+cy]
	bb := p[p[cx+1]+cy+1]

	res := Lerp(
		Lerp(grad(aa, x, y), grad(ba, x-1, y), u),
		Lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u),
		v,
	)

	// [-1, 1] -> [0, 1]
	return (res + 1) * 0.5

}

// PerlinNoise3D approximates 3D noise by averaging 2D noise over the six axis-aligned planes through the point.
func PerlinNoise3D(x, y, z float64) float64 {
	total := PerlinNoise2D(x, y, 0) +
		PerlinNoise2D(y, z, 0) +
		PerlinNoise2D(z, x, 0) +
		PerlinNoise2D(y, x, 0) +
		PerlinNoise2D(z, y, 0) +
		PerlinNoise2D(x, z, 0)
	return total / 6
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func grad(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
