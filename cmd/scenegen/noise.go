package main

import (
	"math"
	"math/rand"
)

// simplex is seeded 2D simplex noise.
type simplex struct {
	perm [512]int
}

func newSimplex(seed int64) *simplex {
	r := rand.New(rand.NewSource(seed))
	p := r.Perm(256)
	sn := &simplex{}
	for i := range sn.perm {
		sn.perm[i] = p[i&255]
	}
	return sn
}

const (
	skew   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

func (sn *simplex) corner(hash int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	g := gradients[hash&7]
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

// at returns noise in [-1, 1].
func (sn *simplex) at(x, y float64) float64 {
	s := (x + y) * skew
	i, j := math.Floor(x+s), math.Floor(y+s)
	t := (i + j) * unskew
	x0, y0 := x-(i-t), y-(j-t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-float64(i1)+unskew, y0-float64(j1)+unskew
	x2, y2 := x0-1+2*unskew, y0-1+2*unskew

	ii, jj := int(i)&255, int(j)&255
	n := sn.corner(sn.perm[ii+sn.perm[jj]], x0, y0) +
		sn.corner(sn.perm[ii+i1+sn.perm[jj+j1]], x1, y1) +
		sn.corner(sn.perm[ii+1+sn.perm[jj+1]], x2, y2)
	return 70 * n
}

// fbm sums octaves of noise and normalizes the result to [0, 1].
func (sn *simplex) fbm(x, y, freq float64, octaves int) float64 {
	var total, norm float64
	amp := 1.0
	for o := 0; o < octaves; o++ {
		total += sn.at(x*freq, y*freq) * amp
		norm += amp
		freq *= 2
		amp *= 0.5
	}
	if norm == 0 {
		return 0.5
	}
	return (total/norm + 1) / 2
}
