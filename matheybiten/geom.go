package matheybiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/mathey"
)

// GeoM converts the affine part of m into an ebiten.GeoM. The last row of m
// is not representable and is dropped.
func GeoM(m mathey.Mat3) ebiten.GeoM {
	var g ebiten.GeoM
	for row := range 2 {
		for col := range 3 {
			g.SetElement(row, col, float64(m[row][col]))
		}
	}

	return g
}

// Mat3FromGeoM converts g into a Mat3 with [0 0 1] as its last row.
func Mat3FromGeoM(g ebiten.GeoM) mathey.Mat3 {
	m := mathey.Identity3()
	for row := range 2 {
		for col := range 3 {
			m[row][col] = float32(g.Element(row, col))
		}
	}

	return m
}
