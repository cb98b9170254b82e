package raster

// Basic affine transforms, used by the perspective warp stage.

import(
	"golang.org/x/image/math/f64"
)

// Use a local type so we can hang methods off it
type Aff3 f64.Aff3

func (p Aff3)Mult(q Aff3) Aff3 {
	return Aff3{
		p[3*0+0]*q[3*0+0] + p[3*0+1]*q[3*1+0],
		p[3*0+0]*q[3*0+1] + p[3*0+1]*q[3*1+1],
		p[3*0+0]*q[3*0+2] + p[3*0+1]*q[3*1+2] + p[3*0+2],
		p[3*1+0]*q[3*0+0] + p[3*1+1]*q[3*1+0],
		p[3*1+0]*q[3*0+1] + p[3*1+1]*q[3*1+1],
		p[3*1+0]*q[3*0+2] + p[3*1+1]*q[3*1+2] + p[3*1+2],
	}
}

func Identity() Aff3 {
	return Aff3{1, 0, 0,   0, 1, 0}
}

func (m Aff3)Translate(tx, ty float64) Aff3 {
	return m.Mult(Aff3{1, 0, tx,   0, 1, ty})
}

// Shear skews x by sx per unit of y, and y by sy per unit of x.
func (m Aff3)Shear(sx, sy float64) Aff3 {
	return m.Mult(Aff3{1, sx, 0,   sy, 1, 0})
}

// ShearAbout anchors the shear at (x,y), so that point maps to itself.
// Remember they compose back to front - rightmost operations performed first.
func ShearAbout(sx, sy, x, y float64) Aff3 {
	return Identity().Translate(x, y).Shear(sx, sy).Translate(-1*x, -1*y)
}
