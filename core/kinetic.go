package core

// Kinetic holds position and velocity in playfield pixels and pixels per frame
type Kinetic struct {
	X, Y   float64
	VX, VY float64
}
