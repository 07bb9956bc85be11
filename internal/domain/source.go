package domain

import "fmt"

// FlowSource is the input side of a transfer: either a canvas main balance or
// a tank. It replaces branching on a nullable in-tank reference.
type FlowSource interface {
	Filled() float64
	Describe() string
}

type CanvasSource struct {
	Canvas *Canvas
}

func (s CanvasSource) Filled() float64 { return s.Canvas.Filled }

func (s CanvasSource) Describe() string {
	return fmt.Sprintf("canvas %q main tank", s.Canvas.Name)
}

type TankSource struct {
	Tank *Tank
}

func (s TankSource) Filled() float64 { return s.Tank.Filled }

func (s TankSource) Describe() string {
	return fmt.Sprintf("tank %q", s.Tank.Name)
}
