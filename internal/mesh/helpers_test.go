package mesh

import gomath "math"

var sqrt3 = gomath.Sqrt(3)

func cos(a float64) float64 { return gomath.Cos(a) }
func sin(a float64) float64 { return gomath.Sin(a) }
