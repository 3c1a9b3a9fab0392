package breakout

import (
	"github.com/avorobev/breakout-tui/internal/core"
)

// Brick layout constants. Bricks are placed on a fixed pitch grid starting
// near the top-left corner, leaving a 10px gutter between neighbors.
const (
	BrickW      = 70.0
	BrickH      = 20.0
	GridPitchX  = 80.0
	GridPitchY  = 30.0
	GridOriginX = 10.0
	GridOriginY = 10.0
)

// Brick is a destructible block. PowerUp is the bonus it releases when
// destroyed, or PowerUpNone.
type Brick struct {
	Rect    core.Rect
	PowerUp PowerUpType
}

// GenerateGrid builds a rows x cols brick grid. Each brick independently
// carries a power-up with the given chance, chosen uniformly over the
// power-up types.
func GenerateGrid(rows, cols int, chance float64, rng *Rand) []*Brick {
	bricks := make([]*Brick, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b := &Brick{
				Rect: core.NewRect(
					GridOriginX+float64(col)*GridPitchX,
					GridOriginY+float64(row)*GridPitchY,
					BrickW,
					BrickH,
				),
			}
			if rng.Float64() < chance {
				b.PowerUp = powerUpTypes[rng.Intn(len(powerUpTypes))]
			}
			bricks = append(bricks, b)
		}
	}
	return bricks
}
