package breakout

import (
	"math"

	"github.com/breakbricks/breakbricks/internal/core"
)

// Ball is the ball state in cell coordinates. Velocity is in cells per
// second; position is the circle center.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Stuck  bool // Riding the paddle before launch
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// SetSpeed rescales the velocity to the given magnitude, preserving
// direction. A motionless ball is sent straight up.
func (b *Ball) SetSpeed(speed float64) {
	cur := b.Speed()
	if cur == 0 {
		b.VX = 0
		b.VY = -speed
		return
	}
	b.VX = b.VX / cur * speed
	b.VY = b.VY / cur * speed
}

// Finite reports whether the ball state holds no NaN or infinity.
func (b *Ball) Finite() bool {
	return core.Finite(b.X) && core.Finite(b.Y) && core.Finite(b.VX) && core.Finite(b.VY)
}

// Paddle is the player's paddle. X is the center; Y is the top row.
// The paddle accelerates while a direction is held and coasts to a stop
// under friction when released.
type Paddle struct {
	X, Y float64
	W, H float64
	VX   float64
}

// Rect returns the paddle's collision rectangle.
func (p *Paddle) Rect() core.FRect {
	return core.NewFRect(p.X-p.W/2, p.Y, p.W, p.H)
}

// Update advances paddle movement for one tick. dir is -1, 0, or +1.
func (p *Paddle) Update(dir int, dt float64, accel, maxSpeed, friction float64, field Field) {
	if dir != 0 {
		p.VX += float64(dir) * accel * dt
	} else {
		// Friction decelerates toward zero without overshooting
		switch {
		case p.VX > 0:
			p.VX = math.Max(0, p.VX-friction*dt)
		case p.VX < 0:
			p.VX = math.Min(0, p.VX+friction*dt)
		}
	}
	p.VX = core.ClampF(p.VX, -maxSpeed, maxSpeed)

	p.X += p.VX * dt

	// Clamp to field, killing velocity at the walls
	half := p.W / 2
	if p.X-half < 0 {
		p.X = half
		p.VX = 0
	}
	if p.X+half > field.W {
		p.X = field.W - half
		p.VX = 0
	}
}

// Params bundles the physics tuning used by Advance.
type Params struct {
	Field         Field
	MinSpeed      float64
	MaxSpeed      float64
	BrickSpeedUp  float64 // Speed gained per destroyed brick
	PaddleSpeedUp float64 // Speed gained per paddle bounce
	MaxBounceRad  float64 // Max paddle bounce angle from vertical
}

// Outcome reports what one physics tick did.
type Outcome struct {
	BrickHit  int // Index of the destroyed brick in the level slice, -1 if none
	PaddleHit bool
	BallLost  bool
}

// Advance moves the ball by dt and resolves all collisions.
// Movement is sub-stepped so that no single step displaces the ball more
// than its radius, which keeps a fast ball from tunneling through bricks
// or the paddle. At most one brick is destroyed per tick; when several
// overlap in the same step the one with the smallest penetration wins.
func Advance(ball *Ball, paddle *Paddle, bricks []Brick, dt float64, p Params) Outcome {
	out := Outcome{BrickHit: -1}
	if ball.Stuck {
		return out
	}

	speed := ball.Speed()
	steps := 1
	if ball.Radius > 0 {
		steps = int(math.Ceil(speed * dt / ball.Radius))
		if steps < 1 {
			steps = 1
		}
	}
	subDt := dt / float64(steps)

	for i := 0; i < steps; i++ {
		ball.X += ball.VX * subDt
		ball.Y += ball.VY * subDt

		if resolveWalls(ball, p.Field) {
			out.BallLost = true
			return out
		}

		if resolvePaddle(ball, paddle, p) {
			out.PaddleHit = true
		}

		if out.BrickHit < 0 {
			if hit := resolveBrick(ball, bricks, p); hit >= 0 {
				out.BrickHit = hit
			}
		}
	}

	clampSpeed(ball, p.MinSpeed, p.MaxSpeed)
	return out
}

// resolveWalls reflects the ball off the side and top walls and reports
// whether it crossed the bottom boundary.
func resolveWalls(ball *Ball, field Field) (lost bool) {
	if ball.X-ball.Radius < 0 {
		ball.X = ball.Radius
		ball.VX = math.Abs(ball.VX)
	}
	if ball.X+ball.Radius > field.W {
		ball.X = field.W - ball.Radius
		ball.VX = -math.Abs(ball.VX)
	}
	if ball.Y-ball.Radius < field.Top {
		ball.Y = field.Top + ball.Radius
		ball.VY = math.Abs(ball.VY)
	}
	// No bounce at the bottom: the ball is gone once fully below the field
	return ball.Y-ball.Radius > field.H
}

// resolvePaddle bounces a downward-moving ball off the paddle. The
// outgoing angle is proportional to where the ball struck: center hits
// go near vertical, edge hits go out at MaxBounceRad. The mapping keeps
// the ball controllable and always sends it upward.
func resolvePaddle(ball *Ball, paddle *Paddle, p Params) bool {
	if ball.VY <= 0 {
		return false
	}
	if !paddle.Rect().OverlapsCircle(ball.X, ball.Y, ball.Radius) {
		return false
	}

	offset := core.ClampF((ball.X-paddle.X)/(paddle.W/2), -1, 1)
	angle := offset * p.MaxBounceRad

	speed := ball.Speed() + p.PaddleSpeedUp
	speed = core.ClampF(speed, p.MinSpeed, p.MaxSpeed)

	ball.VX = speed * math.Sin(angle)
	ball.VY = -speed * math.Cos(angle)
	ball.Y = paddle.Y - ball.Radius

	return true
}

// resolveBrick destroys the single most-overlapped brick, reflects the
// ball off it, and returns its index, or -1 when nothing was hit.
func resolveBrick(ball *Ball, bricks []Brick, p Params) int {
	best := -1
	bestPen := math.MaxFloat64

	for i := range bricks {
		if !bricks[i].Alive {
			continue
		}
		r := bricks[i].Rect
		if !r.OverlapsCircle(ball.X, ball.Y, ball.Radius) {
			continue
		}

		overlapX := math.Min(ball.X+ball.Radius, r.Right()) - math.Max(ball.X-ball.Radius, r.X)
		overlapY := math.Min(ball.Y+ball.Radius, r.Bottom()) - math.Max(ball.Y-ball.Radius, r.Y)
		pen := math.Min(overlapX, overlapY)
		if pen < bestPen {
			bestPen = pen
			best = i
		}
	}

	if best < 0 {
		return -1
	}

	brick := &bricks[best]
	brick.Alive = false

	// Reflect along the axis of least overlap
	r := brick.Rect
	overlapX := math.Min(ball.X+ball.Radius, r.Right()) - math.Max(ball.X-ball.Radius, r.X)
	overlapY := math.Min(ball.Y+ball.Radius, r.Bottom()) - math.Max(ball.Y-ball.Radius, r.Y)
	if overlapX < overlapY {
		if ball.X < r.CenterX() {
			ball.VX = -math.Abs(ball.VX)
		} else {
			ball.VX = math.Abs(ball.VX)
		}
	} else {
		if ball.Y < r.CenterY() {
			ball.VY = -math.Abs(ball.VY)
		} else {
			ball.VY = math.Abs(ball.VY)
		}
	}

	speed := ball.Speed() + p.BrickSpeedUp
	speed = core.ClampF(speed, p.MinSpeed, p.MaxSpeed)
	ball.SetSpeed(speed)

	return best
}

// clampSpeed keeps the velocity magnitude inside [minSpeed, maxSpeed].
func clampSpeed(ball *Ball, minSpeed, maxSpeed float64) {
	speed := ball.Speed()
	if speed < minSpeed || speed > maxSpeed {
		ball.SetSpeed(core.ClampF(speed, minSpeed, maxSpeed))
	}
}
