package breakout

import (
	"math"
	"testing"

	"github.com/breakbricks/breakbricks/internal/core"
)

func testRect(x, y, w, h float64) core.FRect {
	return core.NewFRect(x, y, w, h)
}

func testParams() Params {
	return Params{
		Field:         testField(),
		MinSpeed:      10,
		MaxSpeed:      50,
		BrickSpeedUp:  0.25,
		PaddleSpeedUp: 0.4,
		MaxBounceRad:  60 * math.Pi / 180,
	}
}

func testBall(x, y, vx, vy float64) *Ball {
	return &Ball{X: x, Y: y, VX: vx, VY: vy, Radius: 0.45}
}

func testPaddle(x float64) *Paddle {
	return &Paddle{X: x, Y: 22, W: 10, H: 1}
}

const dt = 1.0 / 60

func TestWallReflection(t *testing.T) {
	p := testParams()

	// Left wall
	ball := testBall(0.5, 10, -20, 5)
	Advance(ball, testPaddle(40), nil, dt, p)
	if ball.VX <= 0 {
		t.Errorf("left wall should reflect, VX = %f", ball.VX)
	}

	// Right wall
	ball = testBall(79.5, 10, 20, 5)
	Advance(ball, testPaddle(40), nil, dt, p)
	if ball.VX >= 0 {
		t.Errorf("right wall should reflect, VX = %f", ball.VX)
	}

	// Top wall
	ball = testBall(40, 2.2, 5, -20)
	Advance(ball, testPaddle(40), nil, dt, p)
	if ball.VY <= 0 {
		t.Errorf("top wall should reflect, VY = %f", ball.VY)
	}
}

func TestBottomIsNotAWall(t *testing.T) {
	p := testParams()
	ball := testBall(40, 24.5, 0, 30)

	out := Advance(ball, testPaddle(10), nil, dt, p)
	if !out.BallLost {
		t.Error("ball below the field should be reported lost")
	}
	if ball.VY < 0 {
		t.Error("bottom boundary must not bounce the ball")
	}
}

func TestPaddleBounceCenterIsNearVertical(t *testing.T) {
	p := testParams()
	paddle := testPaddle(40)
	ball := testBall(40, 21.8, 0, 20)

	out := Advance(ball, paddle, nil, dt, p)
	if !out.PaddleHit {
		t.Fatal("expected paddle hit")
	}
	if ball.VY >= 0 {
		t.Error("ball should move upward after paddle bounce")
	}
	if math.Abs(ball.VX) > ball.Speed()*0.1 {
		t.Errorf("center hit should be near vertical, VX = %f of speed %f", ball.VX, ball.Speed())
	}
}

func TestPaddleBounceAngleMonotonic(t *testing.T) {
	p := testParams()

	// Hits farther from the paddle center leave at wider angles,
	// toward the side that was struck.
	offsets := []float64{1, 2.5, 4}
	prev := 0.0
	for _, off := range offsets {
		paddle := testPaddle(40)
		ball := testBall(40+off, 21.8, 0, 20)

		out := Advance(ball, paddle, nil, dt, p)
		if !out.PaddleHit {
			t.Fatalf("offset %f: expected paddle hit", off)
		}
		if ball.VX <= prev {
			t.Errorf("offset %f: VX = %f not increasing past %f", off, ball.VX, prev)
		}
		prev = ball.VX
	}

	// Mirror side
	paddle := testPaddle(40)
	ball := testBall(36, 21.8, 0, 20)
	Advance(ball, paddle, nil, dt, p)
	if ball.VX >= 0 {
		t.Errorf("left-side hit should go left, VX = %f", ball.VX)
	}
}

func TestPaddleBounceRespectsMaxAngle(t *testing.T) {
	p := testParams()
	paddle := testPaddle(40)
	// Strike at the very edge
	ball := testBall(45, 21.8, 0, 20)

	out := Advance(ball, paddle, nil, dt, p)
	if !out.PaddleHit {
		t.Fatal("expected paddle hit")
	}

	angle := math.Atan2(math.Abs(ball.VX), -ball.VY)
	if angle > p.MaxBounceRad+0.01 {
		t.Errorf("bounce angle %f exceeds max %f", angle, p.MaxBounceRad)
	}
}

func TestSpeedClampedAtMax(t *testing.T) {
	p := testParams()
	paddle := testPaddle(40)
	ball := testBall(40, 21.8, 0, p.MaxSpeed)

	Advance(ball, paddle, nil, dt, p)
	if s := ball.Speed(); s > p.MaxSpeed+1e-9 {
		t.Errorf("speed %f exceeds max %f after paddle speed-up", s, p.MaxSpeed)
	}
}

func TestSpeedNeverZero(t *testing.T) {
	p := testParams()
	ball := testBall(40, 10, 0, 0)

	Advance(ball, testPaddle(40), nil, dt, p)
	if s := ball.Speed(); s < p.MinSpeed {
		t.Errorf("speed %f below min %f after clamp", s, p.MinSpeed)
	}
}

func TestOneBrickPerTick(t *testing.T) {
	p := testParams()

	// Two bricks stacked so a straight drop through them could touch both
	bricks := []Brick{
		{Rect: testRect(38, 5, 4, 1), Points: 10, Alive: true},
		{Rect: testRect(38, 6, 4, 1), Points: 10, Alive: true},
	}
	ball := testBall(40, 4.2, 0, 40)

	out := Advance(ball, testPaddle(40), bricks, dt, p)
	if out.BrickHit < 0 {
		t.Fatal("expected a brick hit")
	}

	alive := 0
	for i := range bricks {
		if bricks[i].Alive {
			alive++
		}
	}
	if alive != 1 {
		t.Errorf("one tick destroyed %d bricks, want exactly 1", 2-alive)
	}
}

func TestBrickReflectionAxis(t *testing.T) {
	p := testParams()

	// Ball rising straight into the underside of a brick: vertical reflect
	bricks := []Brick{{Rect: testRect(38, 5, 4, 1), Points: 10, Alive: true}}
	ball := testBall(40, 6.6, 0, -30)

	out := Advance(ball, testPaddle(40), bricks, dt, p)
	if out.BrickHit != 0 {
		t.Fatal("expected brick 0 hit")
	}
	if ball.VY <= 0 {
		t.Errorf("underside hit should reflect downward, VY = %f", ball.VY)
	}
}

func TestNoTunnelingAtMaxSpeed(t *testing.T) {
	p := testParams()

	// At max speed a naive full-dt move would jump the whole brick
	bricks := []Brick{{Rect: testRect(38, 10, 4, 1), Points: 10, Alive: true}}
	ball := testBall(40, 9.0, 0, p.MaxSpeed)

	var hit bool
	for i := 0; i < 10 && !hit; i++ {
		out := Advance(ball, testPaddle(40), bricks, dt, p)
		hit = out.BrickHit >= 0
	}
	if !hit {
		t.Error("fast ball tunneled through a brick")
	}
}

func TestPaddleUpdateFrictionAndWalls(t *testing.T) {
	field := testField()
	paddle := testPaddle(40)

	// Accelerate right
	for i := 0; i < 30; i++ {
		paddle.Update(1, dt, 160, 45, 130, field)
	}
	if paddle.VX <= 0 {
		t.Fatalf("paddle should gain velocity, VX = %f", paddle.VX)
	}
	if paddle.VX > 45 {
		t.Errorf("paddle velocity %f exceeds max", paddle.VX)
	}

	// Coast: friction decays to zero without reversing
	for i := 0; i < 600; i++ {
		paddle.Update(0, dt, 160, 45, 130, field)
	}
	if paddle.VX != 0 {
		t.Errorf("friction should stop the paddle, VX = %f", paddle.VX)
	}

	// Drive into the right wall: clamped, velocity zeroed
	for i := 0; i < 600; i++ {
		paddle.Update(1, dt, 160, 45, 130, field)
	}
	if paddle.X+paddle.W/2 > field.W {
		t.Errorf("paddle escaped the field at X = %f", paddle.X)
	}
	if paddle.VX != 0 {
		t.Errorf("wall contact should zero velocity, VX = %f", paddle.VX)
	}
}
