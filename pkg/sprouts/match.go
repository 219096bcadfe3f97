// Package sprouts ties the board, the turn rules and the camera into one
// match and exposes the event surface the input layer drives.
//
// Pointer events arrive in world coordinates; use Match.ScreenToWorld to
// convert raw pointer positions first. Everything runs on the caller's
// goroutine.
package sprouts

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mpihlak/gosprouts/pkg/camera"
	"github.com/mpihlak/gosprouts/pkg/game/board"
	"github.com/mpihlak/gosprouts/pkg/game/turn"
	"github.com/mpihlak/gosprouts/pkg/geometry"
)

// Match is the whole state of one game.
type Match struct {
	ID       uuid.UUID
	Camera   camera.Camera
	Viewport camera.Viewport
	Board    *board.Board
	Turn     *turn.Machine

	logger *slog.Logger
}

// NewMatch sets up the starting dots described by cfg.
func NewMatch(cfg Config, vp camera.Viewport) *Match {
	cfg = cfg.Normalize()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.New()
	logger := Logger().With("match", id.String())

	b := board.New(cfg.StartingDots, rand.New(rand.NewSource(seed)))
	logger.Info("match started", "dots", len(b.Dots), "seed", seed)

	return &Match{
		ID:       id,
		Camera:   camera.New(),
		Viewport: vp,
		Board:    b,
		Turn:     turn.New(b, logger),
		logger:   logger,
	}
}

// PointerMoved feeds a pointer position to the turn machine.
func (m *Match) PointerMoved(world geometry.Point) turn.Outcome {
	return m.Turn.Move(world)
}

// PointerClicked feeds a primary click to the turn machine.
func (m *Match) PointerClicked(world geometry.Point) turn.Outcome {
	return m.Turn.Click(world)
}

// SecondaryPointerPressed cancels the line being drawn, if any.
func (m *Match) SecondaryPointerPressed() turn.Outcome {
	return m.Turn.Cancel()
}

// KeyHeld pans the camera for held direction keys. mod is the frame length
// relative to 1/60s.
func (m *Match) KeyHeld(dir camera.Direction, mod float64) {
	m.Camera = m.Camera.KeyPan(dir, mod)
}

// ZoomAt zooms around a screen position.
func (m *Match) ZoomAt(screen geometry.Point, factor float64) {
	m.Camera = m.Camera.ZoomAt(m.Viewport, screen, factor)
}

// ZoomStep zooms one step around the viewport centre.
func (m *Match) ZoomStep(in bool) {
	m.Camera = m.Camera.ZoomStep(in)
}

// Drag pans the camera by a pointer movement in screen pixels.
func (m *Match) Drag(dx, dy float64) {
	m.Camera = m.Camera.Drag(dx, dy)
}

// Resize updates the viewport after the window changes size.
func (m *Match) Resize(width, height float64) {
	m.Viewport = camera.Viewport{Width: width, Height: height}
}

// ScreenToWorld converts a pointer position using the current camera.
func (m *Match) ScreenToWorld(screen geometry.Point) geometry.Point {
	return m.Camera.ScreenToWorld(m.Viewport, screen)
}

// WorldToScreen converts a world position using the current camera.
func (m *Match) WorldToScreen(world geometry.Point) geometry.Point {
	return m.Camera.WorldToScreen(m.Viewport, world)
}
