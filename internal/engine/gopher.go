package engine

import (
	"context"
	"fmt"
	"time"

	behaviour "GopherWater/internal/behaviour"
	"GopherWater/internal/logger"

	"go.uber.org/zap"
)

// DefaultFixedEvery is the number of frames between FixedUpdate calls.
const DefaultFixedEvery = 2

// Gopher drives the component lifecycle without a window. The host either
// steps it with its own frame times or lets Run pace it in real time.
type Gopher struct {
	Manager    *behaviour.ComponentManager
	FixedEvery int

	frameTrackId    int
	frames          int
	elapsed         float64
	onFrameCallback func(frame int, deltaTime float32) // Optional per-frame hook (e.g. parameter dumps)
}

func NewGopher(fixedEvery int) *Gopher {
	if fixedEvery <= 0 {
		fixedEvery = DefaultFixedEvery
	}
	logger.Log.Info("GopherWater engine initializing...", zap.Int("fixedEvery", fixedEvery))
	return &Gopher{
		Manager:    behaviour.NewComponentManager(),
		FixedEvery: fixedEvery,
	}
}

// AddGameObject registers obj and starts its components.
func (gopher *Gopher) AddGameObject(obj *behaviour.GameObject) {
	gopher.Manager.RegisterGameObject(obj)
	logger.Log.Debug("Game object added",
		zap.String("name", obj.Name),
		zap.Int("components", len(obj.Components)))
}

// SetOnFrameCallback sets a callback that runs after every frame's updates.
func (gopher *Gopher) SetOnFrameCallback(callback func(frame int, deltaTime float32)) {
	gopher.onFrameCallback = callback
}

// Step advances one frame.
func (gopher *Gopher) Step(deltaTime float32) {
	if gopher.frameTrackId >= gopher.FixedEvery {
		gopher.Manager.FixedUpdateAll()
		gopher.frameTrackId = 0
	}
	gopher.Manager.UpdateAll(deltaTime)

	if gopher.onFrameCallback != nil {
		gopher.onFrameCallback(gopher.frames, deltaTime)
	}

	gopher.frameTrackId++
	gopher.frames++
	if deltaTime > 0 {
		gopher.elapsed += float64(deltaTime)
	}
}

// RunFrames advances n frames with a constant frame time.
func (gopher *Gopher) RunFrames(n int, deltaTime float32) {
	for i := 0; i < n; i++ {
		gopher.Step(deltaTime)
	}
}

// Run steps the scene at the given rate until ctx is done, feeding the
// measured wall-clock time between ticks as the frame time.
func (gopher *Gopher) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	logger.Log.Info("Engine loop started", zap.Int("fps", fps))
	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Engine loop stopped",
				zap.Int("frames", gopher.frames),
				zap.Float64("elapsed", gopher.elapsed))
			return ctx.Err()
		case now := <-ticker.C:
			deltaTime := now.Sub(lastTime).Seconds()
			lastTime = now
			gopher.Step(float32(deltaTime))
		}
	}
}

// Frames returns the number of frames stepped so far.
func (gopher *Gopher) Frames() int {
	return gopher.frames
}

// Elapsed returns the accumulated simulated time in seconds.
func (gopher *Gopher) Elapsed() float64 {
	return gopher.elapsed
}

// Shutdown destroys every registered game object.
func (gopher *Gopher) Shutdown() {
	gopher.Manager.Clear()
	logger.Log.Info("Engine shut down", zap.Int("frames", gopher.frames))
}
