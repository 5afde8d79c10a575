package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"":            ease.Linear,
	"linear":      ease.Linear,
	"ease-in":     ease.InCubic,
	"ease-out":    ease.OutCubic,
	"ease-in-out": ease.InOutCubic,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
	"in-out-sine": ease.InOutSine,
	"in-expo":     ease.InExpo,
	"out-expo":    ease.OutExpo,
	"in-back":     ease.InBack,
	"out-back":    ease.OutBack,
	"out-bounce":  ease.OutBounce,
	"out-elastic": ease.OutElastic,
}

// EasingByName returns the easing curve for name, falling back to linear for
// unknown names.
func EasingByName(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

// destroyable is implemented by primitives that can report their own disposal.
type destroyable interface {
	IsDestroyed() bool
}

// PropTween animates the numeric properties of a primitive toward target
// values. Non-numeric target values (colors given by name, text) are written
// once when the tween begins. Start values are read from the primitive when
// the delay has elapsed, not when the tween is created.
//
// PropTween implements Animation. Engines create one from Primitive.Animate
// and advance it through an Animator.
type PropTween struct {
	target   Primitive
	to       Props
	duration float32
	delay    float32
	easing   ease.TweenFunc
	animator *Animator

	names  []string
	tweens []*gween.Tween

	started bool // Start called
	begun   bool // delay elapsed, tweens built
	stopped bool
	done    bool
}

// NewPropTween prepares a tween of p toward to. When animator is non-nil,
// Start registers the tween with it.
func NewPropTween(p Primitive, to Props, cfg AnimationConfig, animator *Animator) *PropTween {
	return &PropTween{
		target:   p,
		to:       to.Clone(),
		duration: float32(cfg.Duration.Seconds()),
		delay:    float32(cfg.Delay.Seconds()),
		easing:   EasingByName(cfg.Easing),
		animator: animator,
	}
}

// Start begins the tween. Starting twice or after Stop has no effect.
func (t *PropTween) Start() {
	if t.started || t.stopped {
		return
	}
	t.started = true
	if t.animator != nil {
		t.animator.add(t)
	}
}

// Stop halts the tween, leaving properties at their current values.
func (t *PropTween) Stop() {
	t.stopped = true
}

// Finished reports whether the tween reached its target or was stopped.
func (t *PropTween) Finished() bool {
	return t.done || t.stopped
}

// Update advances the tween by dt seconds and writes the interpolated values.
// If the target primitive has been destroyed the tween stops without writing.
func (t *PropTween) Update(dt float32) {
	if !t.started || t.Finished() {
		return
	}
	if d, ok := t.target.(destroyable); ok && d.IsDestroyed() {
		t.stopped = true
		return
	}
	if !t.begun {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		dt = -t.delay
		t.begin()
		if t.done {
			return
		}
	}

	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		t.target.Set(t.names[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	t.done = allDone
}

// begin reads start values and builds one gween tween per numeric property.
func (t *PropTween) begin() {
	t.begun = true
	for name, v := range t.to {
		end, numeric := toFloat(v)
		if !numeric || t.duration <= 0 {
			t.target.Set(name, v)
			continue
		}
		start := end
		if cur, ok := t.target.Get(name); ok {
			if f, ok := toFloat(cur); ok {
				start = f
			}
		}
		t.names = append(t.names, name)
		t.tweens = append(t.tweens, gween.New(float32(start), float32(end), t.duration, t.easing))
	}
	if len(t.tweens) == 0 {
		t.done = true
	}
}

// Animator advances running PropTweens. Engines own one and call Update once
// per tick. There is no global animation manager.
type Animator struct {
	active []*PropTween
}

// NewAnimator returns an empty Animator.
func NewAnimator() *Animator {
	return &Animator{}
}

func (a *Animator) add(t *PropTween) {
	a.active = append(a.active, t)
}

// Update advances every running tween by dt seconds and drops finished ones.
func (a *Animator) Update(dt float32) {
	if len(a.active) == 0 {
		return
	}
	live := a.active[:0]
	for _, t := range a.active {
		t.Update(dt)
		if !t.Finished() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = live
}

// Len returns the number of running tweens.
func (a *Animator) Len() int {
	return len(a.active)
}
