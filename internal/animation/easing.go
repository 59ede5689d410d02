package animation

import (
	"math"
	"strings"
	"time"

	"github.com/wandb/wandb/chartcore/internal/observability/wberrors"
)

// EasingFunc maps the elapsed part of a duration to an animation phase.
//
// Phases usually run from 0 to 1 but may overshoot, as the elastic and
// back functions do.
type EasingFunc func(elapsed, duration time.Duration) float64

// EasingOption names one of the built-in easing functions.
type EasingOption int

const (
	Linear EasingOption = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
)

type easing struct {
	name string
	f    func(t float64) float64
}

var easings = [...]easing{
	Linear:           {"linear", linear},
	EaseInQuad:       {"easeInQuad", inQuad},
	EaseOutQuad:      {"easeOutQuad", outQuad},
	EaseInOutQuad:    {"easeInOutQuad", inOutQuad},
	EaseInCubic:      {"easeInCubic", inCubic},
	EaseOutCubic:     {"easeOutCubic", outCubic},
	EaseInOutCubic:   {"easeInOutCubic", inOutCubic},
	EaseInQuart:      {"easeInQuart", inQuart},
	EaseOutQuart:     {"easeOutQuart", outQuart},
	EaseInOutQuart:   {"easeInOutQuart", inOutQuart},
	EaseInQuint:      {"easeInQuint", inQuint},
	EaseOutQuint:     {"easeOutQuint", outQuint},
	EaseInOutQuint:   {"easeInOutQuint", inOutQuint},
	EaseInSine:       {"easeInSine", inSine},
	EaseOutSine:      {"easeOutSine", outSine},
	EaseInOutSine:    {"easeInOutSine", inOutSine},
	EaseInExpo:       {"easeInExpo", inExpo},
	EaseOutExpo:      {"easeOutExpo", outExpo},
	EaseInOutExpo:    {"easeInOutExpo", inOutExpo},
	EaseInCirc:       {"easeInCirc", inCirc},
	EaseOutCirc:      {"easeOutCirc", outCirc},
	EaseInOutCirc:    {"easeInOutCirc", inOutCirc},
	EaseInElastic:    {"easeInElastic", inElastic},
	EaseOutElastic:   {"easeOutElastic", outElastic},
	EaseInOutElastic: {"easeInOutElastic", inOutElastic},
	EaseInBack:       {"easeInBack", inBack},
	EaseOutBack:      {"easeOutBack", outBack},
	EaseInOutBack:    {"easeInOutBack", inOutBack},
	EaseInBounce:     {"easeInBounce", inBounce},
	EaseOutBounce:    {"easeOutBounce", outBounce},
	EaseInOutBounce:  {"easeInOutBounce", inOutBounce},
}

func (o EasingOption) valid() bool {
	return o >= 0 && int(o) < len(easings)
}

func (o EasingOption) String() string {
	if !o.valid() {
		return "unknown"
	}
	return easings[o].name
}

// Func returns the easing function; an unknown option is linear.
func (o EasingOption) Func() EasingFunc {
	f := linear
	if o.valid() {
		f = easings[o].f
	}

	return func(elapsed, duration time.Duration) float64 {
		if duration <= 0 {
			return 1
		}
		return f(float64(elapsed) / float64(duration))
	}
}

// ParseEasing looks up an easing option by name, ignoring case.
//
// Both "easeInOutSine" and "ease-in-out-sine" are accepted.
func ParseEasing(name string) (EasingOption, error) {
	key := strings.ReplaceAll(name, "-", "")
	for i, e := range easings {
		if strings.EqualFold(e.name, key) {
			return EasingOption(i), nil
		}
	}
	return Linear, wberrors.Newf("animation: unknown easing %q", name)
}

func linear(t float64) float64 { return t }

func inQuad(t float64) float64 { return t * t }
func outQuad(t float64) float64 { return -t * (t - 2) }

func inOutQuad(t float64) float64 {
	t *= 2
	if t < 1 {
		return t * t / 2
	}
	t--
	return -(t*(t-2) - 1) / 2
}

func inCubic(t float64) float64 { return t * t * t }

func outCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func inOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

func inQuart(t float64) float64 { return t * t * t * t }

func outQuart(t float64) float64 {
	t--
	return -(t*t*t*t - 1)
}

func inOutQuart(t float64) float64 {
	t *= 2
	if t < 1 {
		return t * t * t * t / 2
	}
	t -= 2
	return -(t*t*t*t - 2) / 2
}

func inQuint(t float64) float64 { return t * t * t * t * t }

func outQuint(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

func inOutQuint(t float64) float64 {
	t *= 2
	if t < 1 {
		return t * t * t * t * t / 2
	}
	t -= 2
	return (t*t*t*t*t + 2) / 2
}

func inSine(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }
func outSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func inOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

func inExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func outExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func inOutExpo(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}

	t *= 2
	if t < 1 {
		return math.Pow(2, 10*(t-1)) / 2
	}
	return (2 - math.Pow(2, -10*(t-1))) / 2
}

func inCirc(t float64) float64 { return -(math.Sqrt(1-t*t) - 1) }

func outCirc(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func inOutCirc(t float64) float64 {
	t *= 2
	if t < 1 {
		return -(math.Sqrt(1-t*t) - 1) / 2
	}
	t -= 2
	return (math.Sqrt(1-t*t) + 1) / 2
}

const elasticPeriod = 0.3

func inElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	s := elasticPeriod / 4
	t--
	return -math.Pow(2, 10*t) * math.Sin((t-s)*2*math.Pi/elasticPeriod)
}

func outElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	s := elasticPeriod / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/elasticPeriod) + 1
}

func inOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}

	p := elasticPeriod * 1.5
	s := p / 4
	t = t*2 - 1
	if t < 0 {
		return -math.Pow(2, 10*t) * math.Sin((t-s)*2*math.Pi/p) / 2
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/p)/2 + 1
}

const backOvershoot = 1.70158

func inBack(t float64) float64 {
	s := backOvershoot
	return t * t * ((s+1)*t - s)
}

func outBack(t float64) float64 {
	s := backOvershoot
	t--
	return t*t*((s+1)*t+s) + 1
}

func inOutBack(t float64) float64 {
	s := backOvershoot * 1.525
	t *= 2
	if t < 1 {
		return t * t * ((s+1)*t - s) / 2
	}
	t -= 2
	return (t*t*((s+1)*t+s) + 2) / 2
}

func inBounce(t float64) float64 { return 1 - outBounce(1-t) }

func outBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

func inOutBounce(t float64) float64 {
	if t < 0.5 {
		return inBounce(t*2) / 2
	}
	return outBounce(t*2-1)/2 + 0.5
}
