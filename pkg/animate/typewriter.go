package animate

import (
	"context"
	"sync"
	"time"
)

type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseTypingLine1 Phase = "typing1"
	PhasePausing     Phase = "pause"
	PhaseTypingLine2 Phase = "typing2"
	PhaseDone        Phase = "done"
	PhaseCancelled   Phase = "cancelled"
)

// TypewriterConfig holds the two lines and their timing.
type TypewriterConfig struct {
	Line1  string
	Line2  string
	Speed1 time.Duration // per character of Line1
	Pause  time.Duration
	Speed2 time.Duration // per character of Line2
}

// HeroTypewriter is the home page headline.
var HeroTypewriter = TypewriterConfig{
	Line1:  "Fueling Bold Ideas into",
	Line2:  "Global Impact",
	Speed1: 45 * time.Millisecond,
	Pause:  300 * time.Millisecond,
	Speed2: 55 * time.Millisecond,
}

// TypeFrame is what the headline shows at one instant.
type TypeFrame struct {
	Phase  Phase  `json:"phase"`
	Line1  string `json:"line1"`
	Line2  string `json:"line2"`
	Caret1 bool   `json:"caret1"`
	Caret2 bool   `json:"caret2"`
}

// Typewriter types Line1, pauses, then types Line2.
//
//	Idle -> TypingLine1 -> Pausing -> TypingLine2 -> Done
//
// Cancel moves any state to Cancelled. Transitions happen at deadlines, so
// the machine can be driven by any tick rate.
type Typewriter struct {
	cfg    TypewriterConfig
	line1  []rune
	line2  []rune
	mu     sync.Mutex
	phase  Phase
	shown1 int
	shown2 int
	next   time.Time
}

func NewTypewriter(cfg TypewriterConfig) *Typewriter {
	return &Typewriter{cfg: cfg, line1: []rune(cfg.Line1), line2: []rune(cfg.Line2), phase: PhaseIdle}
}

// Start begins typing at now. It is a no-op unless the machine is idle.
func (t *Typewriter) Start(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != PhaseIdle {
		return
	}
	t.phase = PhaseTypingLine1
	t.next = now.Add(t.cfg.Speed1)
}

// Advance applies every transition whose deadline is not after now.
func (t *Typewriter) Advance(now time.Time) TypeFrame {
	t.mu.Lock()
	defer t.mu.Unlock()

	for t.active() && !now.Before(t.next) {
		t.step()
	}
	return t.frame()
}

func (t *Typewriter) active() bool {
	switch t.phase {
	case PhaseTypingLine1, PhasePausing, PhaseTypingLine2:
		return true
	}
	return false
}

func (t *Typewriter) step() {
	switch t.phase {
	case PhaseTypingLine1:
		if t.shown1 < len(t.line1) {
			t.shown1++
			t.next = t.next.Add(t.cfg.Speed1)
			return
		}
		t.phase = PhasePausing
		t.next = t.next.Add(t.cfg.Pause)
	case PhasePausing:
		t.phase = PhaseTypingLine2
		t.next = t.next.Add(t.cfg.Speed2)
	case PhaseTypingLine2:
		if t.shown2 < len(t.line2) {
			t.shown2++
			t.next = t.next.Add(t.cfg.Speed2)
			return
		}
		t.phase = PhaseDone
	}
}

func (t *Typewriter) frame() TypeFrame {
	return TypeFrame{
		Phase:  t.phase,
		Line1:  string(t.line1[:t.shown1]),
		Line2:  string(t.line2[:t.shown2]),
		Caret1: t.phase == PhaseTypingLine1 || t.phase == PhasePausing,
		Caret2: t.phase == PhaseTypingLine2 || t.phase == PhaseDone,
	}
}

func (t *Typewriter) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhaseDone {
		t.phase = PhaseCancelled
	}
}

func (t *Typewriter) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Stream starts t and emits a frame whenever the text or phase changes.
// Cancelling ctx cancels the typewriter.
func (t *Typewriter) Stream(ctx context.Context, clock Clock, emit func(TypeFrame) error) error {
	t.Start(clock.Now())

	var last TypeFrame
	err := Run(ctx, clock, FrameInterval, func(now time.Time) (bool, error) {
		f := t.Advance(now)
		if f != last {
			if err := emit(f); err != nil {
				return false, err
			}
			last = f
		}
		return f.Phase == PhaseDone || f.Phase == PhaseCancelled, nil
	})
	if err != nil {
		t.Cancel()
	}
	return err
}
