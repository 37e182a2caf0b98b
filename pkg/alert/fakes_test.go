package alert

import (
	"sort"
	"strings"
	"time"
)

type fakeSurface struct {
	size     Size
	ok       bool
	attached []*Alert
	detached []*Alert
	keyboard func(float64)
	cancels  int
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{size: Size{W: w, H: h}, ok: true}
}

func (s *fakeSurface) Size() (Size, bool) { return s.size, s.ok }
func (s *fakeSurface) Attach(a *Alert) { s.attached = append(s.attached, a) }
func (s *fakeSurface) Detach(a *Alert) { s.detached = append(s.detached, a) }

func (s *fakeSurface) OnKeyboardChange(fn func(float64)) func() {
	s.keyboard = fn
	return func() {
		s.cancels++
		s.keyboard = nil
	}
}

func (s *fakeSurface) setKeyboard(inset float64) {
	if s.keyboard != nil {
		s.keyboard(inset)
	}
}

// manualScheduler fires timers in due order, ties in registration order.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	every   time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() { t.stopped = true }

func (s *manualScheduler) add(d, every time.Duration, fn func()) Timer {
	s.seq++
	t := &manualTimer{due: s.now + d, every: every, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) After(d time.Duration, fn func()) Timer { return s.add(d, 0, fn) }
func (s *manualScheduler) Every(d time.Duration, fn func()) Timer { return s.add(d, d, fn) }

func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		live := s.timers[:0]
		for _, t := range s.timers {
			if !t.stopped {
				live = append(live, t)
			}
		}
		s.timers = live
		if len(s.timers) == 0 {
			break
		}
		sort.SliceStable(s.timers, func(i, j int) bool {
			if s.timers[i].due != s.timers[j].due {
				return s.timers[i].due < s.timers[j].due
			}
			return s.timers[i].seq < s.timers[j].seq
		})
		next := s.timers[0]
		if next.due > target {
			break
		}
		s.now = next.due
		if next.every > 0 {
			next.due += next.every
		} else {
			next.stopped = true
		}
		next.fn()
	}
	s.now = target
}

func (s *manualScheduler) active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// manualAnimator holds completions until Flush.
type manualAnimator struct {
	calls   []animCall
	pending []func()
}

type animCall struct {
	d        time.Duration
	from, to Pose
}

func (m *manualAnimator) Animate(d time.Duration, from, to Pose, completion func()) {
	m.calls = append(m.calls, animCall{d: d, from: from, to: to})
	m.pending = append(m.pending, completion)
}

// Flush completes pending animations, including ones started by
// completions, until none remain.
func (m *manualAnimator) Flush() {
	for len(m.pending) > 0 {
		fn := m.pending[0]
		m.pending = m.pending[1:]
		fn()
	}
}

// Step completes exactly one pending animation.
func (m *manualAnimator) Step() {
	if len(m.pending) == 0 {
		return
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	fn()
}

// lineMeasurer gives every 10 characters one 20-unit line, ignoring width.
type lineMeasurer struct{}

func (lineMeasurer) Measure(text string, _ Font, maxWidth float64) Size {
	if text == "" {
		return Size{}
	}
	lines := 0
	for _, l := range strings.Split(text, "\n") {
		lines += (len(l) + 9) / 10
		if len(l) == 0 {
			lines++
		}
	}
	return Size{W: maxWidth, H: float64(lines) * 20}
}

// fixedMeasurer returns the height registered for a text.
type fixedMeasurer map[string]float64

func (m fixedMeasurer) Measure(text string, _ Font, maxWidth float64) Size {
	return Size{W: maxWidth, H: m[text]}
}

type recordingTarget struct {
	selectors []string
}

func (r *recordingTarget) Perform(selector string) {
	r.selectors = append(r.selectors, selector)
}

type fixedCustom Size

func (c fixedCustom) Size() Size { return Size(c) }

func newTestAlert(title, subtitle string, s Surface, opts ...Option) *Alert {
	base := []Option{
		WithSurface(s),
		WithMeasurer(lineMeasurer{}),
		WithRegistry(NewRegistry()),
		WithIconProvider(NewStyleKit(nil)),
	}
	return New(title, subtitle, append(base, opts...)...)
}
