package permissionlist_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/permissions/pkg/permission"
	"github.com/go-drift/permissions/pkg/permissionlist"
)

// fakePermission is a Descriptor whose requests complete only when the test
// answers them.
type fakePermission struct {
	kind permission.Kind

	mu       sync.Mutex
	status   permission.Status
	waiting  []func()
	requests int
	// onGrant runs when the request is answered, before done is called.
	onGrant func(permission.Status)
}

func newFake(kind permission.Kind) *fakePermission {
	return &fakePermission{kind: kind}
}

func (f *fakePermission) Kind() permission.Kind { return f.kind }

func (f *fakePermission) Status(ctx context.Context) permission.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakePermission) Request(ctx context.Context, done func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	f.waiting = append(f.waiting, done)
}

func (f *fakePermission) set(status permission.Status) {
	f.mu.Lock()
	f.status = status
	f.mu.Unlock()
}

// answer completes the oldest outstanding request with status.
func (f *fakePermission) answer(t *testing.T, status permission.Status) {
	t.Helper()
	f.mu.Lock()
	if len(f.waiting) == 0 {
		f.mu.Unlock()
		t.Fatalf("no outstanding request for %s", f.kind)
	}
	done := f.waiting[0]
	f.waiting = f.waiting[1:]
	f.status = status
	hook := f.onGrant
	f.mu.Unlock()

	if hook != nil {
		hook(status)
	}
	done()
}

func (f *fakePermission) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

type scheduledTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// manualScheduler records deferred actions and runs them on demand.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*scheduledTask
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &scheduledTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if task.fired || task.cancelled {
			return false
		}
		task.cancelled = true
		return true
	}
}

// fireAll runs every task that was not cancelled.
func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	var due []*scheduledTask
	for _, task := range s.tasks {
		if !task.cancelled && !task.fired {
			task.fired = true
			due = append(due, task)
		}
	}
	s.mu.Unlock()
	for _, task := range due {
		task.fn()
	}
}

func (s *manualScheduler) snapshot() []scheduledTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scheduledTask, len(s.tasks))
	for i, task := range s.tasks {
		out[i] = *task
	}
	return out
}

// manualForeground lets tests simulate the app returning to the foreground.
type manualForeground struct {
	mu       sync.Mutex
	handlers map[int]func()
	next     int
}

func (m *manualForeground) Subscribe(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handlers == nil {
		m.handlers = map[int]func(){}
	}
	id := m.next
	m.next++
	m.handlers[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.handlers, id)
	}
}

func (m *manualForeground) resume() {
	m.mu.Lock()
	var fns []func()
	for _, fn := range m.handlers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (m *manualForeground) subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handlers)
}

type harness struct {
	controller *permissionlist.Controller
	scheduler  *manualScheduler
	foreground *manualForeground
	haptics    int
	dismissals int
	settings   []permission.Kind
}

func newHarness(t *testing.T, descriptors []permission.Descriptor, opts ...permissionlist.Option) *harness {
	t.Helper()
	h := &harness{scheduler: &manualScheduler{}, foreground: &manualForeground{}}
	base := []permissionlist.Option{
		permissionlist.WithLogger(zerolog.Nop()),
		permissionlist.WithScheduler(h.scheduler),
		permissionlist.WithForeground(h.foreground),
		permissionlist.WithHaptics(func() { h.haptics++ }),
		permissionlist.WithDismissHandler(func() { h.dismissals++ }),
		permissionlist.WithSettingsHandler(func(k permission.Kind) { h.settings = append(h.settings, k) }),
	}
	c, err := permissionlist.New(descriptors, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.controller = c
	return h
}

func descriptors(fakes ...*fakePermission) []permission.Descriptor {
	out := make([]permission.Descriptor, len(fakes))
	for i, f := range fakes {
		out[i] = f
	}
	return out
}
