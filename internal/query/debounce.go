package query

import (
	"sync"
	"time"
)

// DefaultDebounce — задержка пересчёта при вводе поискового запроса.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer откладывает вызов функции: каждый Trigger сбрасывает таймер,
// выполняется только последний вызов после паузы.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer создаёт Debouncer с указанной задержкой.
// Неположительная задержка заменяется на DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger планирует вызов fn, отменяя ранее запланированный.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop отменяет запланированный вызов, если он есть.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
