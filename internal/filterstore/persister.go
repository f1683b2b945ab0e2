package filterstore

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"io.winapps.foodshare/internal/debounce"
	"io.winapps.foodshare/internal/metrics"
	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	"io.winapps.foodshare/internal/postfilter"
)

const writeTimeout = 5 * time.Second

// roleState tracks one dashboard's writes. gen is bumped by every Save and Clear; a write
// only reaches the store while its gen is still current, and writeMu keeps store writes for
// the role in submission order.
type roleState struct {
	writeMu sync.Mutex

	gen     uint64
	last    postfilter.FilterSpec
	hasLast bool
	pending *postfilter.FilterSpec
}

// Persister writes dashboard specs through to a Store. Edits that only touch the search
// text are debounced per role so a burst of keystrokes costs one write; any other edit
// cancels the pending write and is stored immediately. Last write wins.
type Persister struct {
	store     Store
	debouncer *debounce.Debouncer
	logger    *zap.SugaredLogger

	mu    sync.Mutex
	roles map[dashboardmodels.Role]*roleState
}

func NewPersister(store Store, delay time.Duration, logger *zap.SugaredLogger) *Persister {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Persister{
		store:     store,
		debouncer: debounce.New(delay),
		logger:    logger,
		roles:     make(map[dashboardmodels.Role]*roleState),
	}
}

// state must be called with p.mu held.
func (p *Persister) state(role dashboardmodels.Role) *roleState {
	st, ok := p.roles[role]
	if !ok {
		st = &roleState{}
		p.roles[role] = st
	}
	return st
}

// Load returns the spec whose debounced write is still pending, otherwise whatever the
// store holds.
func (p *Persister) Load(ctx context.Context, role dashboardmodels.Role) (postfilter.FilterSpec, bool, error) {
	p.mu.Lock()
	if st, ok := p.roles[role]; ok && st.pending != nil {
		spec := *st.pending
		p.mu.Unlock()
		return spec, true, nil
	}
	p.mu.Unlock()
	return p.store.Load(ctx, role)
}

// Save records spec for role. It reports whether the write was deferred.
func (p *Persister) Save(ctx context.Context, role dashboardmodels.Role, spec postfilter.FilterSpec) (bool, error) {
	spec = postfilter.NormalizeSpec(spec)
	spec.Page = 0

	p.mu.Lock()
	st := p.state(role)
	prev, had := st.last, st.hasLast
	st.gen++
	gen := st.gen
	st.last, st.hasLast = spec, true

	if had && onlySearchChanged(prev, spec) {
		pending := spec
		st.pending = &pending
		p.debouncer.Trigger(role.String(), func() { p.write(role, gen, spec) })
		p.mu.Unlock()
		return true, nil
	}

	st.pending = nil
	p.debouncer.Cancel(role.String())
	p.mu.Unlock()

	st.writeMu.Lock()
	defer st.writeMu.Unlock()

	if !p.current(st, gen) {
		metrics.FilterWrites.WithLabelValues(role.String(), "immediate", "superseded").Inc()
		return false, nil
	}
	if err := p.store.Save(ctx, role, spec); err != nil {
		p.mu.Lock()
		if st.gen == gen {
			st.last, st.hasLast = prev, had
		}
		p.mu.Unlock()
		metrics.FilterWrites.WithLabelValues(role.String(), "immediate", "error").Inc()
		return false, err
	}
	metrics.FilterWrites.WithLabelValues(role.String(), "immediate", "ok").Inc()
	return false, nil
}

// Clear drops any pending write and the stored spec for role.
func (p *Persister) Clear(ctx context.Context, role dashboardmodels.Role) error {
	p.mu.Lock()
	st := p.state(role)
	st.gen++
	gen := st.gen
	st.last, st.hasLast = postfilter.FilterSpec{}, false
	st.pending = nil
	p.debouncer.Cancel(role.String())
	p.mu.Unlock()

	st.writeMu.Lock()
	defer st.writeMu.Unlock()

	if !p.current(st, gen) {
		return nil
	}
	return p.store.Clear(ctx, role)
}

// Flush writes every pending spec now.
func (p *Persister) Flush() {
	p.debouncer.Flush()
}

// Close flushes pending writes and stops accepting deferred ones.
func (p *Persister) Close() {
	p.debouncer.Flush()
	p.debouncer.Stop()
}

func (p *Persister) current(st *roleState, gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return st.gen == gen
}

func (p *Persister) write(role dashboardmodels.Role, gen uint64, spec postfilter.FilterSpec) {
	p.mu.Lock()
	st := p.state(role)
	p.mu.Unlock()

	st.writeMu.Lock()
	defer st.writeMu.Unlock()

	if !p.current(st, gen) {
		metrics.FilterWrites.WithLabelValues(role.String(), "debounced", "superseded").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	err := p.store.Save(ctx, role, spec)

	// Reads go back to the store once this spec has been written or has failed to be.
	p.mu.Lock()
	if st.gen == gen {
		st.pending = nil
	}
	p.mu.Unlock()

	if err != nil {
		metrics.FilterWrites.WithLabelValues(role.String(), "debounced", "error").Inc()
		p.logger.Errorw("failed to persist debounced filters", "role", role, "error", err)
		return
	}
	metrics.FilterWrites.WithLabelValues(role.String(), "debounced", "ok").Inc()
	p.logger.Debugw("persisted debounced filters", "role", role, "search", spec.Search)
}

func onlySearchChanged(prev, next postfilter.FilterSpec) bool {
	if prev.Search == next.Search {
		return false
	}
	prev.Search = next.Search
	return prev == next
}
