// Package settlement turns a validated pledge into a committed ledger entry
// through a staged, cancellable pipeline. Validation failures reject the
// submission up front; once staged, the process walks a fixed sequence of
// phases and commits at the end unless canceled. The commit is the only point
// at which ledger state changes.
package settlement

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/pkg/ident"
	"go.uber.org/zap"
)

type State string

const (
	StateStaged     State = "staged"
	StateFinalizing State = "finalizing"
	StateCommitted  State = "committed"
	StateCanceled   State = "canceled"
)

// Phases is the ordered settlement pipeline. Phases execute strictly in this
// order and none may be skipped.
var Phases = []string{
	"contract-creation",
	"payment-processing",
	"ledger-recording",
	"recipient-notification",
}

var (
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrInvalidDonor         = errors.New("donor name is required")
	ErrInsufficientBalance  = errors.New("insufficient wallet balance")
	ErrSettlementInProgress = errors.New("settlement already in progress")
	ErrNotCancellable       = errors.New("settlement is not cancellable")
	ErrNoSettlement         = errors.New("no settlement for donor")
)

type Request struct {
	DonorID        int
	OrganizationID string
	Amount         int64
	DonorName      string
	Message        string
}

// Event reports settlement progress to observers.
type Event struct {
	ProcessID string
	State     State
	Phase     string
	PhaseIdx  int
}

// Snapshot is a point-in-time view of a process, safe to hand to readers.
type Snapshot struct {
	ID              string
	DonorID         int
	State           State
	Phases          []string
	PhasesCompleted int
	Organization    string
	Amount          int64
}

type Catalog interface {
	Get(id string) (domain.Organization, error)
}

// BalanceSource reports a donor's current wallet balance.
type BalanceSource interface {
	WalletBalance(ctx context.Context, donorID int) (int64, error)
}

// Committer applies the commit side effects (ledger append, archive mirror,
// metrics recompute) as one atomic unit. The in-memory append cannot fail, so
// the hook carries no error path; durable-mirror failures are the committer's
// own concern.
type Committer interface {
	CommitDonation(ctx context.Context, d domain.Donation)
}

// Manager enforces single-flight settlement per donor and owns process ids.
type Manager struct {
	catalog  Catalog
	balances BalanceSource
	commit   Committer
	ids      *ident.Generator
	interval time.Duration

	mu       sync.Mutex
	inflight map[int]*Process
	last     map[int]*Process
}

func NewManager(catalog Catalog, balances BalanceSource, commit Committer, interval time.Duration) *Manager {
	return &Manager{
		catalog:  catalog,
		balances: balances,
		commit:   commit,
		ids:      ident.New(),
		interval: interval,
		inflight: make(map[int]*Process),
		last:     make(map[int]*Process),
	}
}

// Submit validates the request and, if it passes, stages a new process and
// starts its pipeline. Rejections return a typed error and leave no trace.
func (m *Manager) Submit(ctx context.Context, req Request) (*Process, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.DonorName == "" {
		return nil, ErrInvalidDonor
	}
	org, err := m.catalog.Get(req.OrganizationID)
	if err != nil {
		return nil, err
	}
	balance, err := m.balances.WalletBalance(ctx, req.DonorID)
	if err != nil {
		return nil, err
	}
	if req.Amount > balance {
		return nil, ErrInsufficientBalance
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.inflight[req.DonorID]; busy {
		return nil, ErrSettlementInProgress
	}

	runCtx, cancel := context.WithCancel(context.Background())
	p := &Process{
		id:     m.ids.Next(ident.PrefixTransaction),
		state:  StateStaged,
		req:    req,
		org:    org,
		cancel: cancel,
		done:   make(chan struct{}),
		events: make(chan Event, len(Phases)+2),
	}
	m.inflight[req.DonorID] = p
	m.last[req.DonorID] = p

	go m.run(runCtx, p)

	zap.L().Info("settlement staged",
		zap.String("processID", p.id),
		zap.Int("donorID", req.DonorID),
		zap.String("organization", req.OrganizationID),
		zap.Int64("amount", req.Amount),
	)
	return p, nil
}

// Cancel aborts the donor's in-flight settlement. Only staged or finalizing
// processes can be canceled; a canceled process commits nothing.
func (m *Manager) Cancel(donorID int) error {
	m.mu.Lock()
	p, ok := m.inflight[donorID]
	m.mu.Unlock()
	if !ok {
		return ErrNotCancellable
	}
	return p.Cancel()
}

// Status returns the donor's in-flight process, or the most recent one.
func (m *Manager) Status(donorID int) (Snapshot, error) {
	m.mu.Lock()
	p, ok := m.last[donorID]
	m.mu.Unlock()
	if !ok {
		return Snapshot{}, ErrNoSettlement
	}
	return p.Snapshot(), nil
}

func (m *Manager) run(ctx context.Context, p *Process) {
	defer p.close()

	var tick <-chan time.Time
	if m.interval > 0 {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, phase := range Phases {
		if tick != nil {
			select {
			case <-ctx.Done():
				m.finish(p, StateCanceled)
				return
			case <-tick:
			}
		} else if ctx.Err() != nil {
			m.finish(p, StateCanceled)
			return
		}

		p.completePhase(i, phase)
		zap.L().Debug("settlement phase complete",
			zap.String("processID", p.id),
			zap.String("phase", phase),
		)
	}

	// Last cancellation window closes here. From this point the commit side
	// effects are applied fully or not at all.
	if !p.beginCommit() {
		m.finish(p, StateCanceled)
		return
	}

	donation := domain.Donation{
		ID:               p.id,
		DonorID:          p.req.DonorID,
		OrganizationID:   p.org.ID,
		OrganizationName: p.org.Name,
		Amount:           p.req.Amount,
		DonorName:        p.req.DonorName,
		Message:          p.req.Message,
		Status:           domain.DonationStatusCompleted,
		Timestamp:        time.Now(),
	}
	m.commit.CommitDonation(context.Background(), donation)
	m.finish(p, StateCommitted)

	zap.L().Info("settlement committed",
		zap.String("processID", p.id),
		zap.Int64("amount", donation.Amount),
		zap.String("organization", donation.OrganizationID),
	)
}

func (m *Manager) finish(p *Process, terminal State) {
	p.setState(terminal)

	m.mu.Lock()
	if m.inflight[p.req.DonorID] == p {
		delete(m.inflight, p.req.DonorID)
	}
	m.mu.Unlock()

	if terminal == StateCanceled {
		zap.L().Info("settlement canceled", zap.String("processID", p.id))
	}
}

// Process is one staged settlement. All mutation happens on the manager's run
// goroutine; readers take snapshots.
type Process struct {
	id     string
	req    Request
	org    domain.Organization
	cancel context.CancelFunc
	done   chan struct{}
	events chan Event

	mu        sync.Mutex
	state     State
	completed int
}

func (p *Process) ID() string { return p.id }

// Events delivers phase-completion and terminal events. The channel is
// buffered for the whole pipeline and closed when the process finishes.
func (p *Process) Events() <-chan Event { return p.events }

// Done closes when the process reaches a terminal state.
func (p *Process) Done() <-chan struct{} { return p.done }

func (p *Process) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		ID:              p.id,
		DonorID:         p.req.DonorID,
		State:           p.state,
		Phases:          Phases,
		PhasesCompleted: p.completed,
		Organization:    p.org.Name,
		Amount:          p.req.Amount,
	}
}

// Cancel marks the process canceled and wakes its pipeline. The state flip
// and the commit decision share one mutex, so a Cancel that returns nil is
// guaranteed to have prevented the commit.
func (p *Process) Cancel() error {
	p.mu.Lock()
	if p.state != StateStaged && p.state != StateFinalizing {
		p.mu.Unlock()
		return ErrNotCancellable
	}
	p.state = StateCanceled
	p.mu.Unlock()

	p.cancel()
	return nil
}

// beginCommit claims the commit point. It fails if the process was canceled
// first; afterwards the process can no longer be canceled.
func (p *Process) beginCommit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateCanceled {
		return false
	}
	p.state = StateCommitted
	return true
}

func (p *Process) completePhase(idx int, phase string) {
	p.mu.Lock()
	if p.state == StateCanceled {
		p.mu.Unlock()
		return
	}
	p.state = StateFinalizing
	p.completed = idx + 1
	p.mu.Unlock()

	p.emit(Event{ProcessID: p.id, State: StateFinalizing, Phase: phase, PhaseIdx: idx})
}

func (p *Process) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()

	p.emit(Event{ProcessID: p.id, State: s, PhaseIdx: -1})
}

func (p *Process) emit(e Event) {
	select {
	case p.events <- e:
	default:
	}
}

func (p *Process) close() {
	close(p.events)
	close(p.done)
}
