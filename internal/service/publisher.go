package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/omerorhan/stay-pricing/internal/storage"
)

// Publisher keeps a shared rate table store in step with an upstream
// workbook. Replicas sharing the store elect one publisher through the
// Locker; the others stay idle until the lock frees up.
type Publisher struct {
	upstream Source
	target   storage.Importer
	locker   storage.Locker
	owner    string
	opts     *PublisherOptions

	isLeader bool
	mu       sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	started  bool
	startMu  sync.Mutex

	// Publication tracking
	lastDigest    string
	lastPublished time.Time
	publishes     int
	publishMu     sync.Mutex
}

// PublisherOptions configures a Publisher
type PublisherOptions struct {
	Sheet            string        `json:"sheet"`
	Interval         time.Duration `json:"interval"`
	LockTTL          time.Duration `json:"lockTTL"`
	ElectionInterval time.Duration `json:"electionInterval"`
	EnableLogging    bool          `json:"enableLogging"`
}

// DefaultPublisherOptions returns sensible default options
func DefaultPublisherOptions() *PublisherOptions {
	return &PublisherOptions{
		Sheet:            storage.DefaultSheet,
		Interval:         5 * time.Minute,
		LockTTL:          2 * time.Minute,
		ElectionInterval: 20 * time.Second,
		EnableLogging:    true,
	}
}

// PublisherOption is a function that configures publisher options
type PublisherOption func(*PublisherOptions)

// WithPublishSheet sets the sheet name written to the target
func WithPublishSheet(sheet string) PublisherOption {
	return func(opts *PublisherOptions) {
		if sheet != "" {
			opts.Sheet = sheet
		}
	}
}

// WithPublishInterval sets how often the leader re-reads the upstream table
func WithPublishInterval(interval time.Duration) PublisherOption {
	return func(opts *PublisherOptions) {
		if interval > 0 {
			opts.Interval = interval
		}
	}
}

// WithLockTTL sets the publish lock expiry and derives the election cadence from it
func WithLockTTL(ttl time.Duration) PublisherOption {
	return func(opts *PublisherOptions) {
		if ttl > 0 {
			opts.LockTTL = ttl
			opts.ElectionInterval = ttl / 3
		}
	}
}

// WithPublisherLogging enables/disables logging
func WithPublisherLogging(enabled bool) PublisherOption {
	return func(opts *PublisherOptions) {
		opts.EnableLogging = enabled
	}
}

// NewPublisher creates a publisher copying upstream into target. A nil
// locker means this process is the only publisher.
func NewPublisher(upstream Source, target storage.Importer, locker storage.Locker, options ...PublisherOption) (*Publisher, error) {
	if upstream == nil || target == nil {
		return nil, fmt.Errorf("publisher needs both an upstream source and a target")
	}
	if locker == nil {
		locker = storage.NewLocalLock()
	}

	opts := DefaultPublisherOptions()
	for _, option := range options {
		option(opts)
	}

	// Unique owner ID from hostname, PID and nanosecond timestamp
	hostname, _ := os.Hostname()
	owner := fmt.Sprintf("%s-%d-%d", hostname, os.Getpid(), time.Now().UnixNano())

	ctx, cancel := context.WithCancel(context.Background())
	return &Publisher{
		upstream: upstream,
		target:   target,
		locker:   locker,
		owner:    owner,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start begins leader election and publication in the background
func (p *Publisher) Start() error {
	p.startMu.Lock()
	defer p.startMu.Unlock()

	if p.started {
		return fmt.Errorf("publisher already started")
	}

	p.log("🚀 Starting publisher for sheet %s (owner: %s)", p.opts.Sheet, p.owner)

	p.wg.Add(1)
	go p.mainLoop()

	p.started = true
	return nil
}

// Stop shuts the publisher down and gives up the lock
func (p *Publisher) Stop() {
	p.log("🛑 Stopping publisher...")

	p.cancel()

	// Wait for goroutines with timeout to prevent infinite blocking
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		p.log("⚠️ Timeout waiting for goroutines to stop")
	}

	p.mu.Lock()
	wasLeader := p.isLeader
	p.isLeader = false
	p.mu.Unlock()

	if wasLeader {
		p.releaseLeadership()
	}
	p.log("✅ Publisher stopped")
}

// IsLeader returns whether this process currently publishes
func (p *Publisher) IsLeader() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isLeader
}

// Owner returns the lock owner ID of this process
func (p *Publisher) Owner() string {
	return p.owner
}

// Publishes returns how many times the table was written and when it last was
func (p *Publisher) Publishes() (int, time.Time) {
	p.publishMu.Lock()
	defer p.publishMu.Unlock()
	return p.publishes, p.lastPublished
}

// PublishOnce copies the upstream table into the target unless it is
// unchanged since the last publication. It reports whether it wrote.
func (p *Publisher) PublishOnce(ctx context.Context) (bool, error) {
	rows, err := p.upstream.FetchRows(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read upstream rate table: %w", err)
	}

	digest, err := rowsDigest(rows)
	if err != nil {
		return false, err
	}

	p.publishMu.Lock()
	defer p.publishMu.Unlock()

	if digest == p.lastDigest {
		present, err := p.refreshTarget(ctx)
		if err != nil {
			return false, err
		}
		if present {
			p.log("📝 Rate table unchanged (%d rows), skipping publish", len(rows))
			return false, nil
		}
		p.log("⚠️ Published rate table expired from target, republishing")
	}

	if err := p.target.ImportRows(ctx, p.opts.Sheet, rows); err != nil {
		return false, fmt.Errorf("failed to publish rate table: %w", err)
	}

	p.lastDigest = digest
	p.lastPublished = time.Now().UTC()
	p.publishes++
	p.log("📤 Published %d rows to sheet %s", len(rows), p.opts.Sheet)
	return true, nil
}

// refreshTarget extends an expiring target snapshot and reports whether
// it is still there. Targets that never expire always report true.
func (p *Publisher) refreshTarget(ctx context.Context) (bool, error) {
	refresher, ok := p.target.(storage.Refresher)
	if !ok {
		return true, nil
	}
	present, err := refresher.RefreshTable(ctx, p.opts.Sheet)
	if err != nil {
		return false, fmt.Errorf("failed to refresh published rate table: %w", err)
	}
	return present, nil
}

func rowsDigest(rows []Row) (string, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint rate table: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// mainLoop runs leader election until the publisher stops
func (p *Publisher) mainLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.opts.ElectionInterval)
	defer ticker.Stop()

	p.performLeaderElection()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.performLeaderElection()
		}
	}
}

func (p *Publisher) performLeaderElection() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isLeader {
		renewed, err := p.locker.RenewLock(p.ctx, p.owner, p.opts.LockTTL)
		if err != nil {
			p.log("⚠️ Failed to renew leadership: %v", err)
			p.isLeader = false
			return
		}
		if !renewed {
			p.log("👑 Leadership lost, becoming follower")
			p.isLeader = false
		}
		return
	}

	acquired, err := p.locker.AcquireLock(p.ctx, p.owner, p.opts.LockTTL)
	if err != nil {
		p.log("⚠️ Failed to acquire leadership: %v", err)
		return
	}
	if acquired {
		p.log("👑 Became leader, publishing every %v", p.opts.Interval)
		p.isLeader = true

		p.wg.Add(1)
		go p.leaderLoop()
	}
}

// leaderLoop publishes on every interval while this process leads
func (p *Publisher) leaderLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	for {
		if !p.IsLeader() {
			p.log("👑 No longer leader, stopping publication")
			return
		}
		if _, err := p.PublishOnce(p.ctx); err != nil {
			p.log("❌ %v", err)
		}

		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Publisher) releaseLeadership() {
	// The main context is already cancelled here
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.locker.ReleaseLock(ctx, p.owner); err != nil {
		p.log("⚠️ Failed to release leadership: %v", err)
	} else {
		p.log("👑 Leadership released")
	}
}

func (p *Publisher) log(format string, args ...interface{}) {
	if p.opts.EnableLogging {
		fmt.Printf("[Publisher] "+format+"\n", args...)
	}
}
