// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package csprng

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/hardenedrand/csprng/internal/egd"
	"github.com/hardenedrand/csprng/internal/entropy"
	"github.com/hardenedrand/csprng/internal/pagelock"
)

// State is the controller over a live generator: spec §3.2's OuterState,
// owning exactly one RngState allocated in a locked, fork-protected page.
// The zero value is not usable; construct one with New.
type State struct {
	mu mutex

	cfg Config

	page pagelock.Page
	rng  *rngState

	pid                 int
	forkCount           uint32
	drawsSinceForkCheck uint64
	seeding             bool

	entropyStatus entropy.Status
	seedCounter   uint32

	egdClient *egd.Client

	closed bool
}

// asRngState views a page's backing bytes as an *rngState, so that
// page-level zeroing the OS performs after fork (MADV_WIPEONFORK) is
// directly observable as a cleared magic field without any extra copy.
func asRngState(b []byte) *rngState {
	if len(b) < int(unsafe.Sizeof(rngState{})) {
		panic("csprng: page too small for rngState")
	}
	return (*rngState)(unsafe.Pointer(unsafe.SliceData(b)))
}

// New allocates and seeds a fresh State, applying opts over
// DefaultConfig(). It is the nonaborting counterpart of spec §4.7's init:
// on entropy starvation or allocation failure it retries up to
// Config.MaxInitRetries times before returning an error, rather than
// aborting the process.
func New(opts ...Option) (*State, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	st := &State{cfg: cfg}
	st.egdClient = egd.NewClient(cfg.EGDNetwork, cfg.EGDAddress, cfg.EGDTimeout)

	var lastErr error
	for attempt := 0; attempt < cfg.MaxInitRetries; attempt++ {
		if err := st.init(); err != nil {
			lastErr = err
			continue
		}
		return st, nil
	}
	return nil, fmt.Errorf("csprng: New: %w", lastErr)
}

// init implements spec §4.7's init(state): allocate a fresh RngState page,
// request entropy from the dispatcher, seed the stream via hash->setkey,
// stamp magic, record pid, and set entropy_status from the dispatcher.
func (st *State) init() error {
	if err := RunSelfTests(); err != nil {
		return fmt.Errorf("self-test failed: %w", err)
	}

	page, err := pagelock.New()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAllocFailure, err)
	}

	rng := asRngState(page.Bytes())
	resetRngState(rng)

	st.page = page
	st.rng = rng
	st.seeding = false
	st.seedCounter = 0

	entropyBuf := make([]byte, digestLen)
	n, status := entropy.Collect(entropyBuf, st.sourceTable())
	st.entropyStatus = status
	if n < st.cfg.EntropyMinLen {
		page.Close()
		st.page = nil
		st.rng = nil
		return ErrEntropyStarved
	}

	key, err := blake2Compress(entropyBuf, st.cfg.Personalization)
	if err != nil {
		page.Close()
		st.page = nil
		st.rng = nil
		return err
	}
	defer secureZero(key)

	if err := rng.setkey(key[:keyLen]); err != nil {
		page.Close()
		st.page = nil
		st.rng = nil
		return err
	}
	rng.magic = rngMagic
	st.seedCounter = 1
	st.pid = currentPID()
	st.forkCount = 0
	st.drawsSinceForkCheck = 0

	return nil
}

// sourceTable builds the entropy source list for this State's Collect
// calls, wiring in the EGD client (if configured) as a Source and
// honoring DisableKludge.
func (st *State) sourceTable() []entropy.Source {
	var egdSource entropy.Source
	if st.egdClient != nil {
		client := st.egdClient
		egdSource = entropy.Source{
			Name:  "egd",
			Group: entropy.GroupEGD,
			Fn: func(out []byte) entropy.Result {
				n, err := client.Read(out)
				if err != nil {
					return entropy.Result{Outcome: entropy.OutcomeFailed}
				}
				if n <= 0 {
					return entropy.Result{Outcome: entropy.OutcomeFailed}
				}
				if n < len(out) {
					return entropy.Result{Outcome: entropy.OutcomePartial, N: n}
				}
				return entropy.Result{Outcome: entropy.OutcomeFull, N: n}
			},
		}
	}
	return entropy.DefaultSources(egdSource, st.cfg.DisableKludge)
}

// needReinit implements spec §4.5's lifecycle predicate: if the platform
// guarantees page-inheritance-zero, a stale magic alone is conclusive;
// otherwise fall back to comparing pid, throttled by
// Config.ForkDetectionInterval so the getpid() syscall isn't paid on every
// single draw when the caller has opted into that tradeoff.
func (st *State) needReinit() bool {
	if st.rng == nil || st.page == nil {
		return true
	}
	if st.rng.magic != rngMagic {
		return true
	}
	if st.page.InheritsZero() {
		return false
	}
	if st.cfg.ForkDetectionInterval > 0 {
		st.drawsSinceForkCheck++
		if st.drawsSinceForkCheck < st.cfg.ForkDetectionInterval {
			return false
		}
		st.drawsSinceForkCheck = 0
	}
	return currentPID() != st.pid
}

// reinit tears down any existing (possibly stale, post-fork) state and
// reallocates, per spec §4.5/§4.7's POSTFORK -> SEEDED transition.
func (st *State) reinit() error {
	if st.page != nil {
		// The child's page may already be zeroed by the OS (fork
		// inheritance) or may still hold the parent's live bytes if
		// inheritance-zero isn't available; either way it must not be
		// reused, only released.
		_ = st.page.Close()
		st.page = nil
		st.rng = nil
	}
	return st.init()
}

// seed implements spec §4.7's seed(state, release_lock): derive fresh key
// material by mixing DIGEST_LEN bytes drawn from the current stream (both
// before and after the entropy collection window, so any addrandom
// contributions that land during an unlocked collection are captured),
// with freshly collected entropy in between.
func (st *State) seed(releaseLock bool) error {
	entropyBuf := make([]byte, digestLen*3)
	defer secureZero(entropyBuf)

	if err := st.rng.draw(entropyBuf[:digestLen]); err != nil {
		return err
	}

	st.seeding = true
	st.rng.count = 0

	if releaseLock {
		st.mu.Unlock()
	}
	n, status := entropy.Collect(entropyBuf[digestLen:digestLen*2], st.sourceTable())
	if releaseLock {
		st.mu.Lock()
	}
	st.entropyStatus = status

	if n < st.cfg.EntropyMinLen {
		// Per spec §9's Open Question resolution: leave count such that
		// the next draw retries a soft reseed immediately, rather than
		// waiting a full RESEED_AFTER_BLOCKS cycle with a known-bad
		// collection.
		st.rng.count = st.cfg.ReseedAfterBlocks + 1
		st.seeding = false
		return ErrEntropyStarved
	}

	if err := st.rng.draw(entropyBuf[digestLen*2:]); err != nil {
		st.seeding = false
		return err
	}

	key, err := blake2Compress(entropyBuf, st.cfg.Personalization)
	if err != nil {
		st.seeding = false
		return err
	}
	defer secureZero(key)

	if err := st.rng.setkey(key[:keyLen]); err != nil {
		st.seeding = false
		return err
	}

	st.seedCounter++
	st.seeding = false
	return nil
}

// maybeSoftReseed implements spec §4.7's soft reseed trigger: if the
// buffer has been refilled more than ReseedAfterBlocks times since the
// last seed and a reseed is not already underway, reseed with the lock
// released during entropy collection.
func (st *State) maybeSoftReseed() {
	if st.rng.count > st.cfg.ReseedAfterBlocks && !st.seeding {
		_ = st.seed(true)
	}
}

// ensureLive reinitializes the generator if needed, per spec §4.5's
// NEED_REINIT check performed at the entry of every draw under lock.
func (st *State) ensureLive() error {
	if st.closed {
		return ErrTornDown
	}
	if st.needReinit() {
		return st.reinit()
	}
	return nil
}

// addRandom implements spec §4.7's addrandom: compose
// stream_bytes(DIGEST_LEN) || H(inp) and rekey to H(that blob). It does
// not touch entropy_status.
func (st *State) addRandom(inp []byte) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := st.ensureLive(); err != nil {
		return err
	}

	hashed, err := blake2Compress(inp, nil)
	if err != nil {
		return err
	}

	blob := make([]byte, digestLen+len(hashed))
	defer secureZero(blob)
	if err := st.rng.draw(blob[:digestLen]); err != nil {
		return err
	}
	copy(blob[digestLen:], hashed)

	key, err := blake2Compress(blob, st.cfg.Personalization)
	if err != nil {
		return err
	}
	defer secureZero(key)

	return st.rng.setkey(key[:keyLen])
}

// needReseed implements spec §4.7's need_reseed: invalidates the magic so
// the next call reinitializes.
func (st *State) needReseed() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.rng != nil {
		secureZeroUint32(&st.rng.magic)
	}
}

// teardown implements spec §4.7's teardown: destroy the lock (a no-op in
// Go; the mutex is simply abandoned), wipe and free the RngState, clear
// magic.
func (st *State) teardown() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.page == nil {
		st.closed = true
		return nil
	}
	secureZeroUint32(&st.rng.magic)
	err := st.page.Close()
	st.page = nil
	st.rng = nil
	st.closed = true
	return err
}

// status returns the current entropy status, matching spec §4.7's status
// draw entry point (-2 on init failure is represented by an error return
// instead of a sentinel, per this package's explicit-error-return idiom).
func (st *State) status() (entropy.Status, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.ensureLive(); err != nil {
		return 0, err
	}
	return st.entropyStatus, nil
}

// setEGDAddress reconfigures the EGD endpoint used by future entropy
// collections.
func (st *State) setEGDAddress(network, address string, timeout time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if timeout <= 0 {
		timeout = st.cfg.EGDTimeout
	}
	st.cfg.EGDNetwork = network
	st.cfg.EGDAddress = address
	st.cfg.EGDTimeout = timeout
	st.egdClient = egd.NewClient(network, address, timeout)
}
