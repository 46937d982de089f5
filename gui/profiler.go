package gui

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	errCaptureCooldown  = errors.New("capture on cooldown")
	errAlreadyProfiling = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame rate
// drops.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          *zap.Logger
}

// NewProfiler creates a new profiler writing into dir.
func NewProfiler(dir string, logger *zap.Logger) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		logger:          logger,
	}
}

// CaptureProfile starts a background capture. It returns immediately.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return errors.Wrapf(errCaptureCooldown, "last capture was %v ago", since.Round(time.Millisecond))
	}
	if p.isProfiling {
		return errAlreadyProfiling
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return errors.Wrap(err, "create profiles dir")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("frame-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.logger.Warn("cpu profile failed", zap.Error(err))
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.logger.Warn("trace failed", zap.Error(err))
			}
		}()
		wg.Wait()

		p.logMemStats(baseName)
	}()

	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create profile file")
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return errors.Wrap(err, "start cpu profile")
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.logger.Info("cpu profile saved", zap.String("path", path))
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create trace file")
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return errors.Wrap(err, "start trace")
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.logger.Info("trace saved", zap.String("path", path))
	return nil
}

func (p *Profiler) logMemStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile captured",
		zap.String("name", baseName),
		zap.String("view", "go tool pprof -http=:8080 "+filepath.Join(p.profilesDir, baseName+".cpu.prof")),
		zap.Uint64("alloc_kb", m.Alloc/1024),
		zap.Uint64("sys_kb", m.Sys/1024),
		zap.Uint32("num_gc", m.NumGC),
		zap.Uint64("heap_objects", m.HeapObjects),
	)
}

// frameMonitor flags sustained drops in ticks per second, ignoring the
// warm-up period after launch and rate-limiting repeated reports.
type frameMonitor struct {
	threshold float64
	warmup    time.Duration
	cooldown  time.Duration
	started   time.Time
	lastDrop  time.Time
}

func newFrameMonitor(now time.Time, threshold float64) *frameMonitor {
	return &frameMonitor{
		threshold: threshold,
		warmup:    3 * time.Second,
		cooldown:  10 * time.Second,
		started:   now,
	}
}

// Observe reports whether tps counts as a new frame drop at time now.
func (m *frameMonitor) Observe(now time.Time, tps float64) bool {
	if tps >= m.threshold || now.Sub(m.started) < m.warmup {
		return false
	}
	if !m.lastDrop.IsZero() && now.Sub(m.lastDrop) < m.cooldown {
		return false
	}
	m.lastDrop = now
	return true
}
