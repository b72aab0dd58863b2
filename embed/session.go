package embed

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/zeno-editor/zeno/internal/config"
	"github.com/zeno-editor/zeno/internal/display"
	"github.com/zeno-editor/zeno/internal/editor"
	"github.com/zeno-editor/zeno/internal/logging"
	"github.com/zeno-editor/zeno/internal/mode"
)

// Handle identifies one embedded session. Handles are opaque, start at
// 1 and are never reused; 0 is never a valid handle.
type Handle uint64

// InvalidHandle is returned by Create on failure.
const InvalidHandle Handle = 0

// session pairs an editor with the shell's cached current buffer. The
// cached ID is what every buffer-dependent operation resolves against;
// hosts hold only the Handle.
type session struct {
	ed      *editor.Editor
	current editor.BufferID
	cfg     config.Config
	log     *logging.Logger
}

// The registry is the only shared state in the package. Sessions
// themselves follow the single-threaded contract and take no locks.
var (
	registryMu sync.Mutex
	sessions   = make(map[Handle]*session)
	nextHandle Handle = 1
)

func register(s *session) Handle {
	registryMu.Lock()
	defer registryMu.Unlock()
	h := nextHandle
	nextHandle++
	sessions[h] = s
	return h
}

func lookup(h Handle) *session {
	registryMu.Lock()
	defer registryMu.Unlock()
	return sessions[h]
}

func unregister(h Handle) *session {
	registryMu.Lock()
	defer registryMu.Unlock()
	s := sessions[h]
	delete(sessions, h)
	return s
}

// Option configures session creation.
type Option func(*options)

type options struct {
	logOutput io.Writer
	display   display.Display
}

// WithLogOutput enables diagnostics to w at the configured log level.
// Without it the session is silent; an embedded library must not write
// to the host's streams uninvited.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// WithDisplay sets the display adapter invoked by Display. Defaults to
// a null adapter that records and discards.
func WithDisplay(d display.Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// newSession builds a fully wired session. Configuration problems fall
// back to defaults; only an unusable root fails creation.
func newSession(root string, opts ...Option) (*session, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, cfgErr := config.Load(root)

	log := logging.Null
	if o.logOutput != nil {
		log = logging.New(logging.ParseLevel(cfg.LogLevel), o.logOutput).
			WithComponent("embed").
			WithField("session", uuid.NewString())
	}
	if cfgErr != nil {
		log.Warn("config ignored: %v", cfgErr)
	}

	edOpts := []editor.Option{editor.WithLogger(log)}
	if o.display != nil {
		edOpts = append(edOpts, editor.WithDisplay(o.display))
	}

	ed, err := editor.New(root, edOpts...)
	if err != nil {
		return nil, err
	}

	// Vim registers first and is therefore the initial global mode.
	ed.RegisterMode(mode.NewVim())
	ed.RegisterMode(mode.NewStandard())
	if cfg.DefaultMode != mode.NameVim {
		if err := ed.SetGlobalMode(cfg.DefaultMode); err != nil {
			log.Warn("configured mode unavailable: %v", err)
		}
	}

	return &session{ed: ed, cfg: cfg, log: log}, nil
}
