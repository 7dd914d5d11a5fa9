package builtin

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/kasuganosora/sqlhelpers/pkg/config"
)

// FunctionType tells scalar helpers from those that fold a list.
type FunctionType int

const (
	FunctionTypeScalar    FunctionType = iota // one value in, one value out
	FunctionTypeAggregate                     // folds a list or argument sequence
)

// Categories used by the built-in functions.
const (
	CategoryControl   = "control"
	CategoryString    = "string"
	CategoryAggregate = "aggregate"
	CategoryDate      = "date"
	CategoryList      = "list"
)

var (
	ErrFunctionNotFound = errors.New("function not found")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrArgumentType     = errors.New("unsupported argument type")
)

// FunctionSignature describes one accepted call shape.
type FunctionSignature struct {
	Name       string
	ReturnType string
	ParamTypes []string
	Variadic   bool
}

// FunctionHandle evaluates a call. A nil argument is an absent value.
type FunctionHandle func(args []interface{}) (interface{}, error)

// FunctionInfo is a registry entry.
type FunctionInfo struct {
	Name        string
	Type        FunctionType
	Signatures  []FunctionSignature
	Handler     FunctionHandle
	Description string
	Example     string
	Category    string
}

// FunctionRegistry maps lower-case SQL names to functions.
type FunctionRegistry struct {
	mu        sync.RWMutex
	functions map[string]*FunctionInfo
	logger    *slog.Logger
}

// NewFunctionRegistry creates an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions: make(map[string]*FunctionInfo),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewRegistry creates a registry holding every built-in helper, configured by
// opts. A nil logger discards output.
func NewRegistry(opts config.Options, logger *slog.Logger) *FunctionRegistry {
	r := NewFunctionRegistry()
	if logger != nil {
		r.logger = logger
	}
	h := &handlers{opts: opts, logger: r.logger}
	for _, group := range [][]*FunctionInfo{
		h.controlFunctions(),
		h.stringFunctions(),
		h.aggregateFunctions(),
		h.dateFunctions(),
		h.listFunctions(),
	} {
		for _, fn := range group {
			if err := r.Register(fn); err != nil {
				panic(err)
			}
		}
	}
	r.logger.Debug("builtin functions registered", "count", r.Count())
	return r
}

// Register adds or replaces a function.
func (r *FunctionRegistry) Register(info *FunctionInfo) error {
	if info == nil {
		return errors.New("function info cannot be nil")
	}
	if info.Name == "" {
		return errors.New("function name cannot be empty")
	}
	if info.Handler == nil {
		return errors.Newf("function %s: handler cannot be nil", info.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.functions[strings.ToLower(info.Name)] = info
	return nil
}

// Get looks a function up by name, ignoring case.
func (r *FunctionRegistry) Get(name string) (*FunctionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.functions[strings.ToLower(name)]
	return info, exists
}

// List returns every function ordered by name.
func (r *FunctionRegistry) List() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*FunctionInfo, 0, len(r.functions))
	for _, info := range r.functions {
		list = append(list, info)
	}
	sortByName(list)
	return list
}

// ListByCategory returns the functions of one category ordered by name.
func (r *FunctionRegistry) ListByCategory(category string) []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*FunctionInfo, 0)
	for _, info := range r.functions {
		if info.Category == category {
			list = append(list, info)
		}
	}
	sortByName(list)
	return list
}

// Categories returns the distinct categories in use, sorted.
func (r *FunctionRegistry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, info := range r.functions {
		if !seen[info.Category] {
			seen[info.Category] = true
			out = append(out, info.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Exists reports whether name is registered.
func (r *FunctionRegistry) Exists(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// Count returns the number of registered functions.
func (r *FunctionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}

// Unregister removes name and reports whether it was present.
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.functions[key]; exists {
		delete(r.functions, key)
		return true
	}
	return false
}

// Call evaluates the named function.
func (r *FunctionRegistry) Call(name string, args ...interface{}) (interface{}, error) {
	info, ok := r.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrFunctionNotFound, "%s", name)
	}
	result, err := info.Handler(args)
	if err != nil {
		r.logger.Debug("function call failed", "fn", info.Name, "err", err)
		return nil, err
	}
	return result, nil
}

func sortByName(list []*FunctionInfo) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}

var (
	defaultOnce     sync.Once
	defaultRegistry *FunctionRegistry
)

// Default returns the process-wide registry, built on first use from the
// configuration found by config.LoadConfigOrDefault.
func Default() *FunctionRegistry {
	defaultOnce.Do(func() {
		cfg := config.LoadConfigOrDefault()
		logger, err := cfg.Log.NewLogger(os.Stderr)
		if err != nil {
			logger = nil
		}
		defaultRegistry = NewRegistry(cfg.Functions, logger)
	})
	return defaultRegistry
}

// handlers carries the configuration the built-in handlers close over.
type handlers struct {
	opts   config.Options
	logger *slog.Logger
}

// arity checks len(args) against [lo, hi]; hi < 0 means unbounded.
func arity(name string, args []interface{}, lo, hi int) error {
	n := len(args)
	if n >= lo && (hi < 0 || n <= hi) {
		return nil
	}
	switch {
	case lo == hi:
		return errors.Wrapf(ErrArgumentCount, "%s() requires exactly %d argument(s), got %d", name, lo, n)
	case hi < 0:
		return errors.Wrapf(ErrArgumentCount, "%s() requires at least %d argument(s), got %d", name, lo, n)
	default:
		return errors.Wrapf(ErrArgumentCount, "%s() requires %d to %d arguments, got %d", name, lo, hi, n)
	}
}
