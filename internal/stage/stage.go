package stage

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/agentx-labs/filestage/internal/token"
	"github.com/spf13/afero"
)

// Stager hands out Builders bound to one set of collaborators.
type Stager struct {
	resolver area.Resolver
	fs       afero.Fs
	tokens   token.Generator
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Stager.
type Option func(*Stager)

// WithFs sets the filesystem files are created on.
func WithFs(fs afero.Fs) Option {
	return func(s *Stager) { s.fs = fs }
}

// WithTokens sets the unique-folder token generator.
func WithTokens(g token.Generator) Option {
	return func(s *Stager) { s.tokens = g }
}

// WithClock sets the clock used for placeholder names.
func WithClock(now func() time.Time) Option {
	return func(s *Stager) { s.now = now }
}

// WithLogger sets the logger for resolution and import decisions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stager) { s.logger = l }
}

// New returns a Stager using resolver for area roots. Without options it
// works on the host filesystem with clock-based tokens.
func New(resolver area.Resolver, opts ...Option) *Stager {
	s := &Stager{
		resolver: resolver,
		fs:       afero.NewOsFs(),
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tokens == nil {
		s.tokens = token.NewClockHex(s.now)
	}
	return s
}

// Fs returns the filesystem the Stager works on.
func (s *Stager) Fs() afero.Fs { return s.fs }

// ForName returns a Builder for name, targeting the session area inside a
// unique folder. The name is a single path element: blank names, "." and
// "..", and names containing a path separator such as "sub/x.txt" are
// rejected with ErrInvalidArgument.
func (s *Stager) ForName(name string) (*Builder, error) {
	if err := validateName(name); err != nil {
		return nil, invalidArgument("stage", strconv.Quote(name), err)
	}
	return newBuilder(s, name), nil
}

// Empty returns a Builder for a placeholder named temp<epochMillis>.temp,
// targeting the session area inside a unique folder.
func (s *Stager) Empty() *Builder {
	name := "temp" + strconv.FormatInt(s.now().UnixMilli(), 10) + ".temp"
	return newBuilder(s, name)
}

var errEmptyName = errors.New("file name should not be empty")

func validateName(name string) error {
	if isBlank(name) {
		return errEmptyName
	}
	if name == "." || name == ".." {
		return fmt.Errorf("file name %q is reserved", name)
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("file name %q must not contain a path separator", name)
	}
	return nil
}

// isBlank treats a name as blank when every rune is a control character or
// space (U+0000 to U+0020). Other Unicode spaces count as content.
func isBlank(name string) bool {
	return strings.TrimFunc(name, func(r rune) bool { return r <= ' ' }) == ""
}
