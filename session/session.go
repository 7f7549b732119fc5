// Package session ties one cart, one filter state and the catalog together
// for a single browsing session, and interprets text commands against them.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	cart "github.com/LokeshReddy2201/FUTURE-FS-03/cart/logic"
	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
	"github.com/LokeshReddy2201/FUTURE-FS-03/shop"
)

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

// Session owns the per-visitor state. It is not safe for concurrent use.
type Session struct {
	Catalog *catalog.Catalog
	Cart    *cart.Store
	Filter  catalog.FilterState

	logger *zap.Logger
	out    io.Writer
}

// Config carries the collaborators of a Session.
type Config struct {
	Catalog     *catalog.Catalog
	DefaultSort catalog.SortKey
	Logger      *zap.Logger
	Out         io.Writer
	// Events, when set, receives every cart event.
	Events cart.Listener
}

// New creates a session with an empty cart.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.DefaultCatalog()
	}

	opts := []cart.Option{cart.WithLogger(logger)}
	if cfg.Events != nil {
		opts = append(opts, cart.WithListener(cfg.Events))
	}
	store := cart.NewStore(opts...)

	return &Session{
		Catalog: cat,
		Cart:    store,
		Filter:  catalog.FilterState{Sort: cfg.DefaultSort},
		logger:  logger.With(zap.String("cart_id", store.ID())),
		out:     out,
	}
}

// Run executes commands read line by line from in until EOF, quit, or ctx
// is done. Rejected commands are reported to the output and do not stop the
// loop.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Execute interprets a single command line.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	h, ok := commands[name]
	if !ok {
		return shop.NewInvalidArgumentf("%s: %s", ErrMsgUnknownCommand, name)
	}
	if len(args) < h.minArgs {
		return shop.NewInvalidArgumentf("usage: %s", h.usage)
	}
	return h.run(s, args)
}
