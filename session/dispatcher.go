package session

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/LokeshReddy2201/FUTURE-FS-03/shop"
)

type command struct {
	usage   string
	minArgs int
	run     func(s *Session, args []string) error
}

var (
	commands     map[string]command
	commandOrder []string
)

func register(name string, c command) {
	commands[name] = c
	commandOrder = append(commandOrder, name)
}

func init() {
	commands = make(map[string]command)
	register("list", command{usage: "list", run: (*Session).cmdList})
	register("search", command{usage: "search <text>", run: (*Session).cmdSearch})
	register("category", command{usage: "category <name>", run: (*Session).cmdCategory})
	register("sort", command{usage: "sort <key>", minArgs: 1, run: (*Session).cmdSort})
	register("reset", command{usage: "reset", run: (*Session).cmdReset})
	register("categories", command{usage: "categories", run: (*Session).cmdCategories})
	register("add", command{usage: "add <product-id>", minArgs: 1, run: (*Session).cmdAdd})
	register("remove", command{usage: "remove <product-id>", minArgs: 1, run: (*Session).cmdRemove})
	register("qty", command{usage: "qty <product-id> <quantity>", minArgs: 2, run: (*Session).cmdQuantity})
	register("clear", command{usage: "clear", run: (*Session).cmdClear})
	register("cart", command{usage: "cart", run: (*Session).cmdCart})
	register("help", command{usage: "help", run: (*Session).cmdHelp})
	register("quit", command{usage: "quit", run: func(*Session, []string) error { return ErrQuit }})
}

func (s *Session) cmdList(_ []string) error {
	products, err := s.Catalog.Filter(s.Filter)
	if err != nil {
		return err
	}
	return writeProducts(s.out, products)
}

// cmdSearch with no text clears both filters.
func (s *Session) cmdSearch(args []string) error {
	q := strings.Join(args, " ")
	s.logger.Info("searching", zap.String("query", q))
	s.Filter.SetQuery(q)
	return s.cmdList(nil)
}

func (s *Session) cmdCategory(args []string) error {
	c := strings.Join(args, " ")
	s.logger.Info("selecting category", zap.String("category", c))
	s.Filter.SetCategory(c)
	return s.cmdList(nil)
}

func (s *Session) cmdSort(args []string) error {
	if err := s.Filter.SetSort(args[0]); err != nil {
		return err
	}
	s.logger.Info("sorting", zap.Stringer("sort", s.Filter.Sort))
	return s.cmdList(nil)
}

func (s *Session) cmdReset(_ []string) error {
	s.Filter.Reset()
	return s.cmdList(nil)
}

func (s *Session) cmdCategories(_ []string) error {
	return writeCategories(s.out, s.Catalog.Categories())
}

func (s *Session) cmdAdd(args []string) error {
	p, ok := s.Catalog.Lookup(args[0])
	if !ok {
		return shop.NewFailedPreconditionf("%s: %s", ErrMsgProductNotFound, args[0])
	}
	s.logger.Info("adding item", zap.String("product_id", p.ID))
	s.Cart.Add(p)
	return writeCart(s.out, s.Cart)
}

func (s *Session) cmdRemove(args []string) error {
	s.logger.Info("removing item", zap.String("product_id", args[0]))
	s.Cart.Remove(args[0])
	return writeCart(s.out, s.Cart)
}

func (s *Session) cmdQuantity(args []string) error {
	q, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return shop.NewInvalidArgumentf("%s: %s", ErrMsgQuantityNotNumber, args[1])
	}
	s.logger.Info("updating quantity", zap.String("product_id", args[0]), zap.Int64("new_quantity", q))
	s.Cart.SetQuantity(args[0], int32(q))
	return writeCart(s.out, s.Cart)
}

func (s *Session) cmdClear(_ []string) error {
	s.logger.Info("clearing cart")
	s.Cart.Clear()
	return writeCart(s.out, s.Cart)
}

func (s *Session) cmdCart(_ []string) error {
	return writeCart(s.out, s.Cart)
}

func (s *Session) cmdHelp(_ []string) error {
	for _, name := range commandOrder {
		if _, err := s.out.Write([]byte("  " + commands[name].usage + "\n")); err != nil {
			return err
		}
	}
	return nil
}
