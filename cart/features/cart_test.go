package features

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"

	cart "github.com/LokeshReddy2201/FUTURE-FS-03/cart/logic"
	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
)

type cartTestContext struct {
	products map[string]catalog.Product
	store    *cart.Store
	events   []cart.Event
	replayed *cart.Store
}

func (c *cartTestContext) reset() {
	c.products = make(map[string]catalog.Product)
	c.store = nil
	c.events = nil
	c.replayed = nil
}

func (c *cartTestContext) theCatalog(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		price, err := strconv.ParseInt(row.Cells[2].Value, 10, 64)
		if err != nil {
			return err
		}
		p := catalog.Product{
			ID:       row.Cells[0].Value,
			Name:     row.Cells[1].Value,
			Price:    price,
			Category: row.Cells[3].Value,
		}
		c.products[p.ID] = p
	}
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.store = cart.NewStore(cart.WithListener(func(e cart.Event) {
		c.events = append(c.events, e)
	}))
	return nil
}

func (c *cartTestContext) iAddProduct(id string) error {
	p, ok := c.products[id]
	if !ok {
		return fmt.Errorf("product %s not in test catalog", id)
	}
	c.store.Add(p)
	return nil
}

func (c *cartTestContext) iRemoveProduct(id string) error {
	c.store.Remove(id)
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfProductTo(id string, quantity int) error {
	c.store.SetQuantity(id, int32(quantity))
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.store.Clear()
	return nil
}

func (c *cartTestContext) iReplayTheRecordedEvents() error {
	c.replayed = cart.Replay(c.events)
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if !c.store.IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d lines", c.store.Len())
	}
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if c.store.Len() != n {
		return fmt.Errorf("expected %d lines, got %d", n, c.store.Len())
	}
	return nil
}

func (c *cartTestContext) productHasQuantity(id string, quantity int) error {
	line, ok := c.store.Line(id)
	if !ok {
		return fmt.Errorf("product %s not in cart", id)
	}
	if int(line.Quantity) != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, line.Quantity)
	}
	return nil
}

func (c *cartTestContext) productIsNotInTheCart(id string) error {
	if _, ok := c.store.Line(id); ok {
		return fmt.Errorf("expected product %s to be removed", id)
	}
	return nil
}

func (c *cartTestContext) theCartLinesAre(table *godog.Table) error {
	lines := c.store.Snapshot()
	want := table.Rows[1:]
	if len(lines) != len(want) {
		return fmt.Errorf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, row := range want {
		q, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		if lines[i].Product.ID != row.Cells[0].Value || int(lines[i].Quantity) != q {
			return fmt.Errorf("line %d: expected %s x%d, got %s x%d",
				i, row.Cells[0].Value, q, lines[i].Product.ID, lines[i].Quantity)
		}
	}
	return nil
}

func (c *cartTestContext) theTotalItemCountIs(n int) error {
	if c.store.TotalCount() != int64(n) {
		return fmt.Errorf("expected total count %d, got %d", n, c.store.TotalCount())
	}
	return nil
}

func (c *cartTestContext) theTotalPriceIs(total int) error {
	if c.store.TotalPrice() != int64(total) {
		return fmt.Errorf("expected total price %d, got %d", total, c.store.TotalPrice())
	}
	return nil
}

func (c *cartTestContext) cartEventsWereRecorded(n int) error {
	if len(c.events) != n {
		return fmt.Errorf("expected %d events, got %d", n, len(c.events))
	}
	return nil
}

func (c *cartTestContext) theReplayedCartMatchesTheCart() error {
	if c.replayed == nil {
		return errors.New("no replayed cart")
	}
	got, want := c.replayed.Snapshot(), c.store.Snapshot()
	if len(got) != len(want) {
		return fmt.Errorf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("line %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog:$`, tc.theCatalog)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add product "([^"]*)"$`, tc.iAddProduct)
	ctx.Step(`^I remove product "([^"]*)"$`, tc.iRemoveProduct)
	ctx.Step(`^I set the quantity of product "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^I replay the recorded events$`, tc.iReplayTheRecordedEvents)

	// Then steps
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^product "([^"]*)" has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^product "([^"]*)" is not in the cart$`, tc.productIsNotInTheCart)
	ctx.Step(`^the cart lines are:$`, tc.theCartLinesAre)
	ctx.Step(`^the total item count is (\d+)$`, tc.theTotalItemCountIs)
	ctx.Step(`^the total price is (\d+)$`, tc.theTotalPriceIs)
	ctx.Step(`^(\d+) cart events? (?:was|were) recorded$`, tc.cartEventsWereRecorded)
	ctx.Step(`^the replayed cart matches the cart$`, tc.theReplayedCartMatchesTheCart)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
