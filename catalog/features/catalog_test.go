package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
	"github.com/LokeshReddy2201/FUTURE-FS-03/shop"
)

type catalogTestContext struct {
	catalog *catalog.Catalog
	filter  catalog.FilterState
	result  []catalog.Product
	err     error
}

func (c *catalogTestContext) reset() {
	c.catalog = nil
	c.filter = catalog.FilterState{}
	c.result = nil
	c.err = nil
}

func (c *catalogTestContext) theDefaultCatalog() error {
	c.catalog = catalog.DefaultCatalog()
	return nil
}

func (c *catalogTestContext) iFilterWith(query, category, sortName string) error {
	key, err := catalog.ParseSortKey(sortName)
	if err != nil {
		c.err = err
		return nil
	}
	c.result, c.err = catalog.FilterAndSort(c.catalog.Products(), query, category, key)
	return nil
}

func (c *catalogTestContext) theSearch(q string) error {
	c.filter.SetQuery(q)
	return nil
}

func (c *catalogTestContext) iSelectTheCategory(name string) error {
	c.filter.SetCategory(name)
	return nil
}

func idList(products []catalog.Product) string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return strings.Join(ids, ",")
}

func (c *catalogTestContext) theProductsAre(want string) error {
	if c.err != nil {
		return fmt.Errorf("expected result but got error: %v", c.err)
	}
	if got := idList(c.result); got != want {
		return fmt.Errorf("expected products %q, got %q", want, got)
	}
	return nil
}

func (c *catalogTestContext) noProductsAreShown() error {
	if c.err != nil {
		return fmt.Errorf("expected empty result but got error: %v", c.err)
	}
	if len(c.result) != 0 {
		return fmt.Errorf("expected no products, got %q", idList(c.result))
	}
	return nil
}

func (c *catalogTestContext) theFilterFailsWithStatus(statusName string) error {
	if c.err == nil {
		return errors.New("expected filter to fail but it succeeded")
	}
	cmdErr, ok := c.err.(*shop.CommandError)
	if !ok {
		return fmt.Errorf("expected CommandError, got %T", c.err)
	}
	if cmdErr.Code.String() != statusName {
		return fmt.Errorf("expected status %s, got %s", statusName, cmdErr.Code.String())
	}
	return nil
}

func (c *catalogTestContext) theSearchIsEmpty() error {
	if c.filter.Query != "" {
		return fmt.Errorf("expected empty search, got %q", c.filter.Query)
	}
	return nil
}

func (c *catalogTestContext) theFilteredProductsAre(want string) error {
	c.result, c.err = c.catalog.Filter(c.filter)
	return c.theProductsAre(want)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &catalogTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the default catalog$`, tc.theDefaultCatalog)
	ctx.Step(`^the search "([^"]*)"$`, tc.theSearch)

	// When steps
	ctx.Step(`^I filter with query "([^"]*)" category "([^"]*)" and sort "([^"]*)"$`, tc.iFilterWith)
	ctx.Step(`^I select the category "([^"]*)"$`, tc.iSelectTheCategory)

	// Then steps
	ctx.Step(`^the products are "([^"]*)"$`, tc.theProductsAre)
	ctx.Step(`^no products are shown$`, tc.noProductsAreShown)
	ctx.Step(`^the filter fails with status "([^"]*)"$`, tc.theFilterFailsWithStatus)
	ctx.Step(`^the search is empty$`, tc.theSearchIsEmpty)
	ctx.Step(`^the filtered products are "([^"]*)"$`, tc.theFilteredProductsAre)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/catalog.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
