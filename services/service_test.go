package services

import (
	"fmt"
	"strings"
	"testing"

	"grillpos/entity"
	"grillpos/repository"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a named in-memory database so connections from the pool see
// the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Employee{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Ingredient{}, &entity.RecipeItem{},
		&entity.TransactionStatus{}, &entity.Transaction{},
		&entity.TransactionItem{}, &entity.TransactionItemRemoval{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fixture is a tiny menu: a burger with removable toppings and a hot dog, with
// shared packaging so consumption aggregates across lines.
type fixture struct {
	t   *testing.T
	db  *gorm.DB
	svc *TransactionService

	burger entity.MenuItem
	hotdog entity.MenuItem

	bun     entity.Ingredient
	patty   entity.Ingredient
	pickles entity.Ingredient
	onions  entity.Ingredient
	frank   entity.Ingredient
	bag     entity.Ingredient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	mustCreate := func(v any) {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	mustCreate(&entity.TransactionStatus{StatusName: "in progress"})
	mustCreate(&entity.TransactionStatus{StatusName: "fulfilled"})

	cat := entity.Category{CategoryName: "Burgers"}
	mustCreate(&cat)

	f := &fixture{t: t, db: db}

	ingred := func(name string) entity.Ingredient {
		i := entity.Ingredient{IngredientName: name, Units: 100, MinUnits: 10, Price: 25}
		mustCreate(&i)
		return i
	}
	f.bun = ingred("Buns")
	f.patty = ingred("Beef Patties")
	f.pickles = ingred("Pickles")
	f.onions = ingred("Onions")
	f.frank = ingred("Franks")
	f.bag = ingred("Bags")

	f.burger = entity.MenuItem{ItemName: "Classic Burger", Price: 500, CategoryID: cat.ID}
	mustCreate(&f.burger)
	f.hotdog = entity.MenuItem{ItemName: "Hot Dog", Price: 300, CategoryID: cat.ID}
	mustCreate(&f.hotdog)

	recipe := func(m entity.MenuItem, i entity.Ingredient, qty int, removable bool) {
		mustCreate(&entity.RecipeItem{MenuItemID: m.ID, IngredientID: i.ID, Quantity: qty, Removable: removable})
	}
	recipe(f.burger, f.bun, 1, false)
	recipe(f.burger, f.patty, 1, false)
	recipe(f.burger, f.pickles, 1, true)
	recipe(f.burger, f.onions, 1, true)
	recipe(f.burger, f.bag, 1, false)
	recipe(f.hotdog, f.frank, 1, false)
	recipe(f.hotdog, f.bag, 1, false)

	f.svc = NewTransactionService(
		db,
		repository.NewTransactionRepository(db),
		repository.NewMenuRepository(db),
		repository.NewInventoryRepository(db),
		825,
		zap.NewNop(),
	)
	return f
}

func (f *fixture) count(i entity.Ingredient) int {
	f.t.Helper()
	n, err := f.svc.Ledger.CurrentCount(i.ID)
	if err != nil {
		f.t.Fatalf("current count %s: %v", i.IngredientName, err)
	}
	return n
}

func (f *fixture) setUnits(i entity.Ingredient, units int) {
	f.t.Helper()
	if err := f.db.Model(&entity.Ingredient{}).Where("id = ?", i.ID).
		Update("units", units).Error; err != nil {
		f.t.Fatalf("set units: %v", err)
	}
}
