package mock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"menuapp/internal/db"
	applog "menuapp/internal/log"
	"menuapp/models"
)

// Fixed identifiers of the seeded records so tests and demos can address them.
var (
	LunchMenuID    = uuid.MustParse("6f1c2a3e-0d5b-4c61-9a51-2f0a7c3b9e01")
	SoupsSubmenuID = uuid.MustParse("6f1c2a3e-0d5b-4c61-9a51-2f0a7c3b9e11")
	BorschtDishID  = uuid.MustParse("6f1c2a3e-0d5b-4c61-9a51-2f0a7c3b9e21")
)

// Empty returns a private in-memory sqlite database with the schema migrated
// and no rows.
func Empty(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising empty mock database")

	dsn := fmt.Sprintf("file:menuapp-%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	// a single connection keeps the in-memory database alive and avoids
	// sqlite table locks between concurrent requests
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}
	return database, nil
}

// New returns an in-memory sqlite database seeded with a representative menu.
func New(ctx context.Context) (*gorm.DB, error) {
	database, err := Empty(ctx)
	if err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	menus := []models.Menu{
		{
			ID:          LunchMenuID,
			Title:       "Business lunch",
			Description: "Served on weekdays from noon till four.",
			Submenus: []models.Submenu{
				{
					ID:          SoupsSubmenuID,
					Title:       "Soups",
					Description: "Hot first courses.",
					Dishes: []models.Dish{
						{
							ID:          BorschtDishID,
							Title:       "Borscht",
							Description: "Beetroot soup with sour cream.",
							Price:       decimal.RequireFromString("6.50"),
						},
						{
							Title:       "Mushroom cream soup",
							Description: "Forest mushrooms and croutons.",
							Price:       decimal.RequireFromString("7.20"),
							Discount:    10,
						},
					},
				},
				{
					Title:       "Salads",
					Description: "Cold starters.",
					Dishes: []models.Dish{
						{
							Title:       "Caesar",
							Description: "Romaine, chicken, parmesan.",
							Price:       decimal.RequireFromString("8.90"),
						},
					},
				},
			},
		},
		{
			Title:       "Summer terrace",
			Description: "Seasonal drinks menu.",
			Submenus: []models.Submenu{
				{
					Title:       "Lemonades",
					Description: "House-made.",
					Dishes: []models.Dish{
						{
							Title:       "Tarragon lemonade",
							Description: "Half a litre.",
							Price:       decimal.RequireFromString("4.00"),
						},
					},
				},
			},
		},
	}

	for i := range menus {
		if err := database.WithContext(ctx).Create(&menus[i]).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
