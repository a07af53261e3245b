package importer

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	applog "menuapp/internal/log"
	"menuapp/models"
)

// Column positions of the sheet. A row is a menu, submenu or dish row
// depending on the first non-blank id column.
const (
	colA = iota
	colB
	colC
	colD
	colE
	colF
	colG
	columnCount
)

// Snapshot is the hierarchy described by one sheet.
type Snapshot struct {
	Menus    []models.Menu
	Submenus []models.Submenu
	Dishes   []models.Dish
	Ignored  int
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Round(2), nil
}

func parseDiscount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	discount := int(value)
	if discount < 0 {
		discount = 0
	}
	if discount > models.MaxDiscount {
		discount = models.MaxDiscount
	}
	return discount, nil
}

// ParseRows walks the sheet top to bottom. Submenu rows attach to the last
// menu row and dish rows to the last submenu row; rows with a malformed id
// are skipped together with everything nested below them.
func ParseRows(ctx context.Context, rows [][]string) Snapshot {
	var (
		snap      Snapshot
		menuID    uuid.UUID
		submenuID uuid.UUID
		menuIdx   = map[uuid.UUID]int{}
		subIdx    = map[uuid.UUID]int{}
		dishIdx   = map[uuid.UUID]int{}
	)

	ignore := func(line int, reason string, args ...any) {
		snap.Ignored++
		applog.Debug(ctx, "import row ignored", append([]any{"row", line, "reason", reason}, args...)...)
	}

	for i, row := range rows {
		line := i + 1
		a, b, c := cell(row, colA), cell(row, colB), cell(row, colC)

		switch {
		case a != "":
			id, err := uuid.Parse(a)
			if err != nil {
				menuID, submenuID = uuid.Nil, uuid.Nil
				ignore(line, "menu id is not a uuid", "value", a)
				continue
			}
			menuID, submenuID = id, uuid.Nil
			menu := models.Menu{ID: id, Title: b, Description: c}
			if idx, ok := menuIdx[id]; ok {
				snap.Menus[idx] = menu
				continue
			}
			menuIdx[id] = len(snap.Menus)
			snap.Menus = append(snap.Menus, menu)

		case b != "":
			if menuID == uuid.Nil {
				submenuID = uuid.Nil
				ignore(line, "submenu row without menu")
				continue
			}
			id, err := uuid.Parse(b)
			if err != nil {
				submenuID = uuid.Nil
				ignore(line, "submenu id is not a uuid", "value", b)
				continue
			}
			submenuID = id
			submenu := models.Submenu{ID: id, Title: c, Description: cell(row, colD), MenuID: menuID}
			if idx, ok := subIdx[id]; ok {
				snap.Submenus[idx] = submenu
				continue
			}
			subIdx[id] = len(snap.Submenus)
			snap.Submenus = append(snap.Submenus, submenu)

		case c != "":
			if submenuID == uuid.Nil {
				ignore(line, "dish row without submenu")
				continue
			}
			id, err := uuid.Parse(c)
			if err != nil {
				ignore(line, "dish id is not a uuid", "value", c)
				continue
			}
			price, err := parsePrice(cell(row, colF))
			if err != nil {
				ignore(line, "invalid price", "value", cell(row, colF))
				continue
			}
			discount, err := parseDiscount(cell(row, colG))
			if err != nil {
				ignore(line, "invalid discount", "value", cell(row, colG))
				continue
			}
			dish := models.Dish{
				ID:          id,
				Title:       cell(row, colD),
				Description: cell(row, colE),
				Price:       price,
				Discount:    discount,
				SubmenuID:   submenuID,
			}
			if idx, ok := dishIdx[id]; ok {
				snap.Dishes[idx] = dish
				continue
			}
			dishIdx[id] = len(snap.Dishes)
			snap.Dishes = append(snap.Dishes, dish)
		}
	}

	return snap
}
