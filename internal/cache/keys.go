package cache

import "github.com/google/uuid"

// TreeKey holds the full menu tree.
const TreeKey = "tree"

// MenusKey holds the menu list.
const MenusKey = "menus"

func MenuKey(menuID uuid.UUID) string {
	return MenusKey + ":" + menuID.String()
}

func SubmenusKey(menuID uuid.UUID) string {
	return MenuKey(menuID) + ":submenus"
}

func SubmenuKey(menuID, submenuID uuid.UUID) string {
	return SubmenusKey(menuID) + ":" + submenuID.String()
}

func DishesKey(menuID, submenuID uuid.UUID) string {
	return SubmenuKey(menuID, submenuID) + ":dishes"
}

func DishKey(menuID, submenuID, dishID uuid.UUID) string {
	return DishesKey(menuID, submenuID) + ":" + dishID.String()
}
