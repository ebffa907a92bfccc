package menu

import "errors"

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrItemNotFound = errors.New("menu item not found")
)

type Repository interface {
	GetByRestaurant(restaurantID string) (*Menu, error)
	FindItem(itemID string) (*Item, error)
}
