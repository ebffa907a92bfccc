package restaurant

import "errors"

var ErrNotFound = errors.New("restaurant not found")

type Repository interface {
	List() ([]*Restaurant, error)
	FindByID(id string) (*Restaurant, error)
}
