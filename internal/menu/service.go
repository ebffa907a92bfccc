package menu

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetMenu(restaurantID string) (*Menu, error) {
	return s.repo.GetByRestaurant(restaurantID)
}

// FindItem resolves a catalog item by its global ID. Used by the cart to
// snapshot name and unit price at add time.
func (s *Service) FindItem(itemID string) (*Item, error) {
	return s.repo.FindItem(itemID)
}
