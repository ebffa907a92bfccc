package restaurant

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListRestaurants returns the catalog filtered and sorted per the listing page.
func (s *Service) ListRestaurants(f Filter) ([]*Restaurant, error) {
	restaurants, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return Apply(restaurants, f), nil
}

func (s *Service) GetRestaurant(id string) (*Restaurant, error) {
	return s.repo.FindByID(id)
}
