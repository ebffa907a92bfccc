package restaurant

type InMemoryRepository struct {
	restaurants []*Restaurant
	byID        map[string]*Restaurant
}

func NewInMemoryRepository(restaurants []*Restaurant) *InMemoryRepository {
	repo := &InMemoryRepository{
		restaurants: restaurants,
		byID:        make(map[string]*Restaurant),
	}
	for _, r := range restaurants {
		repo.byID[r.ID] = r
	}
	return repo
}

func (r *InMemoryRepository) List() ([]*Restaurant, error) {
	// Callers sort and filter their own copy
	out := make([]*Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out, nil
}

func (r *InMemoryRepository) FindByID(id string) (*Restaurant, error) {
	rest, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rest, nil
}
