package menu

type InMemoryRepository struct {
	menus map[string]*Menu
	items map[string]*Item
}

func NewInMemoryRepository(menus []*Menu) *InMemoryRepository {
	repo := &InMemoryRepository{
		menus: make(map[string]*Menu),
		items: make(map[string]*Item),
	}
	for _, m := range menus {
		repo.menus[m.RestaurantID] = m
		for si := range m.Sections {
			for ii := range m.Sections[si].Items {
				item := m.Sections[si].Items[ii]
				repo.items[item.ID] = &item
			}
		}
	}
	return repo
}

func (r *InMemoryRepository) GetByRestaurant(restaurantID string) (*Menu, error) {
	m, ok := r.menus[restaurantID]
	if !ok {
		return nil, ErrMenuNotFound
	}
	return m, nil
}

func (r *InMemoryRepository) FindItem(itemID string) (*Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}
