package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
)

// Cart returns a copy of the in-memory cart. The cart is never persisted.
func (s *Service) Cart(ctx context.Context) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CartItem{}, s.cart...)
}

// AddToCart adds one unit of productId, starting a new line when the product is not in the cart yet.
func (s *Service) AddToCart(ctx context.Context, productId string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	product, err := store.GetScoped(s.store.Products, productId, orgId)
	if err != nil {
		return nil, err
	}
	for i := range s.cart {
		if s.cart[i].Id == productId {
			s.cart[i].Quantity++
			return append([]models.CartItem{}, s.cart...), nil
		}
	}
	s.cart = append(s.cart, models.CartItem{Product: product, Quantity: 1})
	return append([]models.CartItem{}, s.cart...), nil
}

// UpdateCartQuantity changes a line by delta. Lines reaching zero are dropped.
func (s *Service) UpdateCartQuantity(ctx context.Context, productId string, delta int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.Id == productId {
			item.Quantity += delta
			if item.Quantity <= 0 {
				continue
			}
		}
		cart = append(cart, item)
	}
	s.cart = cart
	return append([]models.CartItem{}, s.cart...)
}

func (s *Service) RemoveFromCart(ctx context.Context, productId string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.Id != productId {
			cart = append(cart, item)
		}
	}
	s.cart = cart
	return append([]models.CartItem{}, s.cart...)
}

func (s *Service) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []models.CartItem{}
}
