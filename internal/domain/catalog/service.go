// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no product matches the requested id
var ErrNotFound = errors.New("product not found")

// Service handles catalog business logic. The product list is a single
// shared in-memory collection; mutations are visible to every reader
// immediately. The catalog is deliberately not persisted.
type Service struct {
	mu       sync.RWMutex
	products []Product
}

// NewService creates a catalog service seeded with the given products
func NewService(seed []Product) *Service {
	products := make([]Product, len(seed))
	for i, p := range seed {
		products[i] = p.Clone()
	}
	return &Service{products: products}
}

// CreateRequest represents product creation data
type CreateRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Price          float64         `json:"price" binding:"min=0"`
	Category       Category        `json:"category" binding:"required"`
	Subcategory    string          `json:"subcategory"`
	Image          string          `json:"image"`
	Specifications []Specification `json:"specifications"`
	Stock          int             `json:"stock" binding:"min=0"`
	Rating         float64         `json:"rating" binding:"min=0,max=5"`
}

// UpdateRequest represents product update data; nil fields are left unchanged
type UpdateRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Price          *float64         `json:"price"`
	Category       *Category        `json:"category"`
	Subcategory    *string          `json:"subcategory"`
	Image          *string          `json:"image"`
	Specifications *[]Specification `json:"specifications"`
	Stock          *int             `json:"stock"`
	Rating         *float64         `json:"rating"`
}

// List returns all products in insertion order
func (s *Service) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]Product, len(s.products))
	for i, p := range s.products {
		products[i] = p.Clone()
	}
	return products
}

// GetByID returns the product with the given id
func (s *Service) GetByID(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return Product{}, ErrNotFound
}

// GetByCategory returns products of the given category, preserving list order
func (s *Service) GetByCategory(category Category) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Product
	for _, p := range s.products {
		if p.Category == category {
			matches = append(matches, p.Clone())
		}
	}
	return matches
}

// Search returns products whose name or description contains the query,
// case-insensitively, preserving list order. An empty or blank query returns
// no results.
func (s *Service) Search(query string) []Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matches = append(matches, p.Clone())
		}
	}
	return matches
}

// Add creates a new product with a fresh id and creation timestamp
func (s *Service) Add(req *CreateRequest) (Product, error) {
	if req.Name == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if !req.Category.IsValid() {
		return Product{}, fmt.Errorf("invalid category: %q", req.Category)
	}
	if req.Price < 0 {
		return Product{}, fmt.Errorf("price cannot be negative")
	}

	product := Product{
		ID:             fmt.Sprintf("product-%s", uuid.New().String()),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Image:          req.Image,
		Specifications: req.Specifications,
		Stock:          req.Stock,
		Rating:         req.Rating,
		CreatedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()

	return product.Clone(), nil
}

// Update merges the non-nil fields of req into the matching product.
// Validation runs before any field is touched; a rejected update leaves
// the product exactly as it was.
func (s *Service) Update(id string, req *UpdateRequest) (Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return Product{}, fmt.Errorf("price cannot be negative")
	}
	if req.Category != nil && !req.Category.IsValid() {
		return Product{}, fmt.Errorf("invalid category: %q", *req.Category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		p := &s.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Subcategory != nil {
			p.Subcategory = *req.Subcategory
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Specifications != nil {
			p.Specifications = *req.Specifications
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Rating != nil {
			p.Rating = *req.Rating
		}

		return p.Clone(), nil
	}

	return Product{}, ErrNotFound
}

// Remove deletes the product with the given id. Existing cart and order
// copies are value snapshots, so no cascading is needed.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
