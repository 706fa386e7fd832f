package store

import "github.com/example/reviewhub/internal/models"

// DefaultCatalog returns the fixed product catalog the service boots
// with. Derived fields start at zero and are recomputed as reviews
// arrive. Each call returns a fresh slice.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality. Perfect for music lovers and professionals.",
			Price:       299.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=800",
			PopularTags: []string{},
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch",
			Description: "Advanced fitness tracking with heart rate monitoring, GPS, and smartphone integration. Track your health and stay connected.",
			Price:       199.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=800",
			PopularTags: []string{},
		},
		{
			ID:          3,
			Name:        "Ergonomic Office Chair",
			Description: "Comfortable and supportive office chair designed for long working hours. Adjustable height and lumbar support included.",
			Price:       449.99,
			ImageURL:    "https://images.pexels.com/photos/586344/pexels-photo-586344.jpeg?auto=compress&cs=tinysrgb&w=800",
			PopularTags: []string{},
		},
		{
			ID:          4,
			Name:        "Professional Camera Lens",
			Description: "High-performance camera lens for professional photography. Sharp images with excellent bokeh effect.",
			Price:       899.99,
			ImageURL:    "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=800",
			PopularTags: []string{},
		},
		{
			ID:          5,
			Name:        "Mechanical Gaming Keyboard",
			Description: "RGB backlit mechanical keyboard with customizable keys. Perfect for gaming and professional typing.",
			Price:       159.99,
			ImageURL:    "https://images.pexels.com/photos/2115257/pexels-photo-2115257.jpeg?auto=compress&cs=tinysrgb&w=800",
			PopularTags: []string{},
		},
		{
			ID:          6,
			Name:        "Bluetooth Speaker",
			Description: "Portable wireless speaker with exceptional sound quality and long battery life. Perfect for outdoor activities.",
			Price:       79.99,
			ImageURL:    "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=800",
			PopularTags: []string{},
		},
	}
}
