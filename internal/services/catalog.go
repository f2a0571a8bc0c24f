package services

import "github.com/dkaratas/vrlearn-backend/internal/models"

// DefaultCatalog is the grocery store product set seeded at boot. The
// image and model paths point at assets the 3D frontend ships with.
var DefaultCatalog = []models.Product{
	{ID: 1, Name: "Apple", Category: "Fruits", Price: 0.99, Description: "Fresh red apple", ImageURL: "/assets/textures/apple.jpg", ModelURL: "/assets/models/apple.glb"},
	{ID: 2, Name: "Bread", Category: "Bakery", Price: 2.49, Description: "Freshly baked whole wheat bread", ImageURL: "/assets/textures/bread.jpg", ModelURL: "/assets/models/bread.glb"},
	{ID: 3, Name: "Milk", Category: "Dairy", Price: 3.99, Description: "Fresh whole milk", ImageURL: "/assets/textures/milk.jpg", ModelURL: "/assets/models/milk.glb"},
	{ID: 4, Name: "Eggs", Category: "Dairy", Price: 4.99, Description: "Farm fresh eggs, 12 count", ImageURL: "/assets/textures/eggs.jpg", ModelURL: "/assets/models/eggs.glb"},
	{ID: 5, Name: "Chicken", Category: "Meat", Price: 7.99, Description: "Fresh chicken breast", ImageURL: "/assets/textures/chicken.jpg", ModelURL: "/assets/models/chicken.glb"},
}
