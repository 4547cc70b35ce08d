package store

import "github.com/pr-poehali-dev/custom-bracelet-shop/internal/domain"

// SeedProducts returns the three sample products the storefront
// starts with. Fixture data only, not a contract.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Градиент Мечты",
			Price:       1290,
			Image:       "https://cdn.poehali.dev/projects/88856975-4623-410d-9b87-6ce2f7880b6b/files/064fc769-ac6c-43d3-ad60-57510b83dfe4.jpg",
			Category:    "Тренды",
			Description: "Яркий браслет с плавным переходом от фиолетового к розовому. Идеально подходит для создания летнего образа.",
			Reviews: []domain.Review{
				{ID: 1, Author: "Анна К.", Rating: 5, Text: "Очень красивый! Качество отличное, ношу не снимая", Date: "15.10.2024"},
				{ID: 2, Author: "Мария П.", Rating: 5, Text: "Подарила подруге, она в восторге! Цвета живые", Date: "12.10.2024"},
			},
		},
		{
			ID:          2,
			Name:        "Солнечный Закат",
			Price:       1490,
			Image:       "https://cdn.poehali.dev/projects/88856975-4623-410d-9b87-6ce2f7880b6b/files/8d1915af-cfb1-4a55-bb33-2440eb872b13.jpg",
			Category:    "Бестселлер",
			Description: "Элегантный браслет в теплых оранжево-розовых тонах с изящными подвесками. Ручная работа.",
			Reviews: []domain.Review{
				{ID: 3, Author: "Елена Р.", Rating: 5, Text: "Просто волшебный! Смотрится дорого", Date: "10.10.2024"},
			},
		},
		{
			ID:          3,
			Name:        "Лавандовый Шарм",
			Price:       1390,
			Image:       "https://cdn.poehali.dev/projects/88856975-4623-410d-9b87-6ce2f7880b6b/files/8ab5bc22-8bb4-408e-87be-b457c0e81aa9.jpg",
			Category:    "Новинка",
			Description: "Нежный браслет с градиентом лавандовых оттенков. Каждая бусина подобрана вручную.",
			Reviews: []domain.Review{
				{ID: 4, Author: "Ольга В.", Rating: 4, Text: "Красивый, но хотелось бы чуть длиннее", Date: "08.10.2024"},
			},
		},
	}
}

// SeedOrders returns the two sample pending orders. The items are
// snapshots of the given seed products.
func SeedOrders(products []domain.Product) []domain.Order {
	return []domain.Order{
		{
			ID:           1,
			CustomerName: "Иван Петров",
			Items:        []domain.CartItem{{Product: products[0], Quantity: 2}},
			Total:        2580,
			Status:       domain.OrderStatusPending,
			Date:         "19.10.2024",
		},
		{
			ID:           2,
			CustomerName: "Мария Сидорова",
			Items:        []domain.CartItem{{Product: products[1], Quantity: 1}},
			Total:        1490,
			Status:       domain.OrderStatusPending,
			Date:         "18.10.2024",
		},
	}
}
