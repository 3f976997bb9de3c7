package catalog

// Default returns the stock catalog the storefront ships with.
func Default() *Catalog {
	return New([]Product{
		{
			ID: 1, Name: "The 'Debbs' Gold Choker", Category: "Jewelry", Price: 150,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?q=80&w=600&auto=format&fit=crop",
			Description: "18k gold vermeil, water-resistant, and perfect for layering. A campus essential.",
			Tags:        []string{"gold", "necklace", "jewelry"},
		},
		{
			ID: 2, Name: "Vanilla Oud Essence", Category: "Fragrance", Price: 200,
			Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?q=80&w=600&auto=format&fit=crop",
			Description: "A warm, spicy scent that lasts all day. Notes of vanilla, oud, and amber.",
			Tags:        []string{"perfume", "fragrance", "luxury"},
		},
		{
			ID: 3, Name: "The Uni Tote", Category: "Accessories", Price: 90,
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?q=80&w=600&auto=format&fit=crop",
			Description: "Canvas tote with reinforced straps. Fits a 15-inch laptop comfortably.",
			Tags:        []string{"bag", "tote", "university"},
		},
		{
			ID: 4, Name: "Aesthetic Tumbler", Category: "Lifestyle", Price: 85,
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=600&auto=format&fit=crop",
			Description: "Borosilicate glass with bamboo lid. Keeps your iced coffee cold for 6 hours.",
			Tags:        []string{"tumbler", "lifestyle", "aesthetic"},
		},
		{
			ID: 5, Name: "Pearl Drop Earrings", Category: "Jewelry", Price: 55,
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=600&auto=format&fit=crop",
			Description: "Freshwater pearls on gold-plated hoops. Elegant yet understated.",
			Tags:        []string{"pearl", "earrings", "jewelry"},
		},
		{
			ID: 6, Name: "Digital Vision Planner", Category: "Digital", Price: 40,
			Image:       "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?q=80&w=600&auto=format&fit=crop",
			Description: "iPad compatible PDF planner with hyperlinks. Get your life organized.",
			Tags:        []string{"planner", "digital", "productivity"},
		},
		{
			ID: 7, Name: "Rose Gold Bracelet Set", Category: "Jewelry", Price: 75,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?q=80&w=600&auto=format&fit=crop",
			Description: "Three delicate bracelets in rose gold. Stack them or wear individually.",
			Tags:        []string{"rose gold", "bracelet", "jewelry"},
		},
		{
			ID: 8, Name: "Laptop Sleeve - Velvet", Category: "Accessories", Price: 65,
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?q=80&w=600&auto=format&fit=crop",
			Description: "Luxurious velvet sleeve for 13-15 inch laptops. Padded protection with style.",
			Tags:        []string{"laptop", "sleeve", "velvet"},
		},
		{
			ID: 9, Name: "Crystal Hoop Earrings", Category: "Jewelry", Price: 95,
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=600&auto=format&fit=crop",
			Description: "Gold hoops with crystal embellishments. Perfect for special occasions.",
			Tags:        []string{"crystal", "hoops", "jewelry"},
		},
		{
			ID: 10, Name: "Mint Fresh Perfume", Category: "Fragrance", Price: 180,
			Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?q=80&w=600&auto=format&fit=crop",
			Description: "Fresh and invigorating scent with notes of mint, citrus, and white tea.",
			Tags:        []string{"perfume", "fresh", "fragrance"},
		},
		{
			ID: 11, Name: "Study Essentials Bundle", Category: "Digital", Price: 55,
			Image:       "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?q=80&w=600&auto=format&fit=crop",
			Description: "Complete digital study kit with planner, note templates, and wallpapers.",
			Tags:        []string{"bundle", "digital", "study"},
		},
		{
			ID: 12, Name: "Metallic Water Bottle", Category: "Lifestyle", Price: 50,
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=600&auto=format&fit=crop",
			Description: "Stainless steel insulated bottle. Keeps drinks hot or cold for 24 hours.",
			Tags:        []string{"bottle", "lifestyle", "hydration"},
		},
	})
}
