// internal/domain/catalog/seed.go
package catalog

import "time"

// SeedProducts returns the static TechVista catalog. The catalog is not
// persisted: every start reloads this list, so admin edits do not survive
// a restart.
func SeedProducts() []Product {
	return []Product{
		// Smartphones
		{
			ID:          "phone-1",
			Name:        "TechPhone Pro X",
			Description: "Le smartphone le plus avancé avec un écran AMOLED 6.7 pouces et une caméra de 108MP.",
			Price:       999.99,
			Category:    CategorySmartphone,
			Subcategory: "haut de gamme",
			Image:       "https://images.unsplash.com/photo-1598327105666-5b89351aff97?q=80&w=2342&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "6.7 pouces AMOLED 120Hz"},
				{Name: "processor", Value: "OctaCore 3.2GHz"},
				{Name: "ram", Value: "12GB"},
				{Name: "storage", Value: "256GB"},
				{Name: "camera", Value: "108MP + 48MP + 12MP"},
				{Name: "battery", Value: "5000mAh"},
				{Name: "os", Value: "Android 13"},
			},
			Stock:     42,
			Rating:    4.8,
			CreatedAt: time.Date(2023, time.January, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "phone-2",
			Name:        "TechPhone Lite",
			Description: "Un smartphone abordable avec d'excellentes performances pour tous les jours.",
			Price:       399.99,
			Category:    CategorySmartphone,
			Subcategory: "milieu de gamme",
			Image:       "https://images.unsplash.com/photo-1605236453806-6ff36851218e?q=80&w=2344&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "6.4 pouces LCD 90Hz"},
				{Name: "processor", Value: "OctaCore 2.4GHz"},
				{Name: "ram", Value: "6GB"},
				{Name: "storage", Value: "128GB"},
				{Name: "camera", Value: "64MP + 12MP"},
				{Name: "battery", Value: "4500mAh"},
				{Name: "os", Value: "Android 12"},
			},
			Stock:     78,
			Rating:    4.3,
			CreatedAt: time.Date(2023, time.February, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "phone-3",
			Name:        "TechPhone Fold",
			Description: "Un smartphone pliable révolutionnaire avec un grand écran déplié de 7.6 pouces.",
			Price:       1499.99,
			Category:    CategorySmartphone,
			Subcategory: "pliable",
			Image:       "https://images.unsplash.com/photo-1574944985070-8f3ebc6b79d2?q=80&w=2187&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "7.6 pouces AMOLED pliable + 6.2 pouces externe"},
				{Name: "processor", Value: "OctaCore 3.4GHz"},
				{Name: "ram", Value: "16GB"},
				{Name: "storage", Value: "512GB"},
				{Name: "camera", Value: "108MP + 48MP + 12MP + 10MP"},
				{Name: "battery", Value: "4800mAh"},
				{Name: "os", Value: "Android 13"},
			},
			Stock:     15,
			Rating:    4.7,
			CreatedAt: time.Date(2023, time.March, 5, 12, 0, 0, 0, time.UTC),
		},

		// Laptops
		{
			ID:          "laptop-1",
			Name:        "TechVista UltraBook",
			Description: "Un ordinateur portable ultrafin et puissant pour les professionnels.",
			Price:       1299.99,
			Category:    CategoryLaptop,
			Subcategory: "ultrabook",
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?q=80&w=2342&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "14 pouces 4K"},
				{Name: "processor", Value: "Intel Core i7-12800H"},
				{Name: "ram", Value: "16GB"},
				{Name: "storage", Value: "1TB SSD"},
				{Name: "graphics", Value: "Intel Iris Xe"},
				{Name: "battery", Value: "14 heures"},
				{Name: "os", Value: "Windows 11 Pro"},
			},
			Stock:     23,
			Rating:    4.9,
			CreatedAt: time.Date(2023, time.January, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "laptop-2",
			Name:        "TechVista Gaming Beast",
			Description: "Ordinateur portable pour les jeux avec une carte graphique RTX puissante.",
			Price:       1899.99,
			Category:    CategoryLaptop,
			Subcategory: "gaming",
			Image:       "https://images.unsplash.com/photo-1603302576837-37561b2e2302?q=80&w=2340&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "17.3 pouces 165Hz"},
				{Name: "processor", Value: "AMD Ryzen 9 5900HX"},
				{Name: "ram", Value: "32GB"},
				{Name: "storage", Value: "2TB SSD"},
				{Name: "graphics", Value: "NVIDIA RTX 4080"},
				{Name: "battery", Value: "6 heures"},
				{Name: "os", Value: "Windows 11"},
			},
			Stock:     12,
			Rating:    4.7,
			CreatedAt: time.Date(2023, time.February, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "laptop-3",
			Name:        "TechVista WorkStation",
			Description: "Une station de travail mobile pour le développement et la création de contenu.",
			Price:       2499.99,
			Category:    CategoryLaptop,
			Subcategory: "workstation",
			Image:       "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?q=80&w=2340&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "15.6 pouces 4K"},
				{Name: "processor", Value: "Intel Core i9-12900HK"},
				{Name: "ram", Value: "64GB"},
				{Name: "storage", Value: "4TB SSD"},
				{Name: "graphics", Value: "NVIDIA RTX A5000"},
				{Name: "battery", Value: "8 heures"},
				{Name: "os", Value: "Windows 11 Pro"},
			},
			Stock:     8,
			Rating:    4.9,
			CreatedAt: time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC),
		},

		// Tablets
		{
			ID:          "tablet-1",
			Name:        "TechTab Pro",
			Description: "Tablette haut de gamme avec un écran lumineux et un stylet inclus.",
			Price:       799.99,
			Category:    CategoryTablet,
			Subcategory: "premium",
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?q=80&w=2340&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "12.9 pouces Liquid Retina XDR"},
				{Name: "processor", Value: "A16 Bionic"},
				{Name: "ram", Value: "8GB"},
				{Name: "storage", Value: "256GB"},
				{Name: "camera", Value: "12MP arrière, 12MP avant"},
				{Name: "battery", Value: "10 heures"},
				{Name: "os", Value: "iPadOS 16"},
			},
			Stock:     35,
			Rating:    4.8,
			CreatedAt: time.Date(2023, time.January, 25, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "tablet-2",
			Name:        "TechTab Mini",
			Description: "Tablette compacte idéale pour la lecture et la navigation web.",
			Price:       349.99,
			Category:    CategoryTablet,
			Subcategory: "compact",
			Image:       "https://images.unsplash.com/photo-1623126908032-b18570c4799d?q=80&w=2344&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "8.4 pouces IPS"},
				{Name: "processor", Value: "OctaCore 2.2GHz"},
				{Name: "ram", Value: "4GB"},
				{Name: "storage", Value: "64GB"},
				{Name: "camera", Value: "8MP arrière, 5MP avant"},
				{Name: "battery", Value: "12 heures"},
				{Name: "os", Value: "Android 12"},
			},
			Stock:     50,
			Rating:    4.4,
			CreatedAt: time.Date(2023, time.February, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "tablet-3",
			Name:        "TechTab Draw",
			Description: "Tablette spécialement conçue pour les artistes et designers.",
			Price:       899.99,
			Category:    CategoryTablet,
			Subcategory: "artistic",
			Image:       "https://images.unsplash.com/photo-1561154464-82e9adf32764?q=80&w=2487&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "13 pouces, sensible à la pression"},
				{Name: "processor", Value: "OctaCore 3.0GHz"},
				{Name: "ram", Value: "16GB"},
				{Name: "storage", Value: "512GB"},
				{Name: "camera", Value: "13MP arrière, 8MP avant"},
				{Name: "battery", Value: "9 heures"},
				{Name: "os", Value: "Windows 11"},
			},
			Stock:     18,
			Rating:    4.9,
			CreatedAt: time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC),
		},

		// Accessories
		{
			ID:          "accessory-1",
			Name:        "TechHeadphones Pro",
			Description: "Écouteurs sans fil avec réduction de bruit active et qualité audio supérieure.",
			Price:       249.99,
			Category:    CategoryAccessory,
			Subcategory: "audio",
			Image:       "https://images.unsplash.com/photo-1546435770-a3e426bf472b?q=80&w=2146&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "type", Value: "Supra-auriculaire"},
				{Name: "connectivity", Value: "Bluetooth 5.2"},
				{Name: "battery", Value: "30 heures"},
				{Name: "features", Value: "ANC, Transparence, Spatial Audio"},
				{Name: "color", Value: "Noir"},
			},
			Stock:     65,
			Rating:    4.7,
			CreatedAt: time.Date(2023, time.January, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "accessory-2",
			Name:        "TechWatch Smart",
			Description: "Montre connectée avec suivi fitness et notifications.",
			Price:       199.99,
			Category:    CategoryAccessory,
			Subcategory: "wearable",
			Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?q=80&w=2344&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "screen", Value: "1.5 pouces AMOLED"},
				{Name: "sensors", Value: "Cardiaque, SpO2, Accéléromètre"},
				{Name: "connectivity", Value: "Bluetooth, WiFi"},
				{Name: "battery", Value: "7 jours"},
				{Name: "waterproof", Value: "5 ATM"},
			},
			Stock:     48,
			Rating:    4.5,
			CreatedAt: time.Date(2023, time.February, 25, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "accessory-3",
			Name:        "TechPower Ultra",
			Description: "Batterie externe haute capacité pour tous vos appareils.",
			Price:       79.99,
			Category:    CategoryAccessory,
			Subcategory: "power",
			Image:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?q=80&w=2036&auto=format&fit=crop",
			Specifications: []Specification{
				{Name: "capacity", Value: "20,000mAh"},
				{Name: "ports", Value: "USB-C, USB-A x2"},
				{Name: "charging", Value: "Charge rapide 30W"},
				{Name: "features", Value: "Affichage LED, Charge sans fil"},
			},
			Stock:     100,
			Rating:    4.6,
			CreatedAt: time.Date(2023, time.March, 20, 12, 0, 0, 0, time.UTC),
		},
	}
}
