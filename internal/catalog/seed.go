package catalog

import "github.com/Skotchmaster/vape_shop/internal/models"

// DefaultProducts is the catalog written on first start. IDs are left empty
// and assigned when the store adopts the seed.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Vaporesso XROS 3",
			Price:       1990,
			Category:    models.CategoryPodSystems,
			Image:       "https://images.pexels.com/photos/3905868/pexels-photo-3905868.jpeg",
			Description: "XROS 3 от Vaporesso - компактный под с системой автозатяжки и аккумулятором на 1000 мАч. Оснащен COREX технологией нагрева для насыщенного вкуса и теплого пара.",
			Variant:     "1000mAh, Черный",
			Specifications: map[string]string{
				"Ёмкость аккумулятора":     "1000 мАч",
				"Объем картриджа":          "2 мл",
				"Сопротивление испарителя": "0.8/1.2 Ом",
				"Тип затяжки":              "Автоматическая",
				"Материал корпуса":         "Алюминий",
			},
		},
		{
			Name:        "Smoant Knight 80",
			Price:       2990,
			Category:    models.CategoryPodSystems,
			Image:       "https://images.pexels.com/photos/1742370/pexels-photo-1742370.jpeg",
			Description: "Smoant Knight 80 - мощный под-мод с регулировкой мощности до 80 Вт. Оснащен OLED-дисплеем и поддерживает режим TC (контроль температуры).",
			Variant:     "18650, Серебристый",
			Specifications: map[string]string{
				"Максимальная мощность":  "80 Вт",
				"Тип аккумулятора":       "18650 (не входит в комплект)",
				"Объем картриджа":        "4 мл",
				"Диапазон сопротивления": "0.1-3.0 Ом",
				"Дисплей":                `OLED 0.96"`,
			},
		},
		{
			Name:        "JUUL Starter Kit",
			Price:       1490,
			Category:    models.CategoryPodSystems,
			Image:       "https://images.pexels.com/photos/3038458/pexels-photo-3038458.jpeg",
			Description: "JUUL - компактная под-система с предзаправленными картриджами. Идеально подходит для начинающих.",
			Variant:     "200mAh, Черный",
			Specifications: map[string]string{
				"Ёмкость аккумулятора": "200 мАч",
				"Объем картриджа":      "0.7 мл",
				"Тип затяжки":          "Автоматическая",
				"Время зарядки":        "1 час",
			},
		},
		{
			Name:        "MINIFIT Pod Kit",
			Price:       990,
			Category:    models.CategoryPodSystems,
			Image:       "https://images.pexels.com/photos/1619149/pexels-photo-1619149.jpeg",
			Description: "MINIFIT - ультракомпактный под с автоматической активацией и возможностью заправки собственными жидкостями.",
			Variant:     "350mAh, Синий",
			Specifications: map[string]string{
				"Ёмкость аккумулятора":     "350 мАч",
				"Объем картриджа":          "1.5 мл",
				"Сопротивление испарителя": "1.8 Ом",
				"Тип затяжки":              "Автоматическая",
				"Вес":                      "21 г",
			},
		},
		{
			Name:        "Jam Monster Blueberry",
			Price:       790,
			Category:    models.CategoryLiquids,
			Image:       "https://images.pexels.com/photos/4753890/pexels-photo-4753890.jpeg",
			Description: "Насыщенный вкус черничного джема с маслом и хрустящим тостом. Сладкий и насыщенный вкус с нотками хлеба.",
			Variant:     "30мл, 3мг",
			Specifications: map[string]string{
				"Объем":             "30 мл",
				"Крепость":          "3 мг/мл",
				"Соотношение VG/PG": "70/30",
				"Вкусовой профиль":  "Черничный джем, масло, тост",
			},
		},
		{
			Name:        "Bad Drip Don't Care Bear",
			Price:       850,
			Category:    models.CategoryLiquids,
			Image:       "https://images.pexels.com/photos/357573/pexels-photo-357573.jpeg",
			Description: "Сладкий и кислый микс фруктовых мармеладных мишек с разными вкусовыми профилями.",
			Variant:     "60мл, 0мг",
			Specifications: map[string]string{
				"Объем":             "60 мл",
				"Крепость":          "0 мг/мл",
				"Соотношение VG/PG": "70/30",
				"Вкусовой профиль":  "Фруктовый мармелад",
			},
		},
		{
			Name:        "Nasty Juice Cush Man",
			Price:       690,
			Category:    models.CategoryLiquids,
			Image:       "https://images.pexels.com/photos/3513889/pexels-photo-3513889.jpeg",
			Description: "Освежающий вкус спелого манго с нотками сладости и легкой прохлады в послевкусии.",
			Variant:     "50мл, 6мг",
			Specifications: map[string]string{
				"Объем":             "50 мл",
				"Крепость":          "6 мг/мл",
				"Соотношение VG/PG": "70/30",
				"Вкусовой профиль":  "Манго, прохлада",
			},
		},
		{
			Name:        "Salt Nic Labs Mint",
			Price:       490,
			Category:    models.CategoryLiquids,
			Image:       "https://images.pexels.com/photos/3493690/pexels-photo-3493690.jpeg",
			Description: "Освежающая мятная жидкость на никотиновой соли. Идеально подходит для под-систем.",
			Variant:     "15мл, 20мг (Солевой)",
			Specifications: map[string]string{
				"Объем":             "15 мл",
				"Крепость":          "20 мг/мл (солевой никотин)",
				"Соотношение VG/PG": "50/50",
				"Вкусовой профиль":  "Мята",
				"Тип":               "Солевой никотин",
			},
		},
		{
			Name:        "Картридж XROS 3",
			Price:       290,
			Category:    models.CategoryAccessories,
			Image:       "https://images.pexels.com/photos/5806862/pexels-photo-5806862.jpeg",
			Description: "Оригинальный картридж для Vaporesso XROS 3 с сеткой из mesh-сетки для насыщенного вкуса.",
			Variant:     "0.8 Ом, 2 шт. в упаковке",
			Specifications: map[string]string{
				"Совместимость":         "Vaporesso XROS 3",
				"Сопротивление":         "0.8 Ом",
				"Объем":                 "2 мл",
				"Количество в упаковке": "2 шт",
			},
		},
		{
			Name:        "Испаритель Smoant Knight",
			Price:       390,
			Category:    models.CategoryAccessories,
			Image:       "https://images.pexels.com/photos/209807/pexels-photo-209807.jpeg",
			Description: "Сменный испаритель для Smoant Knight 80. Mesh-сетка обеспечивает быстрый нагрев и чистый вкус.",
			Variant:     "0.3 Ом, 5 шт. в упаковке",
			Specifications: map[string]string{
				"Совместимость":         "Smoant Knight 80",
				"Сопротивление":         "0.3 Ом",
				"Тип":                   "Mesh-сетка",
				"Количество в упаковке": "5 шт",
			},
		},
		{
			Name:        "Кейс для MINIFIT",
			Price:       350,
			Category:    models.CategoryAccessories,
			Image:       "https://images.pexels.com/photos/4115131/pexels-photo-4115131.jpeg",
			Description: "Защитный кейс для MINIFIT Pod Kit из прочного силикона с карабином для удобного ношения.",
			Variant:     "Черный",
			Specifications: map[string]string{
				"Совместимость": "MINIFIT Pod Kit",
				"Материал":      "Силикон",
				"Цвет":          "Черный",
				"Особенности":   "Карабин, полная защита",
			},
		},
		{
			Name:        "Внешний аккумулятор 18650",
			Price:       590,
			Category:    models.CategoryAccessories,
			Image:       "https://images.pexels.com/photos/220039/pexels-photo-220039.jpeg",
			Description: "Высокотоковый аккумулятор формата 18650 для под-модов и других устройств. Емкость 3000 мАч.",
			Variant:     "3000 mAh",
			Specifications: map[string]string{
				"Тип":     "18650",
				"Емкость": "3000 мАч",
				"Максимальный ток разряда": "25А",
				"Напряжение":               "3.7В",
				"Производитель":            "Samsung",
			},
		},
	}
}
