package models

type Category string

const (
	CategoryPodSystems  Category = "pod-systems"
	CategoryLiquids     Category = "liquids"
	CategoryAccessories Category = "accessories"
)

var Categories = []Category{CategoryPodSystems, CategoryLiquids, CategoryAccessories}

func (c Category) Valid() bool {
	switch c {
	case CategoryPodSystems, CategoryLiquids, CategoryAccessories:
		return true
	}
	return false
}

func (c Category) Label() string {
	switch c {
	case CategoryPodSystems:
		return "Под-системы"
	case CategoryLiquids:
		return "Жидкости"
	case CategoryAccessories:
		return "Аксессуары"
	}
	return "Каталог"
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          int64             `json:"price"`
	Category       Category          `json:"category"`
	Image          string            `json:"image"`
	Description    string            `json:"description,omitempty"`
	Variant        string            `json:"variant,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Clone returns a copy that shares no memory with p. An empty
// specifications map becomes nil, matching how it reads back from storage.
func (p Product) Clone() Product {
	out := p
	out.Specifications = nil
	if len(p.Specifications) > 0 {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

// ProductFields is a product without identity, as submitted by the admin panel.
type ProductFields struct {
	Name           string            `json:"name"           validate:"required"`
	Price          int64             `json:"price"          validate:"gte=0"`
	Category       Category          `json:"category"       validate:"required,oneof=pod-systems liquids accessories"`
	Image          string            `json:"image"          validate:"required"`
	Description    string            `json:"description"`
	Variant        string            `json:"variant"`
	Specifications map[string]string `json:"specifications"`
}

type ProductPatch struct {
	Name           *string            `json:"name"           validate:"omitempty,min=1"`
	Price          *int64             `json:"price"          validate:"omitempty,gte=0"`
	Category       *Category          `json:"category"       validate:"omitempty,oneof=pod-systems liquids accessories"`
	Image          *string            `json:"image"`
	Description    *string            `json:"description"`
	Variant        *string            `json:"variant"`
	Specifications *map[string]string `json:"specifications"`
}

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
