package entity

// Category categoría fija del catálogo de la tienda. El valor guardado es la etiqueta en español,
// igual que en los archivos exportados.
type Category string

const (
	CategoryRods         Category = "Cañas"
	CategoryReels        Category = "Carretes"
	CategoryBait         Category = "Carnada"
	CategoryHooksWeights Category = "Anzuelos/Plomos"
	CategoryClothing     Category = "Ropa"
	CategoryAccessories  Category = "Accesorios"
	CategoryOther        Category = "Otros"

	// CategoryAll es el filtro que no restringe por categoría.
	CategoryAll Category = "Todas"
)

var categories = []Category{
	CategoryRods, CategoryReels, CategoryBait, CategoryHooksWeights,
	CategoryClothing, CategoryAccessories, CategoryOther,
}

var categoryCodes = map[Category]string{
	CategoryRods:         "rods",
	CategoryReels:        "reels",
	CategoryBait:         "bait",
	CategoryHooksWeights: "hooks_weights",
	CategoryClothing:     "clothing",
	CategoryAccessories:  "accessories",
	CategoryOther:        "other",
	CategoryAll:          "all",
}

// Categories devuelve las categorías en el orden en que se muestran.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// DefaultCategory es la categoría con la que arranca un borrador nuevo.
func DefaultCategory() Category { return CategoryRods }

// Valid indica si c pertenece al conjunto fijo (CategoryAll no es una categoría de producto).
func (c Category) Valid() bool {
	_, ok := categoryCodes[c]
	return ok && c != CategoryAll
}

// Code identificador estable en inglés ("rods", "hooks_weights"...); vacío si c no es conocida.
func (c Category) Code() string {
	return categoryCodes[c]
}

// IsAll indica si c funciona como filtro "todas" (vacío o CategoryAll).
func (c Category) IsAll() bool {
	return c == "" || c == CategoryAll
}
