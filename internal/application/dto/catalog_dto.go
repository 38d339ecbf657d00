package dto

// CreateProductRequest alta de producto del catálogo.
type CreateProductRequest struct {
	Name        string `json:"item_name"`
	Description string `json:"description"`
	DesignNo    string `json:"design_no"`
	CategoryID  string `json:"category_id"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"item_name"`
	Description  string `json:"description"`
	DesignNo     string `json:"design_no"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría del catálogo.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
