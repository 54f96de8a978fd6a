package domain

// Category groups books; books reference it through Book.ClassifyID.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
