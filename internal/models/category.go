package models

type Category struct {
	ID       int    `json:"category_id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id,omitempty"`
}

// CategoryUpdate carries a partial update. ParentID distinguishes an absent
// field from an explicit null, so a subcategory can be re-parented to root.
type CategoryUpdate struct {
	Name     *string     `json:"name"`
	ParentID OptionalInt `json:"parent_id"`
}
