package models

// Category is a node in the learning-content hierarchy. The parent relation
// must form a forest: no category may be its own ancestor.
type Category struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Title    string `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	ParentID *uint  `json:"parent_id" gorm:"index"`

	// Relations
	Parent   *Category  `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Children []Category `json:"-" gorm:"foreignKey:ParentID"`
	Articles []Article  `json:"-" gorm:"foreignKey:CategoryID"`
	Tests    []Test     `json:"-" gorm:"foreignKey:CategoryID"`
}

// CategoryTreeNode is the derived hierarchical view of a category. It is
// built per request from the flat category table and never persisted.
type CategoryTreeNode struct {
	ID       uint                `json:"id"`
	Title    string              `json:"title"`
	Children []*CategoryTreeNode `json:"children"`
}

func (Category) TableName() string {
	return "categories"
}
