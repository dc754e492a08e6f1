package domain

// Category is a place category as exposed by the vendor categories
// tree. ID is the canonical string id ("eat-drink", "hotel", ...).
type Category struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

func (c Category) IsEmpty() bool {
	return c == Category{}
}

// CategoryNode is one member of a CategoryTree.
type CategoryNode struct {
	Category Category `json:"category"`
	ParentID string   `json:"parent_id"`
	ChildIDs []string `json:"child_ids,omitempty"`
}

// CategoryTree maps category id to node. The synthetic root is keyed
// by the empty string and always present in a tree built by NewCategoryTree.
type CategoryTree map[string]*CategoryNode

func NewCategoryTree() CategoryTree {
	return CategoryTree{"": &CategoryNode{}}
}

// Insert adds a category under parentID. Insertion is idempotent: a
// second insert of an already known id is a no-op, so re-parsing the
// same document never accumulates duplicate nodes or edges. Inserting
// with an unknown parent or an empty id is ignored.
func (t CategoryTree) Insert(category Category, parentID string) bool {
	if category.ID == "" || category.ID == parentID {
		return false
	}
	parent, ok := t[parentID]
	if !ok {
		return false
	}
	if _, exists := t[category.ID]; exists {
		return false
	}
	t[category.ID] = &CategoryNode{Category: category, ParentID: parentID}
	parent.ChildIDs = append(parent.ChildIDs, category.ID)
	return true
}

func (t CategoryTree) Category(id string) Category {
	if node, ok := t[id]; ok {
		return node.Category
	}
	return Category{}
}

func (t CategoryTree) ParentID(id string) string {
	if node, ok := t[id]; ok {
		return node.ParentID
	}
	return ""
}

func (t CategoryTree) ChildIDs(id string) []string {
	if node, ok := t[id]; ok {
		return append([]string(nil), node.ChildIDs...)
	}
	return nil
}
