package domain

// LayoutView is the UI-only product listing layout preference.
type LayoutView string

const (
	LayoutCard LayoutView = "card"
	LayoutList LayoutView = "list"
)

func (v LayoutView) Valid() bool {
	return v == LayoutCard || v == LayoutList
}
