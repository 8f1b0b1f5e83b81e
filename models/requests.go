package models

// RenameCharmRequest is the request body for renaming a charm image.
// Example: {"oldName": "Gold_Charm.png", "newName": "deluxe_Gold_Charm.png", "overwrite": false}
type RenameCharmRequest struct {
	OldName   string `json:"oldName"`
	NewName   string `json:"newName"`
	Overwrite bool   `json:"overwrite"`
}

// DeleteCharmRequest is the request body for deleting a charm image.
type DeleteCharmRequest struct {
	Filename string `json:"filename"`
}

// BaseColorUpdateRequest toggles a base color's availability.
// SoldOut is a pointer so a missing field can be told apart from false.
type BaseColorUpdateRequest struct {
	Color   BaseColor `json:"color"`
	SoldOut *bool     `json:"soldOut"`
}

// StockUpdateRequest sets the stock quantity for one charm.
// Quantity is a pointer so a missing field can be told apart from zero.
type StockUpdateRequest struct {
	CharmName string `json:"charmName"`
	Quantity  *int   `json:"quantity"`
}

// CreateBuilderRequest starts a new builder session.
type CreateBuilderRequest struct {
	Size      int       `json:"size"`
	BaseColor BaseColor `json:"baseColor"`
}

// ResizeRequest changes a session's bracelet size.
type ResizeRequest struct {
	Size int `json:"size"`
}

// BaseColorChangeRequest changes a session's band color.
type BaseColorChangeRequest struct {
	BaseColor BaseColor `json:"baseColor"`
}

// DragEndRequest reports the end of a drag interaction. SourceID is either a
// catalog entry ID or a bracelet slot instance ID. TargetSlot is nil when the
// drag ended outside every slot.
type DragEndRequest struct {
	SourceID   string `json:"sourceId"`
	TargetSlot *int   `json:"targetSlot"`
}

// CartLineRequest addresses one cart line (a filename group) in a session.
type CartLineRequest struct {
	Filename string `json:"filename"`
}

// AdminVerifyRequest carries the admin-mode password. This gate only toggles
// admin UI affordances; it is not an authorization boundary.
type AdminVerifyRequest struct {
	Password string `json:"password"`
}
