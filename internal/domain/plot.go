package domain

import "time"

// Plot is a subdivision of a garden, allocated to gardeners for growing
// food. Its effective editors are its own gardeners plus the managers
// of its garden.
type Plot struct {
	ID          int32     `json:"id"`
	GardenID    int32     `json:"garden_id"`
	Title       string    `json:"title"`
	GardenerIDs []int32   `json:"gardener_ids"`
	CropIDs     []int32   `json:"crop_ids"`
	Garden      *Garden   `json:"garden,omitempty"` // Populated when needed
	CreatedOn   time.Time `json:"created_on"`
}

// HasGardener reports whether the user is listed in the plot's gardeners.
func (p *Plot) HasGardener(userID int32) bool {
	return containsID(p.GardenerIDs, userID)
}

// CanEdit reports whether the user may edit this plot: a gardener on
// the plot itself, or a manager of its garden. Requires Garden to be
// populated.
func (p *Plot) CanEdit(userID int32) bool {
	if p.HasGardener(userID) {
		return true
	}
	return p.Garden != nil && p.Garden.HasManager(userID)
}
