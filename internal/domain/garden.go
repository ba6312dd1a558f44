package domain

import "time"

// Garden is a whole landscape divided into plots. Managers can edit the
// garden and everything on it; pickers are assigned to fulfill orders
// on the garden's plots. A picker is scoped to a garden, never to a
// single plot.
type Garden struct {
	ID          int32     `json:"id"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	PhotoURL    string    `json:"photo_url"`
	MapImageURL string    `json:"map_image_url"`
	ManagerIDs  []int32   `json:"manager_ids"`
	PickerIDs   []int32   `json:"picker_ids"`
	CreatedOn   time.Time `json:"created_on"`
}

// HasManager reports whether the user is listed in the garden's managers.
func (g *Garden) HasManager(userID int32) bool {
	return containsID(g.ManagerIDs, userID)
}

// HasPicker reports whether the user is listed in the garden's pickers.
func (g *Garden) HasPicker(userID int32) bool {
	return containsID(g.PickerIDs, userID)
}

func containsID(ids []int32, id int32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
