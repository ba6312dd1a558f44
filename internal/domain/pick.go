package domain

import "time"

// Pick is a record of crops actually harvested from a plot at a point
// in time. Picks are immutable once created; the timestamp is assigned
// by the store, never by the caller.
type Pick struct {
	ID        int32     `json:"id"`
	PlotID    int32     `json:"plot_id"`
	PickerID  int32     `json:"picker_id"`
	CropIDs   []int32   `json:"crop_ids"`
	Comment   string    `json:"comment"`
	CreatedOn time.Time `json:"created_on"`
}
