package models

// Badge is a catalog achievement. ID is the stable identity key; the
// display fields come from the catalog and Earned is the only field that
// changes after the catalog is defined. Earned never reverts to false.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}
