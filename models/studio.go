// models/studio.go
package models

// Studio is the unit of access-control scoping: Game.OwnedBy and
// User.AllowedStudios both join on Name, so a rename must rewrite every
// reference.
type Studio struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Hero        bool     `json:"hero,omitempty"` // featured in the rotating carousel
	Media       []string `json:"media,omitempty"`
	Discord     string   `json:"discord,omitempty"`
	Roblox      string   `json:"roblox,omitempty"`
	Youtube     string   `json:"youtube,omitempty"`
}
