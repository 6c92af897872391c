// store/defaults.go
package store

import (
	"os"

	"game-showcase-system/models"
)

// DefaultStudios and DefaultGames seed a fresh deployment with the launch
// lineup so the public site renders before anyone touches the panel.

func DefaultStudios() []models.Studio {
	return []models.Studio{
		{
			ID:          "emberworks",
			Name:        "Emberworks",
			Description: "Flagship studio behind Drift Kingdoms.",
			Logo:        "/media/studios/emberworks-logo.png",
			Thumbnail:   "/media/studios/emberworks-thumb.png",
			Hero:        true,
			Discord:     "https://discord.gg/emberworks",
			Roblox:      "https://www.roblox.com/groups/emberworks",
			Youtube:     "https://youtube.com/@emberworks",
		},
		{
			ID:          "lantern-bay",
			Name:        "Lantern Bay",
			Description: "Cozy sims and story games.",
			Logo:        "/media/studios/lantern-bay-logo.png",
			Thumbnail:   "/media/studios/lantern-bay-thumb.png",
		},
	}
}

func DefaultGames() []models.Game {
	one, two := 1, 2
	visible := true
	return []models.Game{
		{
			ID:          "game-drift-kingdoms",
			Name:        "Drift Kingdoms",
			Logo:        "/media/games/drift-kingdoms-logo.png",
			Description: "Build your island, race your friends.",
			OwnedBy:     "Emberworks",
			Status:      models.GameStatusPlayable,
			Genres:      []string{"Racing", "Adventure"},
			Link:        "https://www.roblox.com/games/drift-kingdoms",
			Order:       &one,
			Visible:     &visible,
		},
		{
			ID:          "game-harbor-tales",
			Name:        "Harbor Tales",
			Logo:        "/media/games/harbor-tales-logo.png",
			Description: "A cozy fishing-town story.",
			OwnedBy:     "Lantern Bay",
			Status:      models.GameStatusComingSoon,
			Genres:      []string{"Simulation"},
			Order:       &two,
			Visible:     &visible,
		},
	}
}

// DefaultUsers bakes in the initial admin account. The password comes from
// ADMIN_PASSWORD so deployments never ship the fallback.
func DefaultUsers() []models.User {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me"
	}
	return []models.User{
		{
			Username:       "admin",
			Password:       password,
			Role:           models.RoleAdmin,
			AllowedStudios: []string{models.StudioWildcard},
		},
	}
}

func DefaultNotifications() []models.Notification {
	return []models.Notification{}
}
