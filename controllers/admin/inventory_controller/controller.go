package inventory_controller

import (
	"github.com/Tazeen604/ZerZabar-sub002/services"
)

var (
	client   *services.StorefrontClient
	settings *services.SettingsService
)

// Init wires the controller's dependencies. Called once from main.
func Init(c *services.StorefrontClient, s *services.SettingsService) {
	client = c
	settings = s
}
