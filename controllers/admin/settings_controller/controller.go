package settings_controller

import (
	"github.com/Tazeen604/ZerZabar-sub002/services"
)

var settings *services.SettingsService

// Init wires the controller's dependencies. Called once from main.
func Init(s *services.SettingsService) {
	settings = s
}
