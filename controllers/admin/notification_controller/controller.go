package notification_controller

import (
	"github.com/Tazeen604/ZerZabar-sub002/services"
)

var notifications *services.NotificationService

// Init wires the controller's dependencies. Called once from main.
func Init(n *services.NotificationService) {
	notifications = n
}
