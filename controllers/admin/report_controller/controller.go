package report_controller

import (
	"github.com/Tazeen604/ZerZabar-sub002/services"
)

var client *services.StorefrontClient

// Init wires the controller's dependencies. Called once from main.
func Init(c *services.StorefrontClient) {
	client = c
}
