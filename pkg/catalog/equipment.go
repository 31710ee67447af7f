package catalog

// Brand palette used by the stock annotations.
const (
	colorTeal   = "#00B4A0"
	colorRed    = "#EF4444"
	colorBlue   = "#3B82F6"
	colorViolet = "#8B5CF6"
)

func circle(x, y float64, label, color string) Annotation {
	return Annotation{Kind: KindCircle, X: x, Y: y, Label: label, Color: color}
}

func arrow(x, y, toX, toY float64, label, color string) Annotation {
	return Annotation{Kind: KindArrow, X: x, Y: y, ToX: &toX, ToY: &toY, Label: label, Color: color}
}

func note(x, y float64, label, color string) Annotation {
	return Annotation{Kind: KindLabel, X: x, Y: y, Label: label, Color: color}
}

// Default returns the stock catalog of equipment the company installs and
// supports. Coordinates were measured against the bundled photos.
func Default() *Catalog {
	return New(
		EquipmentRecord{
			ID:       "araknis-router",
			Name:     "Araknis Router",
			Category: CategoryRouter,
			Brand:    "Araknis",
			ImageURL: "/equipment/araknis-router.svg",
			StatusLights: []Annotation{
				circle(15, 25, "Power LED", colorTeal),
				circle(25, 25, "Internet LED", colorTeal),
				circle(35, 25, "WiFi LED", colorTeal),
			},
			ResetButton: []Annotation{
				arrow(85, 15, 92, 50, "Reset Button", colorRed),
			},
			Ports: []Annotation{
				circle(50, 85, "WAN Port (Blue)", colorBlue),
				circle(70, 85, "LAN Ports", colorTeal),
			},
			Caption: "Araknis Router - Blue light = connected, Red/Amber = problem",
		},
		EquipmentRecord{
			ID:       "eero-router",
			Name:     "Eero Router",
			Category: CategoryRouter,
			Brand:    "Eero",
			ImageURL: "/equipment/eero-router.svg",
			StatusLights: []Annotation{
				circle(50, 20, "Status LED", colorTeal),
			},
			ResetButton: []Annotation{
				arrow(75, 70, 90, 85, "Reset (bottom)", colorRed),
			},
			Ports: []Annotation{
				circle(30, 90, "Ethernet Ports", colorBlue),
				circle(70, 90, "Power", colorTeal),
			},
			Caption: "Eero Router - White = connected, Red = no internet, Blue = setup mode",
		},
		EquipmentRecord{
			ID:       "ubiquiti-unifi",
			Name:     "Ubiquiti UniFi Router",
			Category: CategoryRouter,
			Brand:    "Ubiquiti",
			ImageURL: "/equipment/ubiquiti-unifi.png",
			StatusLights: []Annotation{
				circle(50, 15, "Status Ring", colorTeal),
			},
			ResetButton: []Annotation{
				arrow(20, 80, 10, 90, "Reset Pinhole", colorRed),
			},
			Ports: []Annotation{
				circle(50, 90, "WAN/LAN Ports", colorBlue),
			},
			Caption: "UniFi Router - Blue ring = connected, White = booting",
		},
		EquipmentRecord{
			ID:       "isp-modem",
			Name:     "ISP Modem (Generic)",
			Category: CategoryModem,
			Brand:    "ISP",
			ImageURL: "/equipment/isp-modem.svg",
			StatusLights: []Annotation{
				circle(15, 20, "Power", colorTeal),
				circle(15, 35, "Downstream", colorTeal),
				circle(15, 50, "Upstream", colorTeal),
				circle(15, 65, "Online", colorTeal),
			},
			ResetButton: []Annotation{
				arrow(75, 30, 92, 50, "Reset Button", colorRed),
			},
			Ports: []Annotation{
				circle(50, 90, "Coax Input", colorViolet),
				circle(75, 90, "Ethernet Out", colorBlue),
			},
			Caption: "ISP Modem - All lights solid = good connection",
		},
		EquipmentRecord{
			ID:       "araknis-switch",
			Name:     "Araknis Network Switch",
			Category: CategorySwitch,
			Brand:    "Araknis",
			ImageURL: "/equipment/araknis-switch.png",
			StatusLights: []Annotation{
				circle(10, 30, "Power LED", colorTeal),
			},
			ResetButton: []Annotation{
				arrow(90, 20, 95, 50, "Reset", colorRed),
			},
			Ports: []Annotation{
				note(50, 70, "Port LEDs: Green=Link, Flashing=Activity", colorTeal),
			},
			Caption: "Araknis Switch - Green port lights indicate active connections",
		},
		EquipmentRecord{
			ID:       "control4-controller",
			Name:     "Control4 Controller",
			Category: CategoryController,
			Brand:    "Control4",
			ImageURL: "/equipment/control4-controller.png",
			StatusLights: []Annotation{
				circle(50, 25, "Status LED", colorTeal),
			},
			ResetButton: []Annotation{
				arrow(80, 70, 92, 85, "Reset Pinhole", colorRed),
			},
			Ports: []Annotation{
				circle(30, 90, "Network Port", colorBlue),
				circle(70, 90, "Power", colorTeal),
			},
			Caption: "Control4 Controller - Blue LED = normal, Red/Flashing = problem",
		},
		EquipmentRecord{
			ID:       "luma-camera",
			Name:     "Luma Security Camera",
			Category: CategoryCamera,
			Brand:    "Luma",
			ImageURL: "/equipment/luma-camera.png",
			StatusLights: []Annotation{
				circle(50, 80, "IR LEDs (night vision)", colorRed),
			},
			ResetButton: []Annotation{
				arrow(20, 50, 10, 70, "Reset Button", colorRed),
			},
			Ports: []Annotation{
				circle(80, 70, "PoE/Network Cable", colorBlue),
			},
			Caption: "Luma Camera - Check PoE cable connection for power",
		},
		EquipmentRecord{
			ID:       "qolsys-panel",
			Name:     "Qolsys Security Panel",
			Category: CategoryPanel,
			Brand:    "Qolsys",
			ImageURL: "/equipment/qolsys-panel.png",
			StatusLights: []Annotation{
				circle(90, 10, "Status Indicator", colorTeal),
			},
			ResetButton: []Annotation{
				note(50, 95, "Reboot via Settings > Advanced", colorBlue),
			},
			Ports:   []Annotation{},
			Caption: "Qolsys Panel - Touchscreen security panel",
		},
	)
}
