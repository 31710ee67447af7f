// Package faq is the static knowledge base shown on the help screen.
package faq

import "strings"

// Item is one frequently-asked question. Answers use light markdown
// (bold markers, numbered steps) which the UI renders.
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var items = []Item{
	{
		ID:       "1",
		Category: "Network",
		Question: "How do I reset my Internet?",
		Answer:   "Locate your **Araknis or Ubiquiti router** (usually black with blue lights). Unplug the power cord for 30 seconds, then plug it back in. Wait about 5-7 minutes for the system to fully come back online.",
	},
	{
		ID:       "2",
		Category: "Video",
		Question: `My TV says "No Signal"`,
		Answer:   "1. Ensure your source (Apple TV, Roku, or Cable Box) is actually powered on.\n2. Use your remote to verify the correct **HDMI Input**.\n3. If it still fails, check if the HDMI cable behind the TV or at the equipment rack has come loose.",
	},
	{
		ID:       "3",
		Category: "Audio",
		Question: "Music is not playing in a zone",
		Answer:   "Check your **Control4 or Sonos app** to see if the room is grouped and the volume is up. If the app can't see the room, it may need a quick power cycle of the amplifier in your equipment rack.",
	},
	{
		ID:       "4",
		Category: "Automation",
		Question: `My Control4 app says "Controller Not Found"`,
		Answer:   "1. Verify you're connected to your home WiFi network.\n2. Check that your Control4 controller has a solid blue LED light.\n3. Try completely closing and reopening the Control4 app.\n4. If the issue persists, unplug your router for 30 seconds, then plug it back in.",
	},
	{
		ID:       "5",
		Category: "Security",
		Question: "My security camera is offline",
		Answer:   "1. Check if the camera has power (look for LED lights on the camera).\n2. Verify the network cable is securely connected.\n3. Check your Alarm.com app to see camera status.\n4. If using WiFi cameras, ensure your network is working properly.",
	},
}

// Items returns every FAQ in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByCategory returns FAQs in the given category, matched case-insensitively.
func ByCategory(category string) []Item {
	var out []Item
	for _, it := range items {
		if strings.EqualFold(it.Category, category) {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct categories in display order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
