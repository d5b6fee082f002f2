package domain

// Viewport is one of the three fixed preview width classes the editor
// offers. The compiled page itself only carries a single mobile breakpoint;
// these widths exist so every preview surface agrees on what "tablet" means.
type Viewport struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

var Viewports = []Viewport{
	{Name: "desktop", Width: 1280},
	{Name: "tablet", Width: 768},
	{Name: "mobile", Width: 375},
}
