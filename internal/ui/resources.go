package ui

import (
	"fyne.io/fyne/v2"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/model"
	"github.com/creodex/creo-checklist/internal/platform"
)

const (
	AppIcon = "creo-checklist.png"
)

// LoadLogoResource loads the window icon from the working directory or from
// beside the executable
func LoadLogoResource() (fyne.Resource, error) {
	path, err := platform.FindDataFile(AppIcon)
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(path)
}

// iconCache turns resolved catalog icons into Fyne resources once per entry
type iconCache struct {
	resolver    *catalog.IconResolver
	resources   map[string]fyne.Resource
	placeholder fyne.Resource
}

func newIconCache(resolver *catalog.IconResolver) *iconCache {
	return &iconCache{
		resolver:    resolver,
		resources:   make(map[string]fyne.Resource),
		placeholder: iconResource("placeholder", resolver.Placeholder()),
	}
}

// Resource returns the image resource for an entry
func (c *iconCache) Resource(e model.Entry) fyne.Resource {
	if res, ok := c.resources[e.ID]; ok {
		return res
	}
	icon := c.resolver.Resolve(e)
	res := c.placeholder
	if !icon.Placeholder {
		res = iconResource(e.ID, icon)
	}
	c.resources[e.ID] = res
	return res
}

// iconResource names the resource after the entry so Fyne's image cache
// keeps entries with the same file name apart
func iconResource(id string, icon catalog.Icon) fyne.Resource {
	return fyne.NewStaticResource(id+"-"+icon.Name, icon.Content)
}
