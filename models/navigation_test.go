package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navFixture() NavigationItem {
	return NavigationItem{
		Label: "Electronics",
		Href:  "/electronics",
		Children: []NavigationItem{
			{
				Label: "Mobile",
				Href:  "/electronics/mobile",
				Children: []NavigationItem{
					{Label: "Phones", Href: "/electronics/mobile/phones"},
					{Label: "Cases", Href: "/electronics/mobile/cases"},
				},
			},
			{Label: "Audio", Href: "/electronics/audio"},
		},
	}
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	var visited []string
	navFixture().Walk(func(n NavigationItem) bool {
		visited = append(visited, n.Href)
		return true
	})

	assert.Equal(t, []string{
		"/electronics",
		"/electronics/mobile",
		"/electronics/mobile/phones",
		"/electronics/mobile/cases",
		"/electronics/audio",
	}, visited)
}

func TestWalkStopsEarly(t *testing.T) {
	var visited []string
	navFixture().Walk(func(n NavigationItem) bool {
		visited = append(visited, n.Href)
		return n.Href != "/electronics/mobile"
	})

	assert.Equal(t, []string{"/electronics", "/electronics/mobile"}, visited)
}

func TestFindByHref(t *testing.T) {
	node, ok := navFixture().FindByHref("/electronics/mobile/cases")
	require.True(t, ok)
	assert.Equal(t, "Cases", node.Label)

	_, ok = navFixture().FindByHref("/womens")
	assert.False(t, ok)
}
