package catalog

import "github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"

// Default returns the built-in OpenStreetMap sources for the Olsztyn
// area. Display names are the user-visible keys and stay in Polish.
func Default() *Catalog {
	return New(
		TileSource{
			Name:        "Standardowa mapa OSM",
			URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
			MinZoom:     0,
			MaxZoom:     19,
			CRS:         geo.WebMercator,
			Description: "Standardowa mapa OpenStreetMap z pełnymi detalami",
		},
		TileSource{
			Name:        "OpenTopoMap (topograficzna)",
			URL:         "https://a.tile.opentopomap.org/{z}/{x}/{y}.png",
			MinZoom:     0,
			MaxZoom:     17,
			CRS:         geo.WebMercator,
			Description: "Mapa topograficzna ze szlakami i warstwicami",
		},
		TileSource{
			Name:        "CyclOSM (dla rowerzystów)",
			URL:         "https://a.tile-cyclosm.openstreetmap.fr/cyclosm/{z}/{x}/{y}.png",
			MinZoom:     0,
			MaxZoom:     20,
			CRS:         geo.WebMercator,
			Description: "Mapa z wyróżnionymi ścieżkami rowerowymi",
		},
		TileSource{
			Name:        "Humanitarian (humanitarna)",
			URL:         "https://a.tile.openstreetmap.fr/hot/{z}/{x}/{y}.png",
			MinZoom:     0,
			MaxZoom:     20,
			CRS:         geo.WebMercator,
			Description: "Mapa humanitarna z wyróżnionymi budynkami",
		},
		TileSource{
			Name:        "Transport",
			URL:         "https://tile.memomaps.de/tilegen/{z}/{x}/{y}.png",
			MinZoom:     0,
			MaxZoom:     18,
			CRS:         geo.WebMercator,
			Description: "Mapa komunikacji publicznej i transportu",
		},
	)
}
