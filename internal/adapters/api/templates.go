package api

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var cityImages = map[int]string{
	1: "/static/images/city.png",
	2: "/static/images/city_red.png",
	3: "/static/images/city_green.png",
	4: "/static/images/city_blue.png",
	5: "/static/images/city_yellow.png",
}

// iconPath picks the weather icon for a capitalized condition description.
// Rules are checked in order; the first match wins.
func iconPath(condition string) string {
	switch {
	case condition == "Ясно":
		return "/static/images/sun.png"
	case strings.Contains(condition, "нег"):
		return "/static/images/snow.png"
	case strings.Contains(condition, "Облачно с прояснениями"):
		return "/static/images/cloudy_sun.png"
	case strings.Contains(condition, "облач"):
		return "/static/images/clouds.png"
	case strings.Contains(condition, "ождь"):
		return "/static/images/rain2.png"
	default:
		return "/static/images/cloudy.png"
	}
}

// cityImage returns the card background for card number n (1-based); "" past the fifth card
func cityImage(n int) string {
	return cityImages[n]
}

// pageNumbers returns 1..total
func pageNumbers(total int) []int {
	pages := make([]int, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, i)
	}
	return pages
}

func loadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"iconPath":    iconPath,
		"cityImage":   cityImage,
		"pageNumbers": pageNumbers,
		"add":         func(a, b int) int { return a + b },
	}
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// setupStaticFiles serves the embedded stylesheet and images
func (s *HTTPServerAdapter) setupStaticFiles() {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	s.router.StaticFS("/static", http.FS(static))
}
