package catalog

import (
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/nuvemshop"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/htmlutil"
)

// descriptionLangs orden de preferencia al colapsar la descripción localizada.
var descriptionLangs = []string{"pt", "es", "en"}

// Normalize convierte una categoría remota a la forma fija {content, html_content}.
// La descripción de Nuvemshop llega como string plano o como mapa por idioma;
// se elige un único string (pt → es → en → vacío), se expone como html_content
// y content es el mismo texto sin markup.
func Normalize(cat nuvemshop.Category) dto.CategoryWithDescription {
	html := displayDescription(cat.Description)
	return dto.CategoryWithDescription{
		ID:            cat.ID,
		CategoryID:    cat.ID,
		Name:          cat.Name,
		Handle:        cat.Handle,
		Subcategories: cat.Subcategories,
		Content:       htmlutil.StripTags(html),
		HTMLContent:   html,
	}
}

// displayDescription elige el string a mostrar según la forma recibida.
func displayDescription(d nuvemshop.LocalizedText) string {
	if d.Values == nil {
		return d.Plain
	}
	for _, lang := range descriptionLangs {
		if v := d.Values[lang]; v != "" {
			return v
		}
	}
	return ""
}
