package htmlutil

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy elimina todo el markup; equivale a un strip_tags estricto.
var stripPolicy = bluemonday.StrictPolicy()

// StripTags devuelve el texto plano de un fragmento HTML: quita etiquetas,
// decodifica entidades (&amp;, &lt;, etc.) y recorta espacios en los extremos.
func StripTags(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}
	plain := stripPolicy.Sanitize(htmlContent)
	plain = html.UnescapeString(plain)
	return strings.TrimSpace(plain)
}
