package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

func writeSection(w *strings.Builder, section siteconfig.SectionConfig) {
	switch content := section.Content.(type) {
	case siteconfig.HeroContent:
		writeHero(w, content)
	case siteconfig.TextContent:
		fmt.Fprintf(w, "<div class=\"text-section\">%s</div>\n", html.EscapeString(content.Text))
	case siteconfig.ImageContent:
		writeImage(w, content)
	case siteconfig.ProductsContent:
		writeProducts(w, content)
	case siteconfig.FormContent:
		writeForm(w, content)
	}
}

func writeHero(w *strings.Builder, content siteconfig.HeroContent) {
	if content.BgImage != nil && *content.BgImage != "" {
		bg := html.EscapeString(*content.BgImage)
		fmt.Fprintf(w, "<div class=\"hero with-bg\" style=\"background-image: url('%s'); background-size: cover; background-position: center;\">\n", bg)
	} else {
		w.WriteString("<div class=\"hero\">\n")
	}
	w.WriteString("  <div class=\"hero-content\">\n")
	fmt.Fprintf(w, "    <h1>%s</h1>\n", html.EscapeString(content.Title))
	fmt.Fprintf(w, "    <p>%s</p>\n", html.EscapeString(content.Subtitle))
	w.WriteString("  </div>\n</div>\n")
}

func writeImage(w *strings.Builder, content siteconfig.ImageContent) {
	if content.Src != nil && *content.Src != "" {
		fmt.Fprintf(w, "<div class=\"image-section\">\n  <img src=\"%s\" alt=\"Content Image\">\n</div>\n", html.EscapeString(*content.Src))
		return
	}
	w.WriteString("<div class=\"image-section\"><div class=\"image-placeholder\">Image Placeholder</div></div>\n")
}

func writeProducts(w *strings.Builder, content siteconfig.ProductsContent) {
	w.WriteString("<div class=\"products-section\">\n  <div class=\"products-container\">\n")
	w.WriteString("    <h3 class=\"products-title\">Nos Produits</h3>\n")
	if len(content.Products) == 0 {
		w.WriteString("    <p style=\"text-align: center; color: #9ca3af; font-style: italic;\">Aucun produit configuré.</p>\n")
		w.WriteString("  </div>\n</div>\n")
		return
	}
	w.WriteString("    <div class=\"products-carousel\">")
	for _, product := range content.Products {
		writeProductCard(w, product)
	}
	w.WriteString("</div>\n  </div>\n</div>\n")
}

func writeProductCard(w *strings.Builder, product siteconfig.ProductItem) {
	w.WriteString("<div class=\"product-card\">\n  <div class=\"product-image\">\n")
	if product.Image != nil && *product.Image != "" {
		fmt.Fprintf(w, "    <img src=\"%s\" alt=\"%s\">\n", html.EscapeString(*product.Image), html.EscapeString(product.Title))
	}
	w.WriteString("    <button class=\"product-heart\" onclick=\"this.textContent = this.textContent === '❤️' ? '🤍' : '❤️'\">🤍</button>\n")
	w.WriteString("  </div>\n  <div class=\"product-info\">\n    <div class=\"product-header\">\n")
	fmt.Fprintf(w, "      <span class=\"product-title\">%s</span>\n", html.EscapeString(product.Title))
	fmt.Fprintf(w, "      <span class=\"product-price\">%s</span>\n", html.EscapeString(product.Price))
	w.WriteString("    </div>\n")
	fmt.Fprintf(w, "    <p class=\"product-description\">%s</p>\n", html.EscapeString(product.Description))
	w.WriteString("    <button class=\"product-button\">Valider</button>\n")
	w.WriteString("  </div>\n</div>\n")
}

func writeForm(w *strings.Builder, content siteconfig.FormContent) {
	w.WriteString("<div class=\"form-section\">\n  <div class=\"form-container\">\n")
	w.WriteString("    <form onsubmit=\"event.preventDefault(); alert('Formulaire soumis');\">\n")
	w.WriteString("      <div class=\"form-group\">\n")
	fmt.Fprintf(w, "        <label class=\"form-label\">%s</label>\n", html.EscapeString(content.EmailLabel))
	w.WriteString("        <input type=\"email\" class=\"form-input\" placeholder=\"exemple@email.com\" required>\n")
	w.WriteString("      </div>\n      <div class=\"form-group\">\n")
	fmt.Fprintf(w, "        <label class=\"form-label\">%s</label>\n", html.EscapeString(content.MessageLabel))
	w.WriteString("        <textarea class=\"form-textarea\" placeholder=\"Votre message...\" required></textarea>\n")
	w.WriteString("      </div>\n")
	fmt.Fprintf(w, "      <button type=\"submit\" class=\"form-button\">%s</button>\n", html.EscapeString(content.ButtonText))
	w.WriteString("    </form>\n  </div>\n</div>\n")
}
