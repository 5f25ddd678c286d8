package siteconfig

import "github.com/novaweb/go-sitebuilder/internal/identity"

// Placeholder copy used by freshly created entities. The product ships in
// French; these strings are part of the published contract, not i18n slack.
const (
	DefaultPageName       = "Nouvelle Page"
	DefaultHeroTitle      = "Titre"
	DefaultHeroSubtitle   = "Sous-titre"
	DefaultText           = "Nouveau texte"
	DefaultEmailLabel     = "Email"
	DefaultMessageLabel   = "Message"
	DefaultButtonText     = "Envoyer"
	DefaultProductTitle   = "Nouveau Produit"
	DefaultProductPrice   = "0.00 €"
	DefaultProductSummary = "Description"
)

// DefaultContent builds the starter payload for a new section of the given
// type. Unknown types yield nil; AddSection treats that as a no-op.
func DefaultContent(sectionType SectionType) Content {
	switch sectionType {
	case SectionTypeHero:
		return HeroContent{Title: DefaultHeroTitle, Subtitle: DefaultHeroSubtitle}
	case SectionTypeText:
		return TextContent{Text: DefaultText}
	case SectionTypeImage:
		return ImageContent{}
	case SectionTypeProducts:
		return ProductsContent{Products: []ProductItem{}}
	case SectionTypeForm:
		return FormContent{
			EmailLabel:   DefaultEmailLabel,
			MessageLabel: DefaultMessageLabel,
			ButtonText:   DefaultButtonText,
		}
	default:
		return nil
	}
}

// DefaultProduct builds a placeholder product card with a fresh id.
func DefaultProduct(gen identity.Generator) ProductItem {
	return ProductItem{
		ID:          gen.NewID("prod"),
		Title:       DefaultProductTitle,
		Price:       DefaultProductPrice,
		Description: DefaultProductSummary,
	}
}

// Starter returns the configuration a brand new editing session begins with:
// one home page pre-populated with a hero and a text section. Hosts fall back
// to this when the persistence collaborator cannot supply a saved config.
func Starter(gen identity.Generator) SiteConfig {
	return SiteConfig{
		SiteName: "Mon Site Web",
		Tagline:  "Créez votre site facilement",
		Theme: Theme{
			PrimaryColor:   "#3b82f6",
			SecondaryColor: "#1e40af",
			FontFamily:     "Inter",
		},
		Pages: []PageConfig{
			{
				ID:   "home",
				Name: "Accueil",
				Type: PageTypeHome,
				Sections: []SectionConfig{
					{
						ID:   gen.NewID("sec"),
						Type: SectionTypeHero,
						Content: HeroContent{
							Title:    "Bienvenue sur votre site",
							Subtitle: "Personnalisez ce contenu selon vos besoins",
						},
					},
					{
						ID:      gen.NewID("sec"),
						Type:    SectionTypeText,
						Content: TextContent{Text: DefaultText},
					},
				},
			},
		},
		CrisisMode: CrisisMode{Enabled: false},
	}
}
