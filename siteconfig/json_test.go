package siteconfig

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/novaweb/go-sitebuilder/internal/identity"
)

func TestSectionConfigRoundTripsEveryContentType(t *testing.T) {
	gen := identity.Deterministic("json-test")
	cfg := Starter(gen)
	for _, sectionType := range SectionTypes() {
		cfg = AddSection(cfg, gen, "home", sectionType)
	}
	sections := cfg.Pages[0].Sections
	cfg = AddProduct(cfg, gen, "home", sections[len(sections)-2].ID)

	encoded, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded SiteConfig
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded, cfg) {
		t.Fatalf("round trip changed the configuration:\n got %+v\nwant %+v", decoded, cfg)
	}
}

func TestSectionConfigMarshalUsesCamelCaseEnvelope(t *testing.T) {
	bg := "https://example.com/bg.png"
	section := SectionConfig{
		ID:      "sec-1",
		Type:    SectionTypeHero,
		Content: HeroContent{Title: "T", Subtitle: "S", BgImage: &bg},
	}

	encoded, err := json.Marshal(section)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := string(encoded)
	for _, want := range []string{`"id":"sec-1"`, `"type":"hero"`, `"bgImage"`, `"subtitle"`} {
		if !strings.Contains(payload, want) {
			t.Fatalf("expected %s in %s", want, payload)
		}
	}
}

func TestSectionConfigUnmarshalRejectsUnknownType(t *testing.T) {
	var section SectionConfig
	err := json.Unmarshal([]byte(`{"id":"sec-1","type":"carousel","content":{}}`), &section)
	if !errors.Is(err, ErrUnknownSectionType) {
		t.Fatalf("expected ErrUnknownSectionType, got %v", err)
	}
}

func TestSectionConfigUnmarshalNullBgImage(t *testing.T) {
	var section SectionConfig
	raw := `{"id":"sec-1","type":"hero","content":{"title":"T","subtitle":"S","bgImage":null}}`
	if err := json.Unmarshal([]byte(raw), &section); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	hero, ok := section.Content.(HeroContent)
	if !ok {
		t.Fatalf("expected hero content, got %T", section.Content)
	}
	if hero.BgImage != nil {
		t.Fatalf("expected nil bgImage, got %v", *hero.BgImage)
	}
}
