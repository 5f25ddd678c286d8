package siteconfig

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a configuration to its canonical JSON document. It is the
// counterpart of Decode; stores should persist exactly what it returns.
func Encode(cfg SiteConfig) (json.RawMessage, error) {
	return json.Marshal(cfg)
}

// sectionEnvelope is the wire shape of a section: the content payload keyed by
// the section type, matching what the persistence API stores.
type sectionEnvelope struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the section with its typed payload under "content".
func (s SectionConfig) MarshalJSON() ([]byte, error) {
	content := s.Content
	if content == nil {
		content = DefaultContent(s.Type)
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionEnvelope{ID: s.ID, Type: s.Type, Content: raw})
}

// UnmarshalJSON decodes the payload variant selected by the "type" tag.
// Unknown section types are rejected; missing payload fields decode to their
// zero values so partial documents stay loadable.
func (s *SectionConfig) UnmarshalJSON(data []byte) error {
	var envelope sectionEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	content, err := decodeContent(envelope.Type, envelope.Content)
	if err != nil {
		return err
	}

	s.ID = envelope.ID
	s.Type = envelope.Type
	s.Content = content
	return nil
}

func decodeContent(sectionType SectionType, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		return DefaultContent(sectionType), nil
	}

	switch sectionType {
	case SectionTypeHero:
		var content HeroContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}
		return content, nil
	case SectionTypeText:
		var content TextContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}
		return content, nil
	case SectionTypeImage:
		var content ImageContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}
		return content, nil
	case SectionTypeProducts:
		var content ProductsContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}
		return content, nil
	case SectionTypeForm:
		var content FormContent
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, err
		}
		return content, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, sectionType)
	}
}
