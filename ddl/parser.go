package ddl

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Locale identifies the translation used to resolve labels, in the
// backend's language_COUNTRY notation.
type Locale struct {
	Language string
	Country  string
}

func NewLocale(language, country string) Locale {
	return Locale{Language: language, Country: country}
}

// ParseLocale parses "en_US" or "en".
func ParseLocale(id string) Locale {
	language, country, _ := strings.Cut(id, "_")
	return Locale{Language: language, Country: country}
}

func (l Locale) String() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + "_" + l.Country
}

type xmlRoot struct {
	AvailableLocales string       `xml:"available-locales,attr"`
	DefaultLocale    string       `xml:"default-locale,attr"`
	Elements         []xmlElement `xml:"dynamic-element"`
}

type xmlElement struct {
	DataType   string        `xml:"dataType,attr"`
	Type       string        `xml:"type,attr"`
	Name       string        `xml:"name,attr"`
	Value      string        `xml:"value,attr"`
	Multiple   string        `xml:"multiple,attr"`
	Required   string        `xml:"required,attr"`
	ReadOnly   string        `xml:"readOnly,attr"`
	Repeatable string        `xml:"repeatable,attr"`
	Elements   []xmlElement  `xml:"dynamic-element"`
	MetaData   []xmlMetaData `xml:"meta-data"`
}

type xmlMetaData struct {
	Locale  string     `xml:"locale,attr"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Parse turns an XML form definition into its fields, in document
// order. Labels and predefined values are resolved against locale with
// a fallback chain: exact locale, same language, the definition's
// default locale, then whatever translation comes first. Any malformed
// element fails the whole parse.
func Parse(definition string, locale Locale) ([]Field, error) {
	var root xmlRoot
	if err := xml.Unmarshal([]byte(definition), &root); err != nil {
		return nil, errors.Wrap(err, "parse definition")
	}

	defaultLocale := ParseLocale(root.DefaultLocale)

	fields := make([]Field, 0, len(root.Elements))
	for _, el := range root.Elements {
		f, err := parseField(el, locale, defaultLocale)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseField(el xmlElement, locale, defaultLocale Locale) (Field, error) {
	if el.Name == "" {
		return nil, errors.New("parse definition: element without name attribute")
	}

	entries := resolveMetaData(el.MetaData, locale, defaultLocale)

	def := Definition{
		Name:            el.Name,
		DataType:        el.DataType,
		EditorType:      el.Type,
		Label:           entries["label"],
		Tip:             entries["tip"],
		Required:        parseOptionalBool(el.Required),
		ReadOnly:        parseBoolAttr(el.ReadOnly),
		Repeatable:      parseBoolAttr(el.Repeatable),
		Multiple:        parseBoolAttr(el.Multiple),
		PredefinedValue: entries["predefinedValue"],
	}

	for _, child := range el.Elements {
		if child.Type != "option" {
			continue
		}
		childEntries := resolveMetaData(child.MetaData, locale, defaultLocale)
		def.Options = append(def.Options, Option{
			Label: childEntries["label"],
			Name:  child.Name,
			Value: child.Value,
		})
	}

	f, err := New(def)
	if err != nil {
		return nil, errors.Wrapf(err, "parse definition: field %q", el.Name)
	}
	return f, nil
}

// resolveMetaData picks the best translation block for locale and
// returns its entries by name.
func resolveMetaData(blocks []xmlMetaData, locale, defaultLocale Locale) map[string]string {
	chosen := -1
	for i, md := range blocks {
		if md.Locale == locale.String() {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		for i, md := range blocks {
			if ParseLocale(md.Locale).Language == locale.Language {
				chosen = i
				break
			}
		}
	}
	if chosen < 0 {
		for i, md := range blocks {
			if md.Locale == defaultLocale.String() {
				chosen = i
				break
			}
		}
	}
	if chosen < 0 {
		if len(blocks) == 0 {
			return map[string]string{}
		}
		chosen = 0
	}

	entries := make(map[string]string, len(blocks[chosen].Entries))
	for _, e := range blocks[chosen].Entries {
		entries[e.Name] = strings.TrimSpace(e.Value)
	}
	return entries
}

func parseBoolAttr(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

func parseOptionalBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
