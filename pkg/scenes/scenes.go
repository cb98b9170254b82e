// Package scenes is the scene template library: the named backdrop
// concepts a generative-image collaborator can be asked to produce.
// The tables are immutable mapping constants built once at process
// start; nothing here mutates per request.
package scenes

import(
	"sort"
	"strings"
)

type Category string

const (
	Studio    Category = "studio"
	Lifestyle Category = "lifestyle"
	Outdoor   Category = "outdoor"
	Ecommerce Category = "e-commerce"
	Premium   Category = "premium"
	Seasonal  Category = "seasonal"
	Social    Category = "social"
)

// CustomizationOptions lists the knobs a template exposes.
type CustomizationOptions struct {
	Colors   []string
	Surfaces []string
	Lighting []string
	Angles   []string
}

// Customizations is one user's selection from those knobs.
type Customizations struct {
	Color    string
	Surface  string
	Lighting string
	Angle    string
}

type Template struct {
	ID            string
	Name          string
	Category      Category
	Prompt        string
	Tags          []string
	Description   string
	Customization CustomizationOptions
	IsPremium     bool
	Popularity    int // for sorting
}

// Categories in a stable order.
func Categories() []Category {
	return []Category{Studio, Lifestyle, Outdoor, Ecommerce, Premium, Seasonal, Social}
}

// Get returns a template by id, or false.
func Get(id string) (Template, bool) {
	t, ok := templates[id]
	return t, ok
}

// All returns every template, most popular first.
func All() []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Popularity != out[j].Popularity {
			return out[i].Popularity > out[j].Popularity
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByCategory filters All() down to one category.
func ByCategory(c Category) []Template {
	out := []Template{}
	for _, t := range All() {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Search matches the query against names, tags and descriptions,
// most popular first.
func Search(query string) []Template {
	query = strings.ToLower(query)
	out := []Template{}

	for _, t := range All() {
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
			continue
		}
		for _, tag := range t.Tags {
			if strings.Contains(tag, query) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// BuildPrompt appends the chosen customizations to a template's base
// prompt. Unknown ids yield an empty string.
func BuildPrompt(id string, c Customizations) string {
	t, ok := templates[id]
	if !ok { return "" }

	prompt := t.Prompt
	if c.Color != ""    { prompt += ", " + c.Color + " color scheme" }
	if c.Surface != ""  { prompt += ", " + c.Surface + " surface" }
	if c.Lighting != "" { prompt += ", " + c.Lighting + " lighting" }
	if c.Angle != ""    { prompt += ", " + c.Angle + " camera angle" }
	return prompt
}

var templates = map[string]Template{
	"studio-white": {
		ID:          "studio-white",
		Name:        "Clean White Studio",
		Category:    Studio,
		Prompt:      "Pure white seamless photography studio background, professional soft box lighting, clean minimal aesthetic, high-key lighting setup, product photography",
		Tags:        []string{"minimal", "clean", "e-commerce", "professional", "white"},
		Description: "Classic white background perfect for e-commerce and catalog shots",
		Customization: CustomizationOptions{
			Lighting: []string{"soft", "bright", "dramatic"},
			Angles:   []string{"front", "45-degree", "slight-angle"},
		},
		Popularity: 100,
	},
	"studio-gray": {
		ID:          "studio-gray",
		Name:        "Neutral Gray Studio",
		Category:    Studio,
		Prompt:      "Neutral gray seamless photography backdrop, professional studio lighting, subtle gradient, clean product photography setup",
		Tags:        []string{"neutral", "professional", "versatile", "gray"},
		Description: "Versatile gray backdrop that works with any product color",
		Customization: CustomizationOptions{
			Colors:   []string{"light-gray", "medium-gray", "charcoal"},
			Lighting: []string{"soft", "contrasty", "rim-light"},
		},
		Popularity: 85,
	},
	"studio-gradient": {
		ID:          "studio-gradient",
		Name:        "Soft Gradient",
		Category:    Studio,
		Prompt:      "Elegant soft gradient background transitioning smoothly, professional studio lighting, modern aesthetic, subtle color transition",
		Tags:        []string{"modern", "gradient", "elegant", "colorful"},
		Description: "Modern gradient backgrounds with customizable colors",
		Customization: CustomizationOptions{
			Colors:   []string{"blue-purple", "pink-orange", "teal-blue", "peach-cream", "gray-white"},
			Lighting: []string{"soft", "even"},
		},
		Popularity: 78,
	},
	"lifestyle-desk": {
		ID:          "lifestyle-desk",
		Name:        "Modern Workspace",
		Category:    Lifestyle,
		Prompt:      "Modern minimalist desk setup, clean wooden desk surface, natural window light, plants and minimal accessories, lifestyle product photography, cozy workspace aesthetic",
		Tags:        []string{"workspace", "desk", "modern", "tech", "office"},
		Description: "Perfect for tech products, stationery, and office items",
		Customization: CustomizationOptions{
			Surfaces: []string{"oak-wood", "walnut", "white-laminate", "concrete"},
			Lighting: []string{"natural-window", "warm-afternoon", "bright-morning"},
		},
		Popularity: 95,
	},
	"lifestyle-kitchen": {
		ID:          "lifestyle-kitchen",
		Name:        "Kitchen Counter",
		Category:    Lifestyle,
		Prompt:      "Clean modern kitchen counter, marble or granite surface, natural light from window, fresh ingredients and plants nearby, lifestyle food photography",
		Tags:        []string{"kitchen", "food", "cooking", "home", "marble"},
		Description: "Ideal for food products, kitchenware, and appliances",
		Customization: CustomizationOptions{
			Surfaces: []string{"white-marble", "black-granite", "butcher-block", "quartz"},
			Lighting: []string{"natural", "warm", "bright"},
		},
		Popularity: 88,
	},
	"lifestyle-bathroom": {
		ID:          "lifestyle-bathroom",
		Name:        "Spa Bathroom",
		Category:    Lifestyle,
		Prompt:      "Elegant spa-like bathroom setting, white marble vanity, soft natural light, plants and candles, luxury self-care aesthetic, beauty product photography",
		Tags:        []string{"bathroom", "spa", "beauty", "skincare", "luxury"},
		Description: "Luxurious setting for beauty and skincare products",
		Customization: CustomizationOptions{
			Surfaces: []string{"white-marble", "terrazzo", "light-wood"},
			Lighting: []string{"soft-natural", "warm-ambient", "bright-clean"},
		},
		Popularity: 82,
	},
	"outdoor-nature": {
		ID:          "outdoor-nature",
		Name:        "Natural Outdoor",
		Category:    Outdoor,
		Prompt:      "Beautiful natural outdoor setting, soft grass or moss surface, dappled sunlight through trees, organic aesthetic, eco-friendly product photography",
		Tags:        []string{"nature", "outdoor", "organic", "eco", "green"},
		Description: "Natural setting for eco-friendly and organic products",
		Customization: CustomizationOptions{
			Surfaces: []string{"grass", "moss", "stone", "wood-stump"},
			Lighting: []string{"dappled-sunlight", "golden-hour", "soft-overcast"},
		},
		Popularity: 80,
	},
	"outdoor-urban": {
		ID:          "outdoor-urban",
		Name:        "Urban Street",
		Category:    Outdoor,
		Prompt:      "Urban street scene, concrete or brick surface, city atmosphere, modern streetwear aesthetic, urban product photography",
		Tags:        []string{"urban", "street", "city", "concrete", "modern"},
		Description: "Edgy urban setting for fashion and streetwear",
		Customization: CustomizationOptions{
			Surfaces: []string{"concrete", "brick", "asphalt", "metal"},
			Lighting: []string{"natural", "dramatic-shadow", "overcast"},
		},
		Popularity: 73,
	},
	"ecommerce-amazon": {
		ID:          "ecommerce-amazon",
		Name:        "Amazon Standard",
		Category:    Ecommerce,
		Prompt:      "Pure white background, professional product photography, bright even lighting, clean isolated product shot, e-commerce marketplace standard, no shadows",
		Tags:        []string{"amazon", "e-commerce", "white", "marketplace", "clean"},
		Description: "Meets Amazon and marketplace image requirements",
		Customization: CustomizationOptions{
			Lighting: []string{"bright-even", "soft-shadow", "no-shadow"},
		},
		Popularity: 98,
	},
	"ecommerce-flat-lay": {
		ID:          "ecommerce-flat-lay",
		Name:        "Flat Lay",
		Category:    Ecommerce,
		Prompt:      "Professional flat lay photography, top-down view, clean organized arrangement, minimal props, bright even lighting, social media optimized",
		Tags:        []string{"flat-lay", "top-down", "organized", "social-media"},
		Description: "Top-down flat lay perfect for social media and catalogs",
		Customization: CustomizationOptions{
			Surfaces: []string{"white", "marble", "wood", "colored-paper"},
			Colors:   []string{"white", "pink", "blue", "terracotta"},
		},
		Popularity: 82,
	},
	"premium-dark": {
		ID:          "premium-dark",
		Name:        "Dark Luxury",
		Category:    Premium,
		Prompt:      "Dark luxury backdrop, dramatic low-key lighting, premium product photography, elegant shadows, high-end aesthetic, moody atmosphere",
		Tags:        []string{"luxury", "dark", "premium", "dramatic", "moody"},
		Description: "Dramatic dark setting for luxury and premium products",
		Customization: CustomizationOptions{
			Colors:   []string{"black", "deep-navy", "charcoal"},
			Lighting: []string{"dramatic-spot", "rim-light", "soft-moody"},
		},
		IsPremium:  true,
		Popularity: 77,
	},
	"premium-marble": {
		ID:          "premium-marble",
		Name:        "Marble Surface",
		Category:    Premium,
		Prompt:      "Elegant white marble surface, luxury product photography, soft diffused lighting, premium aesthetic, gold accents optional",
		Tags:        []string{"marble", "luxury", "elegant", "premium", "white"},
		Description: "Classic marble elegance for premium products",
		Customization: CustomizationOptions{
			Surfaces: []string{"white-marble", "black-marble", "green-marble", "pink-marble"},
			Lighting: []string{"soft-diffused", "bright-clean", "warm"},
		},
		IsPremium:  true,
		Popularity: 86,
	},
	"seasonal-autumn": {
		ID:          "seasonal-autumn",
		Name:        "Autumn Warmth",
		Category:    Seasonal,
		Prompt:      "Warm autumn setting, fallen leaves, wooden surface, golden hour lighting, cozy fall aesthetic, warm earth tones",
		Tags:        []string{"autumn", "fall", "warm", "cozy", "leaves"},
		Description: "Warm and cozy autumn atmosphere",
		Customization: CustomizationOptions{
			Colors:   []string{"orange", "burgundy", "golden", "brown"},
			Surfaces: []string{"rustic-wood", "burlap", "wool"},
		},
		Popularity: 72,
	},
	"seasonal-winter": {
		ID:          "seasonal-winter",
		Name:        "Winter Cozy",
		Category:    Seasonal,
		Prompt:      "Cozy winter setting, soft white fur or knit textures, warm lighting, hygge aesthetic, holiday feeling, snowy atmosphere",
		Tags:        []string{"winter", "cozy", "holiday", "snow", "hygge"},
		Description: "Cozy winter setting perfect for holiday season",
		Customization: CustomizationOptions{
			Colors:   []string{"white", "cream", "silver", "pine-green", "red"},
			Surfaces: []string{"faux-fur", "knit", "wood"},
		},
		Popularity: 73,
	},
	"social-instagram": {
		ID:          "social-instagram",
		Name:        "Instagram Ready",
		Category:    Social,
		Prompt:      "Instagram-optimized product photography, trendy aesthetic, perfect composition, influencer style, social media ready, engaging and shareable",
		Tags:        []string{"instagram", "social-media", "trendy", "influencer"},
		Description: "Optimized for Instagram engagement",
		Customization: CustomizationOptions{
			Colors:   []string{"millennial-pink", "sage-green", "terracotta", "cream"},
			Lighting: []string{"golden-hour", "soft-natural", "ring-light"},
		},
		Popularity: 88,
	},
}
