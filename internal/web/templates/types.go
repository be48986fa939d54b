package templates

// PreviewView is the view model of the swatch preview page.
type PreviewView struct {
	Mode        string
	NeutralSeed string
	BrandSeed   string
	NeutralName string
	BrandName   string
	Neutral     []Swatch
	Brand       []Swatch
	Groups      []TokenGroup
}

type Swatch struct {
	Shade string
	Hex   string
}

// TokenGroup is one registry category with its resolved tokens.
type TokenGroup struct {
	Category string
	Tokens   []TokenSwatch
}

type TokenSwatch struct {
	Token       string
	Description string
	Hex         string
}
