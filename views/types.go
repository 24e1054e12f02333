package views

// MetaVariant selects which metadata set the landing page emits.
type MetaVariant string

const (
	// MetaFull carries the expanded descriptions, including the detailed
	// og:description duplicate.
	MetaFull MetaVariant = "full"
	// MetaMinimal drops the detailed og:description.
	MetaMinimal MetaVariant = "minimal"
)

// SiteConfig holds the ambient site settings templates read from.
// Nothing here is mutated after the server starts.
type SiteConfig struct {
	Title   string      // <title> text, rendered verbatim
	URL     string      // canonical URL
	Lang    string      // <html lang>
	Variant MetaVariant // metadata set
}

// Assets carries resolved (versioned) static asset URLs into the templates.
type Assets struct {
	Bear       string
	Stylesheet string
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label    string
	Target   string
	External bool // opens in a new tab
}

// MetaTag is a single <meta> element. Exactly one of Name, Property or
// Charset is set.
type MetaTag struct {
	Name     string
	Property string
	Charset  string
	Content  string
}
