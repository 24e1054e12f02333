package views

const (
	// HeaderLabel is the brand text at the left of the header.
	HeaderLabel = "Zustand"
	// Disclaimer is the footer paragraph.
	Disclaimer = "该网站并非官方中文文档"
	// DefaultTitle is used when no site title is configured.
	DefaultTitle = "Zustand 中文文档"
	// DefaultURL is the canonical site URL.
	DefaultURL = "https://zustand.acebook.cc"
	// OGImage is the social preview image path.
	OGImage = "/bear.jpg"

	docsRoute = "/docs/intro"
	githubURL = "https://github.com/pmndrs/zustand"

	description      = "🐻 承担 React 中状态管理的必需品 zustand教程， 如果你习惯了 Redux 或喜欢 React 的自然不可变更新，但期望 更加轻量、便捷 的状态管理方案那么试试它吧~"
	ogDescription    = "Zustand 中文文档"
	ogDescriptionAlt = "zustand教程， 如果你习惯了 Redux 或喜欢 React 的自然不可变更新，但期望 更加轻量、便捷 的状态管理方案那么试试它吧~"
	keywords         = "zustand, react, zustand-react, state management, state sharing, 状态管理, 状态共享， 跨框架, 跨应用, 状态分享, state sharing, state-management"
)

// NavLinks returns the header navigation in display order.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "中文文档", Target: docsRoute},
		{Label: "官方Github", Target: githubURL, External: true},
	}
}

// HeadTags returns the page metadata in document order for the variant.
// An unknown variant falls back to MetaFull.
func HeadTags(variant MetaVariant) []MetaTag {
	tags := []MetaTag{
		{Name: "viewport", Content: "width=device-width, initial-scale=1"},
		{Name: "description", Content: description},
		{Property: "og:description", Content: ogDescription},
		{Name: "og:image", Content: OGImage},
		{Charset: "utf-8"},
	}
	if variant != MetaMinimal {
		tags = append(tags, MetaTag{Property: "og:description", Content: ogDescriptionAlt})
	}
	return append(tags, MetaTag{Name: "keywords", Content: keywords})
}
