package nav

import (
	"effix/infrastructure/i18n"
	"effix/infrastructure/navigation"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Username string
	Locale   i18n.Locale
	Redirect string
	Options  []LanguageOption
}

type LanguageOption struct {
	Value    string
	Label    string
	Selected bool
}

// BuildTopNavData prepares the header. redirect is where the language switch returns to.
func BuildTopNavData(tr *i18n.Translator, redirect string) TopNavData {
	opts := make([]LanguageOption, 0, len(i18n.Supported))
	for _, loc := range i18n.Supported {
		opts = append(opts, LanguageOption{
			Value:    string(loc),
			Label:    tr.T("language." + string(loc)),
			Selected: loc == tr.Locale(),
		})
	}
	return TopNavData{
		Username: tr.T("user.name"),
		Locale:   tr.Locale(),
		Redirect: redirect,
		Options:  opts,
	}
}

type SidebarItem struct {
	Label  string
	Path   string
	Icon   string
	Active bool
}

type SidebarSection struct {
	Title string
	Items []SidebarItem
}

type SidebarData struct {
	Sections     []SidebarSection
	UpgradeTitle string
	UpgradeBody  string
	UpgradeCTA   string
}

// BuildSidebar lists the registered entries and marks the one serving currentPath.
func BuildSidebar(reg *navigation.Registry, tr *i18n.Translator, currentPath string) SidebarData {
	activeCode := ""
	if active, ok := reg.Active(currentPath); ok {
		activeCode = active.Code
	}

	sections := []struct {
		code     string
		titleKey string
	}{
		{code: navigation.SectionMain, titleKey: "sidebar.main"},
		{code: navigation.SectionOthers, titleKey: "sidebar.others"},
	}

	data := SidebarData{
		UpgradeTitle: tr.T("sidebar.upgrade.title"),
		UpgradeBody:  tr.T("sidebar.upgrade.description"),
		UpgradeCTA:   tr.T("sidebar.upgrade.button"),
	}
	for _, s := range sections {
		entries := reg.Section(s.code)
		if len(entries) == 0 {
			continue
		}
		section := SidebarSection{Title: tr.T(s.titleKey)}
		for _, e := range entries {
			section.Items = append(section.Items, SidebarItem{
				Label:  tr.T(e.LabelKey),
				Path:   e.Path,
				Icon:   e.Icon,
				Active: e.Code == activeCode,
			})
		}
		data.Sections = append(data.Sections, section)
	}
	return data
}
