// Package pages lists every table page that can be exported from the command line.
package pages

import (
	"fmt"
	"sort"
	"strings"

	"effix/frontend/customers"
	"effix/frontend/expenses"
	"effix/frontend/exports"
	"effix/frontend/invoices"
	"effix/frontend/leads"
	"effix/frontend/projects"
	"effix/frontend/tasks"
)

var all = []exports.Exporter{
	leads.Dataset,
	customers.Dataset,
	expenses.Dataset,
	invoices.Dataset,
	projects.Dataset,
	tasks.Dataset,
}

// Names returns the exportable page names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.PageName())
	}
	sort.Strings(names)
	return names
}

// Lookup finds the exporter for name, ignoring case.
func Lookup(name string) (exports.Exporter, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, e := range all {
		if e.PageName() == want {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown page %q (valid: %s)", name, strings.Join(Names(), ", "))
}
