package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"effix/infrastructure/i18n"
)

// Variant is a badge colour category.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
	VariantInfo    Variant = "info"
)

func (v Variant) normalized() Variant {
	switch v {
	case VariantSuccess, VariantWarning, VariantDanger, VariantInfo:
		return v
	}
	return VariantDefault
}

var statusKeys = map[string]string{
	"Active":         "status.active",
	"Inactive":       "status.inactive",
	"Pending":        "status.pending",
	"Completed":      "status.completed",
	"Cancelled":      "status.cancelled",
	"Approved":       "status.approved",
	"Rejected":       "status.rejected",
	"Reimbursed":     "status.reimbursed",
	"New":            "status.new",
	"Contacted":      "status.contacted",
	"Qualified":      "status.qualified",
	"Won":            "status.won",
	"Lost":           "status.lost",
	"Negotiation":    "status.negotiation",
	"Proposal Sent":  "status.proposal.sent",
	"Working":        "status.working",
	"Todo":           "status.todo",
	"In Progress":    "status.in.progress",
	"Review":         "status.review",
	"Draft":          "status.draft",
	"Sent":           "status.sent",
	"Paid":           "status.paid",
	"Partially Paid": "status.partially.paid",
	"Overdue":        "status.overdue",
	"Planning":       "status.planning",
	"On Hold":        "status.on.hold",
	"High":           "priority.high",
	"Medium":         "priority.medium",
	"Low":            "priority.low",
	"Billable":       "billable",
	"Non-billable":   "non.billable",
	"Invoiced":       "invoiced",
	"Not invoiced":   "not.invoiced",
	"Yes":            "yes",
	"No":             "no",
}

// StatusLabel translates a known status; anything else is returned unchanged.
func StatusLabel(tr *i18n.Translator, status string) string {
	key, ok := statusKeys[status]
	if !ok {
		return status
	}
	return tr.T(key)
}

// Badge renders a status pill. The variant is chosen by the caller.
func Badge(tr *i18n.Translator, status string, variant Variant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<span class="badge badge-`, string(variant.normalized()), `">`,
			esc(StatusLabel(tr, status)),
			`</span>`,
		)
	})
}

// Badges renders one badge per value.
func Badges(tr *i18n.Translator, values []string, variant Variant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="badge-row">`); err != nil {
			return err
		}
		for _, v := range values {
			if err := Badge(tr, v, variant).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeAll(w, `</div>`)
	})
}
