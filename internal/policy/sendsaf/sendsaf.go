// Package sendsaf registers the SendSAF response policy. SendSAF forwards the
// terminal's store-and-forward queue; its reply is split into summary and
// per-transaction tables.
package sendsaf

import "github.com/d21d3q/gohpa/internal/policy"

// Name is the response-type key of SendSAF replies.
const Name = "sendSAF"

// Categories lists the summary tables preseeded on every SendSAF response.
var Categories = []string{
	"approvedSafSummary",
	"pendingSafSummary",
	"declinedSafSummary",
	"offlineApprovedSafSummary",
	"partiallyApprovedSafSummary",
	"approvedSafVoidSummary",
	"pendingSafVoidSummary",
	"declinedSafVoidSummary",
}

func init() {
	policy.Register(policy.Policy{
		Name:              Name,
		Shape:             policy.ShapeGrouped,
		Categories:        Categories,
		CaptureAttributes: true,
	})
}
