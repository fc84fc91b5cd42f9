// Package gohpa maps raw HPA terminal replies into structured responses.
//
// A terminal reply is a payload of one or more concatenated <SIP> frames.
// Each frame names its response type in a Response element and may carry
// top-level fields and Record elements made of Key/Value Field pairs.
// MapResponse decodes every frame and assembles one Response.
//
// Records land in Response.Data under the response-type key (the wire type
// with its first letter lower-cased). The shape of each entry is fixed by the
// type's policy:
//
//   - sendSAF (grouped): category label -> list of field maps. The eight
//     summary tables (approvedSafSummary, pendingSafSummary,
//     declinedSafSummary, offlineApprovedSafSummary,
//     partiallyApprovedSafSummary, approvedSafVoidSummary,
//     pendingSafVoidSummary, declinedSafVoidSummary) always exist, possibly
//     empty. Numbered per-transaction tables collapse into one plural label
//     such as approvedSafRecords; a record without a category lands in
//     overallReport.
//   - any type without a registered policy (repeated): the first record is a
//     single field map, a second one turns the entry into a list.
//   - types registered as single: one field map, the last record wins.
//
// The response type is looked up with surrounding whitespace ignored, but the
// top-level attributes (VersionNumber, ResultCode, ...) are copied only from
// frames whose Response is exactly the registered wire type, e.g. "SendSAF".
//
// Field keys are normalized ("APPLICATION MODE" -> "applicationMode"). A key
// repeated inside one record holds a list of its values in document order.
// Values are copied as they arrived, whitespace included.
package gohpa
