package gohpa

import (
	"github.com/sirupsen/logrus"

	"github.com/d21d3q/gohpa/internal/frame"
	"github.com/d21d3q/gohpa/internal/policy"
	_ "github.com/d21d3q/gohpa/internal/policy/sendsaf" // register policy
	"github.com/d21d3q/gohpa/internal/records"
	"github.com/d21d3q/gohpa/internal/xmltree"
)

// MapResponse maps a raw terminal payload using the built-in policies.
func MapResponse(raw string) *Response {
	return MapResponseWithOptions(raw, MapOptions{})
}

// MapResponseWithOptions maps a raw terminal payload. Frames that cannot be
// decoded and records without a response type are skipped; the returned
// response is never nil.
func MapResponseWithOptions(raw string, opts MapOptions) *Response {
	m := mapper{
		registry: opts.registry(),
		log:      opts.logger(),
	}
	m.resp = newResponse(m.registry)
	for f := range frame.Split(raw) {
		m.mapFrame(f)
	}
	return m.resp
}

type mapper struct {
	registry *policy.Registry
	log      logrus.FieldLogger
	resp     *Response
}

func (m *mapper) mapFrame(f string) {
	root, err := xmltree.Decode(f)
	if err != nil {
		m.log.WithError(err).WithField("frame_len", len(f)).Debug("skipping frame")
		return
	}
	wire, _ := root.Value("Response")
	p, _ := m.registry.Lookup(policy.TypeKey(wire))

	if recs := records.FromTree(root); len(recs) > 0 {
		m.addRecords(p, recs)
	}
	if p.CaptureAttributes && wire == p.Wire() {
		m.resp.captureAttributes(root)
	}
}

func (m *mapper) addRecords(p policy.Policy, recs []records.Record) {
	if p.Name == "" {
		m.log.WithField("records", len(recs)).Debug("skipping records of frame without response type")
		return
	}
	for _, rec := range recs {
		if len(rec.Fields) == 0 {
			continue
		}
		m.resp.entry(p).add(rec)
	}
}
