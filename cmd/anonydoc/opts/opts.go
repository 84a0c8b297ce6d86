package opts

import (
	"time"

	"github.com/anonydoc/anonydoc/pkg/config"
	"github.com/anonydoc/anonydoc/pkg/detector"
	"github.com/anonydoc/anonydoc/pkg/log"
	"github.com/anonydoc/anonydoc/pkg/processor"
	"github.com/anonydoc/anonydoc/pkg/pseudonym"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Registry   *pseudonym.Registry
	Store      *pseudonym.BoltStore // nil when no store is configured
	UserLogger *log.Logger
}

// NewDetector builds the configured detector stack: the NER sidecar client
// when an endpoint is set, the regex detector when enabled, fanned out
// through Multi when both are active.
func (o *RootOpts) NewDetector() detector.Detector {
	var detectors []detector.Detector
	if o.Config.Detector.Endpoint != "" {
		detectors = append(detectors, detector.NewClient(
			o.Config.Detector.Endpoint,
			o.Config.Detector.Model,
			time.Duration(o.Config.Detector.TimeoutSeconds)*time.Second,
		))
	}
	if o.Config.Detector.Regex {
		detectors = append(detectors, detector.NewRegexDetector())
	}
	if len(detectors) == 1 {
		return detectors[0]
	}
	return detector.NewMulti(detectors...)
}

// NewProcessor builds a Processor sharing the root registry.
func (o *RootOpts) NewProcessor() *processor.Processor {
	return processor.New(processor.Options{
		Detector:      o.NewDetector(),
		Registry:      o.Registry,
		Threshold:     o.Config.Threshold,
		ContextWindow: o.Config.ContextWindow,
	})
}

// SaveRegistry persists the registry into the store, when one is open.
func (o *RootOpts) SaveRegistry() error {
	if o.Store == nil {
		return nil
	}
	return o.Store.Save(o.Registry)
}
