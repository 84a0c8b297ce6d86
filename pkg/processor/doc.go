/*
Package processor orchestrates the anonydoc text pipeline.

🎯 Purpose:
The processor package ties the detector boundary, the confidence filter,
the span replacer and the pseudonym registry together into the three
user-level operations: Anonymize, Pseudonymize and
ReversePseudonymization.

🔄 Processing Flow:

	┌─────────────┐
	│    text     │
	└─────────────┘
	      │
	      ▼
	┌─────────────┐    ┌─────────────┐    ┌─────────────┐
	│  Detector   │───►│  Threshold  │───►│  Replacer   │
	│ (candidates)│    │   filter    │    │ (splicing)  │
	└─────────────┘    └─────────────┘    └─────────────┘
	                                            │
	                         pseudonymize only  ▼
	                   ┌─────────────┐    ┌─────────────┐
	                   │  Registry   │◄───│    Rule     │
	                   │ (LABEL_N)   │    │ (per span)  │
	                   └─────────────┘    └─────────────┘

📦 Operations:

 1. Anonymize(ctx, text, labelToTag) — detected spans become fixed tags;
    a label without a tag passes through verbatim.

 2. Pseudonymize(ctx, text, labels) — detected spans become registry
    pseudonyms; repeated mentions of the same text share one pseudonym,
    within a call and across calls on the same Processor.

 3. ReversePseudonymization(text) — pseudonyms accumulated in the
    registry are substituted back, longest pseudonym first.

The Processor itself holds no per-call state: the registry is the only
mutable collaborator, and it is safe for concurrent use, so one
Processor can serve concurrent documents (see the batch command).
*/
package processor
