// Package catalog holds the category catalog and every hand-tuned table the
// generators sample from: category lead-time, margin and cost ranges,
// manufacturer sets, scenario and status weights, scenario-conditioned stock
// and quantity tables, discount weights and the static parameter values.
//
// The tables live in a YAML profile. The default profile is embedded in the
// binary; a replacement can be loaded with LoadFile:
//
//	scenarios:
//	  - {value: normal, weight: 70}
//	categories:
//	  - name: Electronics
//	    lead_time: [14, 30]
//	    margin: [0.15, 0.40]
//	    cost: [100, 2000]
//	    manufacturers: [Samsung, Apple]
//	stock:
//	  default: {physical: [10, 300], in_transit: [0, 50]}
//
// Scenario-conditioned tables are keyed by scenario name, with a "default"
// entry covering every scenario that has no entry of its own.
package catalog
