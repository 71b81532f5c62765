// Package status classifies filesystem paths.
//
// Every workflow in desks starts by asking which of four mutually exclusive
// states a path is in (absent, occupied, valid link, broken link) and
// branches on the answer. The classification is a snapshot: nothing guards
// against the filesystem changing between Classify and the next mutation.
package status
