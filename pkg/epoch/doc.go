// Package epoch decides whether a digit run is a Unix timestamp and at which
// granularity.
//
// The decision is made from the run's length and leading digit alone. Each
// unit accepts its natural digit count and the next-longer one; the longer
// count is only accepted while the leading digit is below IntermediateBound,
// which caps the supported range at roughly the year 2128.
package epoch
