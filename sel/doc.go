// Package sel provides selection over the current population. Selection
// reads fitness only; it never copies or mutates programs, so winners must
// be deep-copied before variation.
package sel
