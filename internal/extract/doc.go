// Package extract turns raw source text into a ConstantSet by applying a
// declared extraction rule. Each rule kind is an Extractor strategy; new
// source formats are added by describing them in the rules, not by changing
// this package's callers.
package extract
