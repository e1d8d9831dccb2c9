// Package oed fetches and parses word-of-the-day pages from the Oxford
// English Dictionary website.
package oed

import "time"

// WordEntry represents a complete dictionary entry for a single day's word.
type WordEntry struct {
	Word          string
	Pronunciation string
	PartOfSpeech  string
	Definitions   []Definition
	FetchedAt     time.Time
}

// Definition represents a single sense with its quotations and metadata.
type Definition struct {
	SenseNumber string // e.g. "1.", "1.a.", "2."
	Text        string
	DateRange   DateRange
	Quotations  []Quotation
	SubjectTags []string
}

// DateRange is the period a sense has been in recorded use, e.g. {"1806", ""}
// for a sense still current.
type DateRange struct {
	From string
	To   string
}

// Quotation is a dated usage example with its citation.
type Quotation struct {
	Date     string
	Text     string
	Citation string
}

// EtymologyEntry represents the etymology section of a word entry.
type EtymologyEntry struct {
	Summary string // e.g. "A borrowing from Spanish."
	Etymons []Etymon
	Full    string
}

// Etymon is a source language and word form pair.
type Etymon struct {
	Language string
	Form     string
}
