// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package match

// stopwords is the English stopword set stripped from queries before
// embedding. Category texts keep their stopwords: they are keyword-dense
// already and stripping them there shifts the catalog anchor points.
var stopwords = map[string]struct{}{}

//nolint:gochecknoinits // stopword set built once at startup
func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
	}
}

// isStopword reports whether a lowercase token carries no topical signal.
func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

var stopwordList = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "get", "give", "had", "hadn't", "has", "hasn't",
	"have", "haven't", "having", "he", "he'd", "he'll", "he's", "her",
	"here", "here's", "hers", "herself", "him", "himself", "his", "how",
	"how's", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "into", "is",
	"isn't", "it", "it's", "its", "itself", "just", "let's", "me", "more",
	"most", "mustn't", "my", "myself", "need", "no", "nor", "not", "of",
	"off", "on", "once", "only", "or", "other", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "please", "same", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "so", "some",
	"something", "such", "than", "that", "that's", "the", "their", "theirs",
	"them", "themselves", "then", "there", "there's", "these", "they",
	"they'd", "they'll", "they're", "they've", "this", "those", "through",
	"to", "too", "under", "until", "up", "us", "very", "want", "was",
	"wasn't", "we", "we'd", "we'll", "we're", "we've", "were", "weren't",
	"what", "what's", "when", "when's", "where", "where's", "which",
	"while", "who", "who's", "whom", "why", "why's", "will", "with",
	"won't", "would", "wouldn't", "you", "you'd", "you'll", "you're",
	"you've", "your", "yours", "yourself", "yourselves",
}
