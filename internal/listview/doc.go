// Package listview derives the visible subset of a collection from a status
// selector and a free-text query, and computes summary numbers over that
// subset. It knows nothing about particular entity kinds: callers describe
// a kind with a Spec holding a status accessor and the searchable fields.
package listview
