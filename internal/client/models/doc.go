// Package models defines the typed payloads exchanged with the store-rating
// API. List screens do not use these types: their rows flow through the data
// view engine as raw JSON records.
package models
