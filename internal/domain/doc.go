// Package domain contains the core entities of the quiz application:
// users, categories, questions, achievements and leaderboard entries.
// It holds validation rules for those entities but no persistence or
// transport concerns.
package domain
