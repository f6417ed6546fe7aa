// Package domain contains the core entities of the medical-tourism
// back office and their validation rules. Entities are plain data
// structures; persistence and transport concerns live elsewhere.
package domain
