package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Every listing method is scoped to an owner; implementations must filter by
// user_id so one tenant's rows can never reach another.
