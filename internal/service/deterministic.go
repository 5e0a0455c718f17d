package service

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = func() time.Time { return time.Now().UTC() }

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// newID returns a fresh scenario id (override in tests for determinism).
var newID = func() string { return uuid.NewString() }

// SetIDFunc overrides the id generator (use only in tests).
func SetIDFunc(f func() string) { newID = f }
