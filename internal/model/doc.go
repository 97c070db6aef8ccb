package model

// Package model defines the conversion task and batch structures the desktop
// shell tracks, and their status enum. Finished tasks and batches are what
// trigger desktop notifications.
