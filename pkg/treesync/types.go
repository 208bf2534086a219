package treesync

import (
	"github.com/bianoble/treesync/internal/actionlog"
	"github.com/bianoble/treesync/internal/engine"
)

// Type aliases re-export the engine and log types as the public API.
// Users import "github.com/bianoble/treesync/pkg/treesync" and use
// treesync.Result, treesync.Action, etc.

type Action = actionlog.Entry
type ActionKind = actionlog.Kind
type Outcome = engine.Outcome
type ItemError = engine.ItemError
type DirectionResult = engine.DirectionResult
type Result = engine.Result

const (
	ActionCreatedDirectory = actionlog.KindCreatedDirectory
	ActionCopied           = actionlog.KindCopied

	OutcomeCompleted = engine.OutcomeCompleted
	OutcomeSkipped   = engine.OutcomeSkipped
	OutcomeAborted   = engine.OutcomeAborted
)

// Sentinel errors for direction-level failures.
var (
	ErrSourceUnavailable = engine.ErrSourceUnavailable
	ErrDestinationCreate = engine.ErrDestinationCreate
	ErrEnumeration       = engine.ErrEnumeration
)
